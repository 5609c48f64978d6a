// Copyright 2026 The Nocesave Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package gvas

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPropertySentinelRoundTrip(t *testing.T) {
	w := newWriter()
	writeFString(w, "None")

	r := newReader(w.bytesOut())
	p, err := readProperty(r, &anomalySink{})
	require.NoError(t, err)
	require.True(t, p.isSentinel())
	require.Equal(t, "None", p.Name)

	out := newWriter()
	writeProperty(out, p)
	require.Equal(t, w.bytesOut(), out.bytesOut())
}

func TestPropertyWithBodyRoundTrip(t *testing.T) {
	p := Property{
		Name: "Level",
		Body: &PropertyBody{
			Type:  PropertyType{Name: "IntProperty"},
			Flags: 0,
			Value: PropertyValue{Kind: KindInt, Int: 12},
		},
	}

	w := newWriter()
	writeProperty(w, p)
	require.Equal(t, p.size(), w.size())

	r := newReader(w.bytesOut())
	got, err := readProperty(r, &anomalySink{})
	require.NoError(t, err)
	require.Equal(t, p.Name, got.Name)
	require.Equal(t, p.Body.Type, got.Body.Type)
	require.Equal(t, p.Body.Value.Int, got.Body.Value.Int)
}

func TestPropertyOverflowingValueDetected(t *testing.T) {
	w := newWriter()
	writeFString(w, "Level")
	writePropertyType(w, PropertyType{Name: "IntProperty"})
	w.putU32(3) // declares a dataSize smaller than the 4 bytes an int needs
	w.putU8(0)
	w.putI32(1)

	r := newReader(w.bytesOut())
	_, err := readProperty(r, &anomalySink{})
	require.ErrorIs(t, err, ErrOverflowingValue)
}
