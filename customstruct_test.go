// Copyright 2026 The Nocesave Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package gvas

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCustomStructRoundTrip(t *testing.T) {
	cs := CustomStruct{
		Flags:      3,
		Properties: []Property{intProperty("Quantity", 10), {Name: "None"}},
		Extra:      []byte{0xDE, 0xAD, 0xBE, 0xEF},
	}

	w := newWriter()
	writeCustomStruct(w, cs)
	require.Equal(t, cs.size(), w.size())

	got, err := readCustomStruct(w.bytesOut(), len(cs.Extra), &anomalySink{})
	require.NoError(t, err)
	require.Equal(t, cs.Flags, got.Flags)
	require.Equal(t, cs.Extra, got.Extra)
	require.Equal(t, cs.Properties[0].Name, got.Properties[0].Name)
}

func TestReadCustomStructTooShortIsTruncated(t *testing.T) {
	_, err := readCustomStruct([]byte{1, 2, 3}, 8, &anomalySink{})
	require.ErrorIs(t, err, ErrTruncatedStream)
}

func TestRegisterClassAddsLookupEntry(t *testing.T) {
	RegisterClass("/Script/GameNoce.NewlyAddedClass", 12)
	size, ok := classFooterSizeFor("/Script/GameNoce.NewlyAddedClass")
	require.True(t, ok)
	require.Equal(t, 12, size)
}
