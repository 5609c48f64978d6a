// Copyright 2026 The Nocesave Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package gvas

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCoreUObjectRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   CoreUObject
	}{
		{"DateTime", CoreUObject{TypeName: "DateTime", Ticks: 123456789}},
		{"Timespan", CoreUObject{TypeName: "Timespan", Ticks: 42}},
		{"Vector", CoreUObject{TypeName: "Vector", X: 1, Y: -2.5, Z: 3.25}},
		{"Quat", CoreUObject{TypeName: "Quat", X: 0, Y: 0, Z: 0, W: 1}},
		{"LinearColor", CoreUObject{TypeName: "LinearColor", R: 1, G: 0.5, B: 0.25, A: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWriter()
			writeCoreUObject(w, tt.in)
			require.Equal(t, tt.in.size(), w.size())

			r := newReader(w.bytesOut())
			got, err := readCoreUObject(r, tt.in.TypeName)
			require.NoError(t, err)
			require.Equal(t, tt.in, got)
		})
	}
}

func TestCoreUObjectUnknownTypeNameIsFatal(t *testing.T) {
	_, err := readCoreUObject(newReader(nil), "SomethingElse")
	require.ErrorIs(t, err, ErrUnknownTag)
}

func TestCoreUObjectNameForLooksUpRegistry(t *testing.T) {
	size, ok := coreUObjectNameFor("Vector")
	require.True(t, ok)
	require.Equal(t, 24, size)

	_, ok = coreUObjectNameFor("NotReal")
	require.False(t, ok)
}
