// Copyright 2026 The Nocesave Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package gvas

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFStringRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"ascii", "PlayerState"},
		{"with spaces", "Noce Save Game"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWriter()
			writeFString(w, tt.in)
			require.Equal(t, fstringByteSize(tt.in), w.size())

			r := newReader(w.bytesOut())
			got, err := readFString(r)
			require.NoError(t, err)
			require.Equal(t, tt.in, got)
			require.Equal(t, len(w.bytesOut()), r.pos)
		})
	}
}

func TestReadFStringEmptyHasNoPayload(t *testing.T) {
	w := newWriter()
	w.putU32(0)
	r := newReader(w.bytesOut())
	s, err := readFString(r)
	require.NoError(t, err)
	require.Equal(t, "", s)
	require.Equal(t, 4, r.pos)
}

func TestReadFStringRejectsMissingTerminator(t *testing.T) {
	w := newWriter()
	w.putU32(3)
	w.putBytes([]byte("abc"))
	r := newReader(w.bytesOut())
	_, err := readFString(r)
	require.Error(t, err)
}

func TestGuidTextRoundTrip(t *testing.T) {
	const text = "01234567-89ab-cdef-0123-456789abcdef"
	g, err := ParseGuid(text)
	require.NoError(t, err)
	require.Equal(t, text, g.String())

	w := newWriter()
	writeGuid(w, g)
	require.Equal(t, 16, w.size())

	r := newReader(w.bytesOut())
	got, err := readGuid(r)
	require.NoError(t, err)
	require.Equal(t, g, got)
}

func TestParseGuidAcceptsUndashedForm(t *testing.T) {
	g, err := ParseGuid("0123456789abcdef0123456789abcdef")
	require.NoError(t, err)
	require.Equal(t, "01234567-89ab-cdef-0123-456789abcdef", g.String())
}

func TestParseGuidRejectsWrongLength(t *testing.T) {
	_, err := ParseGuid("not-a-guid")
	require.Error(t, err)
}

func TestReaderBytesBoundsChecked(t *testing.T) {
	r := newReader([]byte{1, 2, 3})
	_, err := r.bytes(4)
	require.ErrorIs(t, err, ErrTruncatedStream)
}

func TestWriterPrimitiveRoundTrip(t *testing.T) {
	w := newWriter()
	w.putU16(0xBEEF)
	w.putI32(-7)
	w.putF32(1.5)
	w.putF64(2.25)

	r := newReader(w.bytesOut())
	u16, err := r.u16()
	require.NoError(t, err)
	require.Equal(t, uint16(0xBEEF), u16)

	i32, err := r.i32()
	require.NoError(t, err)
	require.Equal(t, int32(-7), i32)

	f32, err := r.f32()
	require.NoError(t, err)
	require.Equal(t, float32(1.5), f32)

	f64, err := r.f64()
	require.NoError(t, err)
	require.Equal(t, 2.25, f64)
}
