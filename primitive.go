// Copyright 2026 The Nocesave Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package gvas

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/google/uuid"
)

// reader is a bounds-checked little-endian cursor over an in-memory save
// buffer. All structural reads go through it so that a single place
// enforces "never read past the end of the buffer", with the cursor
// advancing sequentially instead of being re-supplied an offset on every
// call.
type reader struct {
	data []byte
	pos  int
}

func newReader(data []byte) *reader {
	return &reader{data: data}
}

// offset returns the current cursor position, used for error context.
func (r *reader) offset() int64 {
	return int64(r.pos)
}

// remaining returns the number of unread bytes.
func (r *reader) remaining() int {
	return len(r.data) - r.pos
}

func (r *reader) bytes(n int) ([]byte, error) {
	if n < 0 || n > r.remaining() {
		return nil, ErrTruncatedStream
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *reader) u8() (uint8, error) {
	b, err := r.bytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *reader) i8() (int8, error) {
	v, err := r.u8()
	return int8(v), err
}

func (r *reader) u16() (uint16, error) {
	b, err := r.bytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (r *reader) i16() (int16, error) {
	v, err := r.u16()
	return int16(v), err
}

func (r *reader) u32() (uint32, error) {
	b, err := r.bytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *reader) i32() (int32, error) {
	v, err := r.u32()
	return int32(v), err
}

func (r *reader) u64() (uint64, error) {
	b, err := r.bytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (r *reader) i64() (int64, error) {
	v, err := r.u64()
	return int64(v), err
}

func (r *reader) f32() (float32, error) {
	v, err := r.u32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

func (r *reader) f64() (float64, error) {
	v, err := r.u64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// writer accumulates little-endian bytes for a value that will be
// measured and, where required, back-patched into an outer size field.
// Per the design notes in spec.md §9, values are written to a scratch
// buffer and the length is taken from that buffer rather than computing
// sizes twice.
type writer struct {
	buf bytes.Buffer
}

func newWriter() *writer {
	return &writer{}
}

func (w *writer) bytesOut() []byte {
	return w.buf.Bytes()
}

func (w *writer) size() int {
	return w.buf.Len()
}

func (w *writer) putBytes(b []byte) {
	w.buf.Write(b)
}

func (w *writer) putU8(v uint8) {
	w.buf.WriteByte(v)
}

func (w *writer) putI8(v int8) {
	w.putU8(uint8(v))
}

func (w *writer) putU16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	w.buf.Write(b[:])
}

func (w *writer) putI16(v int16) {
	w.putU16(uint16(v))
}

func (w *writer) putU32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf.Write(b[:])
}

func (w *writer) putI32(v int32) {
	w.putU32(uint32(v))
}

func (w *writer) putU64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

func (w *writer) putI64(v int64) {
	w.putU64(uint64(v))
}

func (w *writer) putF32(v float32) {
	w.putU32(math.Float32bits(v))
}

func (w *writer) putF64(v float64) {
	w.putU64(math.Float64bits(v))
}

// --- FString -----------------------------------------------------------

// readFString reads the length-prefixed, NUL-terminated string described
// in spec.md §4.1. An empty string is encoded as a bare zero length with
// no payload at all.
func readFString(r *reader) (string, error) {
	n, err := r.u32()
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	payload, err := r.bytes(int(n))
	if err != nil {
		return "", err
	}
	if payload[len(payload)-1] != 0x00 {
		return "", wrapErr(ErrStringEncoding, r.offset(), "FString")
	}
	body := payload[:len(payload)-1]
	if bytes.IndexByte(body, 0x00) != -1 {
		return "", wrapErr(ErrStringEncoding, r.offset(), "FString")
	}
	return string(body), nil
}

// writeFString emits the inverse of readFString.
func writeFString(w *writer, s string) {
	if s == "" {
		w.putU32(0)
		return
	}
	w.putU32(uint32(len(s) + 1))
	w.putBytes([]byte(s))
	w.putU8(0)
}

// fstringByteSize is the on-disk byte size of s per spec.md §3.
func fstringByteSize(s string) int {
	if s == "" {
		return 4
	}
	return len(s) + 5
}

// --- Guid ----------------------------------------------------------------

// Guid is 16 opaque bytes. It is backed by google/uuid, whose canonical
// String() representation already matches the lowercase, dashed
// 8-4-4-4-12 layout spec.md §3 requires, and whose byte layout (big-endian
// per field, matching a straight Parse of the stripped hex digits) matches
// the codec's "decode big-endian per byte" parsing rule.
type Guid uuid.UUID

// String renders the canonical lowercase-dashed textual form.
func (g Guid) String() string {
	return uuid.UUID(g).String()
}

// ParseGuid parses the canonical textual form (with or without dashes)
// back into a Guid, per spec.md §4.1.
func ParseGuid(s string) (Guid, error) {
	clean := stripDashes(s)
	if len(clean) != 32 {
		return Guid{}, fmt.Errorf("gvas: invalid guid length %d", len(clean))
	}
	u, err := uuid.Parse(clean)
	if err != nil {
		return Guid{}, fmt.Errorf("gvas: invalid guid: %w", err)
	}
	return Guid(u), nil
}

func stripDashes(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '-' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

func readGuid(r *reader) (Guid, error) {
	b, err := r.bytes(16)
	if err != nil {
		return Guid{}, err
	}
	var g Guid
	copy(g[:], b)
	return g, nil
}

func writeGuid(w *writer, g Guid) {
	w.putBytes(g[:])
}
