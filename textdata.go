// Copyright 2026 The Nocesave Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package gvas

// TextFlags bits recognized by spec.md §6. Unknown bits are preserved
// round-trip: a TextFlags value carries the full 32-bit word as read, and
// Has only inspects the bits it is given.
const (
	TextFlagTransient             uint32 = 0x00000001
	TextFlagCultureInvariant      uint32 = 0x00000002
	TextFlagConvertedProperty     uint32 = 0x00000004
	TextFlagImmutable             uint32 = 0x00000008
	TextFlagInitializedFromString uint32 = 0x00000010
)

// TextFlags is a 32-bit flag set. All bits are preserved on round-trip;
// only the five documented bits have named constants.
type TextFlags uint32

func (f TextFlags) Has(bit uint32) bool { return uint32(f)&bit != 0 }

// TextData is the tagged union discriminated by the i8 tag described in
// spec.md §3. Exactly one of the fields below is populated, selected by
// Kind.
type TextData struct {
	Kind int8 // -1 None, 0 Base, 9 AsDateTime, 11 StringTableEntry

	// Kind == -1 (None)
	Values []string

	// Kind == 0 (Base)
	Namespace    string
	Key          string
	SourceString string

	// Kind == 9 (AsDateTime)
	Ticks        int64
	DateStyle    int8
	TimeStyle    int8
	TimeZone     string
	CultureName  string

	// Kind == 11 (StringTableEntry)
	Table string
	// Key is shared with Base above.
}

const (
	textDataKindNone             int8 = -1
	textDataKindBase             int8 = 0
	textDataKindAsDateTime       int8 = 9
	textDataKindStringTableEntry int8 = 11
)

func readTextData(r *reader) (TextData, error) {
	kind, err := r.i8()
	if err != nil {
		return TextData{}, err
	}
	switch kind {
	case textDataKindNone:
		count, err := r.u32()
		if err != nil {
			return TextData{}, err
		}
		values := make([]string, 0, count)
		for i := uint32(0); i < count; i++ {
			s, err := readFString(r)
			if err != nil {
				return TextData{}, err
			}
			values = append(values, s)
		}
		return TextData{Kind: kind, Values: values}, nil
	case textDataKindBase:
		namespace, err := readFString(r)
		if err != nil {
			return TextData{}, err
		}
		key, err := readFString(r)
		if err != nil {
			return TextData{}, err
		}
		source, err := readFString(r)
		if err != nil {
			return TextData{}, err
		}
		return TextData{Kind: kind, Namespace: namespace, Key: key, SourceString: source}, nil
	case textDataKindAsDateTime:
		ticks, err := r.i64()
		if err != nil {
			return TextData{}, err
		}
		dateStyle, err := r.i8()
		if err != nil {
			return TextData{}, err
		}
		timeStyle, err := r.i8()
		if err != nil {
			return TextData{}, err
		}
		timeZone, err := readFString(r)
		if err != nil {
			return TextData{}, err
		}
		cultureName, err := readFString(r)
		if err != nil {
			return TextData{}, err
		}
		return TextData{
			Kind: kind, Ticks: ticks, DateStyle: dateStyle, TimeStyle: timeStyle,
			TimeZone: timeZone, CultureName: cultureName,
		}, nil
	case textDataKindStringTableEntry:
		table, err := readFString(r)
		if err != nil {
			return TextData{}, err
		}
		key, err := readFString(r)
		if err != nil {
			return TextData{}, err
		}
		return TextData{Kind: kind, Table: table, Key: key}, nil
	default:
		return TextData{}, wrapErr(ErrUnknownTag, r.offset(), "TextData")
	}
}

func writeTextData(w *writer, d TextData) {
	w.putI8(d.Kind)
	switch d.Kind {
	case textDataKindNone:
		w.putU32(uint32(len(d.Values)))
		for _, s := range d.Values {
			writeFString(w, s)
		}
	case textDataKindBase:
		writeFString(w, d.Namespace)
		writeFString(w, d.Key)
		writeFString(w, d.SourceString)
	case textDataKindAsDateTime:
		w.putI64(d.Ticks)
		w.putI8(d.DateStyle)
		w.putI8(d.TimeStyle)
		writeFString(w, d.TimeZone)
		writeFString(w, d.CultureName)
	case textDataKindStringTableEntry:
		writeFString(w, d.Table)
		writeFString(w, d.Key)
	}
}

// size is TextData's contribution per the size table in spec.md §4.4
// ("text -> 4 + 1 + textdata_size"); this returns the textdata_size part,
// i.e. the tag byte plus the variant payload.
func (d TextData) size() int {
	n := 1 // kind tag
	switch d.Kind {
	case textDataKindNone:
		n += 4
		for _, s := range d.Values {
			n += fstringByteSize(s)
		}
	case textDataKindBase:
		n += fstringByteSize(d.Namespace) + fstringByteSize(d.Key) + fstringByteSize(d.SourceString)
	case textDataKindAsDateTime:
		n += 8 + 1 + 1 + fstringByteSize(d.TimeZone) + fstringByteSize(d.CultureName)
	case textDataKindStringTableEntry:
		n += fstringByteSize(d.Table) + fstringByteSize(d.Key)
	}
	return n
}
