// Copyright 2026 The Nocesave Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package gvas

// Property is a single name/value record in a property stream (spec.md
// §4). A Property named "None" (or, per the zero-length FString form,
// "") carries no Body and marks the end of the enclosing stream.
type Property struct {
	Name string
	Body *PropertyBody
}

// PropertyBody is the {type, flags, value} payload of a non-sentinel
// Property. The wire dataSize field is never stored: it is always
// recomputed from Value on write, and Invariant 1 (spec.md §5) guarantees
// it equals valueSize(Type, Value) for anything this codec parsed.
type PropertyBody struct {
	Type  PropertyType
	Flags uint8
	Value PropertyValue
}

// isSentinel reports whether p terminates a property stream.
func (p Property) isSentinel() bool {
	return p.Body == nil
}

// size is the exact wire size of p: its name, and if present, its type
// descriptor, the 4-byte dataSize field, the flag byte, and its value.
func (p Property) size() int {
	n := fstringByteSize(p.Name)
	if p.Body == nil {
		return n
	}
	n += p.Body.Type.size() + 4 + 1 + valueSize(p.Body.Type, p.Body.Value)
	return n
}

// readProperty reads one Property. A name of "" or "None" ends the
// caller's stream and is returned as a bodyless Property so that writers
// can reproduce it byte for byte.
func readProperty(r *reader, sink *anomalySink) (Property, error) {
	name, err := readFString(r)
	if err != nil {
		return Property{}, err
	}
	if name == "" || name == "None" {
		return Property{Name: name}, nil
	}

	typ, err := readPropertyType(r)
	if err != nil {
		return Property{}, err
	}
	dataSize, err := r.u32()
	if err != nil {
		return Property{}, err
	}
	flags, err := r.u8()
	if err != nil {
		return Property{}, err
	}

	start := r.pos
	val, err := readPropertyValue(r, typ, flags, dataSize, sink)
	if err != nil {
		return Property{}, err
	}
	if r.pos > start+int(dataSize) {
		return Property{}, wrapErr(ErrOverflowingValue, r.offset(), typ.Name)
	}

	return Property{Name: name, Body: &PropertyBody{Type: typ, Flags: flags, Value: val}}, nil
}

// writeProperty is the exact inverse of readProperty.
func writeProperty(w *writer, p Property) {
	writeFString(w, p.Name)
	if p.Body == nil {
		return
	}
	b := p.Body
	writePropertyType(w, b.Type)

	valBuf := newWriter()
	writePropertyValue(valBuf, b.Type, b.Flags, b.Value)

	w.putU32(uint32(valBuf.size()))
	w.putU8(b.Flags)
	w.putBytes(valBuf.bytesOut())
}
