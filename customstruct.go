// Copyright 2026 The Nocesave Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package gvas

// classFooterSize maps a recognized class's full object-path name to the
// number of trailing footer bytes its nested property streams carry, per
// spec.md §4.5. Consulted by name only. RegisterClass adds or overrides
// entries at run time; the map has no locking.
var classFooterSize = map[string]int{
	"/Script/GameNoce.NoceInventoryComponent":       8,
	"/Script/GameNoce.NocePlayerInventoryComponent": 8,
	"/Script/GameNoce.NocePlayerTrigger":            8,
	"/Script/GameNoce.NocePlayerCharacter":          8,
	"/Script/GameNoce.NocePlayerState":              8,
	"/Script/GameNoce.NoceBodyPartGroup":            8,
	"/Script/GameNoce.NoceEnemyCharacter":           8,
	"/Script/GameNoce.NoceMapIcon":                  8,
	"/Script/Engine.ActorComponent":                 8,
	"/Script/GameNoce.NoceEnvironment":              4,
	"/Script/GameNoce.NoceWorldManager":             4,
	"/Script/GameNoce.NoceMucus":                    4,
	"/Script/GameNoce.NoceAchievement":              4,
	"/Script/GameNoce.NoceActivity":                 4,
	"/Script/GameNoce.NoceItem":                     4,
	"/Script/GameNoce.NoceOmamoriDrawing":           4,
	"/Script/GameNoce.NocePickupsHelper":            4,
	"/Script/GameNoce.NoceTutorial":                 4,
	"/Script/GameNoce.NoceAI":                       4,
	"/Script/GameNoce.NoceDialog":                   4,
	"/Script/GameNoce.NoceGameClock":                4,
	"/Script/GameNoce.NoceBink":                     4,
	"/Script/GameNoce.NoceHitPerformData":           4,
	"/Script/GameNoce.NocePlayerLookAt":             4,
	"/Script/GameNoce.NoceTentacle":                 4,
	"/Script/GameNoce.NoceUIMission":                4,
	"/Script/GameNoce.NoceBattlePosition":           4,
	"/Script/GameNoce.NocePickups":                  4,
}

// classFooterSizeFor reports whether s names a recognized class and, if
// so, its trailing footer size.
func classFooterSizeFor(s string) (int, bool) {
	n, ok := classFooterSize[s]
	return n, ok
}

// RegisterClass adds or overrides an entry in the process-wide class
// table. spec.md §4.5/§6 calls out additions as "the sole supported form
// of extension" for the class table.
func RegisterClass(fullName string, footerSize int) {
	classFooterSize[fullName] = footerSize
}

// CustomStruct is the nested property stream recognized inside an
// ArrayProperty[ByteProperty] payload whose enclosing stream's sibling
// "Class" record names a known class (spec.md §3, §4.5). Extra holds the
// class-specific trailing footer bytes verbatim.
type CustomStruct struct {
	Flags      uint8
	Properties []Property
	Extra      []byte
}

// size is "custom struct -> 4 + 1 + Σ property sizes + extra.len()" from
// spec.md §4.4. The leading 4 accounts for the innerDataSize field that
// prefixes the nested stream on the wire.
func (c CustomStruct) size() int {
	n := 4 + 1
	for _, p := range c.Properties {
		n += p.size()
	}
	n += len(c.Extra)
	return n
}

// readCustomStruct parses the blob found inside a Data record's
// ArrayProperty[ByteProperty] payload once a preceding Class sibling has
// resolved footerSize.
func readCustomStruct(blob []byte, footerSize int, sink *anomalySink) (CustomStruct, error) {
	if len(blob) < 4+1+footerSize {
		return CustomStruct{}, wrapErr(ErrTruncatedStream, 0, "CustomStruct")
	}
	r := newReader(blob)

	innerDataSize, err := r.u32()
	if err != nil {
		return CustomStruct{}, err
	}
	flags, err := r.u8()
	if err != nil {
		return CustomStruct{}, err
	}

	// innerDataSize mirrors the outer PropertyBody dataSize convention but
	// isn't the authoritative bound here; the footer is.
	_ = innerDataSize

	streamEnd := len(blob) - footerSize
	props, err := readPropertyStream(r, streamEnd, sink)
	if err != nil {
		return CustomStruct{}, wrapErr(ErrReparseFailed, r.offset(), "CustomStruct")
	}
	if r.pos > streamEnd {
		return CustomStruct{}, wrapErr(ErrOverflowingValue, r.offset(), "CustomStruct")
	}
	extra, err := r.bytes(footerSize)
	if err != nil {
		return CustomStruct{}, wrapErr(ErrReparseFailed, r.offset(), "CustomStruct")
	}

	return CustomStruct{Flags: flags, Properties: props, Extra: extra}, nil
}

// writeCustomStruct re-emits a CustomStruct to its exact wire form:
// innerDataSize (recomputed from the property list), flags, the property
// stream, then the preserved footer bytes.
func writeCustomStruct(w *writer, c CustomStruct) {
	inner := newWriter()
	for _, p := range c.Properties {
		writeProperty(inner, p)
	}
	w.putU32(uint32(inner.size()))
	w.putU8(c.Flags)
	w.putBytes(inner.bytesOut())
	w.putBytes(c.Extra)
}
