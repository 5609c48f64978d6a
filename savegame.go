// Copyright 2026 The Nocesave Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package gvas

import (
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/nocesave/nocesave/internal/ncvlog"
)

var magic = [4]byte{'G', 'V', 'A', 'S'}

// EngineVersion is Unreal's FEngineVersion: three uint16 version
// components, a changelist, and a branch name.
type EngineVersion struct {
	Major      uint16
	Minor      uint16
	Patch      uint16
	Changelist uint32
	Branch     string
}

func readEngineVersion(r *reader) (EngineVersion, error) {
	var v EngineVersion
	var err error
	if v.Major, err = r.u16(); err != nil {
		return EngineVersion{}, err
	}
	if v.Minor, err = r.u16(); err != nil {
		return EngineVersion{}, err
	}
	if v.Patch, err = r.u16(); err != nil {
		return EngineVersion{}, err
	}
	if v.Changelist, err = r.u32(); err != nil {
		return EngineVersion{}, err
	}
	if v.Branch, err = readFString(r); err != nil {
		return EngineVersion{}, err
	}
	return v, nil
}

func writeEngineVersion(w *writer, v EngineVersion) {
	w.putU16(v.Major)
	w.putU16(v.Minor)
	w.putU16(v.Patch)
	w.putU32(v.Changelist)
	writeFString(w, v.Branch)
}

func (v EngineVersion) size() int {
	return 2 + 2 + 2 + 4 + fstringByteSize(v.Branch)
}

// CustomFormatEntry is one {Guid, version} pair of a CustomFormatData
// block, identifying a single plugin or subsystem's own serialization
// version.
type CustomFormatEntry struct {
	ID      Guid
	Version int32
}

// CustomFormatData is the save header's custom-version table.
type CustomFormatData struct {
	Version int32
	Entries []CustomFormatEntry
}

func readCustomFormatData(r *reader) (CustomFormatData, error) {
	var d CustomFormatData
	var err error
	if d.Version, err = r.i32(); err != nil {
		return CustomFormatData{}, err
	}
	count, err := r.u32()
	if err != nil {
		return CustomFormatData{}, err
	}
	d.Entries = make([]CustomFormatEntry, 0, count)
	for i := uint32(0); i < count; i++ {
		g, err := readGuid(r)
		if err != nil {
			return CustomFormatData{}, err
		}
		v, err := r.i32()
		if err != nil {
			return CustomFormatData{}, err
		}
		d.Entries = append(d.Entries, CustomFormatEntry{ID: g, Version: v})
	}
	return d, nil
}

func writeCustomFormatData(w *writer, d CustomFormatData) {
	w.putI32(d.Version)
	w.putU32(uint32(len(d.Entries)))
	for _, e := range d.Entries {
		writeGuid(w, e.ID)
		w.putI32(e.Version)
	}
}

func (d CustomFormatData) size() int {
	return 4 + 4 + len(d.Entries)*(16+4)
}

// SaveGameHeader is the fixed prologue of a .sav file preceding its
// property stream: the "GVAS" magic, the save-system's own file version,
// the two package-serialization versions it was written under, the
// engine version that wrote it, and its custom-version table.
type SaveGameHeader struct {
	SaveGameVersion   uint32
	PackageVersionUE4 int32
	PackageVersionUE5 int32
	Engine            EngineVersion
	CustomFormat      CustomFormatData
}

func readSaveGameHeader(r *reader) (SaveGameHeader, error) {
	m, err := r.bytes(4)
	if err != nil {
		return SaveGameHeader{}, err
	}
	if m[0] != magic[0] || m[1] != magic[1] || m[2] != magic[2] || m[3] != magic[3] {
		return SaveGameHeader{}, ErrInvalidMagic
	}

	var h SaveGameHeader
	if h.SaveGameVersion, err = r.u32(); err != nil {
		return SaveGameHeader{}, err
	}
	if h.PackageVersionUE4, err = r.i32(); err != nil {
		return SaveGameHeader{}, err
	}
	if h.PackageVersionUE5, err = r.i32(); err != nil {
		return SaveGameHeader{}, err
	}
	if h.Engine, err = readEngineVersion(r); err != nil {
		return SaveGameHeader{}, err
	}
	if h.CustomFormat, err = readCustomFormatData(r); err != nil {
		return SaveGameHeader{}, err
	}
	return h, nil
}

func writeSaveGameHeader(w *writer, h SaveGameHeader) {
	w.putBytes(magic[:])
	w.putU32(h.SaveGameVersion)
	w.putI32(h.PackageVersionUE4)
	w.putI32(h.PackageVersionUE5)
	writeEngineVersion(w, h.Engine)
	writeCustomFormatData(w, h.CustomFormat)
}

func (h SaveGameHeader) size() int {
	return 4 + 4 + 4 + 4 + h.Engine.size() + h.CustomFormat.size()
}

// SaveGame is a fully parsed .sav file: its header, the name of the
// UObject class the save was written for, its top-level property list,
// and the trailing reserved word every GVAS save ends with.
type SaveGame struct {
	Header        SaveGameHeader
	SaveClassName string
	DataFlags     uint8
	Properties    []Property
	Footer        uint32

	// Anomalies records recoverable problems encountered while parsing:
	// unrecognized property types, ByteProperty values that didn't parse
	// as enum strings, CoreUObject structs this build's registry doesn't
	// know. An empty slice means a clean parse.
	Anomalies []string

	raw []byte
}

// Options configures Open/OpenBytes/Parse.
type Options struct {
	// Logger receives a Warnf-level notice for each anomaly once parsing
	// completes, in addition to it being appended to SaveGame.Anomalies.
	// Nil disables logging (the default); anomalies still accumulate.
	Logger *ncvlog.Helper
}

// Open memory-maps path read-only and parses it. The returned SaveGame
// retains no reference to the mapping once Parse returns, so the file
// need not be kept open.
func Open(path string, opts *Options) (*SaveGame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer m.Unmap()

	data := make([]byte, len(m))
	copy(data, m)
	return Parse(data, opts)
}

// OpenBytes parses an in-memory copy of a .sav file's bytes.
func OpenBytes(data []byte, opts *Options) (*SaveGame, error) {
	return Parse(data, opts)
}

// Parse decodes data as a complete GVAS save file.
func Parse(data []byte, opts *Options) (*SaveGame, error) {
	r := newReader(data)
	sink := &anomalySink{}

	header, err := readSaveGameHeader(r)
	if err != nil {
		return nil, err
	}

	className, err := readFString(r)
	if err != nil {
		return nil, err
	}

	dataFlags, err := r.u8()
	if err != nil {
		return nil, err
	}

	end := len(data) - 4
	if end < r.pos {
		return nil, wrapErr(ErrTruncatedStream, r.offset(), "SaveGameData")
	}
	props, err := readPropertyStream(r, end, sink)
	if err != nil {
		return nil, err
	}

	footer, err := r.u32()
	if err != nil {
		return nil, err
	}

	sg := &SaveGame{
		Header:        header,
		SaveClassName: className,
		DataFlags:     dataFlags,
		Properties:    props,
		Footer:        footer,
		Anomalies:     sink.messages,
		raw:           data,
	}

	if opts != nil && opts.Logger != nil {
		for _, msg := range sg.Anomalies {
			opts.Logger.Warnf("%s", msg)
		}
	}

	return sg, nil
}

// Write serializes the save back to its exact wire form: header, save
// class name, the SaveGameData flags byte, property stream (sentinel
// included only if one was present), and the trailing footer word.
func (s *SaveGame) Write() []byte {
	w := newWriter()
	writeSaveGameHeader(w, s.Header)
	writeFString(w, s.SaveClassName)
	w.putU8(s.DataFlags)
	writePropertyStream(w, s.Properties)
	w.putU32(s.Footer)
	return w.bytesOut()
}
