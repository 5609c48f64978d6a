// Copyright 2026 The Nocesave Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package gvas

import (
	"errors"
	"fmt"
)

// Errors returned by the codec. Local recovery is allowed only for
// ErrUnknownTag (the record is retained as UnknownProperty) and for the
// ByteProperty enum-reinterpretation fallback described in value.go; every
// other error here is fatal to the parse that produced it.
var (
	// ErrInvalidMagic is returned when the leading four bytes of a save
	// file are not "GVAS".
	ErrInvalidMagic = errors.New("gvas: invalid magic, not a GVAS save")

	// ErrTruncatedStream is returned when EOF is hit before an expected
	// structural field. The top-level SaveGameData property list treats
	// EOF-minus-4 as normal termination, not as this error.
	ErrTruncatedStream = errors.New("gvas: truncated stream")

	// ErrStringEncoding is returned when an FString's declared length and
	// its terminating NUL disagree.
	ErrStringEncoding = errors.New("gvas: malformed FString encoding")

	// ErrOverflowingValue is returned when a PropertyValue consumed more
	// bytes than its PropertyBody.dataSize bound allowed.
	ErrOverflowingValue = errors.New("gvas: property value overran its declared data size")

	// ErrUnknownTag marks a record retained verbatim as UnknownProperty
	// because the codec could not interpret it structurally. Non-fatal.
	ErrUnknownTag = errors.New("gvas: unrecognized property, retained as raw bytes")

	// ErrReparseFailed is returned when a CustomStruct's nested property
	// stream fails to parse. Fatal: the enclosing file is not trusted.
	ErrReparseFailed = errors.New("gvas: failed to re-parse custom struct payload")

	// ErrOutOfRange is returned by InsertAt and RemoveAt for an index
	// outside the array or a target value that is not an ArrayProperty.
	ErrOutOfRange = errors.New("gvas: index or key out of range")
)

// CodecError wraps a sentinel error with the byte offset and last-known
// type name in play when it was produced, so a caller can locate the
// problem without re-running the parse under a debugger.
type CodecError struct {
	Err      error
	Offset   int64
	TypeName string
}

func (e *CodecError) Error() string {
	if e.TypeName != "" {
		return fmt.Sprintf("%s (at offset 0x%X, type %s)", e.Err, e.Offset, e.TypeName)
	}
	return fmt.Sprintf("%s (at offset 0x%X)", e.Err, e.Offset)
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// wrapErr attaches positional context to a sentinel error. typeName may be
// empty when no property is currently being dispatched.
func wrapErr(err error, offset int64, typeName string) error {
	if err == nil {
		return nil
	}
	return &CodecError{Err: err, Offset: offset, TypeName: typeName}
}
