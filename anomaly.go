// Copyright 2026 The Nocesave Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package gvas

// anomalySink collects human-readable descriptions of recoverable parse
// conditions (an unrecognized property name, a ByteProperty that didn't
// parse as an enum string, a CoreUObject payload this build's registry
// doesn't know) as the codec walks a save. A nil sink silently drops
// messages, so callers that don't care can pass nil throughout.
//
// Non-fatal problems are recorded alongside the result instead of aborting
// the parse.
type anomalySink struct {
	messages []string
}

func (s *anomalySink) add(msg string) {
	if s == nil {
		return
	}
	s.messages = append(s.messages, msg)
}
