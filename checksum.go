// Copyright 2026 The Nocesave Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package gvas

import "github.com/cespare/xxhash/v2"

// Fingerprint returns a content hash of the bytes this SaveGame was
// parsed from. It is not a format field: two parses of "the same" save
// compare equal here when their original bytes did. "nocesave dump
// --fingerprint" prints it.
func (s *SaveGame) Fingerprint() uint64 {
	return xxhash.Sum64(s.raw)
}
