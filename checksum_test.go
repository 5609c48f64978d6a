// Copyright 2026 The Nocesave Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package gvas

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFingerprintStableAndSensitiveToBytes(t *testing.T) {
	a := buildMinimalSave(t)
	b := append([]byte(nil), a...)

	sgA, err := OpenBytes(a, &Options{})
	require.NoError(t, err)
	sgB, err := OpenBytes(b, &Options{})
	require.NoError(t, err)
	require.Equal(t, sgA.Fingerprint(), sgB.Fingerprint())

	b[len(b)-1] ^= 0xFF
	sgC, err := OpenBytes(b, &Options{})
	require.NoError(t, err)
	require.NotEqual(t, sgA.Fingerprint(), sgC.Fingerprint())
}
