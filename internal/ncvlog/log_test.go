// Copyright 2026 The Nocesave Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package ncvlog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	levels []Level
	msgs   []string
}

func (r *recordingLogger) Log(level Level, msg string) error {
	r.levels = append(r.levels, level)
	r.msgs = append(r.msgs, msg)
	return nil
}

func TestFilterDropsBelowMinimum(t *testing.T) {
	rec := &recordingLogger{}
	f := NewFilter(rec, FilterLevel(LevelWarn))
	h := NewHelper(f)

	h.Debugf("ignored")
	h.Infof("ignored too")
	h.Warnf("kept %d", 1)
	h.Errorf("kept %d", 2)

	require.Equal(t, []string{"kept 1", "kept 2"}, rec.msgs)
	require.Equal(t, []Level{LevelWarn, LevelError}, rec.levels)
}

func TestNilHelperIsNoop(t *testing.T) {
	var h *Helper
	require.NotPanics(t, func() {
		h.Infof("should not panic")
	})
}

func TestHelperWithNilLoggerIsNoop(t *testing.T) {
	h := NewHelper(nil)
	require.NotPanics(t, func() {
		h.Errorf("dropped")
	})
}
