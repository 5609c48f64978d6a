// Copyright 2026 The Nocesave Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package gvas

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildMinimalSave(t *testing.T) []byte {
	t.Helper()

	header := SaveGameHeader{
		SaveGameVersion:   2,
		PackageVersionUE4: 522,
		PackageVersionUE5: 1008,
		Engine: EngineVersion{
			Major: 5, Minor: 3, Patch: 2, Changelist: 12345, Branch: "++UE5+Release-5.3",
		},
		CustomFormat: CustomFormatData{
			Version: 3,
			Entries: []CustomFormatEntry{{ID: Guid{}, Version: 1}},
		},
	}

	w := newWriter()
	writeSaveGameHeader(w, header)
	writeFString(w, "/Script/GameNoce.NocePlayerSaveGame")
	w.putU8(0)
	writeProperty(w, intProperty("Level", 7))
	writeFString(w, "None")
	w.putU32(0) // footer
	return w.bytesOut()
}

func TestParseAndWriteSaveGameRoundTrip(t *testing.T) {
	data := buildMinimalSave(t)

	sg, err := OpenBytes(data, &Options{})
	require.NoError(t, err)
	require.Equal(t, "/Script/GameNoce.NocePlayerSaveGame", sg.SaveClassName)
	require.Len(t, sg.Properties, 2)
	require.Equal(t, "Level", sg.Properties[0].Name)
	require.Equal(t, int32(7), sg.Properties[0].Body.Value.Int)
	require.Empty(t, sg.Anomalies)

	require.Equal(t, data, sg.Write())
}

func TestParseRejectsBadMagic(t *testing.T) {
	data := buildMinimalSave(t)
	data[0] = 'X'
	_, err := OpenBytes(data, &Options{})
	require.ErrorIs(t, err, ErrInvalidMagic)
}

func TestParseRecordsAnomaliesForUnrecognizedProperty(t *testing.T) {
	header := SaveGameHeader{Engine: EngineVersion{}, CustomFormat: CustomFormatData{}}
	w := newWriter()
	writeSaveGameHeader(w, header)
	writeFString(w, "/Script/Whatever")
	w.putU8(0)

	writeFString(w, "Mystery")
	writePropertyType(w, PropertyType{Name: "SomeFutureProperty"})
	w.putU32(2)
	w.putU8(0)
	w.putBytes([]byte{0xAA, 0xBB})
	writeFString(w, "None")
	w.putU32(0)

	sg, err := OpenBytes(w.bytesOut(), &Options{})
	require.NoError(t, err)
	require.Len(t, sg.Anomalies, 1)
}
