//    AssignTopics
//    Copyright: 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tpc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReport(t *testing.T) {
	table := scoretable(t, []string{"T1", "T2"}, [][]float64{
		{0.9, 0.4},
		{0.3, 0.6},
		{0.7, 0.55},
	})
	tm := MapTopics(table)

	path := filepath.Join(t.TempDir(), "out.broad.json")
	require.NoError(t, WriteReport(tm, path))

	blob, err := os.ReadFile(path)
	require.NoError(t, err)

	want := `[
{"topic":"T1","doc":[[0,0.90],[2,0.70]]},
{"topic":"T2","doc":[[1,0.60],[2,0.55]]}
]
`
	assert.Equal(t, want, string(blob))
}

func TestWriteReportEmptyTopic(t *testing.T) {
	table := scoretable(t, []string{"T"}, [][]float64{{0.1}})
	tm := MapTopics(table)

	path := filepath.Join(t.TempDir(), "out.broad.json")
	require.NoError(t, WriteReport(tm, path))

	blob, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[\n{\"topic\":\"T\",\"doc\":[]}\n]\n", string(blob))
}

func TestWriteReportRoundsToTwoDecimals(t *testing.T) {
	table := scoretable(t, []string{"T"}, [][]float64{{0.678}, {0.5001}})
	tm := MapTopics(table)

	path := filepath.Join(t.TempDir(), "out.broad.json")
	require.NoError(t, WriteReport(tm, path))

	blob, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[\n{\"topic\":\"T\",\"doc\":[[0,0.68],[1,0.50]]}\n]\n", string(blob))
}
