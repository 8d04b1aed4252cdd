//    AssignTopics
//    Copyright: 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tpc

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ltm-tools/AssignTopics/internal/arff"
	"github.com/ltm-tools/AssignTopics/internal/str"
	"github.com/ltm-tools/AssignTopics/internal/vv"
)

func scoretable(t *testing.T, names []string, rows [][]float64) *str.Dataset {
	t.Helper()
	vars := make([]str.Variable, len(names))
	for i, n := range names {
		vars[i] = str.Variable{Name: n}
	}
	ds := str.NewDataset("test-topics", vars)
	for _, r := range rows {
		require.NoError(t, ds.AddInstance(r, 1))
	}
	return ds
}

func TestMapTopics(t *testing.T) {
	table := scoretable(t, []string{"T1", "T2"}, [][]float64{
		{0.9, 0.4},
		{0.3, 0.6},
		{0.7, 0.55},
	})

	tm := MapTopics(table)

	require.Len(t, tm.Order, 2)
	assert.Equal(t, []DocScore{{Prob: 0.9, Doc: 0}, {Prob: 0.7, Doc: 2}}, tm.ByTopic["T1"])
	assert.Equal(t, []DocScore{{Prob: 0.6, Doc: 1}, {Prob: 0.55, Doc: 2}}, tm.ByTopic["T2"])
}

func TestMapTopicsThresholdIsInclusive(t *testing.T) {
	table := scoretable(t, []string{"T"}, [][]float64{{0.5}, {0.49}})

	tm := MapTopics(table)

	assert.Equal(t, []DocScore{{Prob: 0.5, Doc: 0}}, tm.ByTopic["T"])
}

func TestMapTopicsAgreesWithReloadedCache(t *testing.T) {
	// 0.4999 rounds up to the threshold inside a 2-decimal cache file; the
	// mapper has to land on the same side of the cut both before and after
	table := scoretable(t, []string{"T"}, [][]float64{{0.4999}, {0.2}, {0.494}})

	path := filepath.Join(t.TempDir(), "out"+vv.CACHESUFFIX)
	require.NoError(t, arff.SaveAsArff(table, "out"+vv.RELATIONSUFFIX, path, vv.SCOREPRECISION))
	back, err := arff.ReadArff(path)
	require.NoError(t, err)

	fresh := MapTopics(table)
	cached := MapTopics(back)

	assert.Equal(t, []DocScore{{Prob: 0.5, Doc: 0}}, fresh.ByTopic["T"])
	assert.Equal(t, fresh.ByTopic["T"], cached.ByTopic["T"])
}

func TestMapTopicsRanksAreNonIncreasing(t *testing.T) {
	table := scoretable(t, []string{"T"}, [][]float64{
		{0.61}, {0.99}, {0.2}, {0.8}, {0.55}, {0.8},
	})

	tm := MapTopics(table)

	docs := tm.ByTopic["T"]
	require.Len(t, docs, 5)
	for i := 1; i < len(docs); i++ {
		assert.LessOrEqual(t, docs[i].Prob, docs[i-1].Prob)
	}
}

func TestMapTopicsTiesKeepDocumentOrder(t *testing.T) {
	table := scoretable(t, []string{"T"}, [][]float64{{0.7}, {0.7}, {0.9}, {0.7}})

	tm := MapTopics(table)

	assert.Equal(t, []DocScore{
		{Prob: 0.9, Doc: 2},
		{Prob: 0.7, Doc: 0},
		{Prob: 0.7, Doc: 1},
		{Prob: 0.7, Doc: 3},
	}, tm.ByTopic["T"])
}

func TestMapTopicsEmptyColumn(t *testing.T) {
	table := scoretable(t, []string{"T1", "T2"}, [][]float64{{0.9, 0.1}, {0.8, 0.2}})

	tm := MapTopics(table)

	assert.Len(t, tm.ByTopic["T1"], 2)
	assert.Empty(t, tm.ByTopic["T2"])
}
