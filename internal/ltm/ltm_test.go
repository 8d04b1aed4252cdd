//    AssignTopics
//    Copyright: 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package ltm

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ltm-tools/AssignTopics/internal/str"
)

func writemodel(t *testing.T, blob string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(blob), 0644))
	return path
}

const onelink = `{
  "name": "onelink",
  "nodes": [
    {"name": "T", "parent": "", "cpt": [0.4, 0.6]},
    {"name": "A", "parent": "T", "cpt": [0.8, 0.2, 0.3, 0.7]}
  ]
}`

// T1 root; w1 observed under T1; T2 latent under T1; w2 observed under T2
const twotopics = `{
  "name": "twotopics",
  "nodes": [
    {"name": "T1", "parent": "", "cpt": [0.5, 0.5]},
    {"name": "w1", "parent": "T1", "cpt": [0.9, 0.1, 0.2, 0.8]},
    {"name": "T2", "parent": "T1", "cpt": [0.7, 0.3, 0.2, 0.8]},
    {"name": "w2", "parent": "T2", "cpt": [0.8, 0.2, 0.3, 0.7]}
  ]
}`

func TestReadModel(t *testing.T) {
	m, err := ReadModel(writemodel(t, twotopics))
	require.NoError(t, err)

	assert.Equal(t, "twotopics", m.Name)
	assert.Equal(t, 2, m.LeafCount())

	vv := m.InternalVariables()
	require.Len(t, vv, 2)
	assert.Equal(t, "T1", vv[0].Name)
	assert.Equal(t, "T2", vv[1].Name)
}

func TestReadModelRejectsJunk(t *testing.T) {
	cases := map[string]string{
		"not json":   `{"name": "x", "nodes": [`,
		"empty":      `{"name": "x", "nodes": []}`,
		"two roots":  `{"name": "x", "nodes": [{"name": "a", "parent": "", "cpt": [0.5, 0.5]}, {"name": "b", "parent": "", "cpt": [0.5, 0.5]}]}`,
		"dup names":  `{"name": "x", "nodes": [{"name": "a", "parent": "", "cpt": [0.5, 0.5]}, {"name": "a", "parent": "a", "cpt": [1, 0, 0, 1]}]}`,
		"bad parent": `{"name": "x", "nodes": [{"name": "a", "parent": "", "cpt": [0.5, 0.5]}, {"name": "b", "parent": "zz", "cpt": [1, 0, 0, 1]}]}`,
		"short cpt":  `{"name": "x", "nodes": [{"name": "a", "parent": "", "cpt": [0.5, 0.5]}, {"name": "b", "parent": "a", "cpt": [1, 0]}]}`,
		"bad probs":  `{"name": "x", "nodes": [{"name": "a", "parent": "", "cpt": [0.5, 0.9]}]}`,
		"cycle":      `{"name": "x", "nodes": [{"name": "a", "parent": "", "cpt": [0.5, 0.5]}, {"name": "b", "parent": "c", "cpt": [1, 0, 0, 1]}, {"name": "c", "parent": "b", "cpt": [1, 0, 0, 1]}]}`,
	}

	for name, blob := range cases {
		_, err := ReadModel(writemodel(t, blob))
		assert.Error(t, err, name)
	}
}

func TestPosteriorSingleLink(t *testing.T) {
	m, err := ReadModel(writemodel(t, onelink))
	require.NoError(t, err)

	ds := str.NewDataset("toy", []str.Variable{{Name: "A"}})
	require.NoError(t, ds.AddInstance([]float64{1}, 1))
	require.NoError(t, ds.AddInstance([]float64{0}, 1))
	require.NoError(t, ds.AddInstance([]float64{math.NaN()}, 3))

	m.Synchronize(ds.Variables)
	pp, err := ComputeProbabilities(m, ds, m.InternalVariables())
	require.NoError(t, err)
	require.Len(t, pp, 3)

	// P(T=1|A=1) = 0.6*0.7 / (0.4*0.2 + 0.6*0.7) = 0.84
	assert.InDelta(t, 0.84, pp[0].Probs[0].AtVec(1), 1e-9)
	// P(T=1|A=0) = 0.6*0.3 / (0.4*0.8 + 0.6*0.3) = 0.36
	assert.InDelta(t, 0.36, pp[1].Probs[0].AtVec(1), 1e-9)
	// no evidence: posterior is the prior
	assert.InDelta(t, 0.6, pp[2].Probs[0].AtVec(1), 1e-9)
	assert.Equal(t, 3.0, pp[2].Weight)
}

func TestPosteriorMatchesEnumeration(t *testing.T) {
	m, err := ReadModel(writemodel(t, twotopics))
	require.NoError(t, err)

	// joint enumeration over (T1, T2) for the twotopics tree
	prT1 := []float64{0.5, 0.5}
	prT2 := [][]float64{{0.7, 0.3}, {0.2, 0.8}}
	prW1 := [][]float64{{0.9, 0.1}, {0.2, 0.8}}
	prW2 := [][]float64{{0.8, 0.2}, {0.3, 0.7}}

	enumerate := func(w1, w2 float64) (float64, float64) {
		obs := func(tbl [][]float64, hidden int, seen float64) float64 {
			if math.IsNaN(seen) {
				return 1
			}
			return tbl[hidden][int(seen)]
		}
		var z, t1marg, t2marg float64
		for t1 := 0; t1 < 2; t1++ {
			for t2 := 0; t2 < 2; t2++ {
				p := prT1[t1] * prT2[t1][t2] * obs(prW1, t1, w1) * obs(prW2, t2, w2)
				z += p
				if t1 == 1 {
					t1marg += p
				}
				if t2 == 1 {
					t2marg += p
				}
			}
		}
		return t1marg / z, t2marg / z
	}

	evidence := [][]float64{
		{1, 1},
		{1, 0},
		{0, 1},
		{0, 0},
		{math.NaN(), 1},
		{0, math.NaN()},
		{math.NaN(), math.NaN()},
	}

	ds := str.NewDataset("toy", []str.Variable{{Name: "w1"}, {Name: "w2"}})
	for _, ev := range evidence {
		require.NoError(t, ds.AddInstance(ev, 1))
	}

	m.Synchronize(ds.Variables)
	pp, err := ComputeProbabilities(m, ds, m.InternalVariables())
	require.NoError(t, err)

	for i, ev := range evidence {
		wantT1, wantT2 := enumerate(ev[0], ev[1])
		assert.InDelta(t, wantT1, pp[i].Probs[0].AtVec(1), 1e-9, "doc %d T1", i)
		assert.InDelta(t, wantT2, pp[i].Probs[1].AtVec(1), 1e-9, "doc %d T2", i)
	}
}

func TestSynchronizeUnmappedLeaf(t *testing.T) {
	m, err := ReadModel(writemodel(t, onelink))
	require.NoError(t, err)

	// the dataset does not carry the model's leaf at all
	ds := str.NewDataset("toy", []str.Variable{{Name: "unrelated"}})
	require.NoError(t, ds.AddInstance([]float64{1}, 1))

	m.Synchronize(ds.Variables)
	pp, err := ComputeProbabilities(m, ds, m.InternalVariables())
	require.NoError(t, err)

	// unmapped leaf contributes no evidence: the prior comes back
	assert.InDelta(t, 0.6, pp[0].Probs[0].AtVec(1), 1e-9)
}

func TestComputeProbabilitiesRejectsNonLatent(t *testing.T) {
	m, err := ReadModel(writemodel(t, onelink))
	require.NoError(t, err)

	ds := str.NewDataset("toy", []str.Variable{{Name: "A"}})
	require.NoError(t, ds.AddInstance([]float64{1}, 1))
	m.Synchronize(ds.Variables)

	_, err = ComputeProbabilities(m, ds, []str.Variable{{Name: "A"}})
	assert.Error(t, err)
	_, err = ComputeProbabilities(m, ds, []str.Variable{{Name: "nope"}})
	assert.Error(t, err)
}
