//    AssignTopics
//    Copyright: 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tpc

import (
	"github.com/ltm-tools/AssignTopics/internal/ltm"
	"github.com/ltm-tools/AssignTopics/internal/str"
	"github.com/ltm-tools/AssignTopics/internal/vv"
)

// Score - the Topic Probability Table: one row per document, one column per
// latent variable, each cell the posterior P(state 1); document weights are
// carried over from the input; the relation is the one the cache file will
// carry, so a reloaded table is indistinguishable from a computed one; the
// model must already be synchronized with the binarized dataset
func Score(m *ltm.Model, binarized *str.Dataset, internals []str.Variable, relation string) (*str.Dataset, error) {
	posteriors, e := ltm.ComputeProbabilities(m, binarized, internals)
	if e != nil {
		return nil, e
	}

	table := str.NewDataset(relation, internals)
	for _, p := range posteriors {
		vals := make([]float64, len(internals))
		for i := range internals {
			vals[i] = p.Probs[i].AtVec(vv.ACTIVESTATE)
		}
		if e := table.AddInstance(vals, p.Weight); e != nil {
			return nil, e
		}
	}
	return table, nil
}
