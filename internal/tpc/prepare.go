//    AssignTopics
//    Copyright: 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tpc

import (
	"math"

	"github.com/ltm-tools/AssignTopics/internal/str"
)

// Binarize - derive a 2-state dataset: any nonzero count is state 1, zero is
// state 0, missing stays missing; the source dataset is untouched; the model
// has to be re-synchronized against the result before scoring
func Binarize(ds *str.Dataset) *str.Dataset {
	bin := str.NewDataset(ds.Relation, append([]str.Variable{}, ds.Variables...))

	for i := range ds.Instances {
		src := ds.Instances[i]
		vals := make([]float64, len(src.Records))
		for j, r := range src.Records {
			switch {
			case math.IsNaN(r.Val):
				vals[j] = math.NaN()
			case r.Val != 0:
				vals[j] = 1
			default:
				vals[j] = 0
			}
		}
		// length always matches: the variables were copied from ds
		_ = bin.AddInstance(vals, src.Weight)
	}
	return bin
}
