//    AssignTopics
//    Copyright: 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tpc

import (
	"github.com/ltm-tools/AssignTopics/internal/arff"
	"github.com/ltm-tools/AssignTopics/internal/ltm"
	"github.com/ltm-tools/AssignTopics/internal/str"
)

// Load - (model, dataset) from their two files; parse failures come back
// unmodified and are fatal to the caller
func Load(modelpath string, datapath string) (*ltm.Model, *str.Dataset, error) {
	m, e := ltm.ReadModel(modelpath)
	if e != nil {
		return nil, nil, e
	}
	ds, e := arff.ReadArff(datapath)
	if e != nil {
		return nil, nil, e
	}
	return m, ds, nil
}
