//    AssignTopics
//    Copyright: 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tpc

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/ltm-tools/AssignTopics/internal/arff"
	"github.com/ltm-tools/AssignTopics/internal/ltm"
	"github.com/ltm-tools/AssignTopics/internal/mm"
	"github.com/ltm-tools/AssignTopics/internal/str"
	"github.com/ltm-tools/AssignTopics/internal/vv"
)

// TableSource - how the Topic Probability Table was obtained; the downstream
// mapping and reporting are identical either way
type TableSource struct {
	Table  *str.Dataset
	Cached bool
}

// ObtainTable - the memoized scoring step: an existing "<output>.broad.arff"
// short-circuits binarize+synchronize+score and is simply reloaded; a fresh
// computation is written there for the next run; note that a stale cache wins
// over changed inputs, so delete the file to force a recomputation
func ObtainTable(m *ltm.Model, ds *str.Dataset, output string, msgr *mm.MessageMaker) (TableSource, error) {
	const (
		MSG1 = "found '%s': reloading cached topic scores"
		MSG2 = "scoring %d documents against %d topics"
		MSG3 = "cached topic scores in '%s'"
	)

	cachefile := output + vv.CACHESUFFIX

	if _, e := os.Stat(cachefile); e == nil {
		msgr.NOTE(fmt.Sprintf(MSG1, cachefile))
		table, e := arff.ReadArff(cachefile)
		if e != nil {
			return TableSource{}, e
		}
		return TableSource{Table: table, Cached: true}, nil
	}

	binarized := Binarize(ds)
	m.Synchronize(binarized.Variables)
	internals := m.InternalVariables()

	msgr.FYI(fmt.Sprintf(MSG2, len(binarized.Instances), len(internals)))

	table, e := Score(m, binarized, internals, output+vv.RELATIONSUFFIX)
	if e != nil {
		return TableSource{}, e
	}

	if e := writecache(table, cachefile); e != nil {
		return TableSource{}, e
	}
	msgr.PEEK(fmt.Sprintf(MSG3, cachefile))

	return TableSource{Table: table, Cached: false}, nil
}

// writecache - write to a uuid-suffixed temp name, then rename into place, so
// a killed run can not leave a half-written cache to poison the next one
func writecache(table *str.Dataset, cachefile string) error {
	rndid := strings.Replace(uuid.New().String(), "-", "", -1)
	tmp := cachefile + "." + rndid

	if e := arff.SaveAsArff(table, table.Relation, tmp, vv.SCOREPRECISION); e != nil {
		_ = os.Remove(tmp)
		return e
	}
	return os.Rename(tmp, cachefile)
}
