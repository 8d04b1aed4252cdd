//    AssignTopics
//    Copyright: 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package arff

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/ltm-tools/AssignTopics/internal/str"
)

//
// ARFF WRITING
//

// SaveAsArff - write every variable as a NUMERIC attribute and every instance
// as one row; non-unit weights ride in a trailing "{w}" field; the file handle
// is closed no matter how the write goes
func SaveAsArff(ds *str.Dataset, relation string, path string, prec int) error {
	f, e := os.Create(path)
	if e != nil {
		return e
	}

	w := bufio.NewWriter(f)
	werr := writetable(w, ds, relation, prec)
	ferr := w.Flush()
	cerr := f.Close()

	if werr != nil {
		return werr
	}
	if ferr != nil {
		return ferr
	}
	return cerr
}

func writetable(w *bufio.Writer, ds *str.Dataset, relation string, prec int) error {
	const (
		RELTMPL = "@RELATION %s\n\n"
		ATTTMPL = "@ATTRIBUTE %s NUMERIC\n"
		DATAHDR = "\n@DATA\n"
	)

	if _, e := fmt.Fprintf(w, RELTMPL, relation); e != nil {
		return e
	}
	for _, v := range ds.Variables {
		if _, e := fmt.Fprintf(w, ATTTMPL, v.Name); e != nil {
			return e
		}
	}
	if _, e := w.WriteString(DATAHDR); e != nil {
		return e
	}

	for i := 0; i < len(ds.Instances); i++ {
		inst := ds.Instances[i]
		cells := make([]string, len(inst.Records))
		for j, r := range inst.Records {
			cells[j] = TrimFloat(r.Val, prec)
		}
		row := strings.Join(cells, ",")
		if inst.Weight != 1 {
			row = row + ", {" + TrimFloat(inst.Weight, prec) + "}"
		}
		if _, e := w.WriteString(row + "\n"); e != nil {
			return e
		}
	}
	return nil
}

// TrimFloat - format with up to prec decimal places, trailing zeros trimmed: 0.90 -> "0.9", 1.00 -> "1"
func TrimFloat(v float64, prec int) string {
	if math.IsNaN(v) {
		return "?"
	}
	s := fmt.Sprintf("%.*f", prec, v)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}
