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
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/ltm-tools/AssignTopics/internal/gen"
	"github.com/ltm-tools/AssignTopics/internal/str"
)

//
// ARFF READING
//

// attribute - one parsed @ATTRIBUTE line; nominal values, if any, map a token to its state index
type attribute struct {
	name    string
	nominal map[string]float64
}

// ReadArff - load an arff file into a Dataset; numeric and nominal attributes
// are supported; "?" yields NaN; a trailing "{w}" field sets the instance weight
func ReadArff(path string) (*str.Dataset, error) {
	const (
		BADHDR  = "%s:%d: malformed header line '%s'"
		BADROW  = "%s:%d: instance has %d values but %d attributes are declared"
		BADVAL  = "%s:%d: cannot parse '%s'"
		DUPATTR = "%s: duplicate attribute names"
		NODATA  = "%s: no @DATA section"
	)

	f, e := os.Open(path)
	if e != nil {
		return nil, e
	}
	defer f.Close()

	var atts []attribute
	relation := ""
	indata := false
	ds := &str.Dataset{}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	ln := 0
	for scanner.Scan() {
		ln++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, "%") {
			continue
		}

		if !indata {
			low := strings.ToLower(line)
			switch {
			case strings.HasPrefix(low, "@relation"):
				relation = unquote(strings.TrimSpace(line[len("@relation"):]))
			case strings.HasPrefix(low, "@attribute"):
				a, ok := parseattribute(strings.TrimSpace(line[len("@attribute"):]))
				if !ok {
					return nil, fmt.Errorf(BADHDR, path, ln, line)
				}
				atts = append(atts, a)
			case strings.HasPrefix(low, "@data"):
				indata = true
				names := make([]str.Variable, len(atts))
				for i := 0; i < len(atts); i++ {
					names[i] = str.Variable{Name: atts[i].name}
				}
				ds = str.NewDataset(relation, names)
			default:
				return nil, fmt.Errorf(BADHDR, path, ln, line)
			}
			continue
		}

		vals, weight, perr := parserow(line, atts)
		if perr != "" {
			return nil, fmt.Errorf(BADVAL, path, ln, perr)
		}
		if len(vals) != len(atts) {
			return nil, fmt.Errorf(BADROW, path, ln, len(vals), len(atts))
		}
		e := ds.AddInstance(vals, weight)
		if e != nil {
			return nil, e
		}
	}

	if e := scanner.Err(); e != nil {
		return nil, e
	}

	if !indata {
		return nil, fmt.Errorf(NODATA, path)
	}

	nn := make([]string, len(atts))
	for i := range atts {
		nn[i] = atts[i].name
	}
	if gen.HasDuplicates(nn) {
		return nil, fmt.Errorf(DUPATTR, path)
	}

	return ds, nil
}

// parseattribute - "name numeric" or "name {a,b,c}"; names may be quoted
func parseattribute(rest string) (attribute, bool) {
	var a attribute

	var typepart string
	if strings.HasPrefix(rest, `'`) || strings.HasPrefix(rest, `"`) {
		q := rest[0:1]
		end := strings.Index(rest[1:], q)
		if end < 0 {
			return a, false
		}
		a.name = rest[1 : end+1]
		typepart = strings.TrimSpace(rest[end+2:])
	} else {
		ff := strings.Fields(rest)
		if len(ff) < 2 {
			return a, false
		}
		a.name = ff[0]
		typepart = strings.TrimSpace(strings.TrimPrefix(rest, ff[0]))
	}

	// composed vs decomposed unicode should not defeat model/data name matching
	a.name = norm.NFC.String(a.name)

	if strings.HasPrefix(typepart, "{") {
		inner := strings.TrimSuffix(strings.TrimPrefix(typepart, "{"), "}")
		a.nominal = make(map[string]float64)
		for i, tok := range strings.Split(inner, ",") {
			a.nominal[unquote(strings.TrimSpace(tok))] = float64(i)
		}
		return a, len(a.nominal) > 0
	}

	switch strings.ToLower(typepart) {
	case "numeric", "real", "integer":
		return a, true
	}
	return a, false
}

// parserow - one @DATA line; returns the offending token on failure
func parserow(line string, atts []attribute) ([]float64, float64, string) {
	weight := 1.0
	fields := strings.Split(line, ",")

	// arff instance weights ride in a trailing "{w}" field
	last := strings.TrimSpace(fields[len(fields)-1])
	if strings.HasPrefix(last, "{") && strings.HasSuffix(last, "}") {
		w, e := strconv.ParseFloat(strings.TrimSuffix(strings.TrimPrefix(last, "{"), "}"), 64)
		if e != nil {
			return nil, 0, last
		}
		weight = w
		fields = fields[:len(fields)-1]
	}

	vals := make([]float64, len(fields))
	for i, fl := range fields {
		tok := strings.TrimSpace(fl)
		if tok == "?" {
			vals[i] = math.NaN()
			continue
		}
		if i < len(atts) && atts[i].nominal != nil {
			v, ok := atts[i].nominal[unquote(tok)]
			if !ok {
				return nil, 0, tok
			}
			vals[i] = v
			continue
		}
		v, e := strconv.ParseFloat(tok, 64)
		if e != nil {
			return nil, 0, tok
		}
		vals[i] = v
	}
	return vals, weight, ""
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
