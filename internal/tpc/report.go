//    AssignTopics
//    Copyright: 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tpc

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

//
// THE FINAL REPORT
//

// WriteReport - serialize a TopicMap as one json-array-like object per topic:
//
//	[
//	{"topic":"T1","doc":[[0,0.90],[2,0.70]]},
//	{"topic":"T2","doc":[[1,0.60],[2,0.55]]}
//	]
//
// topic names are written as-is: a name containing a quote would corrupt the
// output, but model tools do not emit such names
func WriteReport(tm TopicMap, path string) error {
	const (
		TOPICTMPL = `{"topic":"%s","doc":[%s]}`
		PAIRTMPL  = `[%d,%.2f]`
	)

	f, e := os.Create(path)
	if e != nil {
		return e
	}

	w := bufio.NewWriter(f)

	lines := make([]string, len(tm.Order))
	for i, topic := range tm.Order {
		docs := tm.ByTopic[topic.Name]
		pairs := make([]string, len(docs))
		for j, d := range docs {
			pairs[j] = fmt.Sprintf(PAIRTMPL, d.Doc, d.Prob)
		}
		lines[i] = fmt.Sprintf(TOPICTMPL, topic.Name, strings.Join(pairs, ","))
	}

	_, werr := w.WriteString("[\n" + strings.Join(lines, ",\n") + "\n]\n")
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
