//    AssignTopics
//    Copyright: 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tpc

import (
	"math"
	"sort"

	"github.com/ltm-tools/AssignTopics/internal/str"
	"github.com/ltm-tools/AssignTopics/internal/vv"
)

// DocScore - one document under one topic
type DocScore struct {
	Prob float64
	Doc  int
}

// TopicMap - per topic, the documents at or above the threshold, best first;
// Order preserves the table's column order for deterministic reporting
type TopicMap struct {
	Order   []str.Variable
	ByTopic map[string][]DocScore
}

// MapTopics - filter each topic column at the fixed threshold and rank the
// survivors; values are mapped at the cache precision, so a fresh table and
// its cached reload produce the same map; ties are broken by document index
// so the output is deterministic
func MapTopics(table *str.Dataset) TopicMap {
	tm := TopicMap{
		Order:   table.Variables,
		ByTopic: make(map[string][]DocScore, len(table.Variables)),
	}

	for col, v := range table.Variables {
		var kept []DocScore
		for doc, val := range table.Column(col) {
			val = roundscore(val)
			if val >= vv.TOPICTHRESHOLD {
				kept = append(kept, DocScore{Prob: val, Doc: doc})
			}
		}
		sort.SliceStable(kept, func(i, j int) bool {
			return kept[i].Prob > kept[j].Prob
		})
		tm.ByTopic[v.Name] = kept
	}
	return tm
}

// roundscore - scores round-trip through a SCOREPRECISION cache file; a value
// mapped any finer than that could cross the threshold on a cached rerun
func roundscore(v float64) float64 {
	pow := math.Pow(10, vv.SCOREPRECISION)
	return math.Round(v*pow) / pow
}
