//    AssignTopics
//    Copyright: 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package chart

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/ltm-tools/AssignTopics/internal/tpc"
	"github.com/ltm-tools/AssignTopics/internal/vv"
)

//
// GRAPHING
//

// WriteTopicChart - a self-contained html page with a bar chart of how many
// documents each topic claimed at the threshold
func WriteTopicChart(tm tpc.TopicMap, path string) error {
	const (
		TITLE    = "documents per topic"
		SUBTITLE = "documents with P(topic) >= %.2f"
		SERIES   = "documents"
	)

	names := make([]string, len(tm.Order))
	counts := make([]opts.BarData, len(tm.Order))
	for i, topic := range tm.Order {
		names[i] = topic.Name
		counts[i] = opts.BarData{Value: len(tm.ByTopic[topic.Name])}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:     vv.DEFAULTCHRTWIDTH,
			Height:    vv.DEFAULTCHRTHEIGHT,
			PageTitle: vv.MYNAME,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    TITLE,
			Subtitle: fmt.Sprintf(SUBTITLE, float64(vv.TOPICTHRESHOLD)),
		}),
	)
	bar.SetXAxis(names).AddSeries(SERIES, counts)

	f, e := os.Create(path)
	if e != nil {
		return e
	}

	rerr := bar.Render(f)
	cerr := f.Close()
	if rerr != nil {
		return rerr
	}
	return cerr
}
