//    AssignTopics
//    Copyright: 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ltm-tools/AssignTopics/internal/chart"
	"github.com/ltm-tools/AssignTopics/internal/lnch"
	"github.com/ltm-tools/AssignTopics/internal/mm"
	"github.com/ltm-tools/AssignTopics/internal/str"
	"github.com/ltm-tools/AssignTopics/internal/tpc"
	"github.com/ltm-tools/AssignTopics/internal/vv"
)

func main() {
	msgr := mm.NewMessageMakerWithDefaults()

	cfg := lnch.ConfigAtLaunch(msgr)
	lnch.UpdateMessageMakerWithConfig(msgr, cfg)

	if cfg.ProfileCPU {
		defer profile.Start().Stop()
	} else if cfg.ProfileMEM {
		defer profile.Start(profile.MemProfile).Stop()
	}

	if !cfg.QuietStart {
		msgr.MAND(fmt.Sprintf("%s (v.%s) [loglevel=%d]", vv.MYNAME, vv.VERSION, cfg.LogLevel))
	}

	assigntopics(cfg, msgr)

	if cfg.Serve {
		StartEchoServer(cfg, msgr)
	}
}

// assigntopics - the whole pipeline: load, obtain the topic score table
// (computed or cached), map documents onto topics, write the report; every
// failure along the way is fatal
func assigntopics(cfg *str.CurrentConfiguration, msgr *mm.MessageMaker) {
	start := time.Now()
	previous := time.Now()
	p := message.NewPrinter(language.English)

	m, ds, e := tpc.Load(cfg.ModelFile, cfg.DataFile)
	msgr.EF(e, "tpc.Load()")
	msgr.Timer("A1", p.Sprintf("model '%s' (%d observed variables) and %d documents loaded", m.Name, m.LeafCount(), len(ds.Instances)), start, previous)
	previous = time.Now()

	src, e := tpc.ObtainTable(m, ds, cfg.OutputName, msgr)
	msgr.EF(e, "tpc.ObtainTable()")
	verb := "computed"
	if src.Cached {
		verb = "reloaded"
	}
	msgr.Timer("A2", p.Sprintf("topic scores %s for %d documents", verb, len(src.Table.Instances)), start, previous)
	previous = time.Now()

	tm := tpc.MapTopics(src.Table)
	report := cfg.OutputName + vv.REPORTSUFFIX
	e = tpc.WriteReport(tm, report)
	msgr.EF(e, "tpc.WriteReport()")
	msgr.Timer("A3", p.Sprintf("%d topics reported to '%s'", len(tm.Order), report), start, previous)

	if cfg.Chart {
		previous = time.Now()
		e = chart.WriteTopicChart(tm, cfg.OutputName+vv.CHARTSUFFIX)
		msgr.EF(e, "chart.WriteTopicChart()")
		msgr.Timer("A4", fmt.Sprintf("chart written to '%s'", cfg.OutputName+vv.CHARTSUFFIX), start, previous)
	}
}
