//    AssignTopics
//    Copyright: 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

import "time"

const (
	MYNAME    = "AssignTopics"
	SHORTNAME = "ATS"
	VERSION   = "1.2.0"
	PROJURL   = "https://github.com/ltm-tools/AssignTopics"

	// the active ("topic present") state of a binarized variable
	ACTIVESTATE = 1

	// minimum P(state 1) for a document to be reported under a topic
	TOPICTHRESHOLD = 0.5

	// file naming: "<output>" + suffix; the relation name inside the arff is "<output>" + RELATIONSUFFIX
	CACHESUFFIX    = ".broad.arff"
	REPORTSUFFIX   = ".broad.json"
	CHARTSUFFIX    = ".topics.html"
	RELATIONSUFFIX = "-topics"

	// scores are reported to two decimal places everywhere: arff cache, json report, charts
	SCOREPRECISION = 2

	BLACKANDWHITE       = false
	CONFIGALTAPTH       = "%s/.config/" // %s = os.UserHomeDir()
	CONFIGBASIC         = "ats-conf.json"
	DEFAULTCHRTHEIGHT   = "600px"
	DEFAULTCHRTWIDTH    = "1200px"
	DEFAULTECHOLOGLEVEL = 0
	DEFAULTGOLOGLEVEL   = 0
	SERVEDFROMHOST      = "127.0.0.1"
	SERVEDFROMPORT      = 8700
	TIMEOUTRD           = 15 * time.Second
	TIMEOUTWR           = 60 * time.Second
)

const HELPTEXTTEMPLATE = `S1C4{{.name}} v.{{.version}}S0C0 : assign latent tree model topics to documents

	usage: S1{{.myname}} [options] <model_file> <data_file> <output_name>S0

	S1<model_file>S0  a pre-trained latent tree model (json)
	S1<data_file>S0   a tabular dataset (arff); rows are documents
	S1<output_name>S0 basename for the output files

	outputs:
	   C3<output_name>{{.cache}}C0   per-document topic score table (also a cache:
	       if this file already exists the scores are reloaded, not recomputed)
	   C3<output_name>{{.report}}C0  ranked documents per topic, threshold {{.threshold}}
	   C3<output_name>{{.chart}}C0  (with "-ch") documents-per-topic bar chart

	options:
	   C1-bwC0          disable color in the terminal
	   C1-chC0          also write an html chart of documents per topic
	   C1-elC0 C2numC0      echo server log level (0-2) [default: {{.echoll}}]
	   C1-glC0 C2numC0      log level (0-5) [default: {{.loglevel}}]
	   C1-hC0           print this help and exit
	   C1-pcC0          profile cpu usage
	   C1-pmC0          profile memory usage
	   C1-qC0           quiet start
	   C1-saC0 C2ipC0       serve from this address [default: {{.host}}]
	   C1-spC0 C2numC0      serve from this port [default: {{.port}}]
	   C1-svC0          serve the finished report over http until interrupted
	   C1-vC0           print version and exit
	   C1-vvC0          print full version info and exit

	({{.project}})
`
