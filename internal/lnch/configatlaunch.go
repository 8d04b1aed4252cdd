//    AssignTopics
//    Copyright: 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/template"

	"github.com/ltm-tools/AssignTopics/internal/mm"
	"github.com/ltm-tools/AssignTopics/internal/str"
	"github.com/ltm-tools/AssignTopics/internal/vv"
)

// ConfigAtLaunch - defaults, then the optional json config file, then the
// command line; fewer than 3 positional arguments is a usage error: help is
// printed and the exit status is 1
func ConfigAtLaunch(msgr *mm.MessageMaker) *str.CurrentConfiguration {
	const FAIL1 = "could not parse '%s'; using built-in defaults instead"

	cfg := BuildDefaultConfig()

	uh, _ := os.UserHomeDir()
	cf := fmt.Sprintf(vv.CONFIGALTAPTH, uh) + vv.CONFIGBASIC
	if loaded, e := os.Open(cf); e == nil {
		decoder := json.NewDecoder(loaded)
		confc := str.CurrentConfiguration{}
		errc := decoder.Decode(&confc)
		_ = loaded.Close()
		if errc != nil {
			msgr.CRIT(fmt.Sprintf(FAIL1, cf))
		} else {
			cfg = &confc
			msgr.TMI(fmt.Sprintf("'%s' loaded", cf))
		}
	}

	if e := ParseCommandLine(cfg, os.Args[1:], msgr); e != nil {
		printhelp(cfg, msgr)
		msgr.CRIT(e.Error())
		msgr.ExitOrHang(1)
	}

	return cfg
}

// ParseCommandLine - fold the flags and positional arguments into cfg; an
// error means the positional arguments are unusable and the caller should
// print the help text and quit; nothing is written to disk on that path
func ParseCommandLine(cfg *str.CurrentConfiguration, args []string, msgr *mm.MessageMaker) error {
	const (
		FAIL2 = "'%s' wants a numeric argument"
		FAIL3 = "need a model file, a data file and an output name; only %d argument(s) given"
		WARN1 = "ignoring unknown option '%s'"
	)

	skip := make(map[int]bool)
	var positional []string

	numval := func(i int, flag string) int {
		if i+1 >= len(args) {
			msgr.CRIT(fmt.Sprintf(FAIL2, flag))
			msgr.ExitOrHang(1)
		}
		n, e := strconv.Atoi(args[i+1])
		if e != nil {
			msgr.CRIT(fmt.Sprintf(FAIL2, flag))
			msgr.ExitOrHang(1)
		}
		skip[i+1] = true
		return n
	}

	for i, a := range args {
		if skip[i] {
			continue
		}
		switch a {
		case "-v":
			fmt.Println(vv.VERSION)
			os.Exit(1)
		case "-vv":
			fmt.Printf("%s (v.%s)\n%s\n", vv.MYNAME, vv.VERSION, vv.PROJURL)
			os.Exit(1)
		case "-bw":
			cfg.BlackAndWhite = true
		case "-ch":
			cfg.Chart = true
		case "-el":
			cfg.EchoLog = numval(i, a)
		case "-gl":
			cfg.LogLevel = numval(i, a)
		case "-h":
			printhelp(cfg, msgr)
			os.Exit(0)
		case "-pc":
			cfg.ProfileCPU = true
		case "-pm":
			cfg.ProfileMEM = true
		case "-q":
			cfg.QuietStart = true
		case "-sa":
			if i+1 < len(args) {
				cfg.HostIP = args[i+1]
				skip[i+1] = true
			}
		case "-sp":
			cfg.HostPort = numval(i, a)
		case "-sv":
			cfg.Serve = true
		default:
			if strings.HasPrefix(a, "-") {
				msgr.WARN(fmt.Sprintf(WARN1, a))
			} else {
				positional = append(positional, a)
			}
		}
	}

	if len(positional) < 3 {
		return fmt.Errorf(FAIL3, len(positional))
	}

	cfg.ModelFile = positional[0]
	cfg.DataFile = positional[1]
	cfg.OutputName = positional[2]

	return nil
}

// BuildDefaultConfig - a CurrentConfiguration filled out with the default values
func BuildDefaultConfig() *str.CurrentConfiguration {
	var c str.CurrentConfiguration
	c.BlackAndWhite = vv.BLACKANDWHITE
	c.Chart = false
	c.EchoLog = vv.DEFAULTECHOLOGLEVEL
	c.HostIP = vv.SERVEDFROMHOST
	c.HostPort = vv.SERVEDFROMPORT
	c.LogLevel = vv.DEFAULTGOLOGLEVEL
	c.ProfileCPU = false
	c.ProfileMEM = false
	c.QuietStart = false
	c.Serve = false
	return &c
}

// UpdateMessageMakerWithConfig - fold the final configuration into an already-built messenger
func UpdateMessageMakerWithConfig(m *mm.MessageMaker, cfg *str.CurrentConfiguration) {
	m.BW = cfg.BlackAndWhite
	m.LLvl = cfg.LogLevel
}

func printhelp(cfg *str.CurrentConfiguration, msgr *mm.MessageMaker) {
	const FAIL = "printhelp() failed to execute the help text template"

	m := map[string]interface{}{
		"name":      vv.MYNAME,
		"myname":    "assign-topics",
		"version":   vv.VERSION,
		"cache":     vv.CACHESUFFIX,
		"report":    vv.REPORTSUFFIX,
		"chart":     vv.CHARTSUFFIX,
		"threshold": vv.TOPICTHRESHOLD,
		"echoll":    cfg.EchoLog,
		"loglevel":  cfg.LogLevel,
		"host":      cfg.HostIP,
		"port":      cfg.HostPort,
		"project":   vv.PROJURL,
	}

	t := template.Must(template.New("").Parse(vv.HELPTEXTTEMPLATE))

	var b bytes.Buffer
	if e := t.Execute(&b, m); e != nil {
		msgr.CRIT(FAIL)
	}
	fmt.Println(msgr.ColStyle(b.String()))
}
