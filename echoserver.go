//    AssignTopics
//    Copyright: 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/ltm-tools/AssignTopics/internal/mm"
	"github.com/ltm-tools/AssignTopics/internal/str"
	"github.com/ltm-tools/AssignTopics/internal/vv"
)

// StartEchoServer - serve the finished report and the cached score table
// read-only; this blocks and does not return while the program remains alive
func StartEchoServer(cfg *str.CurrentConfiguration, msgr *mm.MessageMaker) {
	const (
		LLOGFMT = "r: ${status}\tt: ${latency_human}\tu: ${uri}\n"
		MSG1    = "serving '%s' results at http://%s:%d/report"
	)

	e := echo.New()
	e.HideBanner = true

	if cfg.EchoLog == 2 {
		e.Use(middleware.Logger())
	} else if cfg.EchoLog == 1 {
		e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{Format: LLOGFMT}))
	}

	e.Use(middleware.Recover())

	e.Server.ReadTimeout = vv.TIMEOUTRD
	e.Server.WriteTimeout = vv.TIMEOUTWR

	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusMovedPermanently, "/report")
	})
	e.GET("/report", func(c echo.Context) error {
		return c.File(cfg.OutputName + vv.REPORTSUFFIX)
	})
	e.GET("/table", func(c echo.Context) error {
		return c.File(cfg.OutputName + vv.CACHESUFFIX)
	})
	if cfg.Chart {
		e.GET("/chart", func(c echo.Context) error {
			return c.File(cfg.OutputName + vv.CHARTSUFFIX)
		})
	}

	msgr.MAND(fmt.Sprintf(MSG1, cfg.OutputName, cfg.HostIP, cfg.HostPort))
	msgr.Clr = "StartEchoServer()"
	msgr.EC(e.Start(fmt.Sprintf("%s:%d", cfg.HostIP, cfg.HostPort)))
}
