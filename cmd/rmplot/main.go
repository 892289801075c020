// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Rmplot is a tool to draw the results of roadmap model runs.
package main

import (
	"github.com/js-arias/command"
	"github.com/stre3am/rmplot/cmd/rmplot/bars"
	"github.com/stre3am/rmplot/cmd/rmplot/capacity"
	"github.com/stre3am/rmplot/cmd/rmplot/paretocmd"
	"github.com/stre3am/rmplot/cmd/rmplot/prj"
	"github.com/stre3am/rmplot/cmd/rmplot/switchcmd"
)

var app = &command.Command{
	Usage: "rmplot <command> [<argument>...]",
	Short: "a tool to draw the results of roadmap model runs",
}

func init() {
	app.Add(bars.Command)
	app.Add(capacity.Command)
	app.Add(paretocmd.Command)
	app.Add(prj.Command)
	app.Add(switchcmd.Command)
}

func main() {
	app.Main()
}
