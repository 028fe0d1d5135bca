package main

import (
	"flag"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// tracing keys of the grammarian packages
var traceKeys = []string{"grammarian.repl", "grammarian.ll", "grammarian.rd", "grammarian.scanner"}

// main() starts an interactive CLI ("SG.REPL"), where users may enter
// productions of a simple grammar and strings to check against it.
// SG.REPL is intended as a teaching tool for top-down parsing.
//
// Please refer to modules "ll" and "ll/rd".
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load")
	gfile := flag.String("grammar", "", "Grammar file to start with")
	steps := flag.Int("steplimit", 0, "Max alternatives tried per parse, 0 = unlimited")
	flag.Parse()
	gconf.Initialize(testconfig.Conf{"recognizer-step-limit": *steps})
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to SG.REPL")  // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	setTraceLevel(traceLevel(*tlevel))
	//
	// set up REPL
	repl, err := readline.New("sgrepl> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp := NewIntp()
	intp.repl = repl
	if *gfile != "" {
		if _, err := intp.Eval(":load " + *gfile); err != nil {
			os.Exit(2)
		}
	}
	if input := strings.TrimSpace(strings.Join(flag.Args(), " ")); input != "" {
		tracer().Infof("Input argument is \"%s\"", input)
		intp.Eval(input)
	}
	//
	// load an init file and start receiving commands
	pterm.Info.Println("Enter :help for a list of commands, quit with <ctrl>D")
	intp.loadInitFile(*initf) // init file name provided by flag
	intp.REPL()               // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
