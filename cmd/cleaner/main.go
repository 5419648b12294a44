package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"cleaningrobot/internal/cleaning"
	"cleaningrobot/internal/config"
	"cleaningrobot/internal/grader"
	"cleaningrobot/internal/interpreter"
	"cleaningrobot/internal/messages"
	"cleaningrobot/internal/render"
)

func main() {
	watch := flag.Bool("watch", false, "draw the map after every move")
	locale := flag.String("locale", "", "message language (pt, en)")
	envFile := flag.String("env", ".env", "dotenv file to load")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-watch] [-locale pt|en] <stage.json|map.txt> <script>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}
	if *locale != "" {
		if !messages.Supported(messages.Locale(*locale)) {
			fmt.Fprintf(os.Stderr, "unsupported locale %q\n", *locale)
			os.Exit(2)
		}
		cfg.Locale = messages.Locale(*locale)
	}

	stage, err := loadStage(flag.Arg(0))
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}

	// load the program script from disk
	script, err := os.ReadFile(flag.Arg(1))
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}

	g := grader.New(cfg.Locale, cfg.MaxSteps)
	g.Prepare = func(m *cleaning.Model, ctx *interpreter.Context) {
		for _, w := range m.Warnings() {
			log.Printf("[MAP] [WARN] %v", w)
		}
		ctx.Output = io.MultiWriter(ctx.Output, os.Stdout)
		if *watch {
			// one frame per movement statement, cleaning included
			term := render.NewTerminal(os.Stdout, cfg.RenderDelay, cfg.ANSI)
			ctx.OnStep = term.Step
			term.Draw(m)
		}
	}

	rep, err := g.Evaluate(string(script), stage)
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	for i, res := range rep.Results {
		if res.Error != "" {
			log.Printf("[APP] [ERROR] test case %d: %s", i, res.Error)
		}
		if res.Mismatch {
			log.Printf("[APP] [INFO] test case %d: output does not match the expected output", i)
		}
		if err := enc.Encode(res.Outcome); err != nil {
			log.Fatalf("[APP] [FATAL] %v", err)
		}
	}
	log.Printf("[APP] [INFO] passed %d/%d test cases", rep.Passed, rep.Total)

	if !rep.Success {
		os.Exit(1)
	}
}

// loadStage reads a JSON stage, or wraps a plain-text map as one.
func loadStage(path string) (*grader.Stage, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return grader.LoadStage(path)
	}
	rows, err := cleaning.ReadRows(path)
	if err != nil {
		return nil, err
	}
	return grader.StageFromMap(rows), nil
}
