package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"

	"github.com/mattn/cilisp"
)

const historyFile = ".cilisp_history"

var (
	configPath   = flag.String("config", "", "YAML config file")
	seed         = flag.Int64("seed", 0, "seed for rand (0 seeds from the clock)")
	color        = flag.String("color", "", "color diagnostics: auto, always or never")
	inputPath    = flag.String("input", "", "file read takes its lines from (default stdin)")
	showAST      = flag.Bool("ast", false, "print each expression before its value")
	example      = flag.String("example", "", "run a bundled example")
	listExamples = flag.Bool("examples", false, "list bundled examples")
)

func loadConfig() *cilisp.Config {
	cfg := cilisp.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = cilisp.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *color != "" {
		cfg.Color = *color
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	return cfg
}

// run evaluates every expression of r, stopping at the first syntax or
// fatal error.
func run(env *cilisp.Env, r io.Reader) error {
	parser := cilisp.NewParser(r, env.Tree())
	for {
		id, err := parser.ParseExpr()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if *showAST {
			fmt.Println(env.Tree().Format(id))
		}
		if _, err = env.EvalPrint(id); err != nil {
			return err
		}
	}
}

func historyPath(cfg *cilisp.Config) string {
	if cfg.History != "" {
		return cfg.History
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}

func repl(env *cilisp.Env, cfg *cilisp.Config) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	hist := historyPath(cfg)
	if hist != "" {
		if f, err := os.Open(hist); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(hist); err == nil {
				ln.WriteHistory(f)
				f.Close()
			}
		}()
	}

	for {
		line, err := ln.Prompt(cfg.Prompt)
		if err == liner.ErrPromptAborted {
			continue
		}
		if err != nil {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)

		err = run(env, strings.NewReader(line))
		if cilisp.IsFatal(err) {
			ln.Close()
			os.Exit(1)
		}
		if err != nil {
			fmt.Println(err)
		}
	}
}

func main() {
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	if *listExamples {
		names, err := cilisp.ExampleNames()
		if err != nil {
			log.Fatal(err)
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	cfg := loadConfig()
	if *inputPath != "" {
		// values come from a file, so show them next to the prompt
		cfg.EchoRead = true
	}
	env := cilisp.NewEnv(cfg)
	if *inputPath != "" {
		f, err := os.Open(*inputPath)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		env.SetInput(f)
	}

	if *example != "" {
		if err := env.RunExample(*example); err != nil {
			if cilisp.IsFatal(err) {
				os.Exit(1)
			}
			log.Fatal(err)
		}
		return
	}

	var f *os.File
	var err error

	if flag.NArg() == 0 {
		if isatty.IsTerminal(os.Stdin.Fd()) {
			repl(env, cfg)
			return
		}
		f = os.Stdin
	}

	if flag.NArg() == 1 {
		f, err = os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	err = run(env, f)
	if cilisp.IsFatal(err) {
		os.Exit(1)
	}
	if err != nil {
		log.Fatal(err)
	}
}
