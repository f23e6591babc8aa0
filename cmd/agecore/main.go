// Agecore is a hot-seat civilisation-building card game for the terminal.
// Usage: agecore [--version] [--config <file>] [--players <n>] [--seed <n>]
// [--plain] [--script <file>] [--trace] [content_directory]
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/nathoo/agecore/cli"
	"github.com/nathoo/agecore/config"
	"github.com/nathoo/agecore/content"
	"github.com/nathoo/agecore/engine"
	"github.com/nathoo/agecore/engine/catalog"
	"github.com/nathoo/agecore/loader"
	"github.com/nathoo/agecore/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const usage = "Usage: agecore [--version] [--config <file>] [--players <n>] [--seed <n>] [--plain] [--script <file>] [--trace] [content_directory]"

// flags holds command-line settings; nil pointers were not given.
type flags struct {
	configFile string
	scriptFile string
	players    *int
	seed       *int64
	plain      bool
	trace      bool
	content    string
}

func main() {
	f := parseArgs(os.Args[1:])

	cfg, err := resolveConfig(f)
	if err != nil {
		fatalf("Error: %v\n", err)
	}

	logOut := os.Stderr
	if cfg.Log.File != "" {
		lf, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fatalf("Error opening log file: %v\n", err)
		}
		defer lf.Close()
		logOut = lf
	}
	log, err := engine.NewLogger(cfg.Log.Level, logOut)
	if err != nil {
		fatalf("Error: %v\n", err)
	}
	defer log.Sync() //nolint:errcheck

	cat, err := loadContent(cfg.Content)
	if err != nil {
		fatalf("Error loading content: %v\n", err)
	}
	for _, w := range loader.Lint(cat) {
		log.Warn("content", zap.String("warning", w))
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	eng, err := engine.New(cat, cfg.Players, seed, log)
	if err != nil {
		fatalf("Error: %v\n", err)
	}

	// Script mode: open file, force plain, echo commands.
	if f.scriptFile != "" {
		sf, err := os.Open(f.scriptFile)
		if err != nil {
			fatalf("Error opening script: %v\n", err)
		}
		defer sf.Close()
		c := cli.New(eng)
		c.In = sf
		c.EchoInput = true
		c.Trace = cfg.UI.Trace
		c.Run()
		return
	}

	// Use plain CLI if asked to or stdout is not a terminal.
	if cfg.UI.Plain || !isTerminal() {
		fmt.Printf("Seed %d, %d players.\n", seed, cfg.Players)
		c := cli.New(eng)
		c.Trace = cfg.UI.Trace
		c.Run()
		return
	}

	if err := tui.Run(eng, cfg.UI.Trace); err != nil {
		fatalf("Error: %v\n", err)
	}
}

func parseArgs(args []string) flags {
	var f flags
	value := func(i *int, name string) string {
		if *i+1 >= len(args) {
			fatalf("%s requires a value\n", name)
		}
		*i++
		return args[*i]
	}

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("agecore %s (commit %s, built %s)\n", version, commit, date)
			os.Exit(0)
		case "--help", "-h":
			fmt.Println(usage)
			os.Exit(0)
		case "--plain":
			f.plain = true
		case "--trace":
			f.trace = true
		case "--config":
			f.configFile = value(&i, "--config")
		case "--script":
			f.scriptFile = value(&i, "--script")
		case "--players":
			n, err := strconv.Atoi(value(&i, "--players"))
			if err != nil {
				fatalf("--players: %v\n", err)
			}
			f.players = &n
		case "--seed":
			n, err := strconv.ParseInt(value(&i, "--seed"), 10, 64)
			if err != nil {
				fatalf("--seed: %v\n", err)
			}
			f.seed = &n
		default:
			if f.content == "" {
				f.content = args[i]
			}
		}
	}
	return f
}

// resolveConfig layers defaults, environment, config file and flags, in
// increasing priority.
func resolveConfig(f flags) (config.Config, error) {
	cfg := config.FromEnv(config.Default())
	if f.configFile != "" {
		loaded, err := config.Load(f.configFile)
		if err != nil {
			return config.Config{}, fmt.Errorf("loading config: %w", err)
		}
		cfg = *loaded
	}

	if f.players != nil {
		cfg.Players = *f.players
	}
	if f.seed != nil {
		cfg.Seed = *f.seed
	}
	if f.content != "" {
		cfg.Content = f.content
	}
	cfg.UI.Plain = cfg.UI.Plain || f.plain
	cfg.UI.Trace = cfg.UI.Trace || f.trace

	return cfg, cfg.Validate()
}

// loadContent loads dir, or the embedded classic content when dir is empty.
func loadContent(dir string) (*catalog.Catalog, error) {
	if dir == "" {
		return loader.LoadFS(content.Classic, content.ClassicDir)
	}
	return loader.Load(dir)
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}
