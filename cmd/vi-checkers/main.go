package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lixenwraith/vi-checkers/audio"
	"github.com/lixenwraith/vi-checkers/config"
	"github.com/lixenwraith/vi-checkers/core"
	"github.com/lixenwraith/vi-checkers/game"
	"github.com/lixenwraith/vi-checkers/input"
	"github.com/lixenwraith/vi-checkers/terminal"
)

type options struct {
	configPath string
	backend    string
	debug      bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("vi-checkers", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "Config file (toml, yaml or json)")
	fs.StringVar(&opts.backend, "backend", "", "Terminal backend: tcell, ansi (overrides config)")
	fs.BoolVar(&opts.debug, "debug", false, "Write debug log to "+logDir+"/"+logFileName)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: vi-checkers [flags]\n\nFlags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\n%s", config.Usage())
	}

	err := fs.Parse(args)
	return opts, err
}

// loadConfig reads file and environment, applies flag overrides, then validates
func loadConfig(opts options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.backend != "" {
		cfg.Backend = opts.backend
	}
	if opts.debug {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, err := parseFlags(args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-checkers: %v\n", err)
		return 1
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	log.SetPrefix(sessionPrefix())
	log.Printf("starting: backend=%s sound=%t strict_moves=%t", cfg.Backend, cfg.Sound, cfg.StrictMoves)

	overrides, err := input.LoadKeyConfig(cfg.Keys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-checkers: %v\n", err)
		return 1
	}
	keys := input.MergeKeyTable(input.DefaultKeyTable(), overrides)

	backend, err := terminal.Open(cfg.Backend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open terminal: %v\n", err)
		return 1
	}
	if err := backend.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	// Normal exit terminal cleanup
	defer backend.Fini()

	// Panic Recovery: board contract violations reset the terminal and exit 1
	core.SetCrashCleanup(backend.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	var sounds *audio.SoundManager
	if cfg.Sound {
		sounds = audio.NewSoundManager(cfg.VolumeLevel())
		if err := sounds.Initialize(); err != nil {
			log.Printf("audio initialization failed: %v (continuing without audio)", err)
		}
		defer sounds.Cleanup()
	}

	g, err := game.New(backend, game.WithKeyTable(keys), game.WithStrictMoves(cfg.StrictMoves))
	if err != nil {
		backend.Fini()
		fmt.Fprintf(os.Stderr, "vi-checkers: %v\n", err)
		return 1
	}

	err = g.Run(context.Background(), backend, func(out game.Outcome) {
		log.Printf("turn: action=%s result=%s event=%s from=%s to=%s phase=%s",
			out.Action, out.Result, out.Event, out.From, out.To, g.Phase())
		if sounds == nil {
			return
		}
		if cue, ok := cueForEvent(out.Event); ok {
			sounds.Play(cue)
		}
	})
	if err != nil {
		backend.Fini()
		log.Printf("fatal: %v", err)
		if errors.Is(err, game.ErrNoInput) {
			fmt.Fprintf(os.Stderr, "vi-checkers: input unavailable: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "vi-checkers: %v\n", err)
		}
		return 1
	}

	log.Printf("exit requested")
	return 0
}

// cueForEvent maps turn events to sounds; cursor motion is silent
func cueForEvent(e game.Event) (audio.Cue, bool) {
	switch e {
	case game.EventSelected:
		return audio.CueSelect, true
	case game.EventMoved:
		return audio.CueMove, true
	case game.EventRejected:
		return audio.CueReject, true
	default:
		return 0, false
	}
}
