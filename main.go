package main

import (
	"flag"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"proposal/internal/config"
	"proposal/internal/rng"
)

func main() {
	configPath := flag.String("config", "", "config file (default ~/"+config.FileName+")")
	seed := flag.Uint64("seed", 0, "random seed, 0 picks one from the clock")
	noMouse := flag.Bool("no-mouse", false, "disable mouse reporting")
	logPath := flag.String("log", "", "write debug log to this file")
	flag.Parse()

	path := *configPath
	if path == "" {
		path = config.Locate()
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatal(err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *logPath != "" {
		cfg.LogFile = *logPath
	}

	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "proposal")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if !*noMouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}

	p := tea.NewProgram(initialModel(cfg, rng.New(cfg.Seed), !*noMouse), opts...)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}
