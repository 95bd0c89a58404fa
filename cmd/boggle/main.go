package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lettergrid/boggle/alphabet"
	"github.com/lettergrid/boggle/config"
	"github.com/lettergrid/boggle/lexicon"
	"github.com/lettergrid/boggle/solver"
	"github.com/lettergrid/boggle/trie"
)

func setupLogging(cfg *config.Config) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}

	var logger zerolog.Logger
	if cfg.GetBool("debug") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	log.Logger = logger
	logger.Debug().Msg("Debug logging is on")
}

func run(cfg *config.Config) error {
	b, err := lexicon.LoadBoardFile(cfg.GetString("board-file"))
	if err != nil {
		return err
	}
	fmt.Print(b.ToDisplayText())

	maxLen := cfg.GetInt("max-word-length")
	if maxLen == 0 {
		maxLen = b.Dim() * b.Dim()
	}

	var src lexicon.Source
	if dbPath := cfg.GetString("dictionary-db"); dbPath != "" {
		src = lexicon.DBSource{Path: dbPath}
	} else {
		src = lexicon.FileSource{Path: cfg.GetString("dictionary-file")}
	}

	bld := trie.NewBuilder(b.Histogram(), maxLen)
	err = src.Each(func(word string) error {
		_, err := bld.AddWord(word)
		return err
	})
	if err != nil {
		return err
	}
	bld.LogStats()
	fmt.Printf("Filtered dictionary down to %d words\n", bld.Accepted())

	dict := bld.Trie()
	defer func() {
		dict.Destroy()
		log.Debug().
			Int("alloc-calls", dict.AllocCalls()).
			Int("free-calls", dict.FreeCalls()).
			Msg("trie released")
	}()

	s := solver.NewSolver(b, dict)
	s.SetRecorder(func(s *solver.Solver, word alphabet.MachineWord, row, col int) {
		fmt.Printf("Found word %s (%d,%d)\n", word.UserVisible(), row, col)
		solver.AllFindingsRecorder(s, word, row, col)
	})
	start := time.Now()
	if err := s.Solve(); err != nil {
		return err
	}
	log.Debug().Dur("elapsed", time.Since(start)).Msg("search done")
	fmt.Printf("Found %d words\n", len(s.Findings()))
	return nil
}

func main() {
	cfg := config.DefaultConfig()
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	setupLogging(cfg)

	if profilePath := cfg.GetString("cpu-profile"); profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			panic("could not create CPU profile: " + err.Error())
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}
