package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"ledger/config"
	"ledger/logging"
	"ledger/runtime"
)

func main() {
	configPath := flag.String("config", "", "scenario file (.toml, .yaml); the built-in scenario runs when empty")
	format := flag.String("format", "text", "state dump format: text or json")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "load .env: %v\n", err)
		os.Exit(2)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		cfg = loaded
	}

	log := logging.New(logging.ProfileRuntime, cfg.Log.Level, os.Stderr)
	if err := run(cfg, log, *format, os.Stdout); err != nil {
		log.Error().Err(err).Msg("ledger run failed")
		os.Exit(1)
	}
}

func run(cfg config.Config, log zerolog.Logger, format string, out io.Writer) error {
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown format %q", format)
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}
	genesis, err := cfg.Genesis()
	if err != nil {
		return err
	}
	blocks, err := cfg.RuntimeBlocks()
	if err != nil {
		return err
	}

	rt := runtime.New(log)
	rt.ApplyGenesis(genesis)

	for _, block := range blocks {
		// failed transactions are logged by the executor and do not stop the run
		if _, err := rt.ExecuteBlock(block); err != nil {
			return fmt.Errorf("block %s: %w", block.Header.BlockNumber, err)
		}
	}

	state := rt.Snapshot()
	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(state)
	}
	return state.WriteText(out)
}
