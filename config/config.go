// Package config loads the scenario files the ledger driver executes.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	CallTransfer = "transfer"
	CallMint     = "mint"
)

var ErrInvalid = errors.New("invalid scenario")

type Config struct {
	Log     LogConfig     `toml:"log" yaml:"log"`
	Genesis GenesisConfig `toml:"genesis" yaml:"genesis"`
	Blocks  []BlockConfig `toml:"blocks" yaml:"blocks"`
}

type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
}

type GenesisConfig struct {
	// Balances maps an account to a decimal amount
	Balances map[string]string `toml:"balances" yaml:"balances"`
}

type BlockConfig struct {
	Number     uint32            `toml:"number" yaml:"number"`
	Extrinsics []ExtrinsicConfig `toml:"extrinsics" yaml:"extrinsics"`
}

type ExtrinsicConfig struct {
	Caller string `toml:"caller" yaml:"caller"`
	Call   string `toml:"call" yaml:"call"`
	To     string `toml:"to" yaml:"to"`
	Amount string `toml:"amount" yaml:"amount"`
}

// Load reads a TOML or YAML scenario, chosen by file extension.
func Load(path string) (Config, error) {
	var cfg Config
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = loadToml(path, &cfg)
	case ".yaml", ".yml":
		err = loadYaml(path, &cfg)
	default:
		return Config{}, fmt.Errorf("config load failed (%s): unsupported extension", path)
	}
	if err != nil {
		return Config{}, err
	}
	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config validate failed (%s): %w", path, err)
	}
	return cfg, nil
}

func loadToml(path string, out *Config) error {
	meta, err := toml.DecodeFile(path, out)
	if err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("config parse failed (%s): unknown keys %s", path, strings.Join(keys, ", "))
	}
	return nil
}

func loadYaml(path string, out *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

// Validate checks the structure of a scenario. Blocks are numbered
// consecutively from 1, the way the executor advances the chain. Amounts are
// checked when the scenario is converted into runtime values.
func Validate(cfg Config) error {
	for name := range cfg.Genesis.Balances {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: genesis account name is empty", ErrInvalid)
		}
	}

	var last uint32
	for i, block := range cfg.Blocks {
		if block.Number != last+1 {
			return fmt.Errorf("%w: block %d: number %d must follow %d", ErrInvalid, i, block.Number, last)
		}
		last = block.Number
		for j, ext := range block.Extrinsics {
			if err := validateExtrinsic(ext); err != nil {
				return fmt.Errorf("%w: block %d extrinsic %d: %v", ErrInvalid, block.Number, j, err)
			}
		}
	}
	return nil
}

func validateExtrinsic(ext ExtrinsicConfig) error {
	if strings.TrimSpace(ext.Caller) == "" {
		return errors.New("caller is required")
	}
	switch ext.Call {
	case CallTransfer, CallMint:
	default:
		return fmt.Errorf("unknown call %q", ext.Call)
	}
	if strings.TrimSpace(ext.To) == "" {
		return errors.New("to is required")
	}
	if ext.Amount == "" {
		return errors.New("amount is required")
	}
	return nil
}
