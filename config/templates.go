package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// DefaultTemplate is the scenario run when no file is given: alice starts
// with 100 and sends 30 to bob and 20 to charlie in the first block.
const DefaultTemplate = `[log]
level = "info"

[genesis.balances]
alice = "100"

[[blocks]]
number = 1

  [[blocks.extrinsics]]
  caller = "alice"
  call = "transfer"
  to = "bob"
  amount = "30"

  [[blocks.extrinsics]]
  caller = "alice"
  call = "transfer"
  to = "charlie"
  amount = "20"
`

// Default returns the parsed DefaultTemplate.
func Default() Config {
	var cfg Config
	if _, err := toml.Decode(DefaultTemplate, &cfg); err != nil {
		panic(fmt.Sprintf("default scenario: %v", err))
	}
	return cfg
}
