// Package runtime composes the pallets into one state machine.
package runtime

import (
	"slices"

	"github.com/rs/zerolog"

	"ledger/executor/serial"
	"ledger/executor/types"
	"ledger/pallets/balances"
	"ledger/pallets/system"
)

// Runtime accumulates all of the pallets the chain uses.
type Runtime struct {
	System   *system.Pallet[AccountID, BlockNumber, Nonce]
	Balances *balances.Pallet[AccountID, Balance]

	log zerolog.Logger
}

var (
	_ types.Chain[AccountID, BlockNumber]                   = &Runtime{}
	_ types.BlockExecutor[AccountID, BlockNumber, *Runtime] = &serial.Executor[AccountID, BlockNumber, *Runtime]{}
)

func New(log zerolog.Logger) *Runtime {
	return &Runtime{
		System:   system.New[AccountID, BlockNumber, Nonce](),
		Balances: balances.New[AccountID, Balance](),
		log:      log,
	}
}

// Genesis is the initial state applied before the first block.
type Genesis struct {
	Balances map[AccountID]Balance
}

func (rt *Runtime) ApplyGenesis(g Genesis) {
	accounts := make([]AccountID, 0, len(g.Balances))
	for who := range g.Balances {
		accounts = append(accounts, who)
	}
	slices.Sort(accounts)

	for _, who := range accounts {
		rt.Balances.SetBalance(who, g.Balances[who])
		rt.log.Debug().Str("account", who).Stringer("balance", g.Balances[who]).Msg("genesis balance")
	}
}

func (rt *Runtime) BlockNumber() BlockNumber {
	return rt.System.BlockNumber()
}

func (rt *Runtime) IncBlockNumber() error {
	return rt.System.IncBlockNumber()
}

func (rt *Runtime) IncNonce(who AccountID) error {
	return rt.System.IncNonce(who)
}

// ExecuteBlock runs the block through the serial executor.
func (rt *Runtime) ExecuteBlock(block Block) ([]Receipt, error) {
	exec := serial.NewExecutor[AccountID, BlockNumber, *Runtime](rt.log)
	receipts, err := exec.ExecuteBlock(rt, block)
	if err != nil {
		return nil, err
	}

	failed := 0
	for _, r := range receipts {
		if !r.Ok() {
			failed++
		}
	}
	rt.log.Info().
		Stringer("block", rt.BlockNumber()).
		Int("extrinsics", len(receipts)).
		Int("failed", failed).
		Msg("block executed")

	return receipts, nil
}
