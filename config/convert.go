package config

import (
	"fmt"

	"ledger/numeric"
	"ledger/runtime"
	"ledger/transactions"
)

// Genesis converts the genesis section into runtime values.
func (c Config) Genesis() (runtime.Genesis, error) {
	g := runtime.Genesis{Balances: make(map[runtime.AccountID]runtime.Balance, len(c.Genesis.Balances))}
	for who, raw := range c.Genesis.Balances {
		amount, err := numeric.Parse[runtime.Balance](raw)
		if err != nil {
			return runtime.Genesis{}, fmt.Errorf("genesis balance of %s: %w", who, err)
		}
		g.Balances[who] = amount
	}
	return g, nil
}

// RuntimeBlocks converts the block section into executable blocks.
func (c Config) RuntimeBlocks() ([]runtime.Block, error) {
	blocks := make([]runtime.Block, 0, len(c.Blocks))
	for _, bc := range c.Blocks {
		block := runtime.Block{
			Header:     runtime.Header{BlockNumber: runtime.BlockNumber(bc.Number)},
			Extrinsics: make([]runtime.Extrinsic, 0, len(bc.Extrinsics)),
		}
		for i, ec := range bc.Extrinsics {
			call, err := toCall(ec)
			if err != nil {
				return nil, fmt.Errorf("block %d extrinsic %d: %w", bc.Number, i, err)
			}
			block.Extrinsics = append(block.Extrinsics, runtime.Extrinsic{Caller: ec.Caller, Call: call})
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}

func toCall(ec ExtrinsicConfig) (runtime.Call, error) {
	amount, err := numeric.Parse[runtime.Balance](ec.Amount)
	if err != nil {
		return nil, err
	}
	switch ec.Call {
	case CallTransfer:
		return transactions.Transfer{To: ec.To, Amount: amount}, nil
	case CallMint:
		return transactions.Mint{To: ec.To, Amount: amount}, nil
	default:
		return nil, fmt.Errorf("%w: unknown call %q", ErrInvalid, ec.Call)
	}
}
