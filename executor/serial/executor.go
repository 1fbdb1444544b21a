package serial

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"ledger/executor/types"
	"ledger/numeric"
	"ledger/pallets/system"
)

var ErrBlockNumberMismatch = errors.New("block number mismatch")

// Executor applies the extrinsics of a block one after another.
type Executor[A cmp.Ordered, BN numeric.Number[BN], R types.Chain[A, BN]] struct {
	log zerolog.Logger
}

func NewExecutor[A cmp.Ordered, BN numeric.Number[BN], R types.Chain[A, BN]](log zerolog.Logger) *Executor[A, BN, R] {
	return &Executor[A, BN, R]{log: log}
}

// ExecuteBlock advances the chain to the block's number and dispatches every
// extrinsic in order. The caller's nonce is bumped before its call is
// dispatched and stays bumped when the call fails. Failed calls are recorded
// in their receipt and do not stop the block.
func (e *Executor[A, BN, R]) ExecuteBlock(rt R, block types.Block[A, BN, R]) ([]types.Receipt[A], error) {
	current := rt.BlockNumber()
	expected, ok := numeric.Inc(current)
	if !ok {
		return nil, fmt.Errorf("execute block after %s: %w", current, system.ErrBlockNumberOverflow)
	}
	if block.Header.BlockNumber != expected {
		return nil, fmt.Errorf("%w: expected %s, got %s", ErrBlockNumberMismatch, expected, block.Header.BlockNumber)
	}
	if err := rt.IncBlockNumber(); err != nil {
		return nil, fmt.Errorf("execute block %s: %w", expected, err)
	}

	blockLog := e.log.With().Stringer("block", expected).Logger()
	receipts := make([]types.Receipt[A], 0, len(block.Extrinsics))

	for i, ext := range block.Extrinsics {
		receipt := types.Receipt[A]{Index: i, Caller: ext.Caller, Call: ext.Call.Name()}

		if err := rt.IncNonce(ext.Caller); err != nil {
			receipt.Err = err
			blockLog.Warn().Err(err).Int("index", i).Interface("caller", ext.Caller).Msg("rejecting transaction")
			receipts = append(receipts, receipt)
			continue
		}

		if err := ext.Call.Dispatch(rt, ext.Caller); err != nil {
			receipt.Err = err
			blockLog.Warn().Err(err).Int("index", i).Interface("caller", ext.Caller).Str("call", receipt.Call).Msg("skipping failed transaction")
		} else {
			blockLog.Debug().Int("index", i).Interface("caller", ext.Caller).Str("call", receipt.Call).Msg("applied transaction")
		}
		receipts = append(receipts, receipt)
	}

	return receipts, nil
}
