package runtime

import (
	"fmt"
	"io"
	"slices"
)

// State is a read-only dump of the runtime, for diagnostics.
type State struct {
	BlockNumber   BlockNumber    `json:"block_number"`
	TotalIssuance *Balance       `json:"total_issuance,omitempty"`
	Accounts      []AccountState `json:"accounts"`
}

type AccountState struct {
	ID      AccountID `json:"id"`
	Balance Balance   `json:"balance"`
	Nonce   Nonce     `json:"nonce"`
}

// Snapshot collects every account known to either pallet, in order.
func (rt *Runtime) Snapshot() State {
	ids := append(rt.Balances.Accounts(), rt.System.Accounts()...)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	state := State{
		BlockNumber: rt.System.BlockNumber(),
		Accounts:    make([]AccountState, 0, len(ids)),
	}
	if total, ok := rt.Balances.TotalIssuance(); ok {
		state.TotalIssuance = &total
	}
	for _, id := range ids {
		state.Accounts = append(state.Accounts, AccountState{
			ID:      id,
			Balance: rt.Balances.Balance(id),
			Nonce:   rt.System.Nonce(id),
		})
	}
	return state
}

// WriteText renders the state one account per line.
func (s State) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "block %s\n", s.BlockNumber); err != nil {
		return err
	}
	for _, acc := range s.Accounts {
		if _, err := fmt.Fprintf(w, "%-12s balance=%s nonce=%s\n", acc.ID, acc.Balance, acc.Nonce); err != nil {
			return err
		}
	}
	if s.TotalIssuance != nil {
		if _, err := fmt.Fprintf(w, "total issuance %s\n", s.TotalIssuance); err != nil {
			return err
		}
	}
	return nil
}
