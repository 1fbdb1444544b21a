package transactions

import (
	"ledger/pallets/balances"
	"ledger/runtime"
)

// Mint credits To with newly issued Amount. The caller only pays a nonce.
type Mint struct {
	To     runtime.AccountID
	Amount runtime.Balance
}

var _ runtime.Call = Mint{}

func (t Mint) Name() string { return "mint" }

func (t Mint) Dispatch(rt *runtime.Runtime, _ runtime.AccountID) error {
	balance, ok := rt.Balances.Balance(t.To).CheckedAdd(t.Amount)
	if !ok {
		return balances.ErrOverflow
	}
	rt.Balances.SetBalance(t.To, balance)
	return nil
}
