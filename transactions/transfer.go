package transactions

import (
	"ledger/runtime"
)

// Transfer moves Amount from the caller to To.
type Transfer struct {
	To     runtime.AccountID
	Amount runtime.Balance
}

var _ runtime.Call = Transfer{}

func (t Transfer) Name() string { return "transfer" }

func (t Transfer) Dispatch(rt *runtime.Runtime, caller runtime.AccountID) error {
	return rt.Balances.Transfer(caller, t.To, t.Amount)
}
