// Package balances is the ledger pallet: it tracks how much balance each
// account holds and moves balance between accounts.
package balances

import (
	"cmp"
	"errors"
	"maps"
	"slices"

	"ledger/numeric"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrOverflow          = errors.New("balance overflow")
)

// Pallet stores a balance per account. Accounts without an entry hold zero.
type Pallet[A cmp.Ordered, B numeric.Number[B]] struct {
	balances map[A]B
}

func New[A cmp.Ordered, B numeric.Number[B]]() *Pallet[A, B] {
	return &Pallet[A, B]{balances: make(map[A]B)}
}

// SetBalance overwrites the balance of who.
func (p *Pallet[A, B]) SetBalance(who A, amount B) {
	p.balances[who] = amount
}

// Balance returns the balance of who, or zero if it was never set.
func (p *Pallet[A, B]) Balance(who A) B {
	return p.balances[who]
}

// Transfer moves amount from one account to another. Both the debit and the
// credit are checked before anything is written, so a failed transfer leaves
// the pallet untouched.
func (p *Pallet[A, B]) Transfer(from, to A, amount B) error {
	fromBalance := p.Balance(from)
	toBalance := p.Balance(to)

	newFromBalance, ok := fromBalance.CheckedSub(amount)
	if !ok {
		return ErrInsufficientFunds
	}
	newToBalance, ok := toBalance.CheckedAdd(amount)
	if !ok {
		return ErrOverflow
	}

	// a self transfer nets out, and a zero transfer moves nothing
	if from == to || amount.IsZero() {
		return nil
	}

	p.balances[from] = newFromBalance
	p.balances[to] = newToBalance
	return nil
}

// Accounts returns every account with a stored balance, in order.
func (p *Pallet[A, B]) Accounts() []A {
	return slices.Sorted(maps.Keys(p.balances))
}

// TotalIssuance sums all balances. ok is false if the sum does not fit in B.
func (p *Pallet[A, B]) TotalIssuance() (B, bool) {
	return numeric.Sum(slices.Collect(maps.Values(p.balances))...)
}
