// Package system is the system pallet. It keeps the low level chain state:
// the current block number and how many transactions each account has made.
package system

import (
	"cmp"
	"errors"
	"maps"
	"slices"

	"ledger/numeric"
)

var (
	ErrBlockNumberOverflow = errors.New("block number overflow")
	ErrNonceOverflow       = errors.New("nonce overflow")
)

type Pallet[A cmp.Ordered, BN numeric.Number[BN], N numeric.Number[N]] struct {
	blockNumber BN
	// nonce maps an account to the number of transactions it has made
	nonce map[A]N
}

func New[A cmp.Ordered, BN numeric.Number[BN], N numeric.Number[N]]() *Pallet[A, BN, N] {
	return &Pallet[A, BN, N]{
		blockNumber: numeric.Zero[BN](),
		nonce:       make(map[A]N),
	}
}

func (p *Pallet[A, BN, N]) BlockNumber() BN {
	return p.blockNumber
}

// IncBlockNumber advances the block number by one. On overflow the block
// number is left as it was.
func (p *Pallet[A, BN, N]) IncBlockNumber() error {
	next, ok := numeric.Inc(p.blockNumber)
	if !ok {
		return ErrBlockNumberOverflow
	}
	p.blockNumber = next
	return nil
}

// IncNonce records one more transaction made by who. On overflow the nonce
// is left as it was.
func (p *Pallet[A, BN, N]) IncNonce(who A) error {
	next, ok := numeric.Inc(p.Nonce(who))
	if !ok {
		return ErrNonceOverflow
	}
	p.nonce[who] = next
	return nil
}

// Nonce returns the number of transactions made by who, zero if none.
func (p *Pallet[A, BN, N]) Nonce(who A) N {
	return p.nonce[who]
}

// Accounts returns every account that has made a transaction, in order.
func (p *Pallet[A, BN, N]) Accounts() []A {
	return slices.Sorted(maps.Keys(p.nonce))
}
