package numeric

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/holiman/uint256"
)

// U128 is a 128-bit unsigned chain integer stored as two 64-bit limbs.
type U128 struct {
	hi, lo uint64
}

// U256 is a 256-bit unsigned chain integer backed by uint256.Int.
type U256 struct {
	v uint256.Int
}

// MaxU128 is the largest U128.
var MaxU128 = U128{hi: math.MaxUint64, lo: math.MaxUint64}

var (
	_ = Zero[U128]
	_ = Zero[U256]
)

func NewU128(v uint64) U128 { return U128{lo: v} }

// NewU128FromLimbs builds hi<<64 | lo.
func NewU128FromLimbs(hi, lo uint64) U128 { return U128{hi: hi, lo: lo} }

func (n U128) One() U128 { return U128{lo: 1} }

func (n U128) CheckedAdd(m U128) (U128, bool) {
	lo, carry := bits.Add64(n.lo, m.lo, 0)
	hi, carry := bits.Add64(n.hi, m.hi, carry)
	if carry != 0 {
		return U128{}, false
	}
	return U128{hi: hi, lo: lo}, true
}

func (n U128) CheckedSub(m U128) (U128, bool) {
	lo, borrow := bits.Sub64(n.lo, m.lo, 0)
	hi, borrow := bits.Sub64(n.hi, m.hi, borrow)
	if borrow != 0 {
		return U128{}, false
	}
	return U128{hi: hi, lo: lo}, true
}

func (n U128) IsZero() bool { return n.hi == 0 && n.lo == 0 }

// Limbs returns the high and low 64 bits.
func (n U128) Limbs() (hi, lo uint64) { return n.hi, n.lo }

func (n U128) String() string {
	return (&uint256.Int{n.lo, n.hi, 0, 0}).Dec()
}

func (n U128) MarshalText() ([]byte, error) { return []byte(n.String()), nil }

func (n *U128) UnmarshalText(text []byte) error {
	z, err := parseWide("u128", string(text))
	if err != nil {
		return err
	}
	if z[2] != 0 || z[3] != 0 {
		return fmt.Errorf("parse u128 %q: %w", text, ErrRange)
	}
	*n = U128{hi: z[1], lo: z[0]}
	return nil
}

func NewU256(v uint64) U256 {
	var n U256
	n.v.SetUint64(v)
	return n
}

// MaxU256 returns 2^256 - 1.
func MaxU256() U256 {
	var n U256
	n.v.Not(&n.v)
	return n
}

func (n U256) One() U256 { return NewU256(1) }

func (n U256) CheckedAdd(m U256) (U256, bool) {
	var sum U256
	if _, overflow := sum.v.AddOverflow(&n.v, &m.v); overflow {
		return U256{}, false
	}
	return sum, true
}

func (n U256) CheckedSub(m U256) (U256, bool) {
	var diff U256
	if _, underflow := diff.v.SubOverflow(&n.v, &m.v); underflow {
		return U256{}, false
	}
	return diff, true
}

func (n U256) IsZero() bool { return n.v.IsZero() }

func (n U256) String() string { return n.v.Dec() }

func (n U256) MarshalText() ([]byte, error) { return []byte(n.String()), nil }

func (n *U256) UnmarshalText(text []byte) error {
	z, err := parseWide("u256", string(text))
	if err != nil {
		return err
	}
	n.v = *z
	return nil
}

func parseWide(kind, s string) (*uint256.Int, error) {
	if err := checkDecimal(kind, s); err != nil {
		return nil, err
	}
	z, err := uint256.FromDecimal(s)
	if err != nil {
		// digits were validated above, so the only failure left is size
		return nil, fmt.Errorf("parse %s %q: %w", kind, s, ErrRange)
	}
	return z, nil
}
