package numeric

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// U32 is a 32-bit unsigned chain integer.
type U32 uint32

// U64 is a 64-bit unsigned chain integer.
type U64 uint64

const (
	MaxU32 U32 = math.MaxUint32
	MaxU64 U64 = math.MaxUint64
)

var (
	_ = Zero[U32]
	_ = Zero[U64]
)

func (n U32) One() U32 { return 1 }

func (n U32) CheckedAdd(m U32) (U32, bool) {
	if n > MaxU32-m {
		return 0, false
	}
	return n + m, true
}

func (n U32) CheckedSub(m U32) (U32, bool) {
	if m > n {
		return 0, false
	}
	return n - m, true
}

func (n U32) IsZero() bool { return n == 0 }

func (n U32) String() string { return strconv.FormatUint(uint64(n), 10) }

func (n U32) MarshalText() ([]byte, error) { return []byte(n.String()), nil }

func (n *U32) UnmarshalText(text []byte) error {
	v, err := parseUint("u32", string(text), 32)
	if err != nil {
		return err
	}
	*n = U32(v)
	return nil
}

func (n U64) One() U64 { return 1 }

func (n U64) CheckedAdd(m U64) (U64, bool) {
	if n > MaxU64-m {
		return 0, false
	}
	return n + m, true
}

func (n U64) CheckedSub(m U64) (U64, bool) {
	if m > n {
		return 0, false
	}
	return n - m, true
}

func (n U64) IsZero() bool { return n == 0 }

func (n U64) String() string { return strconv.FormatUint(uint64(n), 10) }

func (n U64) MarshalText() ([]byte, error) { return []byte(n.String()), nil }

func (n *U64) UnmarshalText(text []byte) error {
	v, err := parseUint("u64", string(text), 64)
	if err != nil {
		return err
	}
	*n = U64(v)
	return nil
}

func parseUint(kind, s string, bitSize int) (uint64, error) {
	if err := checkDecimal(kind, s); err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(s, 10, bitSize)
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("parse %s %q: %w", kind, s, ErrRange)
	}
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", kind, s, ErrSyntax)
	}
	return v, nil
}
