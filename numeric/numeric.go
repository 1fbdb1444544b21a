// Package numeric defines the integer contract shared by every pallet that
// stores balances, nonces or block numbers, together with the concrete
// unsigned types that satisfy it.
package numeric

import (
	"encoding"
	"errors"
	"fmt"
)

// Number is the capability set required of a chain-safe integer.
//
// The zero value of T is the additive identity. Implementations are plain
// value types, so assignment copies them.
type Number[T any] interface {
	comparable
	// One returns the unit that counters advance by.
	One() T
	// CheckedAdd reports ok == false instead of wrapping on overflow.
	CheckedAdd(T) (T, bool)
	// CheckedSub reports ok == false instead of wrapping below zero.
	CheckedSub(T) (T, bool)
	IsZero() bool
	String() string
}

var (
	ErrSyntax = errors.New("invalid decimal")
	ErrRange  = errors.New("value out of range")
)

// Zero returns the additive identity of T.
func Zero[T Number[T]]() T {
	var zero T
	return zero
}

// One returns the unit of T.
func One[T Number[T]]() T {
	var zero T
	return zero.One()
}

// Inc adds one to n, reporting ok == false on overflow.
func Inc[T Number[T]](n T) (T, bool) {
	return n.CheckedAdd(n.One())
}

// Sum adds all values with checked arithmetic.
func Sum[T Number[T]](values ...T) (T, bool) {
	var total T
	for _, v := range values {
		next, ok := total.CheckedAdd(v)
		if !ok {
			return Zero[T](), false
		}
		total = next
	}
	return total, true
}

// Parse decodes a base-10 string into any type that unmarshals decimal text.
func Parse[T any, PT interface {
	*T
	encoding.TextUnmarshaler
}](s string) (T, error) {
	var v T
	if err := PT(&v).UnmarshalText([]byte(s)); err != nil {
		return v, err
	}
	return v, nil
}

func checkDecimal(kind, s string) error {
	if s == "" {
		return fmt.Errorf("parse %s %q: %w", kind, s, ErrSyntax)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return fmt.Errorf("parse %s %q: %w", kind, s, ErrSyntax)
		}
	}
	return nil
}
