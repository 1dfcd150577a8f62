package utils

import "golang.org/x/exp/constraints"

type Order uint8

const (
	DescOrder Order = iota
	AscOrder
)

func (o Order) String() string {
	if o == AscOrder {
		return "asc"
	}
	return "desc"
}

// CompareFn - returns a negative number when a < b, zero when a == b
// and a positive number when a > b
type CompareFn[T any] func(a, b T) int

// Natural - compares values of ordered types with < and >
func Natural[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Reverse flips the ordering produced by compare
func Reverse[T any](compare CompareFn[T]) CompareFn[T] {
	return func(a, b T) int {
		return compare(b, a)
	}
}

func GetZero[T any]() T {
	var result T
	return result
}
