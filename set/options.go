package set

import (
	"reflect"

	"github.com/denismitr/linkedset/utils"
)

type (
	config[T any] struct {
		absent func(T) bool
		items  []T
	}

	Option[T any] func(c *config[T])

	ordering[T any] struct {
		compare utils.CompareFn[T]
		natural bool
	}
)

// WithAbsent - overrides the predicate deciding which values
// can never be stored in the set. By default only nil values
// of nilable element types are rejected.
func WithAbsent[T any](absent func(T) bool) Option[T] {
	return func(c *config[T]) {
		c.absent = absent
	}
}

// WithItems - seeds the set with the given items
func WithItems[T any](items ...T) Option[T] {
	return func(c *config[T]) {
		c.items = append(c.items, items...)
	}
}

func newConfig[T any](options ...Option[T]) config[T] {
	cfg := config[T]{absent: defaultAbsent[T]()}
	for _, o := range options {
		o(&cfg)
	}
	return cfg
}

// sameAs reports whether two sets can be merged cursor by cursor
func (o *ordering[T]) sameAs(other *ordering[T]) bool {
	return o == other || (o.natural && other.natural)
}

func defaultAbsent[T any]() func(T) bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return func(v T) bool {
			return reflect.ValueOf(v).IsNil()
		}
	case reflect.Interface:
		return func(v T) bool {
			return isNil(any(v))
		}
	default:
		return nil
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// isNilSet - true for an untyped nil Set as well as a typed nil pointer in it
func isNilSet[T any](s Set[T]) bool {
	return isNil(s)
}
