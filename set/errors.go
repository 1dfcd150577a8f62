package set

import "github.com/pkg/errors"

var (
	ErrIteratorExhausted    = errors.New("iterator is exhausted")
	ErrUnsupportedOperation = errors.New("unsupported operation")
	ErrIteratorInvalidated  = errors.New("set was modified after iterator creation")
)
