package set

type nothing struct{}

// Set - the contract shared by all sets in this package. Set algebra on
// LinkedSet accepts any Set and only relies on Len, Has and Items unless
// the other operand is a LinkedSet with the same ordering.
type Set[T any] interface {
	Insert(item T) (modified bool)
	Remove(item T) bool
	Clear()
	Has(item T) bool
	Items() []T
	Len() int
	IsEmpty() bool
	InsertSet(sourceSet Set[T]) (modified bool)
}
