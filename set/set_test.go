package set_test

import (
	"sort"
	"testing"

	"github.com/denismitr/linkedset/set"
	"github.com/stretchr/testify/assert"
)

func TestSet_Contract(t *testing.T) {
	impls := map[string]func() set.Set[string]{
		"hash set":   func() set.Set[string] { return set.NewHashSet[string]() },
		"linked set": func() set.Set[string] { return set.New[string]() },
	}

	for name, newSet := range impls {
		t.Run(name, func(t *testing.T) {
			s := newSet()
			assert.True(t, s.IsEmpty())

			assert.True(t, s.Insert("foo"))
			assert.True(t, s.Insert("bar"))
			assert.True(t, s.Insert("baz"))
			assert.False(t, s.Insert("bar"))
			assert.Equal(t, 3, s.Len())

			assert.True(t, s.Remove("bar"))
			assert.False(t, s.Remove("bar"))
			assert.False(t, s.Has("bar"))
			assert.True(t, s.Has("foo"))

			items := s.Items()
			sort.Strings(items)
			assert.Equal(t, []string{"baz", "foo"}, items)

			assert.True(t, s.InsertSet(set.Of("a", "foo")))
			assert.Equal(t, 3, s.Len())

			s.Clear()
			assert.Equal(t, 0, s.Len())
			assert.Empty(t, s.Items())
		})
	}
}
