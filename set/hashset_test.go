package set_test

import (
	"sort"
	"testing"

	"github.com/denismitr/linkedset/set"
	"github.com/stretchr/testify/assert"
)

func TestHashSet_Remove(t *testing.T) {
	t.Run("remove existing item from the middle", func(t *testing.T) {
		s := set.NewHashSet("foo", "bar", "baz", "123")

		assert.True(t, s.Remove("bar"))

		items := s.Items()
		sort.Strings(items)

		assert.Equal(t, []string{"123", "baz", "foo"}, items)
	})

	t.Run("remove existing item from the beginning", func(t *testing.T) {
		s := set.NewHashSet("foo", "bar", "baz", "123")

		assert.True(t, s.Remove("foo"))

		items := s.Items()
		sort.Strings(items)
		assert.Equal(t, []string{"123", "bar", "baz"}, items)

		assert.False(t, s.Has("foo"))
		assert.True(t, s.Has("123"))
		assert.True(t, s.Has("bar"))
		assert.True(t, s.Has("baz"))
	})

	t.Run("remove missing item", func(t *testing.T) {
		s := set.NewHashSet("foo")

		assert.False(t, s.Remove("bar"))
		assert.Equal(t, 1, s.Len())
	})
}

func TestHashSet_InsertSet(t *testing.T) {
	s := set.NewHashSet(1, 2)

	assert.True(t, s.InsertSet(set.Of(2, 3)))
	assert.False(t, s.InsertSet(set.Of(1)))
	assert.False(t, s.InsertSet(nil))

	items := s.Items()
	sort.Ints(items)
	assert.Equal(t, []int{1, 2, 3}, items)

	s.Clear()
	assert.True(t, s.IsEmpty())
}
