package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type row struct {
	ID   int64
	Name string
}

func identity(r row) row { return r }

func TestArena_TombstonesKeepIDs(t *testing.T) {
	a := newArena(identity)

	for _, name := range []string{"a", "b", "c"} {
		a.insert(func(id int64) row { return row{ID: id, Name: name} })
	}
	assert.Equal(t, int64(4), a.nextID())

	assert.True(t, a.delete(2))
	assert.False(t, a.delete(2))
	assert.Len(t, a.find(nil), 2)

	_, ok := a.get(2)
	assert.False(t, ok)

	r := a.insert(func(id int64) row { return row{ID: id, Name: "d"} })
	assert.Equal(t, int64(4), r.ID)

	assert.Equal(t, []row{{1, "a"}, {3, "c"}, {4, "d"}}, a.find(nil))
}

func TestArena_OutOfRange(t *testing.T) {
	a := newArena(identity)

	for _, id := range []int64{-1, 0, 1, 100} {
		_, ok := a.get(id)
		assert.False(t, ok, "id %d", id)
		assert.False(t, a.delete(id), "id %d", id)
		_, ok = a.update(id, identity)
		assert.False(t, ok, "id %d", id)
	}
}

func TestArena_UpdateAndFirst(t *testing.T) {
	a := newArena(identity)
	a.insert(func(id int64) row { return row{ID: id, Name: "x"} })
	a.insert(func(id int64) row { return row{ID: id, Name: "y"} })

	got, ok := a.update(1, func(r row) row { r.Name = "z"; return r })
	assert.True(t, ok)
	assert.Equal(t, row{1, "z"}, got)

	first, ok := a.first(func(r row) bool { return r.Name == "y" })
	assert.True(t, ok)
	assert.Equal(t, int64(2), first.ID)

	_, ok = a.first(func(r row) bool { return r.Name == "none" })
	assert.False(t, ok)

	assert.NotNil(t, a.find(func(r row) bool { return false }))
}
