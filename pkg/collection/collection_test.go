package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	got := Map([]int{1, 2, 3}, func(n int) int { return n * 10 })
	assert.Equal(t, []int{10, 20, 30}, got)
	assert.Empty(t, Map(nil, func(n int) int { return n }))
}

func TestUnique(t *testing.T) {
	got := Unique([]uint{3, 1, 3, 2, 1})
	assert.Equal(t, []uint{3, 1, 2}, got)
	assert.Nil(t, Unique[uint](nil))
}

func TestKeyBy(t *testing.T) {
	type product struct {
		ID   uint
		Name string
	}
	got := KeyBy([]product{{1, "Beans"}, {2, "Mug"}, {1, "Beans v2"}}, func(p product) uint { return p.ID })
	assert.Len(t, got, 2)
	assert.Equal(t, "Beans v2", got[1].Name)
	assert.Equal(t, "Mug", got[2].Name)
}
