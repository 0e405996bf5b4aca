package maps

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	t.Parallel()

	m := map[string]int{"sub": 1, "add": 1, "set": 1}
	assert.ElementsMatch(t, []string{"add", "set", "sub"}, Keys(m))
	assert.Equal(t, []string{"add", "set", "sub"}, SortedKeys(m))
	assert.Empty(t, Keys(map[string]int{}))
}

func TestToSlice(t *testing.T) {
	t.Parallel()

	got := ToSlice(map[string]int{"add": 1}, func(k string, v int) string { return k + "/1" })
	assert.Equal(t, []string{"add/1"}, got)
}
