package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect[T any](t *testing.T, items []T, size int) [][]T {
	t.Helper()
	seq, err := Chunk(items, size)
	require.NoError(t, err)
	var chunks [][]T
	for chunk := range seq {
		chunks = append(chunks, chunk)
	}
	return chunks
}

func TestChunk(t *testing.T) {
	chunks := collect(t, []int{1, 2, 3, 4, 5}, 2)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, chunks)
}

func TestChunkConcatenationEqualsInput(t *testing.T) {
	input := []string{"a", "b", "c", "d", "e", "f", "g"}
	for size := 1; size <= len(input)+1; size++ {
		var flat []string
		for _, chunk := range collect(t, input, size) {
			assert.LessOrEqual(t, len(chunk), size)
			flat = append(flat, chunk...)
		}
		assert.Equal(t, input, flat, "size %d", size)
	}
}

func TestChunkEmptyInput(t *testing.T) {
	assert.Empty(t, collect(t, []int(nil), 3))
}

func TestChunkInvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		_, err := Chunk([]int{1, 2}, size)
		assert.ErrorIs(t, err, ErrInvalidChunkSize, "size %d", size)
	}
}

func TestChunkRestartable(t *testing.T) {
	seq, err := Chunk([]int{1, 2, 3}, 2)
	require.NoError(t, err)

	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}
	assert.Equal(t, 2, count())
	assert.Equal(t, 2, count())
}
