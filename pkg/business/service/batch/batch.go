package batch

import (
	"errors"
	"fmt"
	"iter"
)

var ErrInvalidChunkSize = errors.New("chunk size must be positive")

// Chunk режет items на последовательные пакеты по size элементов,
// последний пакет может быть короче. Порядок сохраняется, конкатенация
// пакетов равна исходному срезу. Последовательность можно обходить
// повторно.
func Chunk[T any](items []T, size int) (iter.Seq[[]T], error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChunkSize, size)
	}
	return func(yield func([]T) bool) {
		for start := 0; start < len(items); start += size {
			end := min(start+size, len(items))
			if !yield(items[start:end:end]) {
				return
			}
		}
	}, nil
}
