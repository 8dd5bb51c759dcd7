// Package pagination slices an already fetched collection into fixed size
// pages. Nothing is sent to the backend.
package pagination

import "strconv"

// Page is one window over a collection of Total items.
type Page[T any] struct {
	Items      []T
	Number     int // 1-indexed
	Size       int
	Total      int
	TotalPages int
}

// Paginate returns page number (1-indexed) of items, holding
// items[(number-1)*size : number*size] clipped to the collection.
// A number below 1 is treated as 1; a size below 1 as a single item per page.
// A number past the last page yields an empty page.
func Paginate[T any](items []T, number, size int) Page[T] {
	if number < 1 {
		number = 1
	}
	if size < 1 {
		size = 1
	}

	total := len(items)
	pages := total / size
	if total%size != 0 {
		pages++
	}

	// Compare page numbers before multiplying so huge numbers cannot overflow.
	start, end := total, total
	if number <= pages {
		start = (number - 1) * size
		end = min(start+size, total)
	}

	return Page[T]{
		Items:      items[start:end],
		Number:     number,
		Size:       size,
		Total:      total,
		TotalPages: pages,
	}
}

// Within returns p, or the last page of items when p lies past it.
func (p Page[T]) Within(items []T) Page[T] {
	if p.TotalPages > 0 && p.Number > p.TotalPages {
		return Paginate(items, p.TotalPages, p.Size)
	}
	return p
}

// HasPrev reports whether the Previous control is enabled.
func (p Page[T]) HasPrev() bool {
	return p.Number > 1
}

// HasNext reports whether the Next control is enabled. It is disabled
// exactly when Number*Size >= Total, which for whole pages is
// Number >= TotalPages.
func (p Page[T]) HasNext() bool {
	return p.Number < p.TotalPages
}

func (p Page[T]) Prev() int { return p.Number - 1 }
func (p Page[T]) Next() int { return p.Number + 1 }

// ParseNumber reads a page query parameter; anything unparsable is page 1.
func ParseNumber(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
