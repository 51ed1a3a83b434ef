package repository

import "errors"

// ErrIndexOutOfRange is returned by ListSet when the index does not address an element.
var ErrIndexOutOfRange = errors.New("list index out of range")

// listBounds resolves Redis-style inclusive range indexes against a list of length n.
// ok is false when the range selects nothing.
func listBounds(n, start, stop int) (lo, hi int, ok bool) {
	if start < 0 {
		start += n
	}
	if stop < 0 {
		stop += n
	}
	if start < 0 {
		start = 0
	}
	if stop >= n {
		stop = n - 1
	}
	if n == 0 || start > stop || start >= n {
		return 0, 0, false
	}
	return start, stop, true
}

// listIndex resolves a single Redis-style index (negative counts from the tail).
func listIndex(n, index int) (int, bool) {
	if index < 0 {
		index += n
	}
	if index < 0 || index >= n {
		return 0, false
	}
	return index, true
}
