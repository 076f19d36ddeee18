package main

import "sort"

// LineSet - ordered set of input line numbers.
type LineSet []int

// Blank - is the set empty?
func (a LineSet) Blank() bool {
	return len(a) == 0
}

// Add - add line to the set, keeping it sorted.
func (a LineSet) Add(x int) LineSet {
	i := sort.SearchInts(a, x)
	if i < len(a) && a[i] == x {
		return a
	}

	a = append(a, 0)
	copy(a[i+1:], a[i:])
	a[i] = x

	return a
}

// Del - del line from the set.
func (a LineSet) Del(x int) LineSet {
	i := sort.SearchInts(a, x)
	if i < len(a) && a[i] == x {
		return append(a[:i], a[i+1:]...)
	}

	return a
}
