package main

import "sort"

// IP4Set - map of addresses to the input lines they were read from.
type IP4Set map[uint32]LineSet

// Drop - delete line from the address entry, and the entry when it gets empty.
func (a IP4Set) Drop(ip uint32, line int) {
	if v, ok := a[ip]; ok {
		v = v.Del(line)

		if v.Blank() {
			delete(a, ip)

			return
		}

		a[ip] = v
	}
}

// Insert - add line to the address entry.
func (a IP4Set) Insert(ip uint32, line int) {
	v, ok := a[ip]
	if !ok {
		v = make(LineSet, 0, 1)
	}

	a[ip] = v.Add(line)
}

// Duplicates - addresses seen on more than one line, ascending.
func (a IP4Set) Duplicates() []uint32 {
	var dups []uint32

	for ip, lines := range a {
		if len(lines) > 1 {
			dups = append(dups, ip)
		}
	}

	sort.Slice(dups, func(i, j int) bool { return dups[i] < dups[j] })

	return dups
}
