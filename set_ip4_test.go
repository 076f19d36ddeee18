package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineSet(t *testing.T) {
	var s LineSet

	assert.True(t, s.Blank())

	s = s.Add(5).Add(1).Add(3).Add(3)
	assert.Equal(t, LineSet{1, 3, 5}, s)

	s = s.Del(3).Del(42)
	assert.Equal(t, LineSet{1, 5}, s)

	s = s.Add(9).Add(7)
	assert.Equal(t, LineSet{1, 5, 7, 9}, s)

	s = s.Del(6).Del(0).Del(10)
	assert.Equal(t, LineSet{1, 5, 7, 9}, s)

	s = s.Del(7).Del(1).Del(9).Del(5)
	assert.True(t, s.Blank())
}

func TestIP4Set(t *testing.T) {
	set := make(IP4Set)

	for line, addr := range []string{"172.168.5.1", "10.0.0.1", "172 . 168.5.1", "10.0.0.2", " 10.0.0.1"} {
		ip, err := IPv4StrToInt(addr)
		if assert.NoError(t, err, addr) {
			set.Insert(ip, line+1)
		}
	}

	assert.Len(t, set, 3)
	assert.Equal(t, []uint32{0x0A000001, 2896692481}, set.Duplicates())
	assert.Equal(t, LineSet{1, 3}, set[2896692481])

	set.Drop(2896692481, 3)
	assert.Equal(t, []uint32{0x0A000001}, set.Duplicates())

	set.Drop(0x0A000002, 4)
	_, ok := set[0x0A000002]
	assert.False(t, ok)

	set.Drop(0x0B000000, 1)
	assert.Len(t, set, 2)
}
