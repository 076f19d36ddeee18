package main

import (
	"net"
	"strconv"
)

// IntToIPv4 - uint32 address to the 16-byte IPv4-in-IPv6 net.IP.
func IntToIPv4(ip uint32) net.IP {
	return net.IP{
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0xff, 0xff,
		byte((ip & 0xFF000000) >> 24),
		byte((ip & 0x00FF0000) >> 16),
		byte((ip & 0x0000FF00) >> 8),
		byte(ip & 0x000000FF),
	}
}

// IntToStr - uint32 address to the dotted quad.
func IntToStr(ip uint32) string {
	b := make([]byte, 0, 15)

	for r := 24; r >= 0; r -= 8 {
		b = strconv.AppendUint(b, uint64(ip>>uint(r)&0xFF), 10)
		if r > 0 {
			b = append(b, '.')
		}
	}

	return string(b)
}
