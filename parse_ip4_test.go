package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usher-2/u2ip4/internal/logger"
)

func init() {
	logger.LogInit(io.Discard, os.Stdout, os.Stderr, os.Stderr)
}

var testCases = []struct {
	input    string
	expected uint32
	err      error
}{
	{"172.168.5.1", 2896692481, nil},
	{"172 . 168.5.1", 2896692481, nil},
	{"1 72.168.5.1", 0, ErrSpaceBetween},
	{"0.0.0.0", 0x00000000, nil},
	{"255.255.255.255", 0xFFFFFFFF, nil},
	{"256.0.0.1", 0, ErrOutOfRange},
	{"192.168.0.1", 0xC0A80001, nil},
	{"1.1.1.1", 0x01010101, nil},
	{"127.0.0.1", 0x7F000001, nil},
	{" 127.0.0.1", 0x7F000001, nil},
	{"127.0.0.1   ", 0x7F000001, nil},
	{"127 .0. 0 . 1", 0x7F000001, nil},
	{"1 .2.3.4", 0x01020304, nil},
	{"001.002.003.004", 0x01020304, nil},
	{"255.255.255.256", 0, ErrOutOfRange},
	{"1000.0.0.0", 0, ErrOutOfRange},
	{"1.2.3.4 5", 0, ErrSpaceBetween},
	{"12.3 4.5.6", 0, ErrSpaceBetween},
	{"255.255.255", 0, ErrMalformed},
	{"1.2.3", 0, ErrMalformed},
	{"255.255.255.255.255", 0, ErrMalformed},
	{"1.2.3.4.5", 0, ErrMalformed},
	{"255..255.255", 0, ErrMalformed},
	{"1..2.3", 0, ErrMalformed},
	{".1.2.3", 0, ErrMalformed},
	{"255.255.255.", 0, ErrMalformed},
	{"1.2.3.4.", 0, ErrMalformed},
	{"1.2.3. ", 0, ErrMalformed},
	{"", 0, ErrMalformed},
	{"   ", 0, ErrMalformed},
	{"a.b.c.d", 0, ErrInvalidChar},
	{"1.2.3.4a", 0, ErrInvalidChar},
	{"1.2.3.4/24", 0, ErrInvalidChar},
	{"1.2.3.0x4", 0, ErrInvalidChar},
	{"1\t.2.3.4", 0, ErrInvalidChar},
	{"::1", 0, ErrInvalidChar},
	{"1.2.3.４", 0, ErrInvalidChar},
}

// ip2int - the same conversion on top of net.ParseIP, for comparison.
func ip2int(s string) uint32 {
	ip := net.ParseIP(s)
	if ip == nil {
		return 0xFFFFFFFF
	}

	if len(ip) == 16 {
		return binary.BigEndian.Uint32(ip[12:16])
	}

	return binary.BigEndian.Uint32(ip)
}

// Benchmark_ip2int benchmarks the ip2int function.
func Benchmark_ip2int(b *testing.B) {
	for i := 0; i < b.N; i++ {
		for _, ip := range testCases {
			ip2int(ip.input)
		}
	}
}

// Benchmark_parseIp4 benchmarks the IPv4StrToInt function.
func Benchmark_parseIp4(b *testing.B) {
	for i := 0; i < b.N; i++ {
		for _, ip := range testCases {
			_, _ = IPv4StrToInt(ip.input)
		}
	}
}

// TestIPv4StrToInt tests the IPv4StrToInt function.
func TestIPv4StrToInt(t *testing.T) {
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result, err := IPv4StrToInt(tc.input)
			if tc.err != nil {
				require.Error(t, err)
				assert.Truef(t, errors.Is(err, tc.err), "IPv4StrToInt(%q) error = %v; want %v", tc.input, err, tc.err)
				assert.Zero(t, result)

				return
			}

			require.NoError(t, err)
			assert.Equalf(t, tc.expected, result, "IPv4StrToInt(%q) = %x; want %x", tc.input, result, tc.expected)
		})
	}
}

// TestIPv4StrToIntAgreesWithNet checks plain dotted quads against net.ParseIP.
func TestIPv4StrToIntAgreesWithNet(t *testing.T) {
	octets := []int{0, 1, 9, 10, 99, 100, 127, 128, 199, 200, 249, 250, 254, 255}

	for _, a := range octets {
		for _, b := range octets {
			s := fmt.Sprintf("%d.%d.%d.%d", a, b, 255-b, 255-a)

			result, err := IPv4StrToInt(s)
			require.NoError(t, err, s)
			assert.Equal(t, ip2int(s), result, s)
			assert.Equal(t, uint32(a)<<24|uint32(b)<<16|uint32(255-b)<<8|uint32(255-a), result, s)
		}
	}
}

// TestIPv4StrToIntSpacesAroundDots checks that spaces next to dots do not change the result.
func TestIPv4StrToIntSpacesAroundDots(t *testing.T) {
	base, err := IPv4StrToInt("10.20.30.40")
	require.NoError(t, err)

	for _, s := range []string{
		" 10.20.30.40",
		"10.20.30.40 ",
		"10 .20.30.40",
		"10. 20.30.40",
		"10 . 20 . 30 . 40",
		"  10  .  20  .  30  .  40  ",
	} {
		result, err := IPv4StrToInt(s)
		require.NoError(t, err, s)
		assert.Equal(t, base, result, s)
	}
}

// TestParseErrorPosition tests the offset and message carried by ParseError.
func TestParseErrorPosition(t *testing.T) {
	testCases := []struct {
		input string
		pos   int
		msg   string
	}{
		{"1 72.168.5.1", 2, `"1 72.168.5.1": space between digits '7' at offset 2`},
		{"256.0.0.1", 2, `"256.0.0.1": octet out of range '6' at offset 2`},
		{"1.2.x.4", 4, `"1.2.x.4": invalid character 'x' at offset 4`},
		{"1..2.3", 2, `"1..2.3": malformed address '.' at offset 2`},
		{"1.2.3", 5, `"1.2.3": malformed address at end of input`},
		{"", 0, `"": malformed address at end of input`},
	}

	for _, tc := range testCases {
		_, err := IPv4StrToInt(tc.input)
		require.Error(t, err, tc.input)

		var perr *ParseError
		require.True(t, errors.As(err, &perr), tc.input)
		assert.Equal(t, tc.input, perr.Input)
		assert.Equal(t, tc.pos, perr.Pos, tc.input)
		assert.EqualError(t, err, tc.msg)
	}
}

// TestIPv4StrToIntFirstErrorWins tests that parsing stops at the first violation.
func TestIPv4StrToIntFirstErrorWins(t *testing.T) {
	testCases := []struct {
		input string
		err   error
	}{
		{"1 2x", ErrSpaceBetween},
		{"1 x2", ErrInvalidChar},
		{"999.x", ErrOutOfRange},
		{"..999", ErrMalformed},
	}

	for _, tc := range testCases {
		_, err := IPv4StrToInt(tc.input)
		assert.Truef(t, errors.Is(err, tc.err), "IPv4StrToInt(%q) error = %v; want %v", tc.input, err, tc.err)
	}
}
