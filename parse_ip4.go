package main

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Errors
var (
	ErrInvalidChar  = errors.New("invalid character")
	ErrOutOfRange   = errors.New("octet out of range")
	ErrSpaceBetween = errors.New("space between digits")
	ErrMalformed    = errors.New("malformed address")
)

// ParseError - reports where IPv4StrToInt stopped and why.
type ParseError struct {
	Input string
	Pos   int // byte offset, len(Input) when the address ended too early
	Err   error
}

func (e *ParseError) Error() string {
	if e.Pos >= len(e.Input) {
		return fmt.Sprintf("%q: %s at end of input", e.Input, e.Err)
	}

	r, _ := utf8.DecodeRuneInString(e.Input[e.Pos:])

	return fmt.Sprintf("%q: %s %q at offset %d", e.Input, e.Err, r, e.Pos)
}

func (e *ParseError) Unwrap() error { return e.Err }

// We have 4 sections of numbers and 3 dots. Each section goes through
// START, MIDDLE and END. A dot moves to the next section and is rejected
// by START. A digit moves START to MIDDLE and is rejected by END. A space
// moves MIDDLE to END and leaves the other two alone.
type ip4Phase byte

const (
	phaseStart  ip4Phase = iota // no digits in the section yet
	phaseMiddle                 // reading digits
	phaseEnd                    // closed by a space
)

const (
	maxSection = 3
	maxOctet   = 0xFF

	// endOfInput is fed to the transition function once, after the last character.
	endOfInput = -1
)

type ip4State struct {
	section int
	phase   ip4Phase
	octet   uint32
	ip      uint32
}

func checkChar(c byte) error {
	if c != '.' && c != ' ' && !('0' <= c && c <= '9') {
		return ErrInvalidChar
	}

	return nil
}

// accumulate folds the last completed octet into ip.
// Only on START -> MIDDLE and at the end of input.
func (st *ip4State) accumulate() {
	st.ip = st.ip<<8 | st.octet
}

func (st *ip4State) transition(c int) error {
	switch c {
	case '.':
		if st.section >= maxSection || st.phase == phaseStart {
			return ErrMalformed
		}

		st.section++
		st.phase = phaseStart
	case ' ':
		if st.phase == phaseMiddle {
			st.phase = phaseEnd
		}
	case endOfInput:
		if st.phase == phaseStart || st.section != maxSection {
			return ErrMalformed
		}

		st.accumulate()
	default: // digit
		d := uint32(c - '0')

		switch st.phase {
		case phaseEnd:
			return ErrSpaceBetween
		case phaseStart:
			st.accumulate()
			st.phase = phaseMiddle
			st.octet = d
		default:
			n := st.octet*10 + d
			if n > maxOctet {
				return ErrOutOfRange
			}

			st.octet = n
		}
	}

	return nil
}

// IPv4StrToInt converts a string containing an IPv4 address to its uint32 representation.
// Spaces are allowed around the dots and at both ends of the string, but not
// between the digits of one octet. Errors are *ParseError wrapping one of
// ErrInvalidChar, ErrOutOfRange, ErrSpaceBetween or ErrMalformed.
func IPv4StrToInt(s string) (uint32, error) {
	var st ip4State

	for i := 0; i < len(s); i++ {
		if err := checkChar(s[i]); err != nil {
			return 0, &ParseError{Input: s, Pos: i, Err: err}
		}

		if err := st.transition(int(s[i])); err != nil {
			return 0, &ParseError{Input: s, Pos: i, Err: err}
		}
	}

	if err := st.transition(endOfInput); err != nil {
		return 0, &ParseError{Input: s, Pos: len(s), Err: err}
	}

	return st.ip, nil
}
