package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/usher-2/u2ip4/internal/logger"
)

// Converter - batch conversion of addresses for the command line.
// The zero value converts without networks, dotted form or duplicate report.
type Converter struct {
	Nets    *NetworkSet // optional
	Verbose bool
	Dups    bool

	seen     IP4Set
	failures int
}

// NewConverter - converter with an empty address index.
func NewConverter(nets *NetworkSet, verbose, dups bool) *Converter {
	return &Converter{Nets: nets, Verbose: verbose, Dups: dups, seen: make(IP4Set)}
}

// Failures - number of addresses that could not be converted.
func (c *Converter) Failures() int {
	return c.failures
}

// Convert - convert one address and print the result line.
func (c *Converter) Convert(out io.Writer, line int, addr string) {
	ip, err := IPv4StrToInt(addr)
	if err != nil {
		c.failures++

		logger.Error.Printf("Line %d: %s\n", line, err)

		return
	}

	if c.seen == nil {
		c.seen = make(IP4Set)
	}

	c.seen.Insert(ip, line)

	result := fmt.Sprint(ip)
	if c.Verbose {
		result += "\t" + IntToStr(ip)
	}

	if c.Nets != nil {
		subnets, err := c.Nets.Containing(ip)
		if err != nil {
			logger.Warning.Printf("Line %d: %s\n", line, err)
		}

		result += "\t" + strings.Join(subnets, ",")
	}

	fmt.Fprintln(out, result)
}

// ConvertLines - convert every non-blank, non-comment line of r.
func (c *Converter) ConvertLines(out io.Writer, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	line := 0

	for scanner.Scan() {
		line++

		addr := strings.TrimSuffix(scanner.Text(), "\r")
		if trimmed := strings.TrimSpace(addr); trimmed == "" || trimmed[0] == '#' {
			continue
		}

		c.Convert(out, line, addr)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	return nil
}

// Report - print addresses that appeared on more than one line.
func (c *Converter) Report(out io.Writer) {
	if !c.Dups {
		return
	}

	for _, ip := range c.seen.Duplicates() {
		lines := make([]string, 0, len(c.seen[ip]))
		for _, line := range c.seen[ip] {
			lines = append(lines, fmt.Sprint(line))
		}

		fmt.Fprintf(out, "# duplicate %s (%d): lines %s\n", IntToStr(ip), ip, strings.Join(lines, ","))
	}
}
