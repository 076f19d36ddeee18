package main

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"strings"
	"sync"

	"github.com/yl2chen/cidranger"
)

// NetworkSet - set of CIDR networks searchable by address.
type NetworkSet struct {
	sync.RWMutex
	netTree cidranger.Ranger
	count   int
}

// NewNetworkSet - empty network set.
func NewNetworkSet() *NetworkSet {
	return &NetworkSet{netTree: cidranger.NewPCTrieRanger()}
}

// LoadNetworks - read one CIDR per line, blank and # lines are skipped.
func LoadNetworks(r io.Reader) (*NetworkSet, error) {
	nets := NewNetworkSet()
	scanner := bufio.NewScanner(r)
	line := 0

	for scanner.Scan() {
		line++

		s := strings.TrimSpace(scanner.Text())
		if s == "" || s[0] == '#' {
			continue
		}

		if err := nets.Insert(s); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read networks: %w", err)
	}

	return nets, nil
}

// Insert - add network in CIDR notation.
func (n *NetworkSet) Insert(cidr string) error {
	_, network, err := net.ParseCIDR(cidr)
	if err != nil {
		return fmt.Errorf("parse network: %w", err)
	}

	n.Lock()
	defer n.Unlock()

	// the same network may be listed twice
	covering, err := n.containingLocked(network.IP)
	if err != nil {
		return err
	}

	for _, subnet := range covering {
		if subnet == network.String() {
			return nil
		}
	}

	if err := n.netTree.Insert(cidranger.NewBasicRangerEntry(*network)); err != nil {
		return fmt.Errorf("insert network: %w", err)
	}

	n.count++

	return nil
}

func (n *NetworkSet) containingLocked(ip net.IP) ([]string, error) {
	entries, err := n.netTree.ContainingNetworks(ip)
	if err != nil {
		return nil, fmt.Errorf("containing networks: %w", err)
	}

	subnets := make([]string, 0, len(entries))
	for _, entry := range entries {
		subnet := entry.Network()
		subnets = append(subnets, subnet.String())
	}

	return subnets, nil
}

// Containing - networks containing the address, widest first.
func (n *NetworkSet) Containing(ip uint32) ([]string, error) {
	n.RLock()
	defer n.RUnlock()

	return n.containingLocked(IntToIPv4(ip))
}

// Len - number of distinct networks.
func (n *NetworkSet) Len() int {
	n.RLock()
	defer n.RUnlock()

	return n.count
}
