// Copyright 2014 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package state

import (
	"sort"

	"github.com/davecgh/go-spew/spew"

	"github.com/eth-classic/go-ethereum/common"
)

// Dump pretty-prints every account this overlay currently knows about, in
// address order, the way cmd/frontier-evm -dump surfaces post-execution
// state for manual inspection. It is debug tooling, not a canonical state
// root computation — there is no trie here to compute one against.
func (s *StateDB) Dump() string {
	addrs := make([]common.Address, 0, len(s.accounts))
	for addr := range s.accounts {
		addrs = append(addrs, addr)
	}
	sort.Slice(addrs, func(i, j int) bool {
		return string(addrs[i].Bytes()) < string(addrs[j].Bytes())
	})

	cfg := spew.ConfigState{Indent: "  ", DisableMethods: true, SortKeys: true}
	out := make(map[string]*Account, len(addrs))
	for _, addr := range addrs {
		out[addr.Hex()] = s.accounts[addr]
	}
	return cfg.Sdump(out)
}
