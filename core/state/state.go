// Copyright 2015 The go-ethereum Authors
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

// Package state is the in-memory world-state overlay the core interpreter
// reads and mutates through vm.Database. It is a journal, not a database:
// every mutating call records an undo entry, and RevertToSnapshot replays
// those entries backward, which is what lets a failing CALL/CALLCODE/
// CREATE's writes disappear without disturbing a sibling frame's.
package state

import (
	"github.com/holiman/uint256"

	"github.com/eth-classic/go-ethereum/common"
	"github.com/eth-classic/go-ethereum/crypto"
)

func codeHash(code []byte) common.Hash {
	if len(code) == 0 {
		return common.Hash{}
	}
	return crypto.Keccak256Hash(code)
}

// Account is one world-state entry: an externally-owned account has empty
// Code/CodeHash/Storage; a contract account has non-empty Code.
type Account struct {
	Nonce    uint64
	Balance  *uint256.Int
	Code     []byte
	CodeHash common.Hash
	Storage  map[common.Hash]common.Hash
	suicided bool
}

func newAccount() *Account {
	return &Account{
		Balance: new(uint256.Int),
		Storage: make(map[common.Hash]common.Hash),
	}
}

func (a *Account) empty() bool {
	return a.Nonce == 0 && a.Balance.IsZero() && len(a.Code) == 0
}

// journalEntry is one undoable mutation. apply restores the pre-mutation
// value onto db.
type journalEntry func(db *StateDB)

// Database is the optional persistent backing store a StateDB may be
// layered over (see NewDB); without one, a StateDB is a pure in-memory
// overlay that only lives for the duration of one process run.
type Database interface {
	Get(key []byte) ([]byte, error)
	Put(key, value []byte) error
}

// StateDB implements vm.Database: the journaled world-state overlay every
// frame in a call tree shares and mutates through Environment.
type StateDB struct {
	accounts map[common.Address]*Account
	journal  []journalEntry
	backing  Database // optional; nil means pure in-memory
}

func New() *StateDB {
	return &StateDB{accounts: make(map[common.Address]*Account)}
}

// NewDB layers a StateDB over a persistent key/value backing store (a
// github.com/syndtr/goleveldb-backed ethdb.LDBDatabase, typically). Every
// write goes through the journal, and Commit writes each account's code to
// backing. Reads never consult backing: a StateDB built by NewDB starts
// empty, like one built by New, and nonces, balances and storage are not
// written out.
func NewDB(backing Database) *StateDB {
	return &StateDB{accounts: make(map[common.Address]*Account), backing: backing}
}

func (s *StateDB) getAccount(addr common.Address) *Account {
	if a, ok := s.accounts[addr]; ok {
		return a
	}
	return nil
}

func (s *StateDB) getOrNewAccount(addr common.Address) *Account {
	if a := s.getAccount(addr); a != nil {
		return a
	}
	a := newAccount()
	s.accounts[addr] = a
	s.journal = append(s.journal, func(db *StateDB) {
		delete(db.accounts, addr)
	})
	return a
}

func (s *StateDB) Exist(addr common.Address) bool {
	return s.getAccount(addr) != nil
}

func (s *StateDB) CreateAccount(addr common.Address) {
	s.getOrNewAccount(addr)
}

func (s *StateDB) GetBalance(addr common.Address) *uint256.Int {
	if a := s.getAccount(addr); a != nil {
		return new(uint256.Int).Set(a.Balance)
	}
	return new(uint256.Int)
}

func (s *StateDB) AddBalance(addr common.Address, amount *uint256.Int) {
	a := s.getOrNewAccount(addr)
	prev := new(uint256.Int).Set(a.Balance)
	a.Balance.Add(a.Balance, amount)
	s.journal = append(s.journal, func(db *StateDB) {
		if acc := db.getAccount(addr); acc != nil {
			acc.Balance = prev
		}
	})
}

func (s *StateDB) SubBalance(addr common.Address, amount *uint256.Int) {
	a := s.getOrNewAccount(addr)
	prev := new(uint256.Int).Set(a.Balance)
	a.Balance.Sub(a.Balance, amount)
	s.journal = append(s.journal, func(db *StateDB) {
		if acc := db.getAccount(addr); acc != nil {
			acc.Balance = prev
		}
	})
}

func (s *StateDB) GetNonce(addr common.Address) uint64 {
	if a := s.getAccount(addr); a != nil {
		return a.Nonce
	}
	return 0
}

func (s *StateDB) SetNonce(addr common.Address, nonce uint64) {
	a := s.getOrNewAccount(addr)
	prev := a.Nonce
	a.Nonce = nonce
	s.journal = append(s.journal, func(db *StateDB) {
		if acc := db.getAccount(addr); acc != nil {
			acc.Nonce = prev
		}
	})
}

func (s *StateDB) GetCode(addr common.Address) []byte {
	if a := s.getAccount(addr); a != nil {
		return a.Code
	}
	return nil
}

func (s *StateDB) GetCodeSize(addr common.Address) int {
	return len(s.GetCode(addr))
}

func (s *StateDB) GetCodeHash(addr common.Address) common.Hash {
	if a := s.getAccount(addr); a != nil {
		return a.CodeHash
	}
	return common.Hash{}
}

func (s *StateDB) SetCode(addr common.Address, code []byte) {
	a := s.getOrNewAccount(addr)
	prevCode, prevHash := a.Code, a.CodeHash
	a.Code = code
	a.CodeHash = codeHash(code)
	s.journal = append(s.journal, func(db *StateDB) {
		if acc := db.getAccount(addr); acc != nil {
			acc.Code, acc.CodeHash = prevCode, prevHash
		}
	})
}

func (s *StateDB) GetState(addr common.Address, key common.Hash) common.Hash {
	if a := s.getAccount(addr); a != nil {
		return a.Storage[key]
	}
	return common.Hash{}
}

func (s *StateDB) SetState(addr common.Address, key, value common.Hash) {
	a := s.getOrNewAccount(addr)
	prev := a.Storage[key]
	a.Storage[key] = value
	s.journal = append(s.journal, func(db *StateDB) {
		if acc := db.getAccount(addr); acc != nil {
			acc.Storage[key] = prev
		}
	})
}

func (s *StateDB) Suicide(addr common.Address) bool {
	a := s.getAccount(addr)
	if a == nil {
		return false
	}
	wasSuicided := a.suicided
	prevBalance := new(uint256.Int).Set(a.Balance)
	a.suicided = true
	a.Balance = new(uint256.Int)
	s.journal = append(s.journal, func(db *StateDB) {
		if acc := db.getAccount(addr); acc != nil {
			acc.suicided = wasSuicided
			acc.Balance = prevBalance
		}
	})
	return true
}

func (s *StateDB) HasSuicided(addr common.Address) bool {
	if a := s.getAccount(addr); a != nil {
		return a.suicided
	}
	return false
}

// Snapshot returns an opaque marker identifying the journal's current
// length; RevertToSnapshot undoes every entry recorded after it, in
// reverse order, giving O(writes-since-snapshot) rollback.
func (s *StateDB) Snapshot() int {
	return len(s.journal)
}

func (s *StateDB) RevertToSnapshot(id int) {
	for i := len(s.journal) - 1; i >= id; i-- {
		s.journal[i](s)
	}
	s.journal = s.journal[:id]
}

// Commit writes every account's code to the persistent backing store,
// keyed by address, if one was supplied via NewDB. A pure in-memory
// StateDB's Commit is a no-op.
func (s *StateDB) Commit() error {
	if s.backing == nil {
		return nil
	}
	for addr, a := range s.accounts {
		if err := s.backing.Put(addr.Bytes(), a.Code); err != nil {
			return err
		}
	}
	return nil
}
