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

package vm

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"

	"github.com/eth-classic/go-ethereum/common"
)

type noopEnv struct{}

func (noopEnv) Db() Database                                    { return nil }
func (noopEnv) Origin() common.Address                          { return common.Address{} }
func (noopEnv) BlockNumber() *uint256.Int                        { return new(uint256.Int) }
func (noopEnv) Coinbase() common.Address                        { return common.Address{} }
func (noopEnv) Time() *uint256.Int                               { return new(uint256.Int) }
func (noopEnv) Difficulty() *uint256.Int                         { return new(uint256.Int) }
func (noopEnv) GasLimit() *uint256.Int                           { return new(uint256.Int) }
func (noopEnv) GetHash(n uint64) common.Hash                     { return common.Hash{} }
func (noopEnv) CanTransfer(common.Address, *uint256.Int) bool    { return true }
func (noopEnv) Transfer(common.Address, common.Address, *uint256.Int) {}
func (noopEnv) Depth() int                                       { return 0 }
func (noopEnv) Call(ContractRef, common.Address, []byte, uint64, *uint256.Int) ([]byte, uint64, *Frame, error) {
	return nil, 0, nil, nil
}
func (noopEnv) CallCode(ContractRef, common.Address, []byte, uint64, *uint256.Int) ([]byte, uint64, *Frame, error) {
	return nil, 0, nil, nil
}
func (noopEnv) Create(ContractRef, []byte, uint64, *uint256.Int) ([]byte, common.Address, uint64, *Frame, error) {
	return nil, common.Address{}, 0, nil, nil
}

func newTestFrame(gas uint64, code []byte) *Frame {
	msg := &Message{
		Caller:        common.BytesToAddress([]byte{1}),
		Target:        common.BytesToAddress([]byte{2}),
		CurrentTarget: common.BytesToAddress([]byte{2}),
		Gas:           uint256.NewInt(gas),
		GasPrice:      new(uint256.Int),
		Value:         new(uint256.Int),
		Code:          code,
	}
	return NewFrame(msg, noopEnv{})
}

func TestRunSimpleAddition(t *testing.T) {
	// PUSH1 2 PUSH1 3 ADD PUSH1 0 MSTORE PUSH1 32 PUSH1 0 RETURN
	code := []byte{
		byte(PUSH1), 2,
		byte(PUSH1), 3,
		byte(ADD),
		byte(PUSH1), 0,
		byte(MSTORE),
		byte(PUSH1), 32,
		byte(PUSH1), 0,
		byte(RETURN),
	}
	f := newTestFrame(100000, code)
	out, err := Run(f)
	assert.NoError(t, err)
	assert.False(t, f.HasErred)
	assert.Equal(t, uint64(5), new(uint256.Int).SetBytes(out).Uint64())
}

func TestRunOutOfGasHalts(t *testing.T) {
	code := []byte{byte(PUSH1), 1, byte(PUSH1), 1, byte(ADD)}
	f := newTestFrame(1, code) // not enough gas for even the first PUSH1
	_, err := Run(f)
	assert.Error(t, err)
	assert.True(t, f.HasErred)
	assert.Equal(t, uint64(0), f.Gas.Gas(), "an exceptional halt burns all remaining gas")
}

func TestRunInvalidOpcodeHalts(t *testing.T) {
	code := []byte{0x0c} // unassigned at this fork
	f := newTestFrame(100000, code)
	_, err := Run(f)
	assert.Equal(t, ErrInvalidOpcode, err)
}

func TestAddChildSkipsEffectsOnFailure(t *testing.T) {
	parent := newTestFrame(100000, nil)
	child := newTestFrame(100000, nil)
	child.HasErred = true
	child.Logs = append(child.Logs, &Log{Address: common.BytesToAddress([]byte{9})})
	child.AccountsToDelete[common.BytesToAddress([]byte{9})] = struct{}{}

	parent.AddChild(child)

	assert.Empty(t, parent.Logs)
	assert.Empty(t, parent.AccountsToDelete)
	assert.Len(t, parent.Children, 1)
}

func TestAddChildMergesEffectsOnSuccess(t *testing.T) {
	parent := newTestFrame(100000, nil)
	child := newTestFrame(100000, nil)
	child.Logs = append(child.Logs, &Log{Address: common.BytesToAddress([]byte{9})})
	child.AccountsToDelete[common.BytesToAddress([]byte{9})] = struct{}{}

	parent.AddChild(child)

	assert.Len(t, parent.Logs, 1)
	assert.Len(t, parent.AccountsToDelete, 1)
}
