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
	"github.com/eth-classic/go-ethereum/common"
)

// Frame is one execution context: the state a single CALL/CALLCODE/CREATE
// invocation owns for its own lifetime. A Frame never outlives the
// ProcessMessage/ProcessCreateMessage call that created it; its Children
// are run to completion and folded in before Run returns.
type Frame struct {
	Message *Message
	Env     Environment

	pc       uint64
	Stack    *Stack
	Memory   *Memory
	Gas      *GasMeter
	Output   []byte
	Running  bool
	HasErred bool
	Err      error

	Logs             []*Log
	AccountsToDelete map[common.Address]struct{}
	Children         []*Frame
}

func NewFrame(msg *Message, env Environment) *Frame {
	return &Frame{
		Message:          msg,
		Env:              env,
		Stack:            newstack(),
		Memory:           NewMemory(),
		Gas:              NewGasMeter(msg.Gas.Uint64()),
		Running:          true,
		AccountsToDelete: make(map[common.Address]struct{}),
	}
}

// Address satisfies ContractRef: the frame itself can be named as the
// caller of a nested message it spawns.
func (f *Frame) Address() common.Address { return f.Message.CurrentTarget }

// AddChild records a completed child frame and, only if it succeeded,
// folds its logs and pending self-destructs upward — the merge-on-success
// rule: a failing child's log/delete-set writes never reach the parent.
func (f *Frame) AddChild(child *Frame) {
	f.Children = append(f.Children, child)
	if child.HasErred {
		return
	}
	f.Logs = append(f.Logs, child.Logs...)
	for addr := range child.AccountsToDelete {
		f.AccountsToDelete[addr] = struct{}{}
	}
}

// halt marks the frame as finished, recording err (nil on a clean STOP/
// RETURN) and whether it was exceptional.
func (f *Frame) halt(output []byte, err error) {
	f.Running = false
	f.Output = output
	if err != nil {
		f.HasErred = true
		f.Err = err
		f.Gas.gas = 0
	}
}
