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
	"github.com/eth-classic/go-ethereum/logger"
	"github.com/eth-classic/go-ethereum/logger/glog"
)

var frontierInstructionSet = newFrontierInstructionSet()

// Run drives f's fetch-decode-execute loop to completion: it only returns
// once f.Running is false, i.e. the frame has STOPped, RETURNed,
// SELFDESTRUCTed, or hit an exceptional halt condition. It never recurses
// into a child frame itself — CALL/CALLCODE/CREATE handlers call back out
// through f.Env to do that, and fold the child's result in before
// continuing.
func Run(f *Frame) ([]byte, error) {
	if len(f.Message.Code) == 0 {
		f.halt(nil, nil)
		return nil, nil
	}

	var (
		op OpCode
		pc = f.pc
	)

	for f.Running {
		op = f.readOp(pc)
		operation := frontierInstructionSet[op]
		if !operation.valid {
			f.halt(nil, ErrInvalidOpcode)
			break
		}

		if err := f.Stack.require(operation.minStack); err != nil {
			f.halt(nil, err)
			break
		}
		if f.Stack.Len() > operation.maxStack {
			f.halt(nil, ErrStackOverflow)
			break
		}

		var memSize uint64
		if operation.memorySize != nil {
			size, overflow := operation.memorySize(f.Stack)
			if overflow {
				f.halt(nil, ErrOutOfGas)
				break
			}
			if size, overflow = wordAlign(size); overflow {
				f.halt(nil, ErrOutOfGas)
				break
			}
			memSize = size
		}

		cost := operation.constantGas
		if memSize > f.Memory.lastMemSize() {
			memCost, err := memoryGasCost(f.Memory, memSize)
			if err != nil {
				f.halt(nil, err)
				break
			}
			cost += memCost
		}
		if operation.dynamicGas != nil {
			dynCost, err := operation.dynamicGas(f, memSize)
			if err != nil {
				f.halt(nil, err)
				break
			}
			cost += dynCost
		}
		if err := f.Gas.UseGas(cost); err != nil {
			f.halt(nil, err)
			break
		}

		if memSize > uint64(f.Memory.Len()) {
			f.Memory.Resize(memSize)
		}

		glog.V(logger.Detail).Infof("pc=%-5d op=%-14s gas=%-8d stack=%d", pc, op, f.Gas.Gas(), f.Stack.Len())

		f.pc = pc
		ret, err := operation.execute(&pc, f)
		if err != nil {
			f.halt(nil, err)
			break
		}
		if operation.halts {
			f.halt(ret, nil)
			break
		}
		if !operation.jumps {
			pc++
		}
	}

	f.Stack.returnToPool()
	return f.Output, f.Err
}

// readOp returns STOP for any pc past the end of code, so a frame that
// falls off the end of its code halts cleanly.
func (f *Frame) readOp(pc uint64) OpCode {
	if pc >= uint64(len(f.Message.Code)) {
		return STOP
	}
	return OpCode(f.Message.Code[pc])
}

func (m *Memory) lastMemSize() uint64 { return uint64(len(m.store)) }

// wordAlign rounds size up to the next 32-byte boundary, as every memory
// access implicitly reserves whole words.
func wordAlign(size uint64) (uint64, bool) {
	if size > 0x1FFFFFFFE0 {
		return 0, true
	}
	return toWordSize(size) * 32, false
}
