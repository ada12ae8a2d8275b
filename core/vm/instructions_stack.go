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
	"github.com/holiman/uint256"

	"github.com/eth-classic/go-ethereum/common"
	"github.com/eth-classic/go-ethereum/params"
)

func opPop(pc *uint64, f *Frame) ([]byte, error) {
	f.Stack.pop()
	return nil, nil
}

func opMload(pc *uint64, f *Frame) ([]byte, error) {
	offset := f.Stack.peek()
	offset.SetBytes(f.Memory.Get(int64(offset.Uint64()), 32))
	return nil, nil
}

func opMstore(pc *uint64, f *Frame) ([]byte, error) {
	mStart, val := f.Stack.pop(), f.Stack.pop()
	f.Memory.Set32(mStart.Uint64(), &val)
	return nil, nil
}

func opMstore8(pc *uint64, f *Frame) ([]byte, error) {
	off, val := f.Stack.pop(), f.Stack.pop()
	f.Memory.store[off.Uint64()] = byte(val.Uint64())
	return nil, nil
}

func opSload(pc *uint64, f *Frame) ([]byte, error) {
	loc := f.Stack.peek()
	hash := common.HashFromWord(loc)
	val := f.Env.Db().GetState(f.Message.CurrentTarget, hash)
	loc.SetBytes(val.Bytes())
	return nil, nil
}

func opSstore(pc *uint64, f *Frame) ([]byte, error) {
	loc, val := f.Stack.pop(), f.Stack.pop()
	key := common.HashFromWord(&loc)
	f.Env.Db().SetState(f.Message.CurrentTarget, key, common.HashFromWord(&val))
	return nil, nil
}

func gasSstore(f *Frame, memorySize uint64) (uint64, error) {
	loc, val := f.Stack.Back(0), f.Stack.Back(1)
	key := common.HashFromWord(loc)
	current := f.Env.Db().GetState(f.Message.CurrentTarget, key)
	empty := current == (common.Hash{})

	switch {
	case empty && !val.IsZero():
		return params.SstoreSetGas, nil
	case !empty && val.IsZero():
		f.Gas.Refund(params.SstoreRefundGas)
		return params.SstoreResetGas, nil
	default:
		return params.SstoreResetGas, nil
	}
}

func opJump(pc *uint64, f *Frame) ([]byte, error) {
	dest := f.Stack.pop()
	if !validJumpdest(f.Message.Code, &dest) {
		return nil, ErrInvalidJump
	}
	*pc = dest.Uint64()
	return nil, nil
}

func opJumpi(pc *uint64, f *Frame) ([]byte, error) {
	dest, cond := f.Stack.pop(), f.Stack.pop()
	if !cond.IsZero() {
		if !validJumpdest(f.Message.Code, &dest) {
			return nil, ErrInvalidJump
		}
		*pc = dest.Uint64()
		return nil, nil
	}
	*pc++
	return nil, nil
}

// validJumpdest reports whether dest names an in-bounds JUMPDEST that is
// not itself a byte embedded in a preceding PUSH's immediate data.
func validJumpdest(code []byte, dest *uint256.Int) bool {
	if !dest.IsUint64() {
		return false
	}
	udest := dest.Uint64()
	if udest >= uint64(len(code)) {
		return false
	}
	if OpCode(code[udest]) != JUMPDEST {
		return false
	}
	pc := uint64(0)
	for pc < udest {
		if op := OpCode(code[pc]); op.IsPush() {
			pc += uint64(op.PushSize())
		}
		pc++
	}
	return pc == udest
}

func opPc(pc *uint64, f *Frame) ([]byte, error) {
	f.Stack.push(new(uint256.Int).SetUint64(*pc))
	return nil, nil
}

func opMsize(pc *uint64, f *Frame) ([]byte, error) {
	f.Stack.push(new(uint256.Int).SetUint64(uint64(f.Memory.Len())))
	return nil, nil
}

func opGas(pc *uint64, f *Frame) ([]byte, error) {
	f.Stack.push(new(uint256.Int).SetUint64(f.Gas.Gas()))
	return nil, nil
}

func opJumpdest(pc *uint64, f *Frame) ([]byte, error) {
	return nil, nil
}

func opStop(pc *uint64, f *Frame) ([]byte, error) {
	return nil, nil
}

func gasMload(f *Frame, memorySize uint64) (uint64, error)  { return 0, nil }
func gasMstore(f *Frame, memorySize uint64) (uint64, error) { return 0, nil }
func gasMstore8(f *Frame, memorySize uint64) (uint64, error) { return 0, nil }

func memoryMload(stack *Stack) (uint64, bool) {
	one := uint256.NewInt(32)
	return calcMemSize(stack.Back(0), one)
}

func memoryMstore(stack *Stack) (uint64, bool) {
	one := uint256.NewInt(32)
	return calcMemSize(stack.Back(0), one)
}

func memoryMstore8(stack *Stack) (uint64, bool) {
	one := uint256.NewInt(1)
	return calcMemSize(stack.Back(0), one)
}

func makePush(size uint64) execFunc {
	return func(pc *uint64, f *Frame) ([]byte, error) {
		codeLen := uint64(len(f.Message.Code))
		start := *pc + 1
		var data []byte
		if start >= codeLen {
			data = nil
		} else {
			end := start + size
			if end > codeLen {
				end = codeLen
			}
			data = f.Message.Code[start:end]
		}
		val := new(uint256.Int).SetBytes(common.RightPadBytes(data, int(size)))
		f.Stack.push(val)
		*pc += size
		return nil, nil
	}
}

func makeDup(n int) execFunc {
	return func(pc *uint64, f *Frame) ([]byte, error) {
		f.Stack.dup(n)
		return nil, nil
	}
}

func makeSwap(n int) execFunc {
	return func(pc *uint64, f *Frame) ([]byte, error) {
		f.Stack.swap(n)
		return nil, nil
	}
}

func makeLog(n int) execFunc {
	return func(pc *uint64, f *Frame) ([]byte, error) {
		mStart, mSize := f.Stack.pop(), f.Stack.pop()
		topics := make([]common.Hash, n)
		for i := 0; i < n; i++ {
			t := f.Stack.pop()
			topics[i] = common.HashFromWord(&t)
		}
		data := f.Memory.Get(int64(mStart.Uint64()), int64(mSize.Uint64()))
		f.Logs = append(f.Logs, &Log{
			Address: f.Message.CurrentTarget,
			Topics:  topics,
			Data:    data,
		})
		return nil, nil
	}
}

func makeGasLog(n int) gasFunc {
	return func(f *Frame, memorySize uint64) (uint64, error) {
		size := f.Stack.Back(1)
		return params.LogGas + uint64(n)*params.LogTopicGas + size.Uint64()*params.LogDataGas, nil
	}
}

func memoryLog(stack *Stack) (uint64, bool) {
	return calcMemSize(stack.Back(0), stack.Back(1))
}
