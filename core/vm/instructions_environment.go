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

func opAddress(pc *uint64, f *Frame) ([]byte, error) {
	f.Stack.push(f.Message.CurrentTarget.Word())
	return nil, nil
}

func opBalance(pc *uint64, f *Frame) ([]byte, error) {
	slot := f.Stack.peek()
	addr := common.AddressFromWord(slot)
	slot.Set(f.Env.Db().GetBalance(addr))
	return nil, nil
}

func opOrigin(pc *uint64, f *Frame) ([]byte, error) {
	f.Stack.push(f.Env.Origin().Word())
	return nil, nil
}

func opCaller(pc *uint64, f *Frame) ([]byte, error) {
	f.Stack.push(f.Message.Caller.Word())
	return nil, nil
}

func opCallValue(pc *uint64, f *Frame) ([]byte, error) {
	f.Stack.push(new(uint256.Int).Set(f.Message.Value))
	return nil, nil
}

func opCalldataLoad(pc *uint64, f *Frame) ([]byte, error) {
	x := f.Stack.peek()
	data := getData(f.Message.Data, x, 32)
	x.SetBytes(data)
	return nil, nil
}

func opCalldataSize(pc *uint64, f *Frame) ([]byte, error) {
	f.Stack.push(new(uint256.Int).SetUint64(uint64(len(f.Message.Data))))
	return nil, nil
}

func opCalldataCopy(pc *uint64, f *Frame) ([]byte, error) {
	memOff, dataOff, length := f.Stack.pop(), f.Stack.pop(), f.Stack.pop()
	if length.IsZero() {
		return nil, nil
	}
	data := getData(f.Message.Data, &dataOff, length.Uint64())
	f.Memory.Set(memOff.Uint64(), length.Uint64(), data)
	return nil, nil
}

func opCodeSize(pc *uint64, f *Frame) ([]byte, error) {
	f.Stack.push(new(uint256.Int).SetUint64(uint64(len(f.Message.Code))))
	return nil, nil
}

func opCodeCopy(pc *uint64, f *Frame) ([]byte, error) {
	memOff, codeOff, length := f.Stack.pop(), f.Stack.pop(), f.Stack.pop()
	if length.IsZero() {
		return nil, nil
	}
	data := getData(f.Message.Code, &codeOff, length.Uint64())
	f.Memory.Set(memOff.Uint64(), length.Uint64(), data)
	return nil, nil
}

func opGasprice(pc *uint64, f *Frame) ([]byte, error) {
	f.Stack.push(new(uint256.Int).Set(f.Message.GasPrice))
	return nil, nil
}

func opExtCodeSize(pc *uint64, f *Frame) ([]byte, error) {
	slot := f.Stack.peek()
	addr := common.AddressFromWord(slot)
	slot.SetUint64(uint64(f.Env.Db().GetCodeSize(addr)))
	return nil, nil
}

func opExtCodeCopy(pc *uint64, f *Frame) ([]byte, error) {
	addrWord := f.Stack.pop()
	memOff, codeOff, length := f.Stack.pop(), f.Stack.pop(), f.Stack.pop()
	if length.IsZero() {
		return nil, nil
	}
	addr := common.AddressFromWord(&addrWord)
	code := f.Env.Db().GetCode(addr)
	data := getData(code, &codeOff, length.Uint64())
	f.Memory.Set(memOff.Uint64(), length.Uint64(), data)
	return nil, nil
}

func gasCalldataCopy(f *Frame, memorySize uint64) (uint64, error) {
	size := f.Stack.Back(2)
	return gasCopyWords(size)
}

func gasCodeCopy(f *Frame, memorySize uint64) (uint64, error) {
	size := f.Stack.Back(2)
	return gasCopyWords(size)
}

func gasExtCodeCopy(f *Frame, memorySize uint64) (uint64, error) {
	size := f.Stack.Back(3)
	return gasCopyWords(size)
}

func gasCopyWords(size *uint256.Int) (uint64, error) {
	words := toWordSize(size.Uint64())
	return words * params.GasCopy, nil
}

func memoryCalldataCopy(stack *Stack) (uint64, bool) {
	return calcMemSize(stack.Back(0), stack.Back(2))
}

func memoryExtCodeCopy(stack *Stack) (uint64, bool) {
	return calcMemSize(stack.Back(1), stack.Back(3))
}

func opBlockhash(pc *uint64, f *Frame) ([]byte, error) {
	num := f.Stack.peek()
	if !num.IsUint64() {
		num.Clear()
		return nil, nil
	}
	h := f.Env.GetHash(num.Uint64())
	num.SetBytes(h.Bytes())
	return nil, nil
}

func opCoinbase(pc *uint64, f *Frame) ([]byte, error) {
	f.Stack.push(f.Env.Coinbase().Word())
	return nil, nil
}

func opTimestamp(pc *uint64, f *Frame) ([]byte, error) {
	f.Stack.push(new(uint256.Int).Set(f.Env.Time()))
	return nil, nil
}

func opNumber(pc *uint64, f *Frame) ([]byte, error) {
	f.Stack.push(new(uint256.Int).Set(f.Env.BlockNumber()))
	return nil, nil
}

func opDifficulty(pc *uint64, f *Frame) ([]byte, error) {
	f.Stack.push(new(uint256.Int).Set(f.Env.Difficulty()))
	return nil, nil
}

func opGasLimit(pc *uint64, f *Frame) ([]byte, error) {
	f.Stack.push(new(uint256.Int).Set(f.Env.GasLimit()))
	return nil, nil
}
