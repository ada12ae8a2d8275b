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

	"github.com/eth-classic/go-ethereum/crypto"
	"github.com/eth-classic/go-ethereum/params"
)

// All arithmetic wraps modulo 2^256, matching the EVM's word semantics;
// uint256.Int's Add/Sub/Mul already wrap instead of erroring, so unlike the
// frame-level gas/stack discipline there is no overflow error to surface
// here.

func opAdd(pc *uint64, f *Frame) ([]byte, error) {
	x, y := f.Stack.pop(), f.Stack.peek()
	y.Add(&x, y)
	return nil, nil
}

func opSub(pc *uint64, f *Frame) ([]byte, error) {
	x, y := f.Stack.pop(), f.Stack.peek()
	y.Sub(&x, y)
	return nil, nil
}

func opMul(pc *uint64, f *Frame) ([]byte, error) {
	x, y := f.Stack.pop(), f.Stack.peek()
	y.Mul(&x, y)
	return nil, nil
}

func opDiv(pc *uint64, f *Frame) ([]byte, error) {
	x, y := f.Stack.pop(), f.Stack.peek()
	y.Div(&x, y)
	return nil, nil
}

func opSdiv(pc *uint64, f *Frame) ([]byte, error) {
	x, y := f.Stack.pop(), f.Stack.peek()
	y.SDiv(&x, y)
	return nil, nil
}

func opMod(pc *uint64, f *Frame) ([]byte, error) {
	x, y := f.Stack.pop(), f.Stack.peek()
	y.Mod(&x, y)
	return nil, nil
}

func opSmod(pc *uint64, f *Frame) ([]byte, error) {
	x, y := f.Stack.pop(), f.Stack.peek()
	y.SMod(&x, y)
	return nil, nil
}

func opAddmod(pc *uint64, f *Frame) ([]byte, error) {
	x, y, z := f.Stack.pop(), f.Stack.pop(), f.Stack.peek()
	z.AddMod(&x, &y, z)
	return nil, nil
}

func opMulmod(pc *uint64, f *Frame) ([]byte, error) {
	x, y, z := f.Stack.pop(), f.Stack.pop(), f.Stack.peek()
	z.MulMod(&x, &y, z)
	return nil, nil
}

func opExp(pc *uint64, f *Frame) ([]byte, error) {
	base, exponent := f.Stack.pop(), f.Stack.peek()
	exponent.Exp(&base, exponent)
	return nil, nil
}

func opSignExtend(pc *uint64, f *Frame) ([]byte, error) {
	back, num := f.Stack.pop(), f.Stack.peek()
	num.ExtendSign(num, &back)
	return nil, nil
}

func opLt(pc *uint64, f *Frame) ([]byte, error) {
	x, y := f.Stack.pop(), f.Stack.peek()
	if x.Lt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil, nil
}

func opGt(pc *uint64, f *Frame) ([]byte, error) {
	x, y := f.Stack.pop(), f.Stack.peek()
	if x.Gt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil, nil
}

func opSlt(pc *uint64, f *Frame) ([]byte, error) {
	x, y := f.Stack.pop(), f.Stack.peek()
	if x.Slt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil, nil
}

func opSgt(pc *uint64, f *Frame) ([]byte, error) {
	x, y := f.Stack.pop(), f.Stack.peek()
	if x.Sgt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil, nil
}

func opEq(pc *uint64, f *Frame) ([]byte, error) {
	x, y := f.Stack.pop(), f.Stack.peek()
	if x.Eq(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil, nil
}

func opIszero(pc *uint64, f *Frame) ([]byte, error) {
	x := f.Stack.peek()
	if x.IsZero() {
		x.SetOne()
	} else {
		x.Clear()
	}
	return nil, nil
}

func opAnd(pc *uint64, f *Frame) ([]byte, error) {
	x, y := f.Stack.pop(), f.Stack.peek()
	y.And(&x, y)
	return nil, nil
}

func opOr(pc *uint64, f *Frame) ([]byte, error) {
	x, y := f.Stack.pop(), f.Stack.peek()
	y.Or(&x, y)
	return nil, nil
}

func opXor(pc *uint64, f *Frame) ([]byte, error) {
	x, y := f.Stack.pop(), f.Stack.peek()
	y.Xor(&x, y)
	return nil, nil
}

func opNot(pc *uint64, f *Frame) ([]byte, error) {
	x := f.Stack.peek()
	x.Not(x)
	return nil, nil
}

func opByte(pc *uint64, f *Frame) ([]byte, error) {
	th, val := f.Stack.pop(), f.Stack.peek()
	val.Byte(&th)
	return nil, nil
}

func opSha3(pc *uint64, f *Frame) ([]byte, error) {
	offset, size := f.Stack.pop(), f.Stack.pop()
	data := f.Memory.GetPtr(int64(offset.Uint64()), int64(size.Uint64()))
	hash := crypto.Keccak256(data)
	f.Stack.push(new(uint256.Int).SetBytes(hash))
	return nil, nil
}

func gasExp(f *Frame, memorySize uint64) (uint64, error) {
	exponent := f.Stack.Back(1)
	byteLen := (exponent.BitLen() + 7) / 8
	return uint64(byteLen) * params.GasExpByte, nil
}

func memorySha3(stack *Stack) (uint64, bool) {
	return calcMemSize(stack.Back(0), stack.Back(1))
}

func gasSha3(f *Frame, memorySize uint64) (uint64, error) {
	size := f.Stack.Back(1)
	words := toWordSize(size.Uint64())
	return words * params.Sha3WordGas, nil
}
