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

package vm

// GasMeter tracks a frame's remaining gas. Consumption is monotonic:
// UseGas never lets the balance go negative, signalling ErrOutOfGas
// instead and leaving the balance as it was; the frame then halts
// exceptionally, and its halt sets the remaining balance to zero.
type GasMeter struct {
	gas uint64
}

func NewGasMeter(gas uint64) *GasMeter {
	return &GasMeter{gas: gas}
}

func (g *GasMeter) Gas() uint64 { return g.gas }

// UseGas subtracts amount from the remaining balance. It reports
// ErrOutOfGas, without mutating the balance, if amount exceeds what's left.
func (g *GasMeter) UseGas(amount uint64) error {
	if g.gas < amount {
		return ErrOutOfGas
	}
	g.gas -= amount
	return nil
}

// Refund credits amount back to the remaining balance, the mechanism
// SSTORE clearing a slot and SELFDESTRUCT use.
func (g *GasMeter) Refund(amount uint64) {
	g.gas += amount
}

// callGas computes the gas forwarded to a CALL/CALLCODE child: at this
// ruleset there is no 63/64ths retention (that is an EIP-150 repricing);
// the child simply gets whatever the caller requested, capped at what
// remains. opCall/opCallCode add the 2300 stipend to its result when the
// message carries value. CREATE does not use it: it forwards all of its
// remaining gas.
func callGas(availableGas, requestedGas uint64) uint64 {
	if requestedGas > availableGas {
		return availableGas
	}
	return requestedGas
}
