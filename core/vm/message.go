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
)

// Message is the immutable description of one call or contract-creation
// frame: everything the frame's opcodes may read about why they were
// invoked, but never mutate. A child frame gets a fresh Message of its own;
// nothing here is shared across frame boundaries.
type Message struct {
	Caller        common.Address  // account that sent this message (CALLER)
	Target        common.Address  // account the message is addressed to; under CALLCODE, the caller itself
	CurrentTarget common.Address  // account whose storage and balance the code acts on (ADDRESS, SLOAD/SSTORE); under CALLCODE, the caller itself
	CodeAddress   *common.Address // account whose code is executing, nil for a CREATE constructor which has no prior code
	Gas           *uint256.Int    // gas made available to this frame at creation; GasMeter tracks consumption separately
	GasPrice      *uint256.Int
	Value         *uint256.Int // wei sent along with this message (CALLVALUE)
	Data          []byte       // calldata (CALLDATA*)
	Code          []byte       // the code this frame executes
	Depth         int          // 0 for the top-level message, incremented by each CALL/CALLCODE/CREATE
	IsCreate      bool         // true for a CREATE frame: code is the init code, Data is unused, success stores Output as the new account's code
}
