// Copyright 2014 The go-ethereum Authors
// This file is part of go-ethereum.
//
// go-ethereum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-ethereum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-ethereum. If not, see <http://www.gnu.org/licenses/>.

// frontier-evm executes a single EVM code snippet against a fresh in-memory
// world state, the way cmd/evm did for the classic (pre-EIP150) fork rules.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/holiman/uint256"
	"gopkg.in/urfave/cli.v1"

	"github.com/eth-classic/go-ethereum/common"
	"github.com/eth-classic/go-ethereum/core"
	"github.com/eth-classic/go-ethereum/core/state"
	"github.com/eth-classic/go-ethereum/core/vm"
	"github.com/eth-classic/go-ethereum/ethdb"
	"github.com/eth-classic/go-ethereum/logger/glog"
)

var Version = "unknown"

var (
	CodeFlag = cli.StringFlag{
		Name:  "code",
		Usage: "EVM code (hex)",
	}
	GasFlag = cli.StringFlag{
		Name:  "gas",
		Usage: "gas limit for the run",
		Value: "10000000000",
	}
	PriceFlag = cli.StringFlag{
		Name:  "price",
		Usage: "gas price set for the run",
		Value: "0",
	}
	ValueFlag = cli.StringFlag{
		Name:  "value",
		Usage: "value sent with the message",
		Value: "0",
	}
	InputFlag = cli.StringFlag{
		Name:  "input",
		Usage: "calldata (hex)",
	}
	DumpFlag = cli.BoolFlag{
		Name:  "dump",
		Usage: "dumps the resulting state after the run",
	}
	CreateFlag = cli.BoolFlag{
		Name:  "create",
		Usage: "run code as a CREATE's init code instead of a CALL target",
	}
	VerbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Usage: "sets the glog verbosity level",
	}
	DBFlag = cli.StringFlag{
		Name:  "statedb",
		Usage: "optional leveldb directory the resulting account code is written to",
	}
)

var app *cli.App

func init() {
	app = cli.NewApp()
	app.Name = filepath.Base(os.Args[0])
	app.Version = Version
	app.Usage = "run a single EVM message against a fresh or persisted world state"
	app.Action = run
	app.Flags = []cli.Flag{
		CreateFlag,
		VerbosityFlag,
		CodeFlag,
		GasFlag,
		PriceFlag,
		ValueFlag,
		InputFlag,
		DumpFlag,
		DBFlag,
	}
}

func mustUint256(s string) *uint256.Int {
	n, err := uint256.FromDecimal(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "malformed numeric flag value %q: %v\n", s, err)
		os.Exit(1)
	}
	return n
}

func run(ctx *cli.Context) error {
	glog.SetToStderr(true)
	glog.SetV(ctx.GlobalInt(VerbosityFlag.Name))

	var db *state.StateDB
	if path := ctx.GlobalString(DBFlag.Name); path != "" {
		backing, err := ethdb.NewLDBDatabase(path, 0, 0)
		if err != nil {
			return fmt.Errorf("opening statedb at %s: %v", path, err)
		}
		defer backing.Close()
		db = state.NewDB(backing)
	} else {
		db = state.New()
	}

	sender := common.BytesToAddress([]byte("sender"))
	value := mustUint256(ctx.GlobalString(ValueFlag.Name))
	gas := mustUint256(ctx.GlobalString(GasFlag.Name))
	price := mustUint256(ctx.GlobalString(PriceFlag.Name))

	vmctx := core.Context{
		Origin:      sender,
		GasPrice:    price,
		Coinbase:    sender,
		BlockNumber: uint256.NewInt(1),
		Time:        uint256.NewInt(0),
		Difficulty:  uint256.NewInt(0x020000),
		GasLimit:    gas,
		GetHash:     func(n uint64) common.Hash { return common.Hash{} },
	}

	code := common.Hex2Bytes(ctx.GlobalString(CodeFlag.Name))
	input := common.Hex2Bytes(ctx.GlobalString(InputFlag.Name))

	var frame *vm.Frame
	var target common.Address

	if ctx.GlobalBool(CreateFlag.Name) {
		msg := &vm.Message{
			Caller:   sender,
			Target:   common.Address{},
			Gas:      gas,
			GasPrice: price,
			Value:    value,
			Code:     append(code, input...),
			IsCreate: true,
		}
		frame = core.ProcessCreateMessage(vmctx, db, msg)
	} else {
		target = common.BytesToAddress([]byte("receiver"))
		db.CreateAccount(target)
		db.SetCode(target, code)

		msg := &vm.Message{
			Caller:        sender,
			Target:        target,
			CurrentTarget: target,
			CodeAddress:   &target,
			Gas:           gas,
			GasPrice:      price,
			Value:         value,
			Data:          input,
			Code:          code,
		}
		frame = core.ProcessMessage(vmctx, db, msg)
	}

	if ctx.GlobalBool(DumpFlag.Name) {
		fmt.Println(db.Dump())
	}
	if err := db.Commit(); err != nil {
		return fmt.Errorf("writing statedb: %v", err)
	}

	fmt.Printf("OUT: 0x%x\n", frame.Output)
	fmt.Printf("LEFTOVER GAS: %d\n", frame.Gas.Gas())
	if frame.HasErred {
		fmt.Printf("error: %v\n", frame.Err)
	}
	return nil
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
