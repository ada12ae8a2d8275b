package params

// Gas cost constants for the Frontier / DAO-fork ruleset. Values belonging
// to a later repricing (EIP-150/158/1283 and beyond) are deliberately
// absent; this core never applies them.
const (
	QuadCoeffDiv uint64 = 512 // Divisor for the quadratic particle of the memory cost equation.
	MemoryGas    uint64 = 3   // Times the address of the (highest referenced byte in memory + 1). NOTE: referencing happens on read, write and in instructions such as RETURN and CALL.

	StackLimit      uint64 = 1024 // Maximum size of VM stack allowed.
	CallCreateDepth uint64 = 1024 // Maximum nested CALL/CALLCODE/CREATE depth.

	GasQuickStep   uint64 = 2
	GasFastestStep uint64 = 3
	GasFastStep    uint64 = 5
	GasMidStep     uint64 = 8
	GasSlowStep    uint64 = 10
	GasExtStep     uint64 = 20

	GasBase    uint64 = 2 // ADDRESS, ORIGIN, CALLER, CALLVALUE, CALLDATASIZE, CODESIZE, GASPRICE, ...
	GasVeryLow uint64 = 3 // CALLDATALOAD, PUSH, DUP, SWAP, arithmetic, ...
	GasCopy    uint64 = 3 // per-word surcharge on CALLDATACOPY/CODECOPY/EXTCODECOPY
	GasBalance uint64 = 20
	GasExtCode uint64 = 20 // EXTCODESIZE, EXTCODECOPY base
	GasExp     uint64 = 10
	GasExpByte uint64 = 10

	Sha3Gas     uint64 = 30
	Sha3WordGas uint64 = 6

	SstoreSetGas    uint64 = 20000 // storing a value into a zero slot
	SstoreResetGas  uint64 = 5000  // storing a value into a non-zero slot, or clearing one
	SstoreRefundGas uint64 = 15000 // refund for clearing a slot back to zero
	SloadGas        uint64 = 50

	LogGas      uint64 = 375
	LogTopicGas uint64 = 375
	LogDataGas  uint64 = 8

	CreateGas            uint64 = 32000
	CreateDataGas        uint64 = 200 // per byte of a CREATE's returned code, charged against the constructor's leftover gas
	CallGas              uint64 = 40
	CallStipend          uint64 = 2300 // free gas forwarded to a callee when CALL/CALLCODE carries value
	CallValueTransferGas uint64 = 9000
	CallNewAccountGas    uint64 = 25000

	SuicideRefundGas uint64 = 24000

	JumpdestGas uint64 = 1
)
