package runtime

import (
	"ledger/executor/types"
	"ledger/numeric"
)

// The concrete types bound to every pallet of this runtime. Changing one of
// them here rebinds the whole chain; a type that does not satisfy
// numeric.Number is rejected by the compiler where the pallets are
// instantiated.
type (
	AccountID   = string
	Balance     = numeric.U128
	BlockNumber = numeric.U32
	Nonce       = numeric.U32
)

type (
	Block     = types.Block[AccountID, BlockNumber, *Runtime]
	Header    = types.Header[BlockNumber]
	Extrinsic = types.Extrinsic[AccountID, *Runtime]
	Call      = types.Call[AccountID, *Runtime]
	Receipt   = types.Receipt[AccountID]
)
