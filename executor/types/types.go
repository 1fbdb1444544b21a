package types

// Header carries the number the block claims to be.
type Header[BN any] struct {
	BlockNumber BN
}

type Block[A, BN, R any] struct {
	Header     Header[BN]
	Extrinsics []Extrinsic[A, R]
}

// Extrinsic is a call submitted by a caller.
type Extrinsic[A, R any] struct {
	Caller A
	Call   Call[A, R]
}

type Call[A, R any] interface {
	// Name identifies the call in logs and receipts.
	Name() string
	// Dispatch applies the call to the runtime on behalf of caller.
	// A returned error means the call had no effect on pallet state.
	Dispatch(rt R, caller A) error
}

// Receipt records the outcome of one extrinsic.
type Receipt[A any] struct {
	Index  int
	Caller A
	Call   string
	// Err is set when the extrinsic was rejected or its call failed
	Err error
}

func (r Receipt[A]) Ok() bool {
	return r.Err == nil
}

// Chain is the chain progress state an executor needs to drive a block.
type Chain[A, BN any] interface {
	BlockNumber() BN
	IncBlockNumber() error
	IncNonce(who A) error
}

type BlockExecutor[A, BN, R any] interface {
	// ExecuteBlock applies the block to rt and returns one receipt
	// per extrinsic. A non-nil error means the block itself was rejected.
	ExecuteBlock(rt R, block Block[A, BN, R]) ([]Receipt[A], error)
}
