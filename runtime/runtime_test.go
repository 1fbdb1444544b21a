package runtime_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger/executor/serial"
	"ledger/numeric"
	"ledger/pallets/balances"
	"ledger/runtime"
	"ledger/transactions"
)

const (
	alice   = "alice"
	bob     = "bob"
	charlie = "charlie"
)

func balance(v uint64) runtime.Balance { return numeric.NewU128(v) }

func transfer(from, to runtime.AccountID, amount uint64) runtime.Extrinsic {
	return runtime.Extrinsic{Caller: from, Call: transactions.Transfer{To: to, Amount: balance(amount)}}
}

func TestDrivePalletsDirectly(t *testing.T) {
	rt := runtime.New(zerolog.Nop())
	rt.Balances.SetBalance(alice, balance(100))

	require.NoError(t, rt.System.IncBlockNumber())
	assert.Equal(t, numeric.U32(1), rt.System.BlockNumber())

	require.NoError(t, rt.System.IncNonce(alice))
	assert.Equal(t, numeric.U32(1), rt.System.Nonce(alice))
	require.NoError(t, rt.Balances.Transfer(alice, bob, balance(30)))
	assert.Equal(t, balance(70), rt.Balances.Balance(alice))
	assert.Equal(t, balance(30), rt.Balances.Balance(bob))

	require.NoError(t, rt.System.IncNonce(alice))
	assert.Equal(t, numeric.U32(2), rt.System.Nonce(alice))
	require.NoError(t, rt.Balances.Transfer(alice, charlie, balance(20)))
	assert.Equal(t, balance(50), rt.Balances.Balance(alice))
	assert.Equal(t, balance(20), rt.Balances.Balance(charlie))
}

func TestExecuteBlock(t *testing.T) {
	rt := runtime.New(zerolog.Nop())
	rt.ApplyGenesis(runtime.Genesis{Balances: map[runtime.AccountID]runtime.Balance{alice: balance(100)}})

	receipts, err := rt.ExecuteBlock(runtime.Block{
		Header: runtime.Header{BlockNumber: 1},
		Extrinsics: []runtime.Extrinsic{
			transfer(alice, bob, 30),
			transfer(alice, charlie, 20),
		},
	})
	require.NoError(t, err)
	require.Len(t, receipts, 2)
	for i, r := range receipts {
		assert.True(t, r.Ok(), "receipt %d: %v", i, r.Err)
		assert.Equal(t, i, r.Index)
		assert.Equal(t, alice, r.Caller)
		assert.Equal(t, "transfer", r.Call)
	}

	assert.Equal(t, numeric.U32(1), rt.BlockNumber())
	assert.Equal(t, numeric.U32(2), rt.System.Nonce(alice))
	assert.Equal(t, balance(50), rt.Balances.Balance(alice))
	assert.Equal(t, balance(30), rt.Balances.Balance(bob))
	assert.Equal(t, balance(20), rt.Balances.Balance(charlie))
}

func TestFailedTransferStillAdvancesNonce(t *testing.T) {
	rt := runtime.New(zerolog.Nop())

	receipts, err := rt.ExecuteBlock(runtime.Block{
		Header:     runtime.Header{BlockNumber: 1},
		Extrinsics: []runtime.Extrinsic{transfer(alice, bob, 51)},
	})
	require.NoError(t, err)
	require.Len(t, receipts, 1)
	assert.ErrorIs(t, receipts[0].Err, balances.ErrInsufficientFunds)
	assert.Equal(t, numeric.U32(1), rt.System.Nonce(alice))
	assert.True(t, rt.System.Nonce(bob).IsZero())

	rt.Balances.SetBalance(alice, balance(100))
	receipts, err = rt.ExecuteBlock(runtime.Block{
		Header: runtime.Header{BlockNumber: 2},
		Extrinsics: []runtime.Extrinsic{
			transfer(alice, bob, 51),
			transfer(alice, bob, 51),
		},
	})
	require.NoError(t, err)
	require.Len(t, receipts, 2)
	assert.NoError(t, receipts[0].Err)
	assert.ErrorIs(t, receipts[1].Err, balances.ErrInsufficientFunds)

	assert.Equal(t, balance(49), rt.Balances.Balance(alice))
	assert.Equal(t, balance(51), rt.Balances.Balance(bob))
	assert.Equal(t, numeric.U32(3), rt.System.Nonce(alice))
}

func TestExecuteBlockRejectsWrongNumber(t *testing.T) {
	rt := runtime.New(zerolog.Nop())
	rt.Balances.SetBalance(alice, balance(100))

	_, err := rt.ExecuteBlock(runtime.Block{
		Header:     runtime.Header{BlockNumber: 2},
		Extrinsics: []runtime.Extrinsic{transfer(alice, bob, 1)},
	})
	require.ErrorIs(t, err, serial.ErrBlockNumberMismatch)

	assert.True(t, rt.BlockNumber().IsZero())
	assert.True(t, rt.System.Nonce(alice).IsZero())
	assert.Equal(t, balance(100), rt.Balances.Balance(alice))
}

func TestExecuteBlockFollowsChainHeight(t *testing.T) {
	rt := runtime.New(zerolog.Nop())
	for i := 0; i < 3; i++ {
		require.NoError(t, rt.IncBlockNumber())
	}

	_, err := rt.ExecuteBlock(runtime.Block{Header: runtime.Header{BlockNumber: 3}})
	require.ErrorIs(t, err, serial.ErrBlockNumberMismatch)

	receipts, err := rt.ExecuteBlock(runtime.Block{Header: runtime.Header{BlockNumber: 4}})
	require.NoError(t, err)
	assert.Empty(t, receipts)
	assert.Equal(t, numeric.U32(4), rt.BlockNumber())
}

func TestSnapshot(t *testing.T) {
	rt := runtime.New(zerolog.Nop())
	rt.ApplyGenesis(runtime.Genesis{Balances: map[runtime.AccountID]runtime.Balance{
		alice:  balance(100),
		"dave": balance(5),
	}})
	_, err := rt.ExecuteBlock(runtime.Block{
		Header: runtime.Header{BlockNumber: 1},
		Extrinsics: []runtime.Extrinsic{
			transfer(alice, bob, 30),
			transfer(charlie, bob, 1),
		},
	})
	require.NoError(t, err)

	state := rt.Snapshot()
	assert.Equal(t, numeric.U32(1), state.BlockNumber)
	require.NotNil(t, state.TotalIssuance)
	assert.Equal(t, balance(105), *state.TotalIssuance)
	assert.Equal(t, []runtime.AccountState{
		{ID: alice, Balance: balance(70), Nonce: 1},
		{ID: bob, Balance: balance(30), Nonce: 0},
		{ID: charlie, Balance: balance(0), Nonce: 1},
		{ID: "dave", Balance: balance(5), Nonce: 0},
	}, state.Accounts)

	out, err := json.Marshal(state)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"block_number":"1"`)
	assert.Contains(t, string(out), `{"id":"alice","balance":"70","nonce":"1"}`)

	var text bytes.Buffer
	require.NoError(t, state.WriteText(&text))
	assert.Contains(t, text.String(), "block 1\n")
	assert.Contains(t, text.String(), "balance=70 nonce=1")
	assert.Contains(t, text.String(), "total issuance 105")
}
