package network_test

import (
	"context"
	"fmt"
	"math"

	sgo "github.com/SolmateDev/solana-go"
	blk "github.com/solpipe/tps-tool/state/block"
)

// chainSource serves a synthetic chain out of memory so the walk can be
// exercised without a validator.
type chainSource struct {
	tip    uint64
	blocks map[uint64]*blk.Block
}

func (c chainSource) Tip(ctx context.Context) (uint64, error) {
	return c.tip, nil
}

func (c chainSource) Block(ctx context.Context, slot uint64) (*blk.Block, error) {
	b, present := c.blocks[slot]
	if !present {
		return nil, fmt.Errorf("no block at slot %d", slot)
	}
	return b, nil
}

func (c chainSource) Version(ctx context.Context) (string, error) {
	return "1.14.17", nil
}

// transactionFor compiles one transaction whose instructions invoke the
// given programs in order. Account key zero plays the fee payer.
func transactionFor(programs ...sgo.PublicKey) sgo.Transaction {
	var tx sgo.Transaction
	keys := []sgo.PublicKey{sgo.NewWallet().PublicKey()}
	for _, program := range programs {
		index := -1
		for i := range keys {
			if keys[i].Equals(program) {
				index = i
				break
			}
		}
		if index < 0 {
			keys = append(keys, program)
			index = len(keys) - 1
		}
		tx.Message.Instructions = append(tx.Message.Instructions, sgo.CompiledInstruction{
			ProgramIDIndex: uint16(index),
		})
	}
	tx.Message.AccountKeys = keys
	return tx
}

func userTransaction() sgo.Transaction {
	return transactionFor(sgo.SystemProgramID)
}

func voteTransaction() sgo.Transaction {
	return transactionFor(sgo.VoteProgramID)
}

// corruptTransaction has a program id index that points outside the
// account key list.
func corruptTransaction() sgo.Transaction {
	tx := transactionFor(sgo.SystemProgramID)
	tx.Message.Instructions[0].ProgramIDIndex = uint16(len(tx.Message.AccountKeys) + 3)
	return tx
}

func testBlock(slot uint64, parent uint64, height uint64, ts int64, userTxns int, voteTxns int) *blk.Block {
	b := &blk.Block{
		Slot:   slot,
		Parent: parent,
		Height: height,
		Time:   ts,
	}
	for i := 0; i < userTxns; i++ {
		b.Transactions = append(b.Transactions, userTransaction())
	}
	for i := 0; i < voteTxns; i++ {
		b.Transactions = append(b.Transactions, voteTransaction())
	}
	return b
}

// the 3 block chain from the throughput scenario: A(slot 12) on top of
// B(slot 11) on top of the genesis block C(slot 10)
func threeBlockChain() chainSource {
	return chainSource{
		tip: 12,
		blocks: map[uint64]*blk.Block{
			12: testBlock(12, 11, 2, 1000, 5, 2),
			11: testBlock(11, 10, 1, 940, 3, 1),
			10: testBlock(10, 0, 0, 880, 10, 0),
		},
	}
}

func approx(a float64, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
