package network_test

import (
	"testing"

	sgo "github.com/SolmateDev/solana-go"
	"github.com/solpipe/tps-tool/logger"
	blk "github.com/solpipe/tps-tool/state/block"
	ntk "github.com/solpipe/tps-tool/state/network"
)

func TestCountVoteOnly(t *testing.T) {
	walker := ntk.CreateWalker(nil, logger.Discard())
	b := &blk.Block{
		Slot: 12,
		Transactions: []sgo.Transaction{
			voteTransaction(),
			voteTransaction(),
			transactionFor(sgo.VoteProgramID, sgo.VoteProgramID),
		},
	}
	count, err := walker.CountUserTransactions(b)
	if err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Fatalf("a block of vote transactions must count zero user transactions; got %d", count)
	}
}

func TestCountMixedTransactionOnce(t *testing.T) {
	walker := ntk.CreateWalker(nil, logger.Discard())
	// two user instructions in one transaction still count once
	b := &blk.Block{
		Slot: 12,
		Transactions: []sgo.Transaction{
			transactionFor(sgo.VoteProgramID, sgo.SystemProgramID, sgo.SystemProgramID),
		},
	}
	count, err := walker.CountUserTransactions(b)
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Fatalf("expected 1 user transaction; got %d", count)
	}
}

func TestCountSplit(t *testing.T) {
	walker := ntk.CreateWalker(nil, logger.Discard())
	b := &blk.Block{
		Slot: 12,
		Transactions: []sgo.Transaction{
			userTransaction(),
			voteTransaction(),
			transactionFor(sgo.TokenProgramID),
			voteTransaction(),
			voteTransaction(),
		},
	}
	count, err := walker.CountUserTransactions(b)
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Fatalf("expected 2 user transactions; got %d", count)
	}
	voteCount := uint64(len(b.Transactions)) - count
	if voteCount != 3 {
		t.Fatalf("user and vote counts must cover the block; got %d votes", voteCount)
	}
}

func TestCountBadProgramIndex(t *testing.T) {
	walker := ntk.CreateWalker(nil, logger.Discard())
	b := &blk.Block{
		Slot:         12,
		Transactions: []sgo.Transaction{corruptTransaction()},
	}
	_, err := walker.CountUserTransactions(b)
	if err == nil {
		t.Fatal("an undecodable instruction target must fail the whole block")
	}
}
