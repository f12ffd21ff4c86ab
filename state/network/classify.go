package network

import (
	"fmt"

	sgo "github.com/SolmateDev/solana-go"
	blk "github.com/solpipe/tps-tool/state/block"
)

// CountUserTransactions splits a block's transactions into vote and user
// transactions and returns how many are user transactions. A transaction
// is a vote transaction only when every one of its instructions invokes
// the vote program.
func (w Walker) CountUserTransactions(b *blk.Block) (uint64, error) {
	var userCount uint64

	for i := 0; i < len(b.Transactions); i++ {
		message := b.Transactions[i].Message
		accountKeys := message.AccountKeys

		voteInstructions := 0
		for _, instruction := range message.Instructions {
			index := int(instruction.ProgramIDIndex)
			if len(accountKeys) <= index {
				return 0, fmt.Errorf("block %d: transaction %d: program id index %d out of range", b.Slot, i, index)
			}
			if accountKeys[index].Equals(sgo.VoteProgramID) {
				voteInstructions++
				w.lg.Debug("vote instruction found")
			} else {
				w.lg.Debug("user instruction found")
			}
		}

		if voteInstructions == len(message.Instructions) {
			w.lg.Debug("it's a vote transaction")
		} else {
			w.lg.Debug("it's a user transaction")
			userCount++
		}
	}

	w.lg.Debugf("total txns: %d", len(b.Transactions))
	w.lg.Debugf("user txns: %d", userCount)
	w.lg.Debugf("vote txns: %d", uint64(len(b.Transactions))-userCount)

	return userCount, nil
}
