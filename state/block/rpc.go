package block

import (
	"context"
	"fmt"

	sgo "github.com/SolmateDev/solana-go"
	sgorpc "github.com/SolmateDev/solana-go/rpc"
	log "github.com/sirupsen/logrus"
)

type rpcSource struct {
	rpc *sgorpc.Client
}

// SourceFromRpc wraps a JSON RPC client as a block Source.
func SourceFromRpc(rpcClient *sgorpc.Client) Source {
	return rpcSource{rpc: rpcClient}
}

func (s rpcSource) Tip(ctx context.Context) (uint64, error) {
	return s.rpc.GetSlot(ctx, sgorpc.CommitmentFinalized)
}

func (s rpcSource) Block(ctx context.Context, slot uint64) (*Block, error) {
	log.Debugf("getting block number: %d", slot)
	r, err := s.rpc.GetBlockWithOpts(ctx, slot, &sgorpc.GetBlockOpts{
		Encoding:           sgo.EncodingBase64,
		TransactionDetails: sgorpc.TransactionDetailsFull,
		Commitment:         sgorpc.CommitmentFinalized,
	})
	if err != nil {
		return nil, err
	}
	if r.BlockTime == nil {
		return nil, fmt.Errorf("block %d has no timestamp", slot)
	}
	if r.BlockHeight == nil {
		return nil, fmt.Errorf("block %d has no height", slot)
	}
	list := make([]sgo.Transaction, len(r.Transactions))
	for i := 0; i < len(r.Transactions); i++ {
		tx, err := r.Transactions[i].GetTransaction()
		if err != nil {
			return nil, fmt.Errorf("block %d: transaction %d: %s", slot, i, err.Error())
		}
		list[i] = *tx
	}
	return &Block{
		Slot:         slot,
		Parent:       r.ParentSlot,
		Height:       *r.BlockHeight,
		Time:         int64(*r.BlockTime),
		Transactions: list,
	}, nil
}

func (s rpcSource) Version(ctx context.Context) (string, error) {
	r, err := s.rpc.GetVersion(ctx)
	if err != nil {
		return "", err
	}
	return r.SolanaCore, nil
}
