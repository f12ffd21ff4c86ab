package network

import (
	"context"
	"errors"

	sgorpc "github.com/SolmateDev/solana-go/rpc"
	sgows "github.com/SolmateDev/solana-go/rpc/ws"
	"github.com/google/uuid"
	dssub "github.com/solpipe/tps-tool/ds/sub"
	"github.com/solpipe/tps-tool/logger"
	blk "github.com/solpipe/tps-tool/state/block"
)

// WindowStatus is a rolling view of the chain over the trailing window.
// The newest block's timestamp anchors the window; per-second figures
// exclude the oldest retained block so that counts sit between two
// timestamps.
type WindowStatus struct {
	WindowSeconds             uint32
	Blocks                    uint32
	TransactionsPerBlock      float64
	TransactionsPerSecond     float64
	UserTransactionsPerSecond float64
}

// Monitor recalculates the window on every finalized block notification.
type Monitor struct {
	ctx        context.Context
	id         uuid.UUID
	statusReqC chan<- dssub.ResponseChannel[WindowStatus]
}

func CreateMonitor(
	ctxOutside context.Context,
	source blk.Source,
	wsClient *sgows.Client,
	windowSeconds uint32,
	lg logger.Log,
) (Monitor, error) {
	if windowSeconds == 0 {
		return Monitor{}, errors.New("zero window")
	}
	if lg == nil {
		lg = logger.Default()
	}
	ctx, cancel := context.WithCancel(ctxOutside)
	id, err := uuid.NewRandom()
	if err != nil {
		cancel()
		return Monitor{}, err
	}
	sub, err := wsClient.BlockSubscribe(sgows.NewBlockSubscribeFilterAll(), &sgows.BlockSubscribeOpts{
		Commitment:         sgorpc.CommitmentFinalized,
		TransactionDetails: sgorpc.TransactionDetailsNone,
	})
	if err != nil {
		cancel()
		return Monitor{}, err
	}
	statusHome := dssub.CreateSubHome[WindowStatus]()
	statusReqC := statusHome.ReqC
	go loopMonitor(ctx, cancel, id, source, sub, statusHome, windowSeconds, lg)
	return Monitor{ctx: ctx, id: id, statusReqC: statusReqC}, nil
}

func (m Monitor) OnStatus() dssub.Subscription[WindowStatus] {
	return dssub.SubscriptionRequest(m.statusReqC)
}

func (m Monitor) CloseSignal() <-chan struct{} {
	return m.ctx.Done()
}
