package network

import (
	"context"
	"errors"
	"fmt"

	sgows "github.com/SolmateDev/solana-go/rpc/ws"
	"github.com/google/uuid"
	ll "github.com/solpipe/tps-tool/ds/list"
	dssub "github.com/solpipe/tps-tool/ds/sub"
	"github.com/solpipe/tps-tool/logger"
	blk "github.com/solpipe/tps-tool/state/block"
)

type blockCount struct {
	slot  uint64
	time  int64
	total uint64
	user  uint64
}

type monitorInternal struct {
	ctx           context.Context
	lg            logger.Log
	source        blk.Source
	list          *ll.Generic[blockCount]
	windowSeconds uint32
	statusHome    *dssub.SubHome[WindowStatus]
}

func loopMonitor(
	ctx context.Context,
	cancel context.CancelFunc,
	id uuid.UUID,
	source blk.Source,
	sub *sgows.BlockSubscription,
	statusHome *dssub.SubHome[WindowStatus],
	windowSeconds uint32,
	lg logger.Log,
) {
	var err error
	defer cancel()
	defer sub.Unsubscribe()
	defer statusHome.Close()

	in := new(monitorInternal)
	in.ctx = ctx
	in.lg = lg
	in.source = source
	in.list = ll.CreateGeneric[blockCount]()
	in.windowSeconds = windowSeconds
	in.statusHome = statusHome

	lg.Debugf("monitor id=%s window=%ds", id.String(), windowSeconds)

	doneC := ctx.Done()
	streamC := sub.RecvStream()
	streamErrorC := sub.CloseSignal()

out:
	for {
		select {
		case <-doneC:
			break out
		case err = <-streamErrorC:
			break out
		case subId := <-statusHome.DeleteC:
			statusHome.Delete(subId)
		case r := <-statusHome.ReqC:
			statusHome.Receive(r)
		case d := <-streamC:
			b, ok := d.(*sgows.BlockResult)
			if !ok {
				err = errors.New("bad block result")
				break out
			}
			if b.Value.Err != nil {
				err = fmt.Errorf("%+v", b.Value.Err)
				break out
			}
			in.onBlock(b.Value.Slot)
		}
	}

	lg.Debugf("monitor exiting id=%s", id.String())
	if err != nil {
		lg.Debug(err.Error())
	}
}

// A block that cannot be fetched or classified is skipped: a rolling
// estimate stays useful with gaps, unlike the one-shot walk.
func (in *monitorInternal) onBlock(slot uint64) {
	b, err := in.source.Block(in.ctx, slot)
	if err != nil {
		in.lg.Debugf("skipping block %d: %s", slot, err.Error())
		return
	}
	walker := Walker{source: in.source, lg: in.lg}
	user, err := walker.CountUserTransactions(b)
	if err != nil {
		in.lg.Debugf("skipping block %d: %s", slot, err.Error())
		return
	}
	in.list.Append(blockCount{
		slot:  slot,
		time:  b.Time,
		total: uint64(len(b.Transactions)),
		user:  user,
	})
	in.prune(b.Time)
	status, ok := in.status()
	if ok {
		in.statusHome.Broadcast(status)
	}
}

func (in *monitorInternal) prune(newest int64) {
	floor := newest - int64(in.windowSeconds)
	for {
		head, present := in.list.Head()
		if !present || floor <= head.time {
			break
		}
		in.list.Pop()
	}
}

func (in *monitorInternal) status() (WindowStatus, bool) {
	if in.list.Size < 2 {
		return WindowStatus{}, false
	}

	var oldest int64
	var newest int64
	var sumTotal uint64
	var sumUser uint64
	first := true
	in.list.Iterate(func(obj blockCount, index uint32, remove func()) error {
		if first {
			first = false
			oldest = obj.time
		} else {
			sumTotal += obj.total
			sumUser += obj.user
		}
		newest = obj.time
		return nil
	})

	return WindowStatus{
		WindowSeconds:             in.windowSeconds,
		Blocks:                    in.list.Size,
		TransactionsPerBlock:      float64(sumTotal) / float64(in.list.Size-1),
		TransactionsPerSecond:     Tps(oldest, newest, sumTotal),
		UserTransactionsPerSecond: Tps(oldest, newest, sumUser),
	}, true
}
