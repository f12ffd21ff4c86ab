package network

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/solpipe/tps-tool/logger"
	blk "github.com/solpipe/tps-tool/state/block"
)

// Walker walks the chain backward from the tip, one block at a time.
type Walker struct {
	source blk.Source
	lg     logger.Log
}

// CreateWalker builds a Walker on the given block source. A nil lg
// selects the logrus-backed default.
func CreateWalker(source blk.Source, lg logger.Log) Walker {
	if lg == nil {
		lg = logger.Default()
	}
	return Walker{source: source, lg: lg}
}

// Window is what one backward walk accumulates.
type Window struct {
	Oldest           int64
	Newest           int64
	UserTransactions uint64
}

// Accumulate walks backward from the tip until the chain is
// thresholdSeconds older than the tip or genesis is reached. The walk
// counts the current block and then looks at its parent: the first
// parent whose timestamp falls at or below the threshold ends the walk
// and supplies Oldest, but its own transactions are not counted. Any
// fetch or classification failure aborts the whole walk; there are no
// partial results.
func (w Walker) Accumulate(ctx context.Context, thresholdSeconds int64) (*Window, error) {
	tip, err := w.source.Tip(ctx)
	if err != nil {
		return nil, err
	}
	current, err := w.source.Block(ctx, tip)
	if err != nil {
		return nil, err
	}

	newest := current.Time
	if 0 < thresholdSeconds && newest < math.MinInt64+thresholdSeconds {
		return nil, errors.New("timestamp threshold underflow")
	}
	if thresholdSeconds < 0 && math.MaxInt64+thresholdSeconds < newest {
		return nil, errors.New("timestamp threshold overflow")
	}
	timestampThreshold := newest - thresholdSeconds

	var total uint64
	var oldest int64
	for {
		prev, err := w.source.Block(ctx, current.Parent)
		if err != nil {
			return nil, err
		}

		count, err := w.CountUserTransactions(current)
		if err != nil {
			return nil, err
		}
		w.lg.Debugf("block time: %s", time.Unix(current.Time, 0).UTC().Format("2006-01-02 15:04:05"))
		if math.MaxUint64-total < count {
			return nil, errors.New("transaction count overflow")
		}
		total += count

		if prev.Time <= timestampThreshold {
			oldest = prev.Time
			break
		}
		if prev.Height == 0 {
			oldest = prev.Time
			break
		}
		current = prev
	}

	return &Window{Oldest: oldest, Newest: newest, UserTransactions: total}, nil
}
