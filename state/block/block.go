package block

import (
	"context"

	sgo "github.com/SolmateDev/solana-go"
)

// Block is a finalized block reduced to what the throughput calculation
// needs. Values do not change after the fetch.
type Block struct {
	Slot         uint64
	Parent       uint64 // parent slot
	Height       uint64 // genesis = 0
	Time         int64  // unix seconds
	Transactions []sgo.Transaction
}

// Source hands out finalized blocks. Implementations make exactly one
// attempt per call; there is no retry layer here.
type Source interface {
	// Tip returns the latest finalized slot.
	Tip(ctx context.Context) (uint64, error)
	// Block fetches and fully decodes the block at the given slot. A
	// block whose timestamp, height or transactions cannot be decoded is
	// an error for the whole block.
	Block(ctx context.Context, slot uint64) (*Block, error)
	// Version returns the solana-core version string of the node.
	Version(ctx context.Context) (string, error)
}
