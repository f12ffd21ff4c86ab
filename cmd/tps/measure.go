package main

import (
	"time"

	log "github.com/sirupsen/logrus"
	blk "github.com/solpipe/tps-tool/state/block"
	ntk "github.com/solpipe/tps-tool/state/network"
)

type Measure struct {
	Window uint32 `option:"" name:"window" default:"300" help:"Size of the trailing time window in seconds"`
}

func (m *Measure) Run(kongCtx *CLIContext) error {
	ctx := kongCtx.Ctx

	config, err := kongCtx.Clients.RpcConfig()
	if err != nil {
		return err
	}
	source := blk.SourceFromRpc(config.Client())

	version, err := source.Version(ctx)
	if err != nil {
		return err
	}
	log.Infof("solana version: %s", version)

	start := time.Now()
	walker := ntk.CreateWalker(source, nil)
	window, err := walker.Accumulate(ctx, int64(m.Window))
	if err != nil {
		return err
	}
	tps := ntk.Tps(window.Oldest, window.Newest, window.UserTransactions)

	log.Infof("calculation took: %d seconds", int64(time.Since(start).Seconds()))
	log.Infof("total transactions per second over period: %f", tps)
	return nil
}
