package main

import (
	log "github.com/sirupsen/logrus"
	blk "github.com/solpipe/tps-tool/state/block"
	ntk "github.com/solpipe/tps-tool/state/network"
)

type Monitor struct {
	Window uint32 `option:"" name:"window" default:"300" help:"Size of the rolling time window in seconds"`
}

func (m *Monitor) Run(kongCtx *CLIContext) error {
	ctx := kongCtx.Ctx

	config, err := kongCtx.Clients.RpcConfig()
	if err != nil {
		return err
	}
	wsClient, err := config.WsClient(ctx)
	if err != nil {
		return err
	}
	source := blk.SourceFromRpc(config.Client())

	version, err := source.Version(ctx)
	if err != nil {
		return err
	}
	log.Infof("solana version: %s", version)

	monitor, err := ntk.CreateMonitor(ctx, source, wsClient, m.Window, nil)
	if err != nil {
		return err
	}
	sub := monitor.OnStatus()
	defer sub.Unsubscribe()

	doneC := ctx.Done()
	closeC := monitor.CloseSignal()
out:
	for {
		select {
		case <-doneC:
			break out
		case <-closeC:
			break out
		case err = <-sub.ErrorC:
			break out
		case status := <-sub.StreamC:
			log.Infof(
				"blocks=%d txns/block=%.2f tps=%.2f user tps=%.2f",
				status.Blocks,
				status.TransactionsPerBlock,
				status.TransactionsPerSecond,
				status.UserTransactionsPerSecond,
			)
		}
	}
	return err
}
