package main

import (
	log "github.com/sirupsen/logrus"
	blk "github.com/solpipe/tps-tool/state/block"
)

type Version struct {
}

func (v *Version) Run(kongCtx *CLIContext) error {
	config, err := kongCtx.Clients.RpcConfig()
	if err != nil {
		return err
	}
	source := blk.SourceFromRpc(config.Client())
	version, err := source.Version(kongCtx.Ctx)
	if err != nil {
		return err
	}
	log.Infof("solana version: %s", version)
	return nil
}
