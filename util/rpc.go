package util

import (
	"context"
	"errors"
	"net/http"
	"os"

	sgorpc "github.com/SolmateDev/solana-go/rpc"
	sgows "github.com/SolmateDev/solana-go/rpc/ws"
)

type RpcConfig struct {
	Rpc     string
	Ws      string
	Headers http.Header
}

// RpcConfigFromEnv reads RPC_URL and WS_URL. WS_URL may be absent; only
// block subscriptions need a websocket endpoint.
func RpcConfigFromEnv() (*RpcConfig, error) {
	var present bool
	config := new(RpcConfig)
	config.Rpc, present = os.LookupEnv("RPC_URL")
	if !present {
		return nil, errors.New("no rpc url")
	}
	config.Ws, _ = os.LookupEnv("WS_URL")
	return config, nil
}

func (config *RpcConfig) Client() *sgorpc.Client {
	if config.Headers == nil {
		config.Headers = http.Header{}
	}
	return sgorpc.NewWithHeaders(config.Rpc, config.Headers)
}

func (config *RpcConfig) WsClient(ctx context.Context) (*sgows.Client, error) {
	if len(config.Ws) == 0 {
		return nil, errors.New("no ws url")
	}
	if config.Headers == nil {
		config.Headers = http.Header{}
	}
	return sgows.ConnectWithHeaders(ctx, config.Ws, config.Headers)
}
