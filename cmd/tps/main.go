package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/solpipe/tps-tool/util"
)

type CLIContext struct {
	Clients *Clients
	Ctx     context.Context
}

type debugFlag bool

type RpcUrl string
type WsUrl string
type ApiKey string

var cli struct {
	Verbose debugFlag `help:"Set logging to verbose." short:"v" default:"false"`
	RpcUrl  RpcUrl    `option:"" name:"rpc" help:"Connection information to a Solana validator Rpc endpoint with format protocol://host:port (ie http://localhost:8899)"`
	WsUrl   WsUrl     `option:"" name:"ws" help:"Connection information to a Solana validator Websocket endpoint with format protocol://host:port (ie ws://localhost:8900)" type:"string"`
	ApiKey  ApiKey    `option:"" name:"apikey" help:"An API Key used to connect to an RPC Provider"`
	Measure Measure   `cmd:"" name:"measure" help:"Count user transactions per second over a trailing time window"`
	Monitor Monitor   `cmd:"" name:"monitor" help:"Stream a rolling transactions per second estimate from live blocks"`
	Version Version   `cmd:"" name:"version" help:"Print the solana-core version of the node"`
}

type Clients struct {
	ctx     context.Context
	RpcUrl  string
	WsUrl   string
	Headers http.Header
}

// flags override whatever RPC_URL/WS_URL put into Clients
func (v RpcUrl) AfterApply(clients *Clients) error {
	if 0 < len(v) {
		clients.RpcUrl = string(v)
	}
	return nil
}

func (v WsUrl) AfterApply(clients *Clients) error {
	if 0 < len(v) {
		clients.WsUrl = string(v)
	}
	return nil
}

func (key ApiKey) AfterApply(clients *Clients) error {
	if len(key) == 0 {
		clients.Headers = http.Header{}
	} else {
		return errors.New("not implemented yet")
	}
	return nil
}

func (d debugFlag) AfterApply(clients *Clients) error {
	if d {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
	return nil
}

func (c *Clients) RpcConfig() (*util.RpcConfig, error) {
	if len(c.RpcUrl) == 0 {
		return nil, errors.New("no rpc url")
	}
	headers := c.Headers
	if headers == nil {
		headers = http.Header{}
	}
	return &util.RpcConfig{Rpc: c.RpcUrl, Ws: c.WsUrl, Headers: headers}, nil
}

func main() {
	godotenv.Load()

	signalC := make(chan os.Signal, 1)
	signal.Notify(signalC, syscall.SIGTERM, syscall.SIGINT)
	ctx, cancel := context.WithCancel(context.Background())
	go loopSignal(ctx, cancel, signalC)

	clients := &Clients{ctx: ctx}
	if config, err := util.RpcConfigFromEnv(); err == nil {
		clients.RpcUrl = config.Rpc
		clients.WsUrl = config.Ws
	}
	kongCtx := kong.Parse(&cli, kong.Bind(clients))
	err := kongCtx.Run(&CLIContext{Ctx: ctx, Clients: clients})
	kongCtx.FatalIfErrorf(err)
}

func loopSignal(ctx context.Context, cancel context.CancelFunc, signalC <-chan os.Signal) {
	defer cancel()
	doneC := ctx.Done()
	select {
	case <-doneC:
	case s := <-signalC:
		os.Stderr.WriteString(fmt.Sprintf("%s\n", s.String()))
	}
}
