package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goodnatureofminers/legacytx/internal/command"
	"github.com/goodnatureofminers/legacytx/internal/metrics"
	"github.com/goodnatureofminers/legacytx/internal/model"
	"github.com/goodnatureofminers/legacytx/internal/repository/clickhouse"
	"github.com/goodnatureofminers/legacytx/internal/service"
	"github.com/goodnatureofminers/legacytx/internal/wallet"
	"github.com/goodnatureofminers/legacytx/pkg/txcodec"
)

const exitUsage = 2

type config struct {
	Coin          model.Coin    `long:"coin" env:"LEGACYTX_COIN" description:"coin name" default:"BTC"`
	Network       model.Network `long:"network" env:"LEGACYTX_NETWORK" description:"network name" default:"mainnet"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"LEGACYTX_CLICKHOUSE_DSN" description:"ClickHouse DSN of the transaction archive"`
	UTXOs         []string      `long:"utxo" env:"LEGACYTX_UTXO" env-delim:"," description:"outpoint to spend as txid:vout (repeatable)"`
	ChangeAddress string        `long:"change-address" env:"LEGACYTX_CHANGE_ADDRESS" description:"address receiving the change; requires the archive"`
	Fee           uint64        `long:"fee" env:"LEGACYTX_FEE" description:"flat fee in satoshis" default:"0"`
	Sequence      uint32        `long:"sequence" env:"LEGACYTX_SEQUENCE" description:"sequence number for every input" default:"4294967295"`
	LockTime      uint32        `long:"lock-time" env:"LEGACYTX_LOCK_TIME" description:"transaction lock time" default:"0"`
	Version       int32         `long:"version" env:"LEGACYTX_VERSION" description:"transaction version" default:"1"`
	Addresses     []string      `long:"address" env:"LEGACYTX_ADDRESS" env-delim:"," description:"wallet address for balance (repeatable)"`
	Verbose       bool          `short:"v" long:"verbose" env:"LEGACYTX_VERBOSE" description:"enable debug logging"`
}

func main() {
	cfg := config{}
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[OPTIONS] send <amount> <address> | balance"

	args, err := parser.Parse()
	if err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		os.Exit(exitUsage)
	}

	cmd, err := command.Parse(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, cmd, logger, os.Stdout); err != nil {
		logger.Fatal("legacytx failed", zap.String("command", cmd.Name()), zap.Error(err))
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	return cfg.Build()
}

func run(ctx context.Context, cfg config, cmd command.Command, logger *zap.Logger, out io.Writer) error {
	var repo service.ArchiveRepository
	if cfg.ClickhouseDSN != "" {
		r, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init repository: %w", err)
		}
		defer func() {
			if err := r.Close(); err != nil {
				logger.Warn("close repository", zap.Error(err))
			}
		}()
		repo = r
	}

	w, err := service.NewWallet(repo, cfg.Coin, cfg.Network, metrics.NewCodec(cfg.Network), logger.Named("wallet"))
	if err != nil {
		return fmt.Errorf("init wallet: %w", err)
	}

	switch c := cmd.(type) {
	case command.Send:
		return send(ctx, cfg, w, c, out)
	case command.Balance:
		return balance(ctx, cfg, w, out)
	default:
		return fmt.Errorf("unsupported command %q", cmd.Name())
	}
}

func send(ctx context.Context, cfg config, w *service.Wallet, c command.Send, out io.Writer) error {
	inputs := make([]txcodec.OutPoint, 0, len(cfg.UTXOs))
	for _, raw := range cfg.UTXOs {
		op, err := wallet.ParseOutPoint(raw)
		if err != nil {
			return err
		}
		inputs = append(inputs, op)
	}

	res, err := w.Send(ctx, service.SendRequest{
		Amount:        c.Amount,
		Address:       c.Address,
		Inputs:        inputs,
		ChangeAddress: cfg.ChangeAddress,
		Fee:           cfg.Fee,
		Sequence:      cfg.Sequence,
		LockTime:      cfg.LockTime,
		Version:       cfg.Version,
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "%x\ntxid: %s\n", res.Raw, res.TxID)
	return err
}

func balance(ctx context.Context, cfg config, w *service.Wallet, out io.Writer) error {
	if len(cfg.Addresses) == 0 {
		return errors.New("balance requires at least one --address")
	}

	sat, err := w.Balance(ctx, cfg.Addresses)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "%d\n", sat)
	return err
}
