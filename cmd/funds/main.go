package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/samber/lo"
	"github.com/urfave/cli/v2"

	"github.com/vincenzopalazzo/funds/internal/config"
	"github.com/vincenzopalazzo/funds/internal/fund"
	"github.com/vincenzopalazzo/funds/internal/lightning"
	"github.com/vincenzopalazzo/funds/internal/plugin"
	"github.com/vincenzopalazzo/funds/internal/ticker"
)

const fundsDescription = "Lists the total funds the lightning node owns off- and on-chain in {unit}."

const fundsLongDescription = `{unit} can take the following values:
s, satoshi, satoshis to depict satoshis
b, bit, bits to depict bits
m, milli, mbtc to depict milliBitcoin
B, btc, bitcoin to depict Bitcoin

{trading} selects the fiat currency for the price annotation:
USD, usd = btc to usd value
EUR, eur = btc to eur value`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := &cli.App{
		Name:  "funds",
		Usage: "overview of the funds a c-lightning node owns on- and off-chain",
		// Without arguments the binary runs as a lightningd plugin over stdio.
		Action: runPlugin,
		Commands: []*cli.Command{
			{
				Name:  "report",
				Usage: "print a one-shot funds report for a node RPC socket",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "lightning-dir", Usage: "node base directory", Required: true},
					&cli.StringFlag{Name: "rpc-file", Usage: "RPC socket filename", Value: "lightning-rpc"},
					&cli.StringFlag{Name: "unit", Usage: "display unit token (s, b, m, B, ...)"},
					&cli.StringFlag{Name: "trading", Usage: "fiat currency token (usd, eur)"},
				},
				Action: runReport,
			},
		},
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		slog.Error("funds terminated", "error", err)
		os.Exit(1)
	}
}

func runPlugin(c *cli.Context) error {
	cfg := config.Load()
	prices := ticker.NewClient(cfg.TickerURL, cfg.TickerTimeout)

	p := plugin.New(os.Stdin, os.Stdout)

	// The report service exists only after init delivers the socket location.
	var svc *fund.Service

	p.AddOption(plugin.Option{
		Name:        "funds_display_unit",
		Default:     cfg.DisplayUnit,
		Description: "pass the unit which should be used by default for the funds overview",
	})

	p.OnInit(func(_ context.Context, options, configuration map[string]string) error {
		socketPath := filepath.Join(configuration["lightning-dir"], configuration["rpc-file"])
		node := lightning.NewClient(socketPath, cfg.RPCTimeout)

		unit := options["funds_display_unit"]
		if unit == "" {
			unit = cfg.DisplayUnit
		}
		svc = fund.NewService(node, prices, unit)

		p.Log("info", fmt.Sprintf("funds plugin initialized, rpc interface at %s", socketPath))
		return nil
	})

	p.AddMethod(plugin.Method{
		Name:            "funds",
		Usage:           "[unit] [trading]",
		Description:     fundsDescription,
		LongDescription: fundsLongDescription,
		Handler: func(ctx context.Context, params json.RawMessage) (any, error) {
			if svc == nil {
				return nil, errors.New("funds plugin not initialized")
			}
			unit, trading, err := parseFundsParams(params)
			if err != nil {
				return nil, err
			}
			return svc.Report(ctx, unit, trading)
		},
	})

	return p.Run(c.Context)
}

func runReport(c *cli.Context) error {
	cfg := config.Load()

	socketPath := filepath.Join(c.String("lightning-dir"), c.String("rpc-file"))
	node := lightning.NewClient(socketPath, cfg.RPCTimeout)
	prices := ticker.NewClient(cfg.TickerURL, cfg.TickerTimeout)
	svc := fund.NewService(node, prices, cfg.DisplayUnit)

	r, err := svc.Report(c.Context, c.String("unit"), c.String("trading"))
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// parseFundsParams accepts lightningd's two param shapes: an object with
// optional unit/trading keys, or a positional array [unit, trading].
func parseFundsParams(params json.RawMessage) (unit, trading string, err error) {
	if len(params) == 0 {
		return "", "", nil
	}

	var named struct {
		Unit    *string `json:"unit"`
		Trading *string `json:"trading"`
	}
	if err := json.Unmarshal(params, &named); err == nil {
		return lo.FromPtr(named.Unit), lo.FromPtr(named.Trading), nil
	}

	var positional []*string
	if err := json.Unmarshal(params, &positional); err != nil {
		return "", "", fmt.Errorf("invalid funds params: %s", params)
	}
	if len(positional) > 2 {
		return "", "", errors.New("funds takes at most two arguments: [unit] [trading]")
	}
	if len(positional) > 0 {
		unit = lo.FromPtr(positional[0])
	}
	if len(positional) > 1 {
		trading = lo.FromPtr(positional[1])
	}
	return unit, trading, nil
}
