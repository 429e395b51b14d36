// Command ledgerctl runs ledger operations from the shell using the same
// configuration and stores as the API server.
//
//	ledgerctl transfer -from ES.. -to ES.. -concept "rent of october" -type ORDINARY -date 20/10/2026 -amount 150.00
//	ledgerctl deposit -file input.json
//	ledgerctl balance -iban ES..
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/josh-kwaku/transfer-ledger/internal/app"
	"github.com/josh-kwaku/transfer-ledger/internal/config"
	"github.com/josh-kwaku/transfer-ledger/internal/domain"
	"github.com/josh-kwaku/transfer-ledger/internal/logging"
	"github.com/josh-kwaku/transfer-ledger/internal/service/transfer"
)

var errUsage = errors.New("usage: ledgerctl <transfer|deposit|balance> [flags]")

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, domain.MessageOf(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.InitWriter(stderr, "ledgerctl", cfg.LogLevel, cfg.AppEnv)

	a, err := app.New(ctx, cfg, time.Now)
	if err != nil {
		return err
	}
	defer a.Close()

	return dispatch(ctx, a, args, stdout, stderr)
}

func dispatch(ctx context.Context, a *app.App, args []string, stdout, stderr io.Writer) error {
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "transfer":
		return runTransfer(ctx, a, rest, stdout, stderr)
	case "deposit":
		return runDeposit(ctx, a, rest, stdout, stderr)
	case "balance":
		return runBalance(ctx, a, rest, stdout, stderr)
	default:
		return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
}

func runTransfer(ctx context.Context, a *app.App, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("transfer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var in transfer.Input
	var amount string
	fs.StringVar(&in.FromIBAN, "from", "", "sender IBAN")
	fs.StringVar(&in.ToIBAN, "to", "", "receiver IBAN")
	fs.StringVar(&in.Concept, "concept", "", "transfer concept")
	fs.StringVar(&in.TransferType, "type", "", "ORDINARY, URGENT or IMMEDIATE")
	fs.StringVar(&in.Date, "date", "", "transfer date, DD/MM/YYYY")
	fs.StringVar(&amount, "amount", "", "amount, e.g. 1,250.50")
	if err := fs.Parse(args); err != nil {
		return err
	}
	in.Amount = amount

	res, err := a.Transfers.ProcessTransfer(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, res.Message)
	return nil
}

func runDeposit(ctx context.Context, a *app.App, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("deposit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	file := fs.String("file", "", `JSON file with {"IBAN": ..., "AMOUNT": "EUR ..."}`)
	if err := fs.Parse(args); err != nil {
		return err
	}

	d, err := a.Deposits.DepositFromFile(ctx, *file)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, d.Signature)
	return nil
}

func runBalance(ctx context.Context, a *app.App, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("balance", flag.ContinueOnError)
	fs.SetOutput(stderr)
	iban := fs.String("iban", "", "account IBAN")
	if err := fs.Parse(args); err != nil {
		return err
	}

	b, err := a.Balances.StoreNewBalance(ctx, *iban)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s %s %s\n", b.IBAN, b.Amount, b.Date)
	return nil
}
