package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/metailurini/lfset/internal/config"
	"github.com/metailurini/lfset/internal/party"
	"github.com/metailurini/lfset/internal/partylog"
	"github.com/pterm/pterm"
)

func main() {
	if err := mainImpl(); err != nil {
		os.Exit(1)
	}
}

func mainImpl() error {
	logger := partylog.WrapPlainLogger(slog.New(slog.NewTextHandler(
		os.Stderr,
		&slog.HandlerOptions{Level: config.LogLevel()},
	)))

	cfg, err := config.Load(logger, os.Args[1:])
	if errors.As(err, new(config.FlagError)) {
		return nil
	} else if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		return err
	}

	pterm.Info.Printfln("%d servants are about to unwrap %d presents", cfg.Servants, cfg.Presents)

	report, err := party.Run(logger, cfg)
	printReport(report)
	if err != nil {
		logger.Error("Party ended badly", "error", err)
		pterm.Error.Println(err.Error())
		return err
	}

	pterm.Success.Println("Done with all thank you notes!")
	return nil
}

func printReport(r party.Report) {
	data := pterm.TableData{
		{"Metric", "Value"},
		{"Seed", fmt.Sprint(r.Seed)},
		{"Presents added", fmt.Sprint(r.Added)},
		{"Notes written", fmt.Sprint(r.Thanked)},
		{"Spot checks", fmt.Sprintf("%d (%d found)", r.SpotChecks, r.SpotHits)},
		{"Presents left", fmt.Sprint(r.Leftover)},
		{"Insert retries", fmt.Sprint(r.Stats.InsertRetries)},
		{"Remove retries", fmt.Sprint(r.Stats.RemoveRetries)},
		{"Splice retries", fmt.Sprint(r.Stats.SpliceRetries)},
		{"Nodes unlinked", fmt.Sprint(r.Stats.Splices)},
		{"Nodes reclaimed", fmt.Sprint(r.Stats.Reclaimed)},
		{"Elapsed", r.Elapsed.String()},
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		pterm.Warning.Println("rendering report:", err)
	}
}
