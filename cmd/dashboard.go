package cmd

import (
	"context"
	"flag"

	"github.com/etnz/bullboard"
	"github.com/etnz/bullboard/renderer"
	"github.com/google/subcommands"
)

type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "show current holdings, value and dividends" }
func (*dashboardCmd) Usage() string {
	return `bb dashboard

  Replays the full event history of the ledger and displays the derived
  portfolio view: positions, cost basis, value and dividends.

`
}

func (*dashboardCmd) SetFlags(f *flag.FlagSet) {}

func (p *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	events, err := store.Read(defaultLedgerID)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	dashboard, err := bullboard.NewDashboard(events)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.DashboardMarkdown(dashboard))
	return subcommands.ExitSuccess
}
