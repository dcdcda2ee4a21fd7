package cmd

import (
	"context"
	"flag"

	"github.com/etnz/bullboard"
	"github.com/etnz/bullboard/renderer"
	"github.com/google/subcommands"
)

type journalCmd struct{}

func (*journalCmd) Name() string     { return "journal" }
func (*journalCmd) Synopsis() string { return "show the chronological journal of the ledger" }
func (*journalCmd) Usage() string {
	return `bb journal

  Replays the full event history of the ledger and displays one row per
  purchase or dividend, in chronological order.

`
}

func (*journalCmd) SetFlags(f *flag.FlagSet) {}

func (p *journalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.JournalMarkdown(bullboard.NewJournal(events)))
	return subcommands.ExitSuccess
}
