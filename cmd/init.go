package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type initCmd struct{}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "initialize the event store" }
func (*initCmd) Usage() string {
	return `bb init

  Creates the event database and its schema. Safe to run repeatedly; an
  existing database is left untouched. The database location is taken from
  the BULLBOARD_DB_PATH environment variable, defaulting to bullboard.db.

`
}

func (*initCmd) SetFlags(f *flag.FlagSet) {}

func (p *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	if err := store.Init(); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}

	fmt.Println("Event store initialized.")
	return subcommands.ExitSuccess
}
