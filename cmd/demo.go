package cmd

import (
	"context"
	"flag"

	"github.com/etnz/bullboard"
	"github.com/etnz/bullboard/renderer"
	"github.com/google/subcommands"
)

type demoCmd struct{}

func (*demoCmd) Name() string     { return "demo" }
func (*demoCmd) Synopsis() string { return "show a demo of the dashboard" }
func (*demoCmd) Usage() string {
	return `bb demo

  Renders the dashboard for a canned event stream, without reading or
  writing any database.

`
}

func (*demoCmd) SetFlags(f *flag.FlagSet) {}

func (p *demoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	dashboard, err := bullboard.NewDashboard(bullboard.DemoEvents())
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.DashboardMarkdown(dashboard))
	return subcommands.ExitSuccess
}
