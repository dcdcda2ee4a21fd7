package cmd

import (
	"context"
	"flag"
	"fmt"
	"time"

	money "github.com/Rhymond/go-money"
	"github.com/etnz/bullboard"
	"github.com/google/subcommands"
)

type addCmd struct {
	eventType  string
	date       string
	price      string
	currency   string
	identifier string
	amount     float64
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new event in the ledger" }
func (*addCmd) Usage() string {
	return `bb add -type <buy|dividend|price> -price <price> -currency <code> -identifier <ticker> [-amount <shares>] [-date <date>]

  Appends one event to the ledger. The price is per share; for a buy, -amount
  is the number of shares (fractional allowed). The date accepts 2006-01-02
  or 02-01-2006 and defaults to now.

Usage Examples:
# Record buying 10 shares of AAPL at 13.37 USD each.
$ bb add -type buy -identifier AAPL -amount 10 -price 13.37 -currency USD

# Record an observed market price.
$ bb add -type price -identifier AAPL -price 15.00 -currency USD

`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.eventType, "type", "", "Type of event to add (buy, dividend, price).")
	f.StringVar(&p.date, "date", "", "Date of the event. Defaults to now.")
	f.StringVar(&p.price, "price", "", "Per-share price of the event.")
	f.StringVar(&p.currency, "currency", "", "Currency code of the price.")
	f.StringVar(&p.identifier, "identifier", "", "Ticker symbol of the asset.")
	f.Float64Var(&p.amount, "amount", 1, "Number of shares for a buy event.")
}

func (p *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	event, err := p.event()
	if err != nil {
		fail(err)
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	if err := store.Append(defaultLedgerID, []bullboard.Event{event}); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s event for %s.\n", event.What(), event.Stock())
	return subcommands.ExitSuccess
}

// event builds the domain event described by the flags.
func (p *addCmd) event() (bullboard.Event, error) {
	if p.identifier == "" {
		return nil, fmt.Errorf("identifier is required")
	}
	if money.GetCurrency(p.currency) == nil {
		return nil, fmt.Errorf("unknown currency code %q", p.currency)
	}
	price, err := bullboard.ParseAmount(p.price + " " + p.currency)
	if err != nil {
		return nil, err
	}
	createdAt, err := parseDate(p.date)
	if err != nil {
		return nil, err
	}

	identifier := bullboard.StockIdentifier(p.identifier)
	switch p.eventType {
	case "buy":
		return bullboard.NewStocksBought(createdAt, p.amount, price, identifier), nil
	case "dividend":
		return bullboard.NewDividendPaid(createdAt, price, identifier), nil
	case "price":
		return bullboard.NewPriceObtained(createdAt, price, identifier), nil
	default:
		return nil, fmt.Errorf("unknown event type %q (want buy, dividend or price)", p.eventType)
	}
}

// dateFormats are tried in order; permissive variants allow single-digit day
// and month.
var dateFormats = []string{"2006-1-2", "2-1-2006"}

// parseDate parses a command line date, defaulting to now when empty.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC(), nil
	}
	for _, format := range dateFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("could not parse date %q", s)
}
