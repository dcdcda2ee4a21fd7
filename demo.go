package bullboard

import "time"

// DemoEvents returns a canned event stream used by the `demo` subcommand to
// show a populated dashboard without touching any database.
func DemoEvents() []Event {
	boughtAt := time.Date(2007, time.January, 9, 9, 42, 0, 0, time.UTC)
	pricedAt := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	repricedAt := time.Date(2020, time.February, 1, 0, 0, 0, 0, time.UTC)

	return []Event{
		NewStocksBought(boughtAt, 10, A(150.0, "USD"), "AAPL"),
		NewPriceObtained(pricedAt, A(170.0, "USD"), "AAPL"),
		NewStocksBought(boughtAt, 5, A(160.0, "USD"), "AAPL"),
		NewPriceObtained(repricedAt, A(160.0, "USD"), "AAPL"),
		NewStocksBought(boughtAt, 4, A(13.37, "EUR"), "ASR.AS"),
		NewPriceObtained(repricedAt, A(14.20, "EUR"), "ASR.AS"),
		NewStocksBought(boughtAt, 8, A(100.0, "USD"), "MSFT"),
		NewPriceObtained(repricedAt, A(110.0, "USD"), "MSFT"),
		NewDividendPaid(repricedAt, A(0.22, "USD"), "AAPL"),
	}
}
