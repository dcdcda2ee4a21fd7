package bullboard

import "sort"

// Asset is a per-identifier snapshot of holdings, derived by the dashboard
// projection. It is never persisted: every projection rebuilds it from
// scratch.
type Asset struct {
	Identifier StockIdentifier
	Amount     float64 // number of shares currently held
	Dividends  Amount  // total dividends received for this asset
	Value      *Amount // value at the last observed price, nil if never priced
}

// Dashboard is the portfolio read view: positions, cost basis, value and
// dividends, all derived by folding a ledger's event history.
//
// A Dashboard is a pure function of its input events: it holds no reference
// back to the store, performs no I/O, and the same event sequence always
// yields the same view.
type Dashboard struct {
	NumberOfPositions int
	TotalDividend     Amounts
	TotalBuyingPrice  Amounts
	TotalValue        Amounts
	assets            map[StockIdentifier]*Asset
}

// NewDashboard folds the ordered event sequence into a fresh Dashboard.
// It fails with a *CurrencyMismatchError when an event's currency is
// incompatible with the asset state accumulated so far (for example a EUR
// dividend on a USD-denominated position).
func NewDashboard(events []Event) (*Dashboard, error) {
	d := &Dashboard{assets: make(map[StockIdentifier]*Asset)}
	for _, e := range events {
		var err error
		switch v := e.(type) {
		case StocksBought:
			d.applyStocksBought(v)
		case PriceObtained:
			d.applyPriceObtained(v)
		case DividendPaid:
			err = d.applyDividendPaid(v)
		}
		if err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Assets returns the derived assets ordered by identifier.
func (d *Dashboard) Assets() []Asset {
	assets := make([]Asset, 0, len(d.assets))
	for _, a := range d.assets {
		assets = append(assets, *a)
	}
	sort.Slice(assets, func(i, j int) bool { return assets[i].Identifier < assets[j].Identifier })
	return assets
}

// Asset returns the derived asset for the identifier, or nil when no stocks
// were ever bought for it.
func (d *Dashboard) Asset(id StockIdentifier) *Asset {
	return d.assets[id]
}

// amountOf returns the number of shares currently held for the identifier,
// zero when unheld.
func (d *Dashboard) amountOf(id StockIdentifier) float64 {
	if a, ok := d.assets[id]; ok {
		return a.Amount
	}
	return 0
}

func (d *Dashboard) applyStocksBought(e StocksBought) {
	asset, ok := d.assets[e.Identifier]
	if !ok {
		// First purchase opens the position. Value stays nil until a price
		// is observed.
		asset = &Asset{Identifier: e.Identifier, Dividends: Zero(e.Currency())}
		d.assets[e.Identifier] = asset
		d.NumberOfPositions++
	}
	asset.Amount += e.Amount
	d.TotalBuyingPrice.Upsert(e.Price.Mul(e.Amount))
}

func (d *Dashboard) applyPriceObtained(e PriceObtained) {
	// Pricing an unheld asset is a no-op.
	asset, ok := d.assets[e.Identifier]
	if !ok {
		return
	}
	value := e.Price.Mul(asset.Amount)
	asset.Value = &value
	// Repeated observations for the same identifier accumulate into the
	// total instead of replacing the prior contribution. See DESIGN.md.
	d.TotalValue.Upsert(value)
}

func (d *Dashboard) applyDividendPaid(e DividendPaid) error {
	dividend := e.Price.Mul(d.amountOf(e.Identifier))
	if asset, ok := d.assets[e.Identifier]; ok {
		sum, err := asset.Dividends.Add(dividend)
		if err != nil {
			return err
		}
		asset.Dividends = sum
	}
	d.TotalDividend.Upsert(dividend)
	return nil
}
