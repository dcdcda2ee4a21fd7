// Package renderer turns projections into markdown documents for the CLI.
package renderer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/etnz/bullboard"
)

// unknownValue is displayed for assets that never had a price observation.
const unknownValue = "??.?? ???"

// DashboardMarkdown renders the dashboard projection as a markdown document:
// a summary table of ledger-wide totals followed by one row per asset.
func DashboardMarkdown(d *bullboard.Dashboard) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Dashboard\n\n")

	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Number of positions | %d |\n", d.NumberOfPositions)
	fmt.Fprintf(&b, "| Total buying price | %s |\n", amountsCell(d.TotalBuyingPrice))
	fmt.Fprintf(&b, "| Total value | %s |\n", amountsCell(d.TotalValue))
	fmt.Fprintf(&b, "| Total dividend | %s |\n", amountsCell(d.TotalDividend))
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "| Ticker | Amount | Dividend | Value |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	for _, asset := range assetsByValue(d) {
		value := unknownValue
		if asset.Value != nil {
			value = asset.Value.String()
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			asset.Identifier,
			formatShares(asset.Amount),
			asset.Dividends,
			value,
		)
	}
	return b.String()
}

// assetsByValue orders assets by value descending, unpriced assets last.
func assetsByValue(d *bullboard.Dashboard) []bullboard.Asset {
	assets := d.Assets()
	sort.SliceStable(assets, func(i, j int) bool {
		vi, vj := assets[i].Value, assets[j].Value
		switch {
		case vi == nil:
			return false
		case vj == nil:
			return true
		default:
			return vj.LessThan(*vi)
		}
	})
	return assets
}

// amountsCell formats a multi-currency bag on a single table row.
func amountsCell(bag bullboard.Amounts) string {
	entries := bag.Sorted()
	cells := make([]string, 0, len(entries))
	for _, a := range entries {
		cells = append(cells, a.String())
	}
	return strings.Join(cells, "<br>")
}

// formatShares trims the trailing zeros off a share count.
func formatShares(amount float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.4f", amount), "0"), ".")
}
