package bullboard

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// This file contains the wire format for persisted events.
//
// Each event serializes to a single self-describing JSON object tagged by an
// "event" field, with the money value flattened into separate "price" and
// "currency" fields. The format must be stable: payloads written by older
// versions keep decoding as new event variants are added, and a
// write/read round trip yields an equal event.

// priceFields is a specialized struct to read a money value from two flat
// fields.
type priceFields struct {
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
}

func (p priceFields) Money() Amount {
	return A(p.Price, Currency(p.Currency))
}

// MarshalJSON implements the json.Marshaler interface for StocksBought.
func (e StocksBought) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(e.stockEvent)
	w.Append("amount", e.Amount)
	w.Append("price", e.Price.value)
	w.Optional("currency", e.Price.cur)
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for PriceObtained.
func (e PriceObtained) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(e.stockEvent)
	w.Append("price", e.Price.value)
	w.Optional("currency", e.Price.cur)
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for DividendPaid.
func (e DividendPaid) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(e.stockEvent)
	w.Append("price", e.Price.value)
	w.Optional("currency", e.Price.cur)
	return w.MarshalJSON()
}

// EncodeEvent serializes a single event to its wire form.
func EncodeEvent(e Event) ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("could not encode %s event: %w", e.What(), err)
	}
	return data, nil
}

// DecodeEvent deserializes a single wire payload back into its event.
// A payload that does not identify as any known event variant fails with a
// *CorruptEventError.
func DecodeEvent(data []byte) (Event, error) {
	var identifier struct {
		Event EventType `json:"event"`
	}
	if err := json.Unmarshal(data, &identifier); err != nil {
		return nil, &CorruptEventError{Payload: string(data), Err: err}
	}

	switch identifier.Event {
	case EvtStocksBought:
		var temp struct {
			stockEvent
			priceFields
			Amount float64 `json:"amount"`
		}
		if err := json.Unmarshal(data, &temp); err != nil {
			return nil, &CorruptEventError{Payload: string(data), Err: err}
		}
		return StocksBought{
			stockEvent: temp.stockEvent,
			Amount:     temp.Amount,
			Price:      temp.Money(),
		}, nil
	case EvtPriceObtained:
		var temp struct {
			stockEvent
			priceFields
		}
		if err := json.Unmarshal(data, &temp); err != nil {
			return nil, &CorruptEventError{Payload: string(data), Err: err}
		}
		return PriceObtained{
			stockEvent: temp.stockEvent,
			Price:      temp.Money(),
		}, nil
	case EvtDividendPaid:
		var temp struct {
			stockEvent
			priceFields
		}
		if err := json.Unmarshal(data, &temp); err != nil {
			return nil, &CorruptEventError{Payload: string(data), Err: err}
		}
		return DividendPaid{
			stockEvent: temp.stockEvent,
			Price:      temp.Money(),
		}, nil
	default:
		return nil, &CorruptEventError{
			Payload: string(data),
			Err:     fmt.Errorf("unknown event type %q", identifier.Event),
		}
	}
}
