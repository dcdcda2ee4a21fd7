package bullboard

import "time"

// EventType is a typed string identifying an event variant on the wire.
type EventType string

// Event types used to tag persisted payloads.
const (
	EvtStocksBought  EventType = "stocks-bought"
	EvtPriceObtained EventType = "price-obtained"
	EvtDividendPaid  EventType = "dividend-paid"
)

// StockIdentifier is the ticker symbol used to bucket events and assets.
type StockIdentifier string

func (id StockIdentifier) String() string { return string(id) }

// Event is the common interface of all domain events.
//
// Events are immutable, self-contained facts: once appended to a store they
// are never mutated or deleted, and no event references another. A ledger's
// state is entirely a function of its ordered event list.
type Event interface {
	What() EventType        // What returns the wire tag of the event variant.
	When() time.Time        // When returns the event's creation timestamp (UTC).
	Stock() StockIdentifier // Stock returns the ticker the event refers to.
	Equal(Event) bool
}

// baseEvent carries the fields common to all events.
type baseEvent struct {
	Type      EventType `json:"event"`
	CreatedAt time.Time `json:"createdAt"`
}

func (e baseEvent) What() EventType { return e.Type }
func (e baseEvent) When() time.Time { return e.CreatedAt }

// stockEvent is a component for events referring to one security.
type stockEvent struct {
	baseEvent
	Identifier StockIdentifier `json:"identifier"`
}

func (e stockEvent) Stock() StockIdentifier { return e.Identifier }

// equal compares the common header fields, using time.Time.Equal so a
// monotonic clock reading never breaks comparison with a decoded event.
func (e stockEvent) equal(o stockEvent) bool {
	return e.Type == o.Type && e.Identifier == o.Identifier && e.CreatedAt.Equal(o.CreatedAt)
}

// StocksBought records the purchase of a (possibly fractional) number of
// shares at a per-share price.
type StocksBought struct {
	stockEvent
	Amount float64 // number of shares bought
	Price  Amount  // per-share purchase price
}

// NewStocksBought creates a StocksBought event timestamped at createdAt.
func NewStocksBought(createdAt time.Time, amount float64, price Amount, identifier StockIdentifier) StocksBought {
	return StocksBought{
		stockEvent: stockEvent{
			baseEvent:  baseEvent{Type: EvtStocksBought, CreatedAt: createdAt.UTC()},
			Identifier: identifier,
		},
		Amount: amount,
		Price:  price,
	}
}

// Currency returns the currency of the purchase price.
func (e StocksBought) Currency() Currency { return e.Price.Currency() }

func (e StocksBought) Equal(o Event) bool {
	v, ok := o.(StocksBought)
	return ok && v.stockEvent.equal(e.stockEvent) && v.Amount == e.Amount && v.Price.Equal(e.Price)
}

// PriceObtained records an observed per-share market price.
type PriceObtained struct {
	stockEvent
	Price Amount // observed per-share price
}

// NewPriceObtained creates a PriceObtained event timestamped at createdAt.
func NewPriceObtained(createdAt time.Time, price Amount, identifier StockIdentifier) PriceObtained {
	return PriceObtained{
		stockEvent: stockEvent{
			baseEvent:  baseEvent{Type: EvtPriceObtained, CreatedAt: createdAt.UTC()},
			Identifier: identifier,
		},
		Price: price,
	}
}

// Currency returns the currency of the observed price.
func (e PriceObtained) Currency() Currency { return e.Price.Currency() }

func (e PriceObtained) Equal(o Event) bool {
	v, ok := o.(PriceObtained)
	return ok && v.stockEvent.equal(e.stockEvent) && v.Price.Equal(e.Price)
}

// DividendPaid records a per-share dividend payment.
type DividendPaid struct {
	stockEvent
	Price Amount // per-share dividend
}

// NewDividendPaid creates a DividendPaid event timestamped at createdAt.
func NewDividendPaid(createdAt time.Time, price Amount, identifier StockIdentifier) DividendPaid {
	return DividendPaid{
		stockEvent: stockEvent{
			baseEvent:  baseEvent{Type: EvtDividendPaid, CreatedAt: createdAt.UTC()},
			Identifier: identifier,
		},
		Price: price,
	}
}

// Currency returns the currency of the dividend.
func (e DividendPaid) Currency() Currency { return e.Price.Currency() }

func (e DividendPaid) Equal(o Event) bool {
	v, ok := o.(DividendPaid)
	return ok && v.stockEvent.equal(e.stockEvent) && v.Price.Equal(e.Price)
}
