package bullboard

import (
	"errors"
	"strings"
	"testing"
	"time"
)

// enronWentBankruptAt is a fixed timestamp for deterministic tests.
var enronWentBankruptAt = time.Date(2001, time.December, 2, 9, 42, 0, 0, time.UTC)

func TestEncodeEventRoundTrip(t *testing.T) {
	events := []Event{
		NewStocksBought(enronWentBankruptAt, 10.5, A(13.37, "USD"), "AAPL"),
		NewPriceObtained(enronWentBankruptAt, A(170.0, "USD"), "AAPL"),
		NewDividendPaid(enronWentBankruptAt, A(0.22, "EUR"), "ASR.AS"),
	}
	for _, e := range events {
		data, err := EncodeEvent(e)
		if err != nil {
			t.Fatalf("EncodeEvent(%s) returned an unexpected error: %v", e.What(), err)
		}
		decoded, err := DecodeEvent(data)
		if err != nil {
			t.Fatalf("DecodeEvent(%s) returned an unexpected error: %v", data, err)
		}
		if !decoded.Equal(e) {
			t.Errorf("round trip of %s changed the event: got %#v, want %#v", e.What(), decoded, e)
		}
	}
}

func TestEncodeEventIsTagged(t *testing.T) {
	data, err := EncodeEvent(NewStocksBought(enronWentBankruptAt, 10, A(13.37, "USD"), "AAPL"))
	if err != nil {
		t.Fatalf("EncodeEvent returned an unexpected error: %v", err)
	}
	payload := string(data)
	for _, want := range []string{`"event":"stocks-bought"`, `"identifier":"AAPL"`, `"currency":"USD"`, `"amount":10`} {
		if !strings.Contains(payload, want) {
			t.Errorf("payload %s does not contain %s", payload, want)
		}
	}
}

func TestDecodeEventPreservesSubSecondPrecision(t *testing.T) {
	at := time.Date(2001, time.December, 2, 9, 42, 0, 123456789, time.UTC)
	data, err := EncodeEvent(NewPriceObtained(at, A(1, "USD"), "AAPL"))
	if err != nil {
		t.Fatalf("EncodeEvent returned an unexpected error: %v", err)
	}
	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent returned an unexpected error: %v", err)
	}
	if !decoded.When().Equal(at) {
		t.Errorf("timestamp round trip = %v, want %v", decoded.When(), at)
	}
}

func TestDecodeEventUnknownTag(t *testing.T) {
	_, err := DecodeEvent([]byte(`{"event":"stocks-shorted","identifier":"AAPL"}`))
	var corrupt *CorruptEventError
	if !errors.As(err, &corrupt) {
		t.Fatalf("DecodeEvent error = %v, want *CorruptEventError", err)
	}
}

func TestDecodeEventMalformedPayload(t *testing.T) {
	tests := []string{
		`not json at all`,
		`{"event":"stocks-bought","amount":"ten"}`,
	}
	for _, payload := range tests {
		_, err := DecodeEvent([]byte(payload))
		var corrupt *CorruptEventError
		if !errors.As(err, &corrupt) {
			t.Errorf("DecodeEvent(%q) error = %v, want *CorruptEventError", payload, err)
		}
	}
}
