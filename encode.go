package leverage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// This file contains the JSON codec for a Record.
//
// The file is meant to be human-readable and diff friendly: fields are
// written in a fixed order, amounts as plain JSON numbers, and the whole
// object is indented. Decoding is tolerant: unknown fields are ignored,
// missing ones are zero, keys are matched case-insensitively (older files
// use "Stocks", "BankCash", ...), and amounts may be numbers or strings.

func (s StockRecord) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", s.Name)
	w.Append("shares", s.Shares)
	w.Number("totalCost", s.TotalCost)
	w.Number("marketValue", s.MarketValue)
	w.Number("profitLoss", s.ProfitLoss)
	w.Append("profitLossPercentage", s.ProfitLossPercentage)
	return w.MarshalJSON()
}

func (f FutureRecord) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", f.Name)
	w.Append("lots", f.Lots)
	w.Append("position", f.Position)
	w.Number("costPrice", f.CostPrice)
	w.Number("currentPrice", f.CurrentPrice)
	w.Append("isSmallContract", f.IsSmallContract)
	return w.MarshalJSON()
}

func (r Record) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	stocks := r.Stocks
	if stocks == nil {
		stocks = []StockRecord{}
	}
	w.Append("stocks", stocks)
	// futures are optional, a stock only book is written without them.
	if len(r.Futures) > 0 {
		w.Append("futures", r.Futures)
	}
	w.Number("bankCash", r.BankCash)
	w.Number("stockSettlementAmount", r.StockSettlementAmount)
	if !r.FuturesEquity.IsZero() {
		w.Number("futuresEquity", r.FuturesEquity)
	}
	if r.StockOverride != nil {
		w.Append("stockOverride", r.StockOverride)
	}
	return w.MarshalJSON()
}

func (o OverrideRecord) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Number("profitLoss", o.ProfitLoss)
	w.Append("returnRate", o.ReturnRate)
	return w.MarshalJSON()
}

// EncodeRecord writes r as an indented JSON document.
func EncodeRecord(w io.Writer, r *Record) error {
	raw, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode error: %w", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("encode error: %w", err)
	}
	buf.WriteByte('\n')
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("encode error: %w", err)
	}
	return nil
}

// DecodeRecord reads a JSON document written by EncodeRecord, or by an older
// version of it.
func DecodeRecord(r io.Reader) (*Record, error) {
	var rec Record
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return &rec, nil
}
