package renderer

import (
	"bytes"
	"strconv"

	"github.com/etnz/leverage"
	md "github.com/nao1215/markdown"
)

// BookMarkdown renders the positions, the account figures and the totals of a book.
//
// Positions are numbered from 1, the numbers are the ones the edit and remove
// commands expect. Futures are numbered across both contract sizes, small
// contracts first.
func BookMarkdown(b *leverage.Book) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio Leverage")
	doc.PlainText("Valuation: " + b.Mode().String() + ", currency: " + b.Currency())

	doc.H2("Stocks")
	if len(b.Stocks()) == 0 {
		doc.PlainText("No stock positions.")
	} else {
		doc.Table(stocksTable(b))
	}

	if b.TracksFutures() {
		small, large := b.SmallFutures(), b.LargeFutures()
		doc.H2("Futures, small contracts")
		if len(small) == 0 {
			doc.PlainText("No small contract positions.")
		} else {
			doc.Table(futuresTable(small, 0))
		}
		doc.H2("Futures, large contracts")
		if len(large) == 0 {
			doc.PlainText("No large contract positions.")
		} else {
			doc.Table(futuresTable(large, len(small)))
		}
	}

	rows := [][]string{
		{"Bank Cash", b.BankCash().String()},
		{"Stock Settlement", b.StockSettlement().String()},
	}
	if b.TracksFutures() {
		rows = append(rows, []string{"Futures Equity", b.FuturesEquity().String()})
	}
	doc.H2("Accounts")
	doc.Table(md.TableSet{
		Header: []string{"Account", "Amount"},
		Rows:   rows,
	})

	return doc.String() + "\n" + SummaryMarkdown(b.Totals(), b.TracksFutures())
}

func stocksTable(b *leverage.Book) md.TableSet {
	mode := b.Mode()
	header := []string{"#", "Name", "Shares", "Market Value", "P/L", "Return"}
	if mode == leverage.CostBasis {
		header = []string{"#", "Name", "Shares", "Total Cost", "Market Value", "P/L", "Return"}
	}
	rows := make([][]string, 0, len(b.Stocks()))
	for i, s := range b.Stocks() {
		row := []string{index(i), s.Name(), strconv.Itoa(s.Shares())}
		if mode == leverage.CostBasis {
			row = append(row, s.TotalCost().String())
		}
		row = append(row,
			s.MarketValue().String(),
			signed(s.Gain(mode)),
			rate(s.Return(mode)),
		)
		rows = append(rows, row)
	}
	return md.TableSet{Header: header, Rows: rows}
}

func futuresTable(futures []*leverage.DerivativePosition, offset int) md.TableSet {
	rows := make([][]string, 0, len(futures))
	for i, f := range futures {
		rows = append(rows, []string{
			index(offset + i),
			f.Name(),
			strconv.Itoa(f.Lots()),
			side(f.Direction()),
			f.CostPrice().String(),
			f.CurrentPrice().String(),
			strconv.Itoa(f.SharesPerLot()),
			f.Exposure().String(),
			signed(f.Gain()),
			rate(f.Return()),
		})
	}
	return md.TableSet{
		Header: []string{"#", "Name", "Lots", "Side", "Cost Price", "Price", "Units/Lot", "Exposure", "P/L", "Return"},
		Rows:   rows,
	}
}
