package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/leverage"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the portfolio totals and the risk tier.
func SummaryMarkdown(t leverage.Totals, futures bool) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Summary")
	doc.PlainText(fmt.Sprintf("Leverage: **%s**, risk: **%s**", ratio(t), t.Risk))

	gainLabel, returnLabel := "Stock P/L", "Stock Return"
	if t.StockOverridden {
		gainLabel, returnLabel = "Stock P/L (typed)", "Stock Return (typed)"
	}
	rows := [][]string{
		{"Stock Market Value", t.StockValue.String()},
		{gainLabel, signed(t.StockGain)},
		{returnLabel, rate(t.StockReturn)},
	}
	if futures {
		rows = append(rows,
			[]string{"Futures Exposure (small)", t.FuturesSmallExposure.String()},
			[]string{"Futures Exposure (large)", t.FuturesLargeExposure.String()},
			[]string{"Futures Exposure", t.FuturesExposure.String()},
			[]string{"Futures P/L", signed(t.FuturesGain)},
			[]string{"Futures Return", rate(t.FuturesReturn)},
		)
	}
	rows = append(rows,
		[]string{"Total Exposure", t.TotalExposure.String()},
		[]string{"Total Capital", t.TotalCapital.String()},
		[]string{"Leverage", ratio(t)},
		[]string{"Risk", t.Risk.String()},
	)
	doc.Table(md.TableSet{
		Header: []string{"Total", "Value"},
		Rows:   rows,
	})

	return doc.String()
}
