package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/finplan"
)

// DividendTaxMarkdown renders a dividend tax estimate.
func DividendTaxMarkdown(t finplan.DividendTax) string {
	var b strings.Builder
	fmt.Fprint(&b, "# 배당소득세\n\n")
	fmt.Fprintf(&b, "총배당 %s / 세율 %s\n\n", t.Gross, t.Rate)
	fmt.Fprintf(&b, "예상 세금: **%s** | 세후 금액: **%s**\n", t.Tax, t.Net)
	return b.String()
}

// CapitalGainTaxMarkdown renders a capital gains tax estimate.
func CapitalGainTaxMarkdown(t finplan.CapitalGainTax) string {
	var b strings.Builder
	fmt.Fprint(&b, "# 양도소득세\n\n")
	fmt.Fprintf(&b, "매수 %s / 매도 %s / 수량 %d / 세율 %s\n\n", t.Buy, t.Sell, t.Quantity, t.Rate)
	fmt.Fprintf(&b, "총차익: %s | 세금: **%s** | 세후 수익: **%s**\n", t.Profit, t.Tax, t.Net)
	return b.String()
}
