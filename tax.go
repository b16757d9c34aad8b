package finplan

// Default tax rates.
const (
	DefaultDividendRate    Rate = 0.154
	DefaultCapitalGainRate Rate = 0.22
)

// DividendTax is the withholding on a dividend.
type DividendTax struct {
	Gross Money
	Rate  Rate
	Tax   Money
	Net   Money
}

// NewDividendTax computes the tax on a gross dividend, rounded to the won.
func NewDividendTax(gross Money, rate Rate) (DividendTax, error) {
	if gross.IsNegative() {
		return DividendTax{}, invalid("gross", "총 배당금은 0 이상이어야 합니다.")
	}
	tax := gross.MulRate(rate).Round()
	return DividendTax{Gross: gross, Rate: rate, Tax: tax, Net: gross.Sub(tax)}, nil
}

// CapitalGainTax is the tax on selling a position. Losses are not taxed.
type CapitalGainTax struct {
	Buy      Money
	Sell     Money
	Quantity int64
	Rate     Rate
	Profit   Money
	Tax      Money
	Net      Money
}

// NewCapitalGainTax computes the tax on selling qty units bought at buy and
// sold at sell.
func NewCapitalGainTax(buy, sell Money, qty int64, rate Rate) (CapitalGainTax, error) {
	if qty < 1 {
		return CapitalGainTax{}, invalid("quantity", "수량은 1 이상이어야 합니다.")
	}
	profit := sell.Sub(buy).MulInt(qty)
	tax := profit.Max(M(0)).MulRate(rate).Round()
	return CapitalGainTax{
		Buy:      buy,
		Sell:     sell,
		Quantity: qty,
		Rate:     rate,
		Profit:   profit,
		Tax:      tax,
		Net:      profit.Sub(tax),
	}, nil
}
