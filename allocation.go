package finplan

import (
	"fmt"
	"math"
	"slices"
)

// weightTolerance is how far the weights of a model may drift from 1.
const weightTolerance = 1e-6

// Allocation is the share of a portfolio given to one asset class.
type Allocation struct {
	Asset    string   `json:"asset" mapstructure:"asset"`
	Weight   float64  `json:"weight" mapstructure:"weight"`
	Examples []string `json:"examples" mapstructure:"examples"`
}

// AllocationModel is the ordered list of allocations of a category.
type AllocationModel []Allocation

// Total returns the sum of the weights.
func (m AllocationModel) Total() float64 {
	var t float64
	for _, a := range m {
		t += a.Weight
	}
	return t
}

// Validate checks every weight is in [0, 1] and that they sum to 1.
func (m AllocationModel) Validate() error {
	if len(m) == 0 {
		return fmt.Errorf("empty allocation model")
	}
	for _, a := range m {
		if a.Asset == "" {
			return fmt.Errorf("allocation with no asset name")
		}
		if a.Weight < 0 || a.Weight > 1 || math.IsNaN(a.Weight) {
			return fmt.Errorf("asset %q: weight %v out of [0,1]", a.Asset, a.Weight)
		}
	}
	if t := m.Total(); math.Abs(t-1) > weightTolerance {
		return fmt.Errorf("weights sum to %v, want 1", t)
	}
	return nil
}

func (m AllocationModel) clone() AllocationModel {
	c := make(AllocationModel, len(m))
	for i, a := range m {
		c[i] = Allocation{Asset: a.Asset, Weight: a.Weight, Examples: slices.Clone(a.Examples)}
	}
	return c
}

// Catalog is the read-only table of allocation models per risk category.
type Catalog struct {
	models map[RiskCategory]AllocationModel
}

// NewCatalog validates and copies models. Every category must be present.
func NewCatalog(models map[RiskCategory]AllocationModel) (*Catalog, error) {
	c := &Catalog{models: make(map[RiskCategory]AllocationModel, len(models))}
	for _, cat := range Categories() {
		m, ok := models[cat]
		if !ok {
			return nil, fmt.Errorf("no allocation model for %s", cat)
		}
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("allocation model %s: %w", cat, err)
		}
		c.models[cat] = m.clone()
	}
	return c, nil
}

// Lookup returns a copy of the model of a category.
func (c *Catalog) Lookup(cat RiskCategory) AllocationModel {
	return c.models[cat].clone()
}

// Position is an allocation applied to an amount to invest.
type Position struct {
	Allocation
	Amount Money
}

// Recommend splits amount across the model of cat.
func (c *Catalog) Recommend(cat RiskCategory, amount Money) []Position {
	model := c.Lookup(cat)
	positions := make([]Position, len(model))
	for i, a := range model {
		positions[i] = Position{Allocation: a, Amount: amount.MulRate(Rate(a.Weight))}
	}
	return positions
}

// DefaultModels returns the built-in recommendation models.
func DefaultModels() map[RiskCategory]AllocationModel {
	gold := []string{"IAU", "GLD", "금현물"}
	dividend := []string{"VIG", "SCHD", "TIGER 미국배당다우존스"}
	sp500 := []string{"VOO", "SPY", "TIGER 미국S&P500"}
	nasdaq := []string{"QQQM", "QQQ", "TIGER 미국나스닥100"}
	bonds := []string{"BND", "AGG"}
	cash := []string{"MMF/예금"}
	model := func(w ...float64) AllocationModel {
		return AllocationModel{
			{"금", w[0], gold},
			{"배당주", w[1], dividend},
			{"S&P500", w[2], sp500},
			{"나스닥100", w[3], nasdaq},
			{"채권(종합/완충)", w[4], bonds},
			{"현금", w[5], cash},
		}
	}
	return map[RiskCategory]AllocationModel{
		Aggressive:   model(0.05, 0.10, 0.20, 0.50, 0.10, 0.05),
		Neutral:      model(0.05, 0.15, 0.30, 0.30, 0.15, 0.05),
		Conservative: model(0.05, 0.25, 0.20, 0.10, 0.35, 0.05),
	}
}

// DefaultCatalog returns the catalog of the built-in models.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultModels())
	if err != nil {
		panic(err) // built-in tables are tested
	}
	return c
}

// ClassicSplit is the coarse stock, bond and cash split of a category.
type ClassicSplit struct {
	Stock float64 `json:"stock" mapstructure:"stock"`
	Bond  float64 `json:"bond" mapstructure:"bond"`
	Cash  float64 `json:"cash" mapstructure:"cash"`
}

func (s ClassicSplit) String() string {
	return fmt.Sprintf("주식 %s / 채권 %s / 현금 %s", Rate(s.Stock), Rate(s.Bond), Rate(s.Cash))
}

// DefaultClassicSplits returns the built-in coarse splits.
func DefaultClassicSplits() map[RiskCategory]ClassicSplit {
	return map[RiskCategory]ClassicSplit{
		Conservative: {Stock: 0.30, Bond: 0.60, Cash: 0.10},
		Neutral:      {Stock: 0.60, Bond: 0.35, Cash: 0.05},
		Aggressive:   {Stock: 0.85, Bond: 0.10, Cash: 0.05},
	}
}

// Comment returns a one line rationale of the model of a category.
func Comment(cat RiskCategory) string {
	switch cat {
	case Aggressive:
		return "성장자산(나스닥100·S&P500) 중심, 금/채권/현금으로 변동성 완충."
	case Conservative:
		return "배당·채권 비중을 높여 변동성 축소, 금·현금으로 방어력 보강."
	default:
		return "성장성과 안정성 균형. 주식(나스닥·S&P500)과 채권, 배당, 금을 혼합."
	}
}
