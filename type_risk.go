package finplan

import (
	"fmt"
	"strings"
)

// RiskCategory is an investor risk profile.
type RiskCategory int

const (
	// Conservative favours bonds, dividends and cash.
	Conservative RiskCategory = iota + 1
	// Neutral balances growth and stability.
	Neutral
	// Aggressive favours growth equities.
	Aggressive
)

// Categories lists all risk categories from the most to the least prudent.
func Categories() []RiskCategory { return []RiskCategory{Conservative, Neutral, Aggressive} }

func (c RiskCategory) String() string {
	switch c {
	case Conservative:
		return "conservative"
	case Neutral:
		return "neutral"
	case Aggressive:
		return "aggressive"
	default:
		return "unknown"
	}
}

// Label returns the display name of the category.
func (c RiskCategory) Label() string {
	switch c {
	case Conservative:
		return "보수형"
	case Neutral:
		return "중립형"
	case Aggressive:
		return "공격형"
	default:
		return "알 수 없음"
	}
}

// Anchor returns the numeric score of the category: 1, 2 or 3.
func (c RiskCategory) Anchor() float64 { return float64(c) }

// Valid reports whether c is one of the three categories.
func (c RiskCategory) Valid() bool { return c >= Conservative && c <= Aggressive }

// ParseRiskCategory parses either the english key or the display label.
func ParseRiskCategory(s string) (RiskCategory, error) {
	s = strings.TrimSpace(s)
	for _, c := range Categories() {
		if strings.EqualFold(s, c.String()) || s == c.Label() {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown risk category: %q", s)
}

// RiskSelection is the category a user asked for, or Auto to derive it from age.
type RiskSelection int

// Auto derives the base category from the investor's age.
const Auto RiskSelection = 0

// Select returns the selection of a fixed category.
func Select(c RiskCategory) RiskSelection { return RiskSelection(c) }

func (s RiskSelection) String() string {
	if s == Auto {
		return "auto"
	}
	return RiskCategory(s).String()
}

// ParseRiskSelection parses "auto" (or "자동") or any risk category.
func ParseRiskSelection(s string) (RiskSelection, error) {
	if t := strings.TrimSpace(s); strings.EqualFold(t, "auto") || t == "자동" || t == "" {
		return Auto, nil
	}
	c, err := ParseRiskCategory(s)
	if err != nil {
		return Auto, err
	}
	return Select(c), nil
}
