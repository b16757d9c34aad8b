package finplan

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Rate is a ratio expressed as a fraction: 0.05 is 5%.
type Rate float64

func (r Rate) Equal(q Rate) bool {
	// it has to be compared with some precision
	const precision = 0.000001
	return math.Abs(float64(r-q)) < precision
}

// String returns the rate as a percentage with one decimal, e.g. "15.4%".
func (r Rate) String() string {
	return fmt.Sprintf("%.1f%%", float64(r)*100)
}

// Precise returns the rate as a percentage with two decimals, e.g. "5.00%".
func (r Rate) Precise() string {
	return fmt.Sprintf("%.2f%%", float64(r)*100)
}

// ParseRate parses a rate typed by a user. "5", "5%" and "0.05" all mean 5%:
// any magnitude above 1 is read as a percentage. The empty string is 0.
func ParseRate(s string) (Rate, error) {
	s = strings.NewReplacer(",", "", "%", "").Replace(s)
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ValidationError{Message: "숫자(또는 %)로 입력하세요. 예: 5 또는 0.05 또는 1,000,000"}
	}
	if v > 1 || v < -1 {
		v /= 100
	}
	return Rate(v), nil
}
