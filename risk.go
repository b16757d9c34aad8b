package finplan

import (
	"fmt"
	"math"
)

// baseFromAge is the category used when the investor lets the age decide.
func baseFromAge(age int) RiskCategory {
	switch {
	case age < 30:
		return Aggressive
	case age < 60:
		return Neutral
	default:
		return Conservative
	}
}

// ageTilt adjusts score toward risk for young investors and away from it for
// older ones. The result stays within the anchor range [1, 3].
func ageTilt(score float64, age int) float64 {
	switch {
	case age < 30:
		score += 0.5
	case age < 45:
		score += 0.25
	case age < 60:
	case age < 70:
		score -= 0.25
	default:
		score -= 0.5
	}
	return max(Conservative.Anchor(), min(Aggressive.Anchor(), score))
}

// Classify returns the final risk category for a selection and an age, and a
// trace of the computation suitable for display.
//
// The tilted score is rounded to the nearest anchor with ties going to the even
// one: an aggressive investor of 75 scores 2.5 and ends up Neutral.
func Classify(sel RiskSelection, age int) (RiskCategory, string) {
	base := RiskCategory(sel)
	if sel == Auto {
		base = baseFromAge(age)
	}
	score := base.Anchor()
	tilted := ageTilt(score, age)
	final := RiskCategory(math.RoundToEven(tilted))
	trace := fmt.Sprintf("(기본=%s:%.2f → 나이보정=%.2f → 최종=%s)", base.Label(), score, tilted, final.Label())
	return final, trace
}

// Question is one item of the risk questionnaire. The options are worth 1, 2
// and 3 points in order.
type Question struct {
	Text    string
	Options [3]string
}

// Questionnaire is the five question risk survey.
var Questionnaire = [5]Question{
	{"투자 시 손실이 발생하면 어떻게 하시겠습니까?", [3]string{
		"바로 매도해 손실을 줄인다",
		"조금 기다려 본다",
		"오히려 추가매수로 평균단가를 낮춘다",
	}},
	{"투자 기간은 주로 얼마나 계획하십니까?", [3]string{"1년 이하", "1~3년", "3년 이상"}},
	{"수익률과 위험 중 어느 쪽을 더 중시하십니까?", [3]string{"손실이 적은 것이 중요", "균형", "고수익 위해 위험 감수"}},
	{"포트폴리오 비중 선호는?", [3]string{"채권/예금 위주", "주식·채권 균형", "주식 중심"}},
	{"투자 경험은?", [3]string{"거의 없음", "보통", "다양"}},
}

// QuestionnaireResult is the outcome of Score.
type QuestionnaireResult struct {
	Category RiskCategory
	Mean     float64
}

// Score buckets the mean of the questionnaire answers into a category:
// below 1.7 is Conservative, below 2.4 is Neutral, anything else Aggressive.
func Score(answers []int) (QuestionnaireResult, error) {
	if len(answers) != len(Questionnaire) {
		return QuestionnaireResult{}, invalid("answers", "%d개의 답변이 필요합니다 (받은 답변 %d개)", len(Questionnaire), len(answers))
	}
	total := 0
	for i, a := range answers {
		if a < 1 || a > 3 {
			return QuestionnaireResult{}, invalid("answers", "질문 %d: 1~3 중 하나를 입력하세요.", i+1)
		}
		total += a
	}
	mean := float64(total) / float64(len(answers))
	var c RiskCategory
	switch {
	case mean < 1.7:
		c = Conservative
	case mean < 2.4:
		c = Neutral
	default:
		c = Aggressive
	}
	return QuestionnaireResult{Category: c, Mean: mean}, nil
}
