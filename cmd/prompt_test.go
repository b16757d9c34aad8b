package cmd

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etnz/finplan"
)

func TestPrompter_IntAsksAgain(t *testing.T) {
	p, out := prompter("abc\n5\n1,200\n")
	v, err := p.Int("나이: ", "", 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1200, v)
	assert.Contains(t, out.String(), "숫자로 입력하세요.")
	assert.Contains(t, out.String(), "10 이상을 입력하세요.")
}

func TestPrompter_IntPreset(t *testing.T) {
	p, out := prompter("")
	v, err := p.Int("나이: ", "42", 10)
	require.NoError(t, err)
	assert.EqualValues(t, 42, v)
	assert.Empty(t, out.String())

	_, err = p.Int("나이: ", "5", 10)
	var verr *finplan.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "10 이상을 입력하세요.", verr.Message)
}

func TestPrompter_IntBetween(t *testing.T) {
	p, out := prompter("0\n101\n100\n")
	v, err := p.IntBetween("기간: ", "", 1, 100)
	require.NoError(t, err)
	assert.EqualValues(t, 100, v)
	assert.Contains(t, out.String(), "1 이상을 입력하세요.")
	assert.Contains(t, out.String(), "100 이하를 입력하세요.")

	_, err = p.IntBetween("기간: ", "1,000", 1, 100)
	var verr *finplan.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestPrompter_Rate(t *testing.T) {
	tests := []struct {
		input string
		want  finplan.Rate
	}{
		{"5\n", 0.05},
		{"5%\n", 0.05},
		{"0.05\n", 0.05},
		{"\n", 0},
		{"x\n7.5 %\n", 0.075},
		{"-3\n4\n", 0.04},
	}
	for _, tt := range tests {
		p, _ := prompter(tt.input)
		got, err := p.Rate("수익률: ", "", 0)
		require.NoError(t, err, tt.input)
		assert.InDelta(t, float64(tt.want), float64(got), 1e-12, tt.input)
	}
}

func TestPrompter_Choice(t *testing.T) {
	p, out := prompter("\n")
	v, err := p.Choice("종류", "", []string{"배당", "양도"}, "배당")
	require.NoError(t, err)
	assert.Equal(t, "배당", v)
	assert.Equal(t, "종류 (배당/양도) [기본:배당] ", out.String())

	p, out = prompter("\n3\n2\n")
	v, err = p.Choice("메뉴", "", []string{"1", "2"}, "")
	require.NoError(t, err)
	assert.Equal(t, "2", v)
	assert.Contains(t, out.String(), "목록 중에서 선택하세요.")
}

func TestPrompter_Text(t *testing.T) {
	p, out := prompter("\n   \n 내 집 마련 \n")
	v, err := p.Text("목표: ", "")
	require.NoError(t, err)
	assert.Equal(t, "내 집 마련", v)
	assert.Contains(t, out.String(), "값을 입력하세요.")
}

func TestPrompter_LastLineWithoutNewline(t *testing.T) {
	p, _ := prompter("12")
	v, err := p.Int("수량: ", "", 1)
	require.NoError(t, err)
	assert.EqualValues(t, 12, v)
}

func TestPrompter_EOF(t *testing.T) {
	p, _ := prompter("abc\n")
	_, err := p.Int("수량: ", "", 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, io.EOF))
}

func TestPrompter_Survey(t *testing.T) {
	p, out := prompter("3\n4\n3\n3\n2\n3\n")
	res, err := p.Survey("")
	require.NoError(t, err)
	assert.Equal(t, finplan.Aggressive, res.Category)
	assert.InDelta(t, 2.8, res.Mean, 1e-9)
	assert.Contains(t, out.String(), finplan.Questionnaire[0].Text)
	assert.Contains(t, out.String(), "1~3 중 하나를 입력하세요.")
	assert.Contains(t, out.String(), "설문 결과: 공격형 (평균점수 2.80)")
}

func TestPrompter_SurveyPreset(t *testing.T) {
	p, _ := prompter("")
	res, err := p.Survey("2, 2, 2, 2, 1")
	require.NoError(t, err)
	assert.Equal(t, finplan.Neutral, res.Category)

	_, err = p.Survey("1,2,x")
	var verr *finplan.ValidationError
	assert.ErrorAs(t, err, &verr)

	_, err = p.Survey("1,2,3")
	assert.ErrorAs(t, err, &verr)
}
