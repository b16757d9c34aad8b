package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/etnz/finplan"
)

// Prompter reads values typed by the user. Every method takes a preset,
// usually a flag value: when it is not empty it is validated instead of
// asking, and a *finplan.ValidationError is returned as is. Typed values
// that do not validate are asked again.
type Prompter struct {
	r *bufio.Reader
	w io.Writer
}

// NewPrompter returns a Prompter reading lines from r and writing prompts to w.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{r: bufio.NewReader(r), w: w}
}

// ask prompts with msg until parse accepts the line.
func (p *Prompter) ask(msg, preset string, parse func(string) error) error {
	if preset != "" {
		return parse(strings.TrimSpace(preset))
	}
	for {
		fmt.Fprint(p.w, msg)
		line, err := p.r.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return eris.Wrap(err, "prompt: read")
		}
		err = parse(strings.TrimSpace(line))
		var verr *finplan.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintln(p.w, verr.Message)
			continue
		}
		return err
	}
}

// Println writes a line on the prompt output.
func (p *Prompter) Println(a ...any) { fmt.Fprintln(p.w, a...) }

// Int asks for a whole number of at least atLeast. Thousands separators are allowed.
func (p *Prompter) Int(msg, preset string, atLeast int64) (int64, error) {
	return p.IntBetween(msg, preset, atLeast, math.MaxInt64)
}

// IntBetween asks for a whole number in [lo, hi].
func (p *Prompter) IntBetween(msg, preset string, lo, hi int64) (v int64, err error) {
	err = p.ask(msg, preset, func(s string) error {
		n, err := finplan.ParseAmount(s)
		if err != nil {
			return err
		}
		switch {
		case n < lo:
			return &finplan.ValidationError{Message: fmt.Sprintf("%d 이상을 입력하세요.", lo)}
		case n > hi:
			return &finplan.ValidationError{Message: fmt.Sprintf("%d 이하를 입력하세요.", hi)}
		}
		v = n
		return nil
	})
	return v, err
}

// Rate asks for a rate of at least atLeast, see finplan.ParseRate.
func (p *Prompter) Rate(msg, preset string, atLeast finplan.Rate) (v finplan.Rate, err error) {
	err = p.ask(msg, preset, func(s string) error {
		r, err := finplan.ParseRate(s)
		if err != nil {
			return err
		}
		if r < atLeast {
			return &finplan.ValidationError{Message: fmt.Sprintf("%s 이상 입력.", atLeast)}
		}
		v = r
		return nil
	})
	return v, err
}

// Choice asks for one of choices. An empty answer picks def, unless def is empty.
func (p *Prompter) Choice(msg, preset string, choices []string, def string) (v string, err error) {
	msg = fmt.Sprintf("%s (%s) ", msg, strings.Join(choices, "/"))
	if def != "" {
		msg += fmt.Sprintf("[기본:%s] ", def)
	}
	err = p.ask(msg, preset, func(s string) error {
		switch {
		case s == "" && def != "":
			v = def
		case slices.Contains(choices, s):
			v = s
		default:
			return &finplan.ValidationError{Message: "목록 중에서 선택하세요."}
		}
		return nil
	})
	return v, err
}

// Text asks for a non empty line.
func (p *Prompter) Text(msg, preset string) (v string, err error) {
	err = p.ask(msg, preset, func(s string) error {
		if s == "" {
			return &finplan.ValidationError{Message: "값을 입력하세요."}
		}
		v = s
		return nil
	})
	return v, err
}

// Survey runs the risk questionnaire. The preset is a comma separated list
// of answers, such as "1,2,3,2,1".
func (p *Prompter) Survey(preset string) (finplan.QuestionnaireResult, error) {
	if preset != "" {
		var answers []int
		for _, f := range strings.Split(preset, ",") {
			a, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return finplan.QuestionnaireResult{}, &finplan.ValidationError{Field: "answers", Message: "답변은 쉼표로 구분한 숫자입니다."}
			}
			answers = append(answers, a)
		}
		return finplan.Score(answers)
	}

	p.Println()
	p.Println("[투자 성향 진단 테스트]")
	p.Println("간단한 5가지 질문을 통해 투자 성향을 판단합니다.")
	p.Println("각 질문에 대해 자신의 생각과 가장 가까운 번호를 입력하세요.")

	answers := make([]int, 0, len(finplan.Questionnaire))
	for _, q := range finplan.Questionnaire {
		p.Println()
		p.Println(q.Text)
		for i, o := range q.Options {
			p.Println(fmt.Sprintf("%d) %s", i+1, o))
		}
		var a int
		err := p.ask("선택 (1~3): ", "", func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 3 {
				return &finplan.ValidationError{Message: "1~3 중 하나를 입력하세요."}
			}
			a = n
			return nil
		})
		if err != nil {
			return finplan.QuestionnaireResult{}, err
		}
		answers = append(answers, a)
	}
	res, err := finplan.Score(answers)
	if err != nil {
		return res, err
	}
	p.Println()
	p.Println(fmt.Sprintf("설문 결과: %s (평균점수 %.2f)", res.Category.Label(), res.Mean))
	return res, nil
}
