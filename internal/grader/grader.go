// Package grader runs command scripts against cleaning stages and reports
// whether every test case was solved.
package grader

import (
	"bytes"
	"fmt"
	"strings"

	"cleaningrobot/internal/cleaning"
	"cleaningrobot/internal/interpreter"
	"cleaningrobot/internal/messages"
)

// CaseResult is the verdict for a single test case.
type CaseResult struct {
	Outcome  messages.Localized `json:"outcome"`
	Output   string             `json:"output"`
	Success  bool               `json:"success"`
	Mismatch bool               `json:"mismatch,omitempty"` // output differed from the expected one
	Error    string             `json:"error,omitempty"`
}

// Report summarizes a graded script.
type Report struct {
	Success bool         `json:"success"`
	Passed  int          `json:"passed"`
	Total   int          `json:"total"`
	Output  string       `json:"output"`
	Results []CaseResult `json:"results"`
}

// Grader evaluates scripts.
type Grader struct {
	Locale   messages.Locale
	MaxSteps int

	// Prepare, if set, is called with each fresh model and context before the
	// script runs, e.g. to attach a renderer.
	Prepare func(*cleaning.Model, *interpreter.Context)
}

// New returns a grader with the given locale and statement budget.
func New(locale messages.Locale, maxSteps int) *Grader {
	return &Grader{Locale: locale, MaxSteps: maxSteps}
}

// Evaluate parses src once and runs it against every test case of stage in
// order, stopping at the first failure. Parse errors are returned as errors;
// an unusable map or a runtime script error only fails its case.
func (g *Grader) Evaluate(src string, stage *Stage) (*Report, error) {
	prog, err := interpreter.Parse(src)
	if err != nil {
		return nil, err
	}

	rep := &Report{Total: len(stage.TestCases)}
	var output strings.Builder
	for _, tc := range stage.TestCases {
		res := g.runCase(prog, stage, tc)
		output.WriteString(res.Output)
		rep.Results = append(rep.Results, res)
		if !res.Success {
			break
		}
		rep.Passed++
	}
	rep.Output = output.String()
	rep.Success = rep.Passed == rep.Total
	return rep, nil
}

func (g *Grader) runCase(prog *interpreter.Program, stage *Stage, tc TestCase) CaseResult {
	m, err := cleaning.NewFromStage(stage.dataFor(tc))
	if err != nil {
		return CaseResult{Error: fmt.Sprintf("load map: %v", err)}
	}

	var out bytes.Buffer
	ctx := interpreter.NewContext(m, &out)
	ctx.MaxSteps = g.MaxSteps
	ctx.SetInput(tc.Input)
	if g.Prepare != nil {
		g.Prepare(m, ctx)
	}

	var res CaseResult
	if err := prog.Exec(ctx); err != nil {
		res.Error = err.Error()
	}
	res.Output = out.String()
	res.Outcome = messages.Localize(g.Locale, m.Outcome())
	res.Success = res.Error == "" && res.Outcome.Successful
	if tc.Output != nil && strings.TrimSpace(res.Output) != strings.TrimSpace(*tc.Output) {
		res.Mismatch = true
		res.Success = false
	}
	return res
}
