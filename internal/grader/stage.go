package grader

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"cleaningrobot/internal/cleaning"
)

// StageTypeCleaning is the only stage type this runner grades.
const StageTypeCleaning = "cleaning"

var ErrStageType = errors.New("unsupported stage type")

// TestCase is one graded run. Data overrides the stage map; Output, when
// set, must match the script output.
type TestCase struct {
	Input  string              `json:"input"`
	Output *string             `json:"output,omitempty"`
	Data   *cleaning.StageData `json:"data,omitempty"`
}

// Stage is a cleaning challenge: a default map plus test cases.
type Stage struct {
	Type      string             `json:"type"`
	Data      cleaning.StageData `json:"data"`
	TestCases []TestCase         `json:"testCases"`
}

// ParseStage decodes a stage document. A missing type means cleaning, and a
// stage without test cases gets a single empty one.
func ParseStage(data []byte) (*Stage, error) {
	var s Stage
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode stage: %w", err)
	}
	if s.Type == "" {
		s.Type = StageTypeCleaning
	}
	if s.Type != StageTypeCleaning {
		return nil, fmt.Errorf("%w %q", ErrStageType, s.Type)
	}
	if len(s.TestCases) == 0 {
		s.TestCases = []TestCase{{}}
	}
	return &s, nil
}

// LoadStage reads a stage file from disk.
func LoadStage(path string) (*Stage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := ParseStage(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// StageFromMap wraps a bare map as a single-case stage.
func StageFromMap(rows []string) *Stage {
	return &Stage{
		Type:      StageTypeCleaning,
		Data:      cleaning.StageData{Map: rows},
		TestCases: []TestCase{{}},
	}
}

// dataFor picks the map a test case runs on.
func (s *Stage) dataFor(tc TestCase) cleaning.StageData {
	if tc.Data != nil {
		return *tc.Data
	}
	return s.Data
}
