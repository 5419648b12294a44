package cleaning

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"
)

// StageData is the map payload embedded in stage files.
type StageData struct {
	Map []string `json:"map"`
}

// NewFromStage builds a model from a stage payload.
func NewFromStage(data StageData) (*Model, error) {
	return New(data.Map)
}

// LoadMap reads a map file from disk.
//
// Format: Height lines of Width symbols. Blank lines and lines starting
// with '#' are skipped; surrounding whitespace is trimmed.
func LoadMap(path string) (*Model, error) {
	rows, err := ReadRows(path)
	if err != nil {
		return nil, err
	}
	m, err := New(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ReadRows reads the rows of a map file without building a model.
func ReadRows(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	rows, err := ParseRows(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// ParseRows extracts map rows from the text format read by LoadMap.
func ParseRows(data []byte) ([]string, error) {
	var rows []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}
