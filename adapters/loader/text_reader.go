package loader

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"calfit/domain/core"
	"calfit/domain/sample"
	"calfit/internal/errors"
)

// TextReader parses plain-text coordinate files: one sample per line in
// "x,y" form. Blank lines are skipped silently; malformed lines are skipped
// with a warning and the rest of the file is still processed.
type TextReader struct{}

// NewTextReader creates a plain-text sample reader
func NewTextReader() *TextReader {
	return &TextReader{}
}

// Read parses the file at path into a sample set
func (r *TextReader) Read(ctx context.Context, path string) (*sample.Set, []string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.IOFailure(path, err)
	}
	defer file.Close()

	set := sample.NewSet(64)
	var warnings []string

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		x, y, ok := parsePair(line)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("line %d: cannot parse %q, skipped", lineNo, line))
			continue
		}
		set.Append(x, y)
	}
	if err := scanner.Err(); err != nil {
		return nil, warnings, errors.IOFailure(path, err)
	}

	if set.Len() == 0 {
		return nil, warnings, fmt.Errorf("%w: %s", core.ErrNoParseableData, path)
	}
	return set, warnings, nil
}

// parsePair splits "x,y" into two floats
func parsePair(line string) (float64, float64, bool) {
	parts := strings.Split(line, ",")
	if len(parts) != 2 {
		return 0, 0, false
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, false
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, false
	}
	return x, y, true
}
