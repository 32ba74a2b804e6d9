// Package plainfile reads plain line-aligned corpus files: one sentence
// per physical line, aligned to the matching line of the other language's
// file purely by position.
package plainfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads every line of r, trimmed of surrounding whitespace, in file
// order. Empty lines are kept so that line indices stay aligned with the
// other side of the pair; the aligner filters empty pairs out.
func Parse(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading corpus file: %w", err)
	}
	return lines, nil
}
