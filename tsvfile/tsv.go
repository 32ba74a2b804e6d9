// Package tsvfile reads tab-separated bitext files produced by web-crawl
// alignment: one sentence pair per line with its source URL and alignment
// probability score.
//
// Row layout: url <TAB> probability <TAB> left text <TAB> right text.
// Tabs are the only delimiter; quote characters carry no meaning.
package tsvfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// columns per row: url, probability, left, right.
const columns = 4

// Row is one parsed bitext line.
type Row struct {
	URL         string
	Probability float64
	Left        string
	Right       string
}

// Parse reads r row by row, calling emit with the 0-based row index and
// the parsed row. Parsing stops early when emit returns false. A row with
// the wrong column count or an unparsable probability is a fatal
// integrity error.
func Parse(r io.Reader, emit func(i int, row Row) bool) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	i := 0
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			i++
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != columns {
			return fmt.Errorf("line %d: %d columns, want %d", i+1, len(fields), columns)
		}

		prob, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return fmt.Errorf("line %d: bad probability %q: %w", i+1, fields[1], err)
		}

		row := Row{
			URL:         strings.TrimSpace(fields[0]),
			Probability: prob,
			Left:        strings.TrimSpace(fields[2]),
			Right:       strings.TrimSpace(fields[3]),
		}
		if !emit(i, row) {
			return nil
		}
		i++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading bitext file: %w", err)
	}
	return nil
}
