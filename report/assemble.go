package report

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/silvercare-lab/doll-pipeline/scoring"
)

// Assemble merges the source table with per-text sentiment records and
// keyword scores. Alignment is positional: row i of src pairs with
// sentiments[i] and keywords[i]. keywordColumns is the full column set of
// the lexicon, so the score columns appear even for a zero-row source.
// Column order is metadata first (original relative order, text column
// excluded), then text, sentiment_pos, sentiment_neg, then keyword score
// columns sorted by name.
func Assemble(src Table, textColumn string, sentiments []scoring.Record, keywords []map[string]float64, keywordColumns []string) (Table, error) {
	textIdx, ok := src.Column(textColumn)
	if !ok {
		return Table{}, fmt.Errorf("missing column %q", textColumn)
	}
	if len(sentiments) != len(src.Rows) {
		return Table{}, fmt.Errorf("sentiment rows %d != source rows %d", len(sentiments), len(src.Rows))
	}
	if len(keywords) != len(src.Rows) {
		return Table{}, fmt.Errorf("keyword rows %d != source rows %d", len(keywords), len(src.Rows))
	}

	var metaIdx []int
	for i := range src.Columns {
		if i != textIdx {
			metaIdx = append(metaIdx, i)
		}
	}

	keywordCols := make([]string, len(keywordColumns))
	copy(keywordCols, keywordColumns)
	sort.Strings(keywordCols)

	cols := make([]string, 0, len(metaIdx)+3+len(keywordCols))
	for _, i := range metaIdx {
		cols = append(cols, src.Columns[i])
	}
	cols = append(cols, textColumn, "sentiment_pos", "sentiment_neg")
	cols = append(cols, keywordCols...)

	rows := make([][]string, len(src.Rows))
	for r, srcRow := range src.Rows {
		row := make([]string, 0, len(cols))
		for _, i := range metaIdx {
			row = append(row, srcRow[i])
		}
		row = append(row,
			sentiments[r].Text,
			formatScore(sentiments[r].SentimentPos),
			formatScore(sentiments[r].SentimentNeg),
		)
		for _, col := range keywordCols {
			row = append(row, formatScore(keywords[r][col]))
		}
		rows[r] = row
	}
	return Table{Columns: cols, Rows: rows}, nil
}

func formatScore(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
