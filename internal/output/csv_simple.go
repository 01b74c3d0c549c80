package output

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/lifeplan/assetsim/internal/domain"
)

// CSVSummarizer implements the simple CSV output (one row per projection year).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(projection *domain.Projection) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "HusbandAge", "WifeAge", "TotalIncome", "TotalExpense", "Balance", "Assets", "Events"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i := range projection.Rows {
		row := &projection.Rows[i]
		record := []string{
			strconv.Itoa(row.Year),
			strconv.Itoa(row.HusbandAge),
			wifeAgeField(row),
			Plain(row.TotalIncome),
			Plain(row.TotalExpense),
			Plain(row.Balance),
			Plain(row.Assets),
			strings.Join(row.EventLabels(), "; "),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func wifeAgeField(row *domain.ProjectionRow) string {
	if !row.WifeDeclared() {
		return ""
	}
	return strconv.Itoa(row.WifeAge)
}
