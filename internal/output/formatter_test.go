package output

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/lifeplan/assetsim/internal/calculation"
	"github.com/lifeplan/assetsim/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTestProjection runs a three-year projection (husband ages 35-37) whose first
// child is born in the second year.
func buildTestProjection(t *testing.T) *domain.Projection {
	t.Helper()
	rules := domain.DefaultRules()
	rules.TerminalAge = 37
	engine := calculation.NewSimulationEngineWithRules(rules)
	params := &domain.InputParameters{
		HusbandBirthYear: 1990,
		WifeBirthYear:    1992,
		HusbandIncome:    6000000,
		WifeIncome:       4000000,
		Child1BirthYear:  2026,
		HouseLoan:        100000,
		Travel:           200000,
		CurrentAssets:    1000000,
	}
	projection := engine.RunProjection(params, 2025)
	require.Len(t, projection.Rows, 3)
	return projection
}

func readGolden(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(data)
}

func TestConsoleFormatterGolden(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestProjection(t))
	require.NoError(t, err)
	assert.Equal(t, readGolden(t, "console.golden"), string(out))
}

func TestConsoleFormatterEmptyProjection(t *testing.T) {
	projection := calculation.NewSimulationEngine().RunProjection(&domain.InputParameters{CurrentAssets: 500}, 2025)
	out, err := ConsoleFormatter{}.Format(projection)
	require.NoError(t, err)
	content := string(out)
	assert.Contains(t, content, "Starting assets:   500")
	assert.Contains(t, content, "No projection years")
}

func TestConsoleFormatterAbsentWife(t *testing.T) {
	rules := domain.DefaultRules()
	rules.TerminalAge = 35
	projection := calculation.NewSimulationEngineWithRules(rules).RunProjection(&domain.InputParameters{HusbandBirthYear: 1990}, 2025)

	out, err := ConsoleFormatter{}.Format(projection)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	last := strings.Fields(lines[len(lines)-1])
	assert.Equal(t, []string{"2025", "35", "-", "0", "0", "+0", "0"}, last)
}

func TestCSVSummarizerGolden(t *testing.T) {
	out, err := CSVSummarizer{}.Format(buildTestProjection(t))
	require.NoError(t, err)
	assert.Equal(t, readGolden(t, "simple.csv.golden"), string(out))
}

func TestCSVDetailedExporter(t *testing.T) {
	out, err := CSVDetailedExporter{}.Format(buildTestProjection(t))
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	header := records[0]
	col := func(name string) int {
		for i, h := range header {
			if h == name {
				return i
			}
		}
		t.Fatalf("missing column %s", name)
		return -1
	}
	assert.Len(t, header, 15+3*domain.MaxDependents+3)

	unborn, birth := records[1], records[2]
	assert.Equal(t, "", unborn[col("Child1Age")])
	assert.Equal(t, "", unborn[col("Child1Food")])

	assert.Equal(t, "0", birth[col("WifeSalary")])
	assert.Equal(t, "2340000", birth[col("MaternityBenefit")])
	assert.Equal(t, "180000", birth[col("ChildAllowance")])
	assert.Equal(t, "1200000", birth[col("Tax")])
	assert.Equal(t, "7320000", birth[col("NetIncome")])
	assert.Equal(t, "1200000", birth[col("MonthlyFixedAnnual")])
	assert.Equal(t, "200000", birth[col("YearlyFixed")])
	assert.Equal(t, "0", birth[col("Child1Age")])
	assert.Equal(t, "120000", birth[col("Child1Food")])
	assert.Equal(t, "600000", birth[col("Child1Education")])
	assert.Equal(t, "", birth[col("Child2Age")])
	assert.Equal(t, "12800000", birth[col("Assets")])
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(buildTestProjection(t))
	require.NoError(t, err)

	var decoded domain.Projection
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Len(t, decoded.Rows, 3)
	assert.Equal(t, 2026, decoded.Rows[1].Year)
	assert.Equal(t, "18860000", decoded.Summary.FinalAssets.String())
	assert.Equal(t, []string{"Child 1 born"}, decoded.Rows[1].EventLabels())
}

func TestHTMLFormatter(t *testing.T) {
	f, err := NewFormatter("html", "en-US")
	require.NoError(t, err)
	out, err := f.Format(buildTestProjection(t))
	require.NoError(t, err)

	content := string(out)
	assert.True(t, strings.HasPrefix(content, "<!DOCTYPE html>"))
	assert.Contains(t, content, "<td>2026</td>")
	assert.Contains(t, content, `<td class="positive">+5,200,000</td>`)
	assert.Contains(t, content, "Child 1 born")
	assert.Contains(t, content, "2025 - 2027 (3 years)")
}

func TestNumberFormatLocales(t *testing.T) {
	amount := dec(-1234567)
	assert.Equal(t, "-1,234,567", NewNumberFormat("ja-JP").Amount(amount))
	assert.Equal(t, "-1.234.567", NewNumberFormat("de-DE").Amount(amount))
	assert.Equal(t, "-1,234,567", NumberFormat{}.Amount(amount))
	assert.Equal(t, "-1,234,567", NewNumberFormat("not a locale").Amount(amount))
	assert.Equal(t, "+0", NumberFormat{}.Signed(dec(0)))
	assert.Equal(t, "-5", NumberFormat{}.Signed(dec(-5)))
	assert.Equal(t, "42", Plain(dec(42)))
}

func TestGetFormatterByName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"console", "console"},
		{"TABLE", "console"},
		{" csv ", "csv"},
		{"csv-detailed", "detailed-csv"},
		{"html-report", "html"},
		{"json", "json"},
	}
	for _, tt := range tests {
		f := GetFormatterByName(tt.name)
		require.NotNil(t, f, tt.name)
		assert.Equal(t, tt.want, f.Name())
	}
	assert.Nil(t, GetFormatterByName("pdf"))
}

func TestNewFormatterUnsupported(t *testing.T) {
	_, err := NewFormatter("pdf", "ja-JP")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
	assert.Contains(t, err.Error(), "console, csv, detailed-csv, html, json")
}

func TestExtension(t *testing.T) {
	assert.Equal(t, "txt", Extension("console"))
	assert.Equal(t, "csv", Extension("detailed-csv"))
	assert.Equal(t, "csv", Extension("csv"))
	assert.Equal(t, "html", Extension("html-report"))
	assert.Equal(t, "json", Extension("json"))
}
