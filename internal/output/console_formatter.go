package output

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/lifeplan/assetsim/internal/domain"
)

// ConsoleFormatter prints the summary followed by one table line per year.
type ConsoleFormatter struct {
	Numbers NumberFormat
}

func (c ConsoleFormatter) Name() string { return "console" }

const consoleRowFormat = "%-6s %7s %5s %14s %14s %15s %16s  %s\n"

func (c ConsoleFormatter) Format(projection *domain.Projection) ([]byte, error) {
	var buf bytes.Buffer
	writeSummary(&buf, &projection.Summary, c.Numbers)

	if len(projection.Rows) == 0 {
		fmt.Fprintln(&buf, "No projection years: the husband is past the terminal age or his birth year is missing.")
		return buf.Bytes(), nil
	}

	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, consoleRowFormat, "Year", "Husband", "Wife", "Income", "Expense", "Balance", "Assets", "Events")
	fmt.Fprintln(&buf, strings.Repeat("-", 100))
	for i := range projection.Rows {
		row := &projection.Rows[i]
		wife := "-"
		if row.WifeDeclared() {
			wife = strconv.Itoa(row.WifeAge)
		}
		fmt.Fprintf(&buf, consoleRowFormat,
			strconv.Itoa(row.Year),
			strconv.Itoa(row.HusbandAge),
			wife,
			c.Numbers.Amount(row.TotalIncome),
			c.Numbers.Amount(row.TotalExpense),
			c.Numbers.Signed(row.Balance),
			c.Numbers.Amount(row.Assets),
			strings.Join(row.EventLabels(), "; "),
		)
	}
	return buf.Bytes(), nil
}

func writeSummary(buf *bytes.Buffer, s *domain.ProjectionSummary, numbers NumberFormat) {
	fmt.Fprintln(buf, "HOUSEHOLD ASSET PROJECTION")
	fmt.Fprintln(buf, "==========================")
	if s.Years == 0 {
		fmt.Fprintf(buf, "Starting assets:   %s\n", numbers.Amount(s.StartingAssets))
		return
	}
	fmt.Fprintf(buf, "Period:            %d - %d (%d years)\n", s.StartYear, s.EndYear, s.Years)
	fmt.Fprintf(buf, "Starting assets:   %s\n", numbers.Amount(s.StartingAssets))
	fmt.Fprintf(buf, "Final assets:      %s\n", numbers.Amount(s.FinalAssets))
	fmt.Fprintf(buf, "Peak assets:       %s (%d)\n", numbers.Amount(s.PeakAssets), s.PeakAssetsYear)
	fmt.Fprintf(buf, "Lowest assets:     %s (%d)\n", numbers.Amount(s.LowestAssets), s.LowestAssetsYear)
	if s.FirstDeficitYear != 0 {
		fmt.Fprintf(buf, "First deficit:     %d\n", s.FirstDeficitYear)
	} else {
		fmt.Fprintln(buf, "First deficit:     none")
	}
	fmt.Fprintf(buf, "Lifetime income:   %s\n", numbers.Amount(s.LifetimeIncome))
	fmt.Fprintf(buf, "Lifetime expense:  %s\n", numbers.Amount(s.LifetimeExpense))
}
