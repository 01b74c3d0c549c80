package output

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/lifeplan/assetsim/internal/domain"
)

const varianceRowFormat = "%-6s %14s %14s %15s %14s %14s %15s %15s\n"

// FormatVariances renders a predicted-versus-actual table.
func FormatVariances(variances []domain.YearVariance, numbers NumberFormat) []byte {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "PREDICTED VS ACTUAL")
	fmt.Fprintln(&buf, "===================")
	if len(variances) == 0 {
		fmt.Fprintln(&buf, "No recorded years overlap the projection.")
		return buf.Bytes()
	}
	fmt.Fprintf(&buf, varianceRowFormat, "Year", "Pred income", "Pred expense", "Pred balance",
		"Act income", "Act expense", "Act balance", "Difference")
	fmt.Fprintln(&buf, strings.Repeat("-", 113))
	for _, v := range variances {
		fmt.Fprintf(&buf, varianceRowFormat,
			strconv.Itoa(v.Year),
			numbers.Amount(v.Predicted.Income),
			numbers.Amount(v.Predicted.Expense),
			numbers.Signed(v.Predicted.Balance),
			numbers.Amount(v.Actual.Income),
			numbers.Amount(v.Actual.Expense),
			numbers.Signed(v.Actual.Balance),
			numbers.Signed(v.Difference.Balance),
		)
	}
	return buf.Bytes()
}
