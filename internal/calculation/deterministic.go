package calculation

import (
	"time"

	"github.com/lifeplan/assetsim/pkg/dateutil"
)

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = time.Now

// SetNowFunc overrides the time provider (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }

// CurrentYear is the calendar year callers pass as the projection start when the user gives none.
// The engine never reads the clock itself.
func CurrentYear() int {
	return dateutil.CalendarYear(nowFunc())
}
