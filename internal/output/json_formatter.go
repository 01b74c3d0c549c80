package output

import (
	"github.com/goccy/go-json"
	"github.com/lifeplan/assetsim/internal/domain"
)

// JSONFormatter serializes the projection as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(projection *domain.Projection) ([]byte, error) {
	return json.MarshalIndent(projection, "", "  ")
}
