package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"github.com/lifeplan/assetsim/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadActuals reads recorded yearly income and expense figures from a YAML or JSON list.
func LoadActuals(filename string) ([]domain.ActualYear, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read actuals file %s: %w", filename, err)
	}

	var actuals []domain.ActualYear
	if strings.EqualFold(filepath.Ext(filename), ".json") {
		err = json.Unmarshal(data, &actuals)
	} else {
		err = yaml.Unmarshal(data, &actuals)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse actuals %s: %w", filename, err)
	}

	for i, a := range actuals {
		if a.Year <= 0 {
			return nil, fmt.Errorf("actuals entry %d: year is required", i)
		}
	}
	sort.SliceStable(actuals, func(i, j int) bool { return actuals[i].Year < actuals[j].Year })
	return actuals, nil
}
