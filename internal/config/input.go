package config

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/lifeplan/assetsim/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of household snapshots from files and form collaborators.
// Parsing never fails on field content: absent keys stay zero and malformed or
// out-of-range values become zero, so the engine always receives a complete snapshot.
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a snapshot from a YAML or JSON file. Only unreadable files and
// documents that are not a key/value mapping are errors.
func (ip *InputParser) LoadFromFile(filename string) (*domain.InputParameters, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	raw, err := decodeDocument(filename, data)
	if err != nil {
		return nil, err
	}
	params := ip.ParseValues(raw)
	return &params, nil
}

// Parse decodes a snapshot document held in memory. format is "json" or "yaml".
func (ip *InputParser) Parse(format string, data []byte) (domain.InputParameters, error) {
	raw, err := decodeDocument("input."+format, data)
	if err != nil {
		return domain.InputParameters{}, err
	}
	return ip.ParseValues(raw), nil
}

func decodeDocument(filename string, data []byte) (map[string]any, error) {
	raw := map[string]any{}
	if strings.EqualFold(filepath.Ext(filename), ".json") {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
		return raw, nil
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return raw, nil
}

// ParseFields normalizes a flat string map such as a submitted form.
func (ip *InputParser) ParseFields(fields map[string]string) domain.InputParameters {
	raw := make(map[string]any, len(fields))
	for k, v := range fields {
		raw[k] = v
	}
	return ip.ParseValues(raw)
}

// ParseValues normalizes a decoded key/value mapping. Unknown keys are ignored.
func (ip *InputParser) ParseValues(raw map[string]any) domain.InputParameters {
	var params domain.InputParameters
	for _, field := range domain.ParameterFields() {
		v, ok := raw[field.Key]
		if !ok {
			continue
		}
		field.Set(&params, normalizeValue(field, v))
	}
	return params
}

// NormalizeParameters clamps values a typed snapshot may carry but the wire contract forbids:
// negatives become zero everywhere except currentAssets.
func NormalizeParameters(params domain.InputParameters) domain.InputParameters {
	for _, field := range domain.ParameterFields() {
		if !field.Signed && field.Get(&params) < 0 {
			field.Set(&params, 0)
		}
	}
	return params
}

func normalizeValue(field domain.Field, v any) int64 {
	n, ok := toWholeNumber(v)
	if !ok {
		return 0
	}
	if n < 0 && !field.Signed {
		return 0
	}
	return n
}

// toWholeNumber accepts integers, floats, JSON numbers and numeric strings. Strings keep only
// their leading integer part ("12.9" reads as 12) and may carry thousands separators.
func toWholeNumber(v any) (int64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float64:
		return floatToWhole(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatToWhole(f)
	case string:
		return parseWholeNumber(n)
	default:
		return 0, false
	}
}

// floatToWhole truncates f, rejecting values int64 cannot hold.
func floatToWhole(f float64) (int64, bool) {
	if math.IsNaN(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(math.Trunc(f)), true
}

func parseWholeNumber(s string) (int64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0, false
	}
	end := 0
	if s[0] == '-' || s[0] == '+' {
		end = 1
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
