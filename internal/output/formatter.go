package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/lifeplan/assetsim/internal/domain"
)

// ErrUnsupportedFormat is returned for unknown output format names.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Formatter renders a whole projection in one output format.
type Formatter interface {
	Format(projection *domain.Projection) ([]byte, error)
	// Name is the canonical format name used in registry lookups and file names.
	Name() string
}

// WriteFormatted runs a formatter and writes output to a timestamped file in dir,
// named after the formatter so formats sharing an extension do not collide.
func WriteFormatted(f Formatter, projection *domain.Projection, dir string) (string, error) {
	data, err := f.Format(projection)
	if err != nil {
		return "", err
	}
	if dir == "" {
		dir = "."
	}
	filename := filepath.Join(dir, fmt.Sprintf("asset_projection_%s_%s.%s", f.Name(), time.Now().Format("20060102_150405"), Extension(f.Name())))
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// builtInFormatters stores available formatters with the default locale.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	CSVSummarizer{},
	CSVDetailedExporter{},
	HTMLFormatter{},
	JSONFormatter{},
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// NewFormatter returns the named formatter rendering numbers for locale.
func NewFormatter(name, locale string) (Formatter, error) {
	numbers := NewNumberFormat(locale)
	switch f := GetFormatterByName(name).(type) {
	case nil:
		return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, name,
			strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	case ConsoleFormatter:
		f.Numbers = numbers
		return f, nil
	case HTMLFormatter:
		f.Numbers = numbers
		return f, nil
	default:
		return f, nil
	}
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"table":        "console",
	"text":         "console",
	"txt":          "console",
	"csv-detailed": "detailed-csv",
	"detailed":     "detailed-csv",
	"csv-summary":  "csv",
	"html-report":  "html",
	"json-pretty":  "json",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// Extension returns the file extension for a format name.
func Extension(name string) string {
	switch n := NormalizeFormatName(name); n {
	case "console":
		return "txt"
	case "detailed-csv":
		return "csv"
	default:
		return n
	}
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
