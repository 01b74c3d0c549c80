package output

import (
	"fmt"
	"io"

	"github.com/lifeplan/assetsim/internal/domain"
)

// WriteReport renders projection in the named format to w.
func WriteReport(w io.Writer, projection *domain.Projection, format, locale string) error {
	f, err := NewFormatter(format, locale)
	if err != nil {
		return err
	}
	data, err := f.Format(projection)
	if err != nil {
		return fmt.Errorf("format %s: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// GenerateReport writes projection to timestamped files in dir. The format "all"
// writes every registered format. It returns the files written.
func GenerateReport(projection *domain.Projection, format, locale, dir string) ([]string, error) {
	names := []string{format}
	if NormalizeFormatName(format) == "all" {
		names = AvailableFormatterNames()
	}

	var files []string
	for _, name := range names {
		f, err := NewFormatter(name, locale)
		if err != nil {
			return files, err
		}
		file, err := WriteFormatted(f, projection, dir)
		if err != nil {
			return files, fmt.Errorf("write %s report: %w", f.Name(), err)
		}
		files = append(files, file)
	}
	return files, nil
}
