// Package storage persists raw household snapshots by name.
package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lifeplan/assetsim/internal/config"
	"github.com/lifeplan/assetsim/internal/domain"
)

// ErrNotFound is returned when no snapshot is stored under a name.
var ErrNotFound = errors.New("snapshot not found")

// Snapshot is one saved revision of a household's raw form values.
// Values are kept as decoded so restore can normalize whatever was written.
type Snapshot struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	SavedAt time.Time      `json:"savedAt"`
	Values  map[string]any `json:"values"`
}

// NewSnapshot captures params under name with a fresh revision id.
func NewSnapshot(name string, params *domain.InputParameters) Snapshot {
	values := make(map[string]any)
	for k, v := range params.Values() {
		values[k] = v
	}
	return Snapshot{
		ID:      uuid.NewString(),
		Name:    name,
		SavedAt: time.Now().UTC(),
		Values:  values,
	}
}

// Store is a named snapshot backend.
type Store interface {
	Save(ctx context.Context, snapshot Snapshot) error
	Load(ctx context.Context, name string) (Snapshot, error)
	List(ctx context.Context) ([]string, error)
	Close() error
}

// Logger is the logging method set storage reports through.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}

var validName = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,63}$`)

// ValidateName rejects names that cannot be used as a storage key.
func ValidateName(name string) error {
	if !validName.MatchString(name) || strings.Contains(name, "..") {
		return fmt.Errorf("invalid snapshot name %q", name)
	}
	return nil
}

// Open returns the backend selected by driver. For sqlite, path may name the
// database file directly or a directory to hold assetsim.db.
func Open(driver, path string) (Store, error) {
	switch driver {
	case config.StoreDriverFile:
		return NewFileStore(path), nil
	case config.StoreDriverSQLite:
		if filepath.Ext(path) != ".db" {
			path = filepath.Join(path, "assetsim.db")
		}
		return OpenSQLite(path)
	case config.StoreDriverNone:
		return NoopStore{}, nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", driver)
	}
}

// NoopStore discards saves and never finds anything.
type NoopStore struct{}

func (NoopStore) Save(ctx context.Context, _ Snapshot) error { return ctx.Err() }

func (NoopStore) Load(ctx context.Context, name string) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	return Snapshot{}, fmt.Errorf("%s: %w", name, ErrNotFound)
}

func (NoopStore) List(ctx context.Context) ([]string, error) { return nil, ctx.Err() }
func (NoopStore) Close() error                                { return nil }
