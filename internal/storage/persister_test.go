package storage

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/lifeplan/assetsim/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureLogger struct {
	nopLogger
	infos []string
	warns []string
}

func (l *captureLogger) Infof(format string, args ...any) {
	l.infos = append(l.infos, fmt.Sprintf(format, args...))
}

func (l *captureLogger) Warnf(format string, args ...any) {
	l.warns = append(l.warns, fmt.Sprintf(format, args...))
}

type failingStore struct {
	NoopStore
	err error
}

func (f failingStore) Save(context.Context, Snapshot) error { return f.err }

func (f failingStore) Load(context.Context, string) (Snapshot, error) {
	return Snapshot{}, f.err
}

type rawStore struct {
	NoopStore
	values map[string]any
}

func (r rawStore) Load(_ context.Context, name string) (Snapshot, error) {
	return Snapshot{Name: name, Values: r.values}, nil
}

func TestPersisterRoundTrip(t *testing.T) {
	ctx := context.Background()
	persister := NewPersister(NewFileStore(t.TempDir()), nil)

	id := persister.Persist(ctx, "tanaka", sampleParams())
	assert.NotEmpty(t, id)

	restored, found := persister.Restore(ctx, "tanaka")
	require.True(t, found)
	assert.Equal(t, *sampleParams(), restored)
}

func TestPersisterNeverFails(t *testing.T) {
	ctx := context.Background()
	logger := &captureLogger{}
	persister := NewPersister(failingStore{err: errors.New("disk full")}, logger)

	assert.Empty(t, persister.Persist(ctx, "tanaka", sampleParams()))
	params, found := persister.Restore(ctx, "tanaka")
	assert.False(t, found)
	assert.Equal(t, domain.InputParameters{}, params)

	require.Len(t, logger.warns, 2)
	assert.Contains(t, logger.warns[0], "disk full")
	assert.Contains(t, logger.warns[1], "could not restore")
}

func TestPersisterNotFoundIsInfo(t *testing.T) {
	logger := &captureLogger{}
	persister := NewPersister(nil, logger)

	_, found := persister.Restore(context.Background(), "nobody")
	assert.False(t, found)
	assert.Len(t, logger.infos, 1)
	assert.Empty(t, logger.warns)
}

func TestPersisterNormalizesRestoredValues(t *testing.T) {
	persister := NewPersister(rawStore{values: map[string]any{
		"husbandBirthYear": float64(1985),
		"husbandIncome":    "5,500,000",
		"wifeIncome":       "garbage",
		"houseLoan":        float64(-1),
		"currentAssets":    float64(-300),
		"retired":          true,
	}}, nil)

	params, found := persister.Restore(context.Background(), "legacy")
	require.True(t, found)
	assert.Equal(t, domain.InputParameters{
		HusbandBirthYear: 1985,
		HusbandIncome:    5500000,
		CurrentAssets:    -300,
	}, params)
}

func TestPersisterKeepsLargeAmountsExact(t *testing.T) {
	ctx := context.Background()
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			params := sampleParams()
			params.CurrentAssets = 9007199254740993
			params.HusbandIncome = 5000000000000000001
			persister := NewPersister(store, nil)

			require.NotEmpty(t, persister.Persist(ctx, "wealthy", params))
			restored, found := persister.Restore(ctx, "wealthy")
			require.True(t, found)
			assert.Equal(t, int64(9007199254740993), restored.CurrentAssets)
			assert.Equal(t, int64(5000000000000000001), restored.HusbandIncome)
		})
	}
}
