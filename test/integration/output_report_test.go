package integration

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeplan/assetsim/internal/calculation"
	"github.com/lifeplan/assetsim/internal/config"
	"github.com/lifeplan/assetsim/internal/output"
	"github.com/lifeplan/assetsim/internal/storage"
)

func TestSavedHouseholdReproducesProjection(t *testing.T) {
	for _, driver := range []string{config.StoreDriverFile, config.StoreDriverSQLite} {
		t.Run(driver, func(t *testing.T) {
			params, projection := loadProjection(t)

			store, err := storage.Open(driver, filepath.Join(t.TempDir(), "store"))
			require.NoError(t, err)
			defer store.Close()
			persister := storage.NewPersister(store, nil)

			ctx := context.Background()
			require.NotEmpty(t, persister.Persist(ctx, "family", params))

			restored, found := persister.Restore(ctx, "family")
			require.True(t, found)
			assert.Equal(t, *params, restored)

			again := calculation.NewSimulationEngine().RunProjection(&restored, startYear)
			assert.Equal(t, projection.Summary, again.Summary)
		})
	}
}

func TestActualsComparison(t *testing.T) {
	_, projection := loadProjection(t)

	actuals, err := config.LoadActuals("../../internal/config/testdata/actuals.yaml")
	require.NoError(t, err)

	variances := calculation.CompareActuals(projection.Rows, actuals)
	require.Len(t, variances, 1)
	assert.Equal(t, 2026, variances[0].Year)

	report := string(output.FormatVariances(variances, output.NewNumberFormat("en-US")))
	assert.Contains(t, report, "PREDICTED VS ACTUAL")
	assert.Contains(t, report, "8,100,000")
}
