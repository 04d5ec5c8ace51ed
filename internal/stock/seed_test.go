package stock

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedLoadsCSV(t *testing.T) {
	db := setupStockTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	csvPath := filepath.Join(t.TempDir(), "stock-data.csv")
	csv := "TYP,DTP,PKT,GRD,FIN,THK,WIDT,LNGT,PWT,QLY,EDGE,ASP,HRC1,BL,SAL,STORE,NICKEL,COILNO\n" +
		"C,04/06/2021,FB81774,201,2D,1,1250,,0.4,S,M,SSP,122738,FALSE,TRUE,,3.55,122738\n" +
		"C,24/02/2024,FC22581,316,2D,0.3,1250,,2.159,P,M,SSP,219930,FALSE,HRCS,,1.5,219930\n"
	require.NoError(t, os.WriteFile(csvPath, []byte(csv), 0o644))

	require.NoError(t, Seed(ctx, repo, csvPath, nil))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	record, err := repo.FindFirstByGrade(ctx, "316")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "HRCS", record.SAL)
	assert.Equal(t, "0.3", record.Thickness)
}

func TestSeedFallsBackToSampleRows(t *testing.T) {
	db := setupStockTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	require.NoError(t, Seed(ctx, repo, filepath.Join(t.TempDir(), "missing.csv"), nil))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, len(sampleRecords()), count)
}

func TestSeedSkipsPopulatedTable(t *testing.T) {
	db := setupStockTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	require.NoError(t, Seed(ctx, repo, "nope.csv", nil))
	require.NoError(t, Seed(ctx, repo, "nope.csv", nil))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, len(sampleRecords()), count)
}
