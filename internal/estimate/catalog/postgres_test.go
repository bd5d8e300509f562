package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renovation-core/internal/common/database"
	"renovation-core/internal/common/errors"
	"renovation-core/internal/models"
)

func newMockCatalog(t *testing.T) (*PostgresCatalog, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewPostgresCatalog(&database.PostgresClient{DB: db}), mock
}

func TestMaterialPrice_Found(t *testing.T) {
	cat, mock := newMockCatalog(t)

	mock.ExpectQuery(`SELECT unit_price, unit`).
		WithArgs("flooring/surface/standard").
		WillReturnRows(sqlmock.NewRows([]string{"unit_price", "unit"}).AddRow(45000.0, "sqm"))

	result, err := cat.MaterialPrice(context.Background(), models.MaterialRequest{
		CategoryPath: "flooring/surface/standard",
		Quantity:     33,
		Unit:         "sqm",
	})
	require.NoError(t, err)

	assert.Equal(t, "flooring/surface/standard", result.CategoryPath)
	assert.Equal(t, 45000.0, result.UnitPrice)
	assert.Equal(t, "sqm", result.Unit)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMaterialPrice_MissingRowIsDataQualityFailure(t *testing.T) {
	cat, mock := newMockCatalog(t)

	mock.ExpectQuery(`SELECT unit_price, unit`).
		WithArgs("flooring/surface/imported").
		WillReturnError(sql.ErrNoRows)

	_, err := cat.MaterialPrice(context.Background(), models.MaterialRequest{
		CategoryPath: "flooring/surface/imported",
	})

	est, ok := errors.IsEstimate(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeMaterialNotFound, est.Code)
	assert.Equal(t, errors.FailedAtMaterialOrLabor, est.FailedAt)
}

func TestMaterialPrice_NonPositivePriceRejected(t *testing.T) {
	cat, mock := newMockCatalog(t)

	tests := []float64{0, -100}
	for _, price := range tests {
		mock.ExpectQuery(`SELECT unit_price, unit`).
			WithArgs("flooring/surface/standard").
			WillReturnRows(sqlmock.NewRows([]string{"unit_price", "unit"}).AddRow(price, "sqm"))

		_, err := cat.MaterialPrice(context.Background(), models.MaterialRequest{
			CategoryPath: "flooring/surface/standard",
		})

		est, ok := errors.IsEstimate(err)
		require.True(t, ok, "price %v must be rejected", price)
		assert.Equal(t, errors.ErrCodeMaterialNonPositive, est.Code)
		assert.Equal(t, errors.FailedAtMaterialOrLabor, est.FailedAt)
	}
}

func TestMaterialPrice_QueryFailure(t *testing.T) {
	cat, mock := newMockCatalog(t)

	mock.ExpectQuery(`SELECT unit_price, unit`).
		WithArgs("flooring/surface/standard").
		WillReturnError(fmt.Errorf("connection reset"))

	_, err := cat.MaterialPrice(context.Background(), models.MaterialRequest{
		CategoryPath: "flooring/surface/standard",
	})

	est, ok := errors.IsEstimate(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeCatalogQueryFailed, est.Code)
}

func TestLaborRate_Found(t *testing.T) {
	cat, mock := newMockCatalog(t)

	mock.ExpectQuery(`SELECT daily_output, crew_size`).
		WithArgs("tiler", "BATHROOM").
		WillReturnRows(sqlmock.NewRows([]string{"daily_output", "crew_size"}).AddRow(8.0, 2))
	mock.ExpectQuery(`SELECT rate_per_person_day`).
		WithArgs("tiler").
		WillReturnRows(sqlmock.NewRows([]string{"rate_per_person_day"}).AddRow(250000.0))

	result, err := cat.LaborRate(context.Background(), models.LaborRequest{
		Trade:     "tiler",
		ProcessID: models.ProcessBathroom,
		Quantity:  30,
	})
	require.NoError(t, err)

	assert.Equal(t, 8.0, result.DailyOutput)
	assert.Equal(t, 2, result.CrewSize)
	assert.Equal(t, 250000.0, result.RatePerPersonDay)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLaborRate_MissingProductivityRecord(t *testing.T) {
	cat, mock := newMockCatalog(t)

	mock.ExpectQuery(`SELECT daily_output, crew_size`).
		WithArgs("gilder", "PAINTING").
		WillReturnError(sql.ErrNoRows)

	_, err := cat.LaborRate(context.Background(), models.LaborRequest{
		Trade:     "gilder",
		ProcessID: models.ProcessPainting,
	})

	est, ok := errors.IsEstimate(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeLaborNotFound, est.Code)
	assert.Equal(t, string(models.ProcessPainting), est.ProcessID)
}

func TestLaborRate_MissingRateRecord(t *testing.T) {
	cat, mock := newMockCatalog(t)

	mock.ExpectQuery(`SELECT daily_output, crew_size`).
		WithArgs("tiler", "BATHROOM").
		WillReturnRows(sqlmock.NewRows([]string{"daily_output", "crew_size"}).AddRow(8.0, 2))
	mock.ExpectQuery(`SELECT rate_per_person_day`).
		WithArgs("tiler").
		WillReturnError(sql.ErrNoRows)

	_, err := cat.LaborRate(context.Background(), models.LaborRequest{
		Trade:     "tiler",
		ProcessID: models.ProcessBathroom,
	})

	est, ok := errors.IsEstimate(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeLaborNotFound, est.Code)
}

func TestLaborRate_NonPositiveValuesRejected(t *testing.T) {
	tests := []struct {
		name        string
		dailyOutput float64
		crewSize    int
		rate        float64
	}{
		{name: "zero output", dailyOutput: 0, crewSize: 2, rate: 250000},
		{name: "zero crew", dailyOutput: 8, crewSize: 0, rate: 250000},
		{name: "negative rate", dailyOutput: 8, crewSize: 2, rate: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, mock := newMockCatalog(t)

			mock.ExpectQuery(`SELECT daily_output, crew_size`).
				WithArgs("tiler", "BATHROOM").
				WillReturnRows(sqlmock.NewRows([]string{"daily_output", "crew_size"}).AddRow(tt.dailyOutput, tt.crewSize))
			mock.ExpectQuery(`SELECT rate_per_person_day`).
				WithArgs("tiler").
				WillReturnRows(sqlmock.NewRows([]string{"rate_per_person_day"}).AddRow(tt.rate))

			_, err := cat.LaborRate(context.Background(), models.LaborRequest{
				Trade:     "tiler",
				ProcessID: models.ProcessBathroom,
			})

			est, ok := errors.IsEstimate(err)
			require.True(t, ok)
			assert.Equal(t, errors.ErrCodeLaborNonPositive, est.Code)
			assert.Equal(t, errors.FailedAtMaterialOrLabor, est.FailedAt)
		})
	}
}
