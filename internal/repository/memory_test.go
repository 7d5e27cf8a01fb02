package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/disaster_portal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryReportRepository_SaveIsIdempotent(t *testing.T) {
	repo := NewMemoryReportRepository()
	ctx := context.Background()
	report := &models.SubmittedReport{ID: uuid.New(), Reference: "SL-2024-5", SubmittedAt: time.Now()}

	created, err := repo.Save(ctx, report)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.Save(ctx, report)
	require.NoError(t, err)
	assert.False(t, created)

	reports, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, reports, 1)
}

func TestMemoryReportRepository_ListRecentOrder(t *testing.T) {
	repo := NewMemoryReportRepository()
	ctx := context.Background()
	base := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := repo.Save(ctx, &models.SubmittedReport{
			ID:          uuid.New(),
			Reference:   []string{"old", "mid", "new"}[i],
			SubmittedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	reports, err := repo.ListRecent(ctx, 2)

	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "new", reports[0].Reference)
	assert.Equal(t, "mid", reports[1].Reference)
}

func TestMemoryReportRepository_DailyCount(t *testing.T) {
	repo := NewMemoryReportRepository()
	ctx := context.Background()
	day := time.Date(2024, 6, 1, 23, 0, 0, 0, time.UTC)

	n, err := repo.IncrementDailyCount(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	_, err = repo.IncrementDailyCount(ctx, day.Add(2*time.Hour))
	require.NoError(t, err)

	today, err := repo.DailyCount(ctx, day)
	require.NoError(t, err)
	next, err := repo.DailyCount(ctx, day.Add(2*time.Hour))
	require.NoError(t, err)

	assert.Equal(t, int64(1), today)
	assert.Equal(t, int64(1), next)
}

func TestDailyCountKey(t *testing.T) {
	local := time.FixedZone("LKT", 5*3600+1800)
	day := time.Date(2024, 6, 2, 3, 0, 0, 0, local)

	assert.Equal(t, "reports:daily:2024-06-01", DailyCountKey(day))
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), startOfDay(day))
}
