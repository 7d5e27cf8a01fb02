package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/disaster_portal/internal/models"
	"github.com/shenikar/disaster_portal/internal/service"
)

// MemoryReportRepository хранит сообщения в памяти процесса.
// Используется, когда DATABASE_URL не задан.
type MemoryReportRepository struct {
	mu      sync.RWMutex
	reports map[uuid.UUID]*models.SubmittedReport
	counts  map[string]int64
}

func NewMemoryReportRepository() service.ReportRepository {
	return &MemoryReportRepository{
		reports: make(map[uuid.UUID]*models.SubmittedReport),
		counts:  make(map[string]int64),
	}
}

func (r *MemoryReportRepository) Save(ctx context.Context, report *models.SubmittedReport) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reports[report.ID]; ok {
		return false, nil
	}
	saved := *report
	r.reports[report.ID] = &saved
	return true, nil
}

func (r *MemoryReportRepository) ListRecent(ctx context.Context, limit int) ([]*models.SubmittedReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reports := make([]*models.SubmittedReport, 0, len(r.reports))
	for _, report := range r.reports {
		copied := *report
		reports = append(reports, &copied)
	}
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].SubmittedAt.After(reports[j].SubmittedAt)
	})
	if limit > 0 && len(reports) > limit {
		reports = reports[:limit]
	}
	return reports, nil
}

func (r *MemoryReportRepository) IncrementDailyCount(ctx context.Context, day time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := DailyCountKey(day)
	r.counts[key]++
	return r.counts[key], nil
}

func (r *MemoryReportRepository) DailyCount(ctx context.Context, day time.Time) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.counts[DailyCountKey(day)], nil
}
