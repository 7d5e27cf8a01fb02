package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/disaster_portal/internal/models"
	"github.com/shenikar/disaster_portal/internal/service"
)

const dailyCountTTL = 48 * time.Hour

type ReportRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

// NewReportRepository создает репозиторий. redisClient может быть nil,
// тогда дневной счетчик считается запросом к бд
func NewReportRepository(db *pgxpool.Pool, redisClient *redis.Client) service.ReportRepository {
	return &ReportRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Save сохраняет отправленное сообщение. Повтор с тем же ID ничего не меняет
func (r *ReportRepository) Save(ctx context.Context, report *models.SubmittedReport) (bool, error) {
	query := `
		INSERT INTO incident_reports (id, session_id, reference, type, location_text, latitude, longitude, description, has_photo, status, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO NOTHING;
	`
	var lat, lon *float64
	if report.GPSCoordinate != nil {
		lat = &report.GPSCoordinate.Latitude
		lon = &report.GPSCoordinate.Longitude
	}
	cmdTag, err := r.db.Exec(ctx, query,
		report.ID,
		report.SessionID,
		report.Reference,
		string(report.Type),
		report.LocationText,
		lat,
		lon,
		report.Description,
		report.HasPhoto,
		report.Status,
		report.SubmittedAt,
	)
	if err != nil {
		return false, fmt.Errorf("failed to save report: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// ListRecent возвращает последние сообщения, новые первыми
func (r *ReportRepository) ListRecent(ctx context.Context, limit int) ([]*models.SubmittedReport, error) {
	query := `
		SELECT
			id,
			session_id,
			reference,
			type,
			location_text,
			latitude,
			longitude,
			description,
			has_photo,
			status,
			submitted_at
		FROM incident_reports
		ORDER BY submitted_at DESC
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	reports := make([]*models.SubmittedReport, 0)
	for rows.Next() {
		report := &models.SubmittedReport{}
		var (
			reportType string
			lat, lon   *float64
		)
		err := rows.Scan(
			&report.ID,
			&report.SessionID,
			&report.Reference,
			&reportType,
			&report.LocationText,
			&lat,
			&lon,
			&report.Description,
			&report.HasPhoto,
			&report.Status,
			&report.SubmittedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		report.Type = models.IncidentType(reportType)
		if lat != nil && lon != nil {
			report.GPSCoordinate = &models.GeoPoint{Latitude: *lat, Longitude: *lon}
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return reports, nil
}

// IncrementDailyCount увеличивает счетчик сообщений за день в Redis
func (r *ReportRepository) IncrementDailyCount(ctx context.Context, day time.Time) (int64, error) {
	if r.redisClient == nil {
		return r.countFromDB(ctx, day)
	}
	key := DailyCountKey(day)
	pipe := r.redisClient.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, dailyCountTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to increment daily report count: %w", err)
	}
	return incr.Val(), nil
}

// DailyCount возвращает число сообщений за день
func (r *ReportRepository) DailyCount(ctx context.Context, day time.Time) (int64, error) {
	if r.redisClient == nil {
		return r.countFromDB(ctx, day)
	}
	count, err := r.redisClient.Get(ctx, DailyCountKey(day)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get daily report count: %w", err)
	}
	return count, nil
}

func (r *ReportRepository) countFromDB(ctx context.Context, day time.Time) (int64, error) {
	start := startOfDay(day)
	query := `
		SELECT COUNT(*)
		FROM incident_reports
		WHERE submitted_at >= $1 AND submitted_at < $2;
	`
	var count int64
	err := r.db.QueryRow(ctx, query, start, start.Add(24*time.Hour)).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to count reports: %w", err)
	}
	return count, nil
}

// DailyCountKey - ключ счетчика вида reports:daily:2024-06-01 (UTC)
func DailyCountKey(day time.Time) string {
	return "reports:daily:" + day.UTC().Format("2006-01-02")
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
