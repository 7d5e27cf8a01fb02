package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/paulmach/orb/geojson"
	"github.com/shenikar/disaster_portal/internal/catalog"
	"github.com/shenikar/disaster_portal/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	dashboardRecentLimit = 5
	exportDefaultLimit   = 1000
	exportMaxLimit       = 10000
)

// PortalService отдает данные страниц портала и панели администратора
//
//go:generate mockgen -destination=mocks/mock_portal_service.go -package=mocks github.com/shenikar/disaster_portal/internal/service PortalService
type PortalService interface {
	Landing() catalog.LandingPage
	LiveMap(filters []string) catalog.MapPage
	MapGeoJSON(filters []string) *geojson.FeatureCollection
	Predictions() catalog.PredictionsPage
	Resources() catalog.ResourcesPage
	EmergencyContacts() []models.EmergencyContact
	Dashboard(ctx context.Context) (*catalog.DashboardPage, error)
	ExportReports(ctx context.Context, limit int) ([]byte, error)
}

type portalService struct {
	repo   ReportRepository
	logger *logrus.Logger
	now    func() time.Time
}

func NewPortalService(repo ReportRepository, logger *logrus.Logger) PortalService {
	return &portalService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

func (s *portalService) Landing() catalog.LandingPage {
	return catalog.Landing()
}

func (s *portalService) LiveMap(filters []string) catalog.MapPage {
	return catalog.LiveMap(filters)
}

// MapGeoJSON возвращает маркеры карты с учетом фильтров
func (s *portalService) MapGeoJSON(filters []string) *geojson.FeatureCollection {
	page := catalog.LiveMap(filters)
	return catalog.DisastersGeoJSON(page.Disasters)
}

func (s *portalService) Predictions() catalog.PredictionsPage {
	return catalog.Predictions()
}

func (s *portalService) Resources() catalog.ResourcesPage {
	return catalog.Resources()
}

func (s *portalService) EmergencyContacts() []models.EmergencyContact {
	return catalog.EmergencyContacts()
}

// Dashboard дополняет статическую панель сохраненными сообщениями
// и счетчиком сообщений за сегодня
func (s *portalService) Dashboard(ctx context.Context) (*catalog.DashboardPage, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "portal",
		"method":  "Dashboard",
	})

	page := catalog.Dashboard()
	now := s.now()

	count, err := s.repo.DailyCount(ctx, now)
	if err != nil {
		log.WithError(err).Error("Failed to get daily report count")
		return nil, fmt.Errorf("service: could not get daily report count: %w", err)
	}
	if count > 0 {
		for i := range page.Stats {
			if page.Stats[i].Title == "Reports Today" {
				page.Stats[i].Value = strconv.FormatInt(count, 10)
			}
		}
	}

	recent, err := s.repo.ListRecent(ctx, dashboardRecentLimit)
	if err != nil {
		log.WithError(err).Error("Failed to list recent reports")
		return nil, fmt.Errorf("service: could not list recent reports: %w", err)
	}
	if len(recent) > 0 {
		rows := make([]models.RecentReport, 0, dashboardRecentLimit)
		for _, r := range recent {
			rows = append(rows, toRecentReport(r, now))
		}
		for _, r := range page.RecentReports {
			if len(rows) == dashboardRecentLimit {
				break
			}
			rows = append(rows, r)
		}
		page.RecentReports = rows
	}

	log.WithField("reports_today", count).Debug("Dashboard assembled")
	return &page, nil
}

// ExportReports выгружает последние сообщения в XLSX
func (s *portalService) ExportReports(ctx context.Context, limit int) ([]byte, error) {
	if limit < 1 {
		limit = exportDefaultLimit
	}
	if limit > exportMaxLimit {
		limit = exportMaxLimit
	}
	log := s.logger.WithFields(logrus.Fields{
		"service": "portal",
		"method":  "ExportReports",
		"limit":   limit,
	})

	reports, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list reports for export")
		return nil, fmt.Errorf("service: could not list reports: %w", err)
	}

	data, err := buildReportsWorkbook(reports, s.now())
	if err != nil {
		log.WithError(err).Error("Failed to build workbook")
		return nil, fmt.Errorf("service: could not build export: %w", err)
	}

	log.WithField("count", len(reports)).Info("Reports exported")
	return data, nil
}

func toRecentReport(r *models.SubmittedReport, now time.Time) models.RecentReport {
	location := r.LocationText
	if location == "" && r.GPSCoordinate != nil {
		location = r.GPSCoordinate.String()
	}
	return models.RecentReport{
		ID:       r.Reference,
		Type:     r.Type.Label(),
		Location: location,
		Time:     timeAgo(now.Sub(r.SubmittedAt)),
		Status:   r.Status,
	}
}

// timeAgo форматирует интервал так же, как лента на панели
func timeAgo(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%d min ago", int(d/time.Minute))
	case d < 2*time.Hour:
		return "1 hour ago"
	case d < 24*time.Hour:
		return fmt.Sprintf("%d hours ago", int(d/time.Hour))
	case d < 48*time.Hour:
		return "1 day ago"
	default:
		return fmt.Sprintf("%d days ago", int(d/(24*time.Hour)))
	}
}
