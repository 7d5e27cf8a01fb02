package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/shenikar/disaster_portal/internal/config"
	"github.com/shenikar/disaster_portal/internal/models"
	"github.com/shenikar/disaster_portal/internal/report"
	"github.com/sirupsen/logrus"
)

var ErrSessionNotFound = errors.New("report session not found")

// ReportRepository определяет контракт хранения отправленных сообщений
//
//go:generate mockgen -destination=mocks/mock_report_repository.go -package=mocks github.com/shenikar/disaster_portal/internal/service ReportRepository
type ReportRepository interface {
	// Save сохраняет сообщение. created=false, если запись с таким ID уже есть
	Save(ctx context.Context, r *models.SubmittedReport) (created bool, err error)
	ListRecent(ctx context.Context, limit int) ([]*models.SubmittedReport, error)
	IncrementDailyCount(ctx context.Context, day time.Time) (int64, error)
	DailyCount(ctx context.Context, day time.Time) (int64, error)
}

// ReportService управляет открытыми формами сообщений
//
//go:generate mockgen -destination=mocks/mock_report_service.go -package=mocks github.com/shenikar/disaster_portal/internal/service ReportService
type ReportService interface {
	CreateSession(ctx context.Context) (*report.Session, error)
	GetSession(ctx context.Context, id string) (*report.Session, error)
	CloseSession(ctx context.Context, id string) error
	PurgeIdle(ctx context.Context) int
}

// ReportManager - реестр открытых форм, реализует ReportService
type ReportManager struct {
	opts   report.Options
	idle   time.Duration
	logger *logrus.Logger
	now    func() time.Time

	ctx    context.Context
	cancel context.CancelFunc
	cron   *cron.Cron

	mu       sync.Mutex
	sessions map[string]*report.Session
}

// NewReportService создает реестр сессий. dispatcher может быть nil
func NewReportService(cfg *config.Config, dispatcher report.Dispatcher, logger *logrus.Logger) *ReportManager {
	ctx, cancel := context.WithCancel(context.Background())
	return &ReportManager{
		opts: report.Options{
			SubmitDelay: cfg.SubmitDelay,
			Dispatcher:  dispatcher,
			Retry: report.RetryPolicy{
				MaxAttempts:    cfg.SubmitMaxAttempts,
				BaseDelay:      cfg.SubmitRetryBaseDelay,
				AttemptTimeout: cfg.SubmitAttemptTimeout,
			},
			References: report.NewReferenceGenerator(cfg.ReferencePrefix),
			Logger:     logger,
		},
		idle:     cfg.SessionIdleTimeout,
		logger:   logger,
		now:      time.Now,
		ctx:      ctx,
		cancel:   cancel,
		sessions: make(map[string]*report.Session),
	}
}

// CreateSession открывает новую пустую форму
func (s *ReportManager) CreateSession(ctx context.Context) (*report.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctx.Err() != nil {
		return nil, fmt.Errorf("service: could not create session: %w", report.ErrSessionClosed)
	}
	id := uuid.NewString()
	session := report.NewSession(s.ctx, id, s.opts)
	s.sessions[id] = session

	s.logger.WithFields(logrus.Fields{
		"service":    "report",
		"method":     "CreateSession",
		"session_id": id,
	}).Info("Report session created")
	return session, nil
}

// GetSession возвращает открытую форму по ID
func (s *ReportManager) GetSession(ctx context.Context, id string) (*report.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// CloseSession закрывает форму и отменяет незавершенную отправку
func (s *ReportManager) CloseSession(ctx context.Context, id string) error {
	s.mu.Lock()
	session, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	session.Close()

	s.logger.WithFields(logrus.Fields{
		"service":    "report",
		"method":     "CloseSession",
		"session_id": id,
	}).Info("Report session closed")
	return nil
}

// PurgeIdle закрывает формы, с которыми давно не работали.
// Формы в состоянии Submitting не трогаются.
func (s *ReportManager) PurgeIdle(ctx context.Context) int {
	if s.idle <= 0 {
		return 0
	}
	deadline := s.now().Add(-s.idle)

	s.mu.Lock()
	var expired []*report.Session
	for id, session := range s.sessions {
		if session.View().State == models.StateSubmitting {
			continue
		}
		if session.LastActivity().Before(deadline) {
			expired = append(expired, session)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, session := range expired {
		session.Close()
	}
	if len(expired) > 0 {
		s.logger.WithFields(logrus.Fields{
			"service": "report",
			"method":  "PurgeIdle",
			"count":   len(expired),
		}).Info("Idle report sessions purged")
	}
	return len(expired)
}

// Start запускает периодическую очистку по расписанию cron
func (s *ReportManager) Start(schedule string) error {
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() { s.PurgeIdle(s.ctx) }); err != nil {
		return fmt.Errorf("service: invalid purge schedule %q: %w", schedule, err)
	}
	s.cron = c
	c.Start()
	s.logger.WithField("schedule", schedule).Info("Session purge scheduled")
	return nil
}

// Stop останавливает планировщик и закрывает все формы
func (s *ReportManager) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
	s.cancel()

	s.mu.Lock()
	sessions := make([]*report.Session, 0, len(s.sessions))
	for id, session := range s.sessions {
		sessions = append(sessions, session)
		delete(s.sessions, id)
	}
	s.mu.Unlock()

	for _, session := range sessions {
		session.Close()
		session.Wait()
	}
}
