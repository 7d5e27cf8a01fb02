package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/disaster_portal/internal/models"
	"github.com/shenikar/disaster_portal/internal/report"
	"github.com/shenikar/disaster_portal/internal/webhook"
	"github.com/sirupsen/logrus"
)

// ReportDispatcher сохраняет отправленное сообщение, увеличивает дневной
// счетчик и ставит событие в очередь вебхука
type ReportDispatcher struct {
	repo      ReportRepository
	publisher webhook.Publisher
	logger    *logrus.Logger
	now       func() time.Time
}

var _ report.Dispatcher = (*ReportDispatcher)(nil)

// NewReportDispatcher создает диспетчер. publisher может быть nil
func NewReportDispatcher(repo ReportRepository, publisher webhook.Publisher, logger *logrus.Logger) *ReportDispatcher {
	return &ReportDispatcher{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// Dispatch возвращает ошибку только если сообщение не удалось сохранить.
// Счетчик и очередь вебхука не влияют на результат отправки.
func (d *ReportDispatcher) Dispatch(ctx context.Context, sub report.Submission) error {
	log := d.logger.WithFields(logrus.Fields{
		"service":    "report",
		"method":     "Dispatch",
		"session_id": sub.SessionID,
		"reference":  sub.Reference,
	})

	record := &models.SubmittedReport{
		ID:            sub.ID,
		SessionID:     sub.SessionID,
		Reference:     sub.Reference,
		Type:          sub.Report.Type,
		LocationText:  sub.Report.LocationText,
		GPSCoordinate: sub.Report.GPSCoordinate,
		Description:   sub.Report.Description,
		HasPhoto:      sub.Report.Photo != nil,
		Status:        models.ReportStatusPending,
		SubmittedAt:   d.now().UTC(),
	}

	created, err := d.repo.Save(ctx, record)
	if err != nil {
		log.WithError(err).Error("Failed to save report in repository")
		return fmt.Errorf("service: could not save report: %w", err)
	}
	if !created {
		log.Info("Report already saved by a previous attempt")
		return nil
	}

	if count, err := d.repo.IncrementDailyCount(ctx, record.SubmittedAt); err != nil {
		log.WithError(err).Warn("Failed to increment daily report counter")
	} else {
		log = log.WithField("reports_today", count)
	}

	if d.publisher != nil {
		if err := d.publisher.Publish(ctx, webhook.NewReportEvent(record)); err != nil {
			log.WithError(err).Warn("Failed to publish report event")
		}
	}

	log.WithField("report_id", record.ID).Info("Report dispatched")
	return nil
}
