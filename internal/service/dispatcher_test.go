package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/disaster_portal/internal/models"
	"github.com/shenikar/disaster_portal/internal/report"
	"github.com/shenikar/disaster_portal/internal/service/mocks"
	"github.com/shenikar/disaster_portal/internal/webhook"
	webhook_mocks "github.com/shenikar/disaster_portal/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

// newTestDispatcher - диспетчер с моками репозитория и издателя
func newTestDispatcher(t *testing.T) (*ReportDispatcher, *mocks.MockReportRepository, *webhook_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockReportRepository(ctrl)
	publisherMock := webhook_mocks.NewMockPublisher(ctrl)

	d := NewReportDispatcher(repoMock, publisherMock, quietLogger())
	d.now = func() time.Time { return time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC) }
	return d, repoMock, publisherMock
}

func floodSubmission() report.Submission {
	return report.Submission{
		ID:        uuid.New(),
		SessionID: "session-1",
		Reference: "SL-2024-42",
		Report: models.IncidentReport{
			Type:          models.IncidentFlood,
			LocationText:  "Ratnapura",
			GPSCoordinate: &models.GeoPoint{Latitude: 6.6828, Longitude: 80.4031},
			Photo:         &models.Photo{Name: "river.jpg"},
		},
	}
}

func TestDispatch_Success(t *testing.T) {
	// Подготовка
	d, repoMock, publisherMock := newTestDispatcher(t)
	ctx := context.Background()
	sub := floodSubmission()

	// Ожидания
	var saved *models.SubmittedReport
	repoMock.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.SubmittedReport) (bool, error) {
			saved = r
			return true, nil
		}).
		Times(1)
	repoMock.EXPECT().
		IncrementDailyCount(ctx, d.now()).
		Return(int64(1), nil).
		Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.ReportEvent) error {
			assert.Equal(t, "SL-2024-42", event.Reference)
			assert.Equal(t, "Flood", event.TypeLabel)
			assert.True(t, event.HasPhoto)
			return nil
		}).
		Times(1)

	// Действие
	err := d.Dispatch(ctx, sub)

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, sub.ID, saved.ID)
	assert.Equal(t, models.ReportStatusPending, saved.Status)
	assert.Equal(t, "Ratnapura", saved.LocationText)
	assert.True(t, saved.HasPhoto)
}

func TestDispatch_SaveError(t *testing.T) {
	d, repoMock, _ := newTestDispatcher(t)
	ctx := context.Background()
	dbErr := errors.New("connection refused")

	repoMock.EXPECT().Save(ctx, gomock.Any()).Return(false, dbErr).Times(1)

	err := d.Dispatch(ctx, floodSubmission())

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}

func TestDispatch_AlreadySaved_NotCountedTwice(t *testing.T) {
	d, repoMock, _ := newTestDispatcher(t)
	ctx := context.Background()

	// Повтор после частичного успеха: счетчик и вебхук не вызываются
	repoMock.EXPECT().Save(ctx, gomock.Any()).Return(false, nil).Times(1)

	err := d.Dispatch(ctx, floodSubmission())

	require.NoError(t, err)
}

func TestDispatch_SideEffectErrorsDoNotFail(t *testing.T) {
	d, repoMock, publisherMock := newTestDispatcher(t)
	ctx := context.Background()

	repoMock.EXPECT().Save(ctx, gomock.Any()).Return(true, nil).Times(1)
	repoMock.EXPECT().IncrementDailyCount(ctx, gomock.Any()).Return(int64(0), errors.New("redis down")).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("redis down")).Times(1)

	err := d.Dispatch(ctx, floodSubmission())

	require.NoError(t, err)
}

func TestDispatch_WithoutPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockReportRepository(ctrl)
	d := NewReportDispatcher(repoMock, nil, quietLogger())
	ctx := context.Background()

	repoMock.EXPECT().Save(ctx, gomock.Any()).Return(true, nil).Times(1)
	repoMock.EXPECT().IncrementDailyCount(ctx, gomock.Any()).Return(int64(3), nil).Times(1)

	require.NoError(t, d.Dispatch(ctx, floodSubmission()))
}
