package service

import (
	"context"
	"testing"
	"time"

	"github.com/shenikar/disaster_portal/internal/config"
	"github.com/shenikar/disaster_portal/internal/models"
	"github.com/shenikar/disaster_portal/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReportService(t *testing.T) *ReportManager {
	cfg := &config.Config{
		SubmitDelay:          10 * time.Millisecond,
		SubmitMaxAttempts:    1,
		SubmitRetryBaseDelay: time.Millisecond,
		ReferencePrefix:      "SL-2024",
		SessionIdleTimeout:   time.Minute,
	}
	s := NewReportService(cfg, nil, quietLogger())
	t.Cleanup(s.Stop)
	return s
}

func TestCreateAndGetSession(t *testing.T) {
	s := newTestReportService(t)
	ctx := context.Background()

	session, err := s.CreateSession(ctx)
	require.NoError(t, err)

	got, err := s.GetSession(ctx, session.ID())
	require.NoError(t, err)
	assert.Same(t, session, got)
	assert.Equal(t, models.StateEditing, got.View().State)
}

func TestGetSession_NotFound(t *testing.T) {
	s := newTestReportService(t)

	_, err := s.GetSession(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCloseSession(t *testing.T) {
	s := newTestReportService(t)
	ctx := context.Background()
	session, err := s.CreateSession(ctx)
	require.NoError(t, err)

	require.NoError(t, s.CloseSession(ctx, session.ID()))

	_, err = s.GetSession(ctx, session.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, session.SetDescription("late"), report.ErrSessionClosed)
	assert.ErrorIs(t, s.CloseSession(ctx, session.ID()), ErrSessionNotFound)
}

func TestPurgeIdle(t *testing.T) {
	s := newTestReportService(t)
	ctx := context.Background()
	idle, err := s.CreateSession(ctx)
	require.NoError(t, err)

	// Сдвигаем часы сервиса за порог простоя
	s.now = func() time.Time { return time.Now().Add(2 * time.Minute) }

	purged := s.PurgeIdle(ctx)

	assert.Equal(t, 1, purged)
	_, err = s.GetSession(ctx, idle.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestPurgeIdle_KeepsActiveSessions(t *testing.T) {
	s := newTestReportService(t)
	ctx := context.Background()
	_, err := s.CreateSession(ctx)
	require.NoError(t, err)

	assert.Equal(t, 0, s.PurgeIdle(ctx))
}

func TestSession_SubmitThroughService(t *testing.T) {
	s := newTestReportService(t)
	ctx := context.Background()
	session, err := s.CreateSession(ctx)
	require.NoError(t, err)

	require.NoError(t, session.SetType(models.IncidentFlood))
	require.NoError(t, session.Submit())

	require.Eventually(t, func() bool {
		return session.View().State == models.StateSucceeded
	}, time.Second, 5*time.Millisecond)
	assert.Regexp(t, `^SL-2024-\d{1,4}$`, session.View().Reference)
}

func TestStart_InvalidSchedule(t *testing.T) {
	s := newTestReportService(t)

	err := s.Start("not a schedule")

	assert.Error(t, err)
}

func TestStop_RejectsNewSessions(t *testing.T) {
	s := newTestReportService(t)
	require.NoError(t, s.Start("@every 1h"))

	s.Stop()

	_, err := s.CreateSession(context.Background())
	assert.ErrorIs(t, err, report.ErrSessionClosed)
}
