package report_test

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/shenikar/disaster_portal/internal/models"
	"github.com/shenikar/disaster_portal/internal/report"
	"github.com/shenikar/disaster_portal/internal/report/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

const (
	testDelay   = 20 * time.Millisecond
	waitTimeout = 2 * time.Second
	waitTick    = 5 * time.Millisecond
)

var referencePattern = regexp.MustCompile(`^SL-2024-(\d{1,4})$`)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// newTestSession создает сессию с короткой задержкой и тихим логгером
func newTestSession(t *testing.T, opts report.Options) *report.Session {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	if opts.SubmitDelay == 0 {
		opts.SubmitDelay = testDelay
	}
	if opts.Retry.BaseDelay == 0 {
		opts.Retry.BaseDelay = time.Millisecond
	}
	opts.Logger = logger

	s := report.NewSession(context.Background(), "test-session", opts)
	t.Cleanup(func() {
		s.Close()
		s.Wait()
	})
	return s
}

func waitForState(t *testing.T, s *report.Session, state models.ReportState) {
	t.Helper()
	require.Eventually(t, func() bool {
		return s.View().State == state
	}, waitTimeout, waitTick, "session never reached state %s", state)
}

func noticeTitles(notices []models.Notice) []string {
	titles := make([]string, 0, len(notices))
	for _, n := range notices {
		titles = append(titles, n.Title)
	}
	return titles
}

func TestSubmit_WithoutType_StaysEditing(t *testing.T) {
	s := newTestSession(t, report.Options{})
	require.NoError(t, s.SetDescription("something happened"))

	err := s.Submit()

	require.ErrorIs(t, err, report.ErrTypeRequired)
	view := s.View()
	assert.Equal(t, models.StateEditing, view.State)
	assert.True(t, view.SubmitEnabled)
	assert.Empty(t, view.Reference)

	notices := s.Notices()
	require.Len(t, notices, 1)
	assert.Equal(t, models.NoticeError, notices[0].Level)
	assert.Equal(t, "Select incident type", notices[0].Title)

	// Повторная попытка снова дает уведомление и не меняет состояние
	require.ErrorIs(t, s.Submit(), report.ErrTypeRequired)
	assert.Len(t, s.Notices(), 1)
	assert.Equal(t, models.StateEditing, s.View().State)
}

func TestSubmit_FloodScenario_ReachesSucceeded(t *testing.T) {
	s := newTestSession(t, report.Options{SubmitDelay: 50 * time.Millisecond})
	require.NoError(t, s.SetType(models.IncidentFlood))
	require.NoError(t, s.SetDescription("water rising fast"))

	require.NoError(t, s.Submit())

	view := s.View()
	assert.Equal(t, models.StateSubmitting, view.State)
	assert.False(t, view.SubmitEnabled)
	assert.Empty(t, view.Reference, "reference must not exist before success")

	waitForState(t, s, models.StateSucceeded)

	view = s.View()
	assert.False(t, view.SubmitEnabled)
	assert.Nil(t, view.Report.GPSCoordinate)
	assert.Nil(t, view.Report.Photo)
	match := referencePattern.FindStringSubmatch(view.Reference)
	require.NotNil(t, match, "unexpected reference %q", view.Reference)
	n, err := strconv.Atoi(match[1])
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 0)
	assert.LessOrEqual(t, n, report.MaxReferenceNumber)

	assert.Contains(t, noticeTitles(s.Notices()), "Report submitted")
}

func TestSubmit_SubmitControlDisabledThroughoutSubmitting(t *testing.T) {
	s := newTestSession(t, report.Options{SubmitDelay: 50 * time.Millisecond})
	events, unsubscribe := s.Subscribe()
	defer unsubscribe()

	require.NoError(t, s.SetType(models.IncidentFire))
	require.NoError(t, s.Submit())

	deadline := time.After(waitTimeout)
	for {
		select {
		case ev, ok := <-events:
			require.True(t, ok)
			if ev.View.State == models.StateSubmitting {
				assert.False(t, ev.View.SubmitEnabled)
			}
			if ev.View.State == models.StateSucceeded {
				return
			}
		case <-deadline:
			t.Fatal("no succeeded event received")
		}
	}
}

func TestSubmit_WhileSubmitting_Rejected(t *testing.T) {
	s := newTestSession(t, report.Options{SubmitDelay: 100 * time.Millisecond})
	require.NoError(t, s.SetType(models.IncidentRoadblock))
	require.NoError(t, s.Submit())

	assert.ErrorIs(t, s.Submit(), report.ErrSubmissionInProgress)
	assert.ErrorIs(t, s.SetDescription("late edit"), report.ErrSubmissionInProgress)
	assert.ErrorIs(t, s.Reset(), report.ErrSubmissionInProgress)
	assert.Equal(t, models.StateSubmitting, s.View().State)

	waitForState(t, s, models.StateSucceeded)
	assert.Empty(t, s.View().Report.Description)
}

func TestReset_FromSucceeded_ClearsEveryField(t *testing.T) {
	s := newTestSession(t, report.Options{})
	require.NoError(t, s.SetType(models.IncidentMedical))
	require.NoError(t, s.SetLocationText("Near Colombo Fort Railway Station"))
	require.NoError(t, s.SetDescription("two people injured"))
	require.NoError(t, s.RequestLocation(report.LocatorFunc(func(context.Context) (models.GeoPoint, error) {
		return models.GeoPoint{Latitude: 6.9344, Longitude: 79.8428}, nil
	})))
	require.Eventually(t, func() bool { return s.View().Report.GPSCoordinate != nil }, waitTimeout, waitTick)
	require.NoError(t, s.AttachPhoto(report.PhotoReaderFunc(func(context.Context) (*models.Photo, error) {
		return &models.Photo{Name: "scene.jpg", ContentType: "image/jpeg", Size: 1024}, nil
	})))
	require.Eventually(t, func() bool { return s.View().Report.Photo != nil }, waitTimeout, waitTick)

	require.NoError(t, s.Submit())
	waitForState(t, s, models.StateSucceeded)

	require.NoError(t, s.Reset())

	view := s.View()
	assert.Equal(t, models.StateEditing, view.State)
	assert.True(t, view.Report.IsEmpty())
	assert.Equal(t, models.IncidentReport{}, view.Report)
	assert.Empty(t, view.Reference)
	assert.True(t, view.SubmitEnabled)
}

func TestEdit_AfterSucceeded_RequiresReset(t *testing.T) {
	s := newTestSession(t, report.Options{})
	require.NoError(t, s.SetType(models.IncidentOther))
	require.NoError(t, s.Submit())
	waitForState(t, s, models.StateSucceeded)

	assert.ErrorIs(t, s.SetType(models.IncidentFire), report.ErrInvalidTransition)
	assert.ErrorIs(t, s.Submit(), report.ErrInvalidTransition)
	assert.ErrorIs(t, s.RequestLocation(nil), report.ErrInvalidTransition)
}

func TestSetType_Unknown(t *testing.T) {
	s := newTestSession(t, report.Options{})

	err := s.SetType("earthquake")

	require.ErrorIs(t, err, report.ErrUnknownType)
	assert.Empty(t, s.View().Report.Type)
}

func TestRequestLocation_Success(t *testing.T) {
	s := newTestSession(t, report.Options{})
	point := models.GeoPoint{Latitude: 6.6828, Longitude: 80.4031}

	require.NoError(t, s.RequestLocation(report.LocatorFunc(func(context.Context) (models.GeoPoint, error) {
		return point, nil
	})))

	require.Eventually(t, func() bool { return !s.View().Locating }, waitTimeout, waitTick)
	view := s.View()
	require.NotNil(t, view.Report.GPSCoordinate)
	assert.Equal(t, point, *view.Report.GPSCoordinate)
	assert.Equal(t, "6.6828, 80.4031", view.Report.GPSCoordinate.String())
	assert.Equal(t, []string{"Location captured"}, noticeTitles(s.Notices()))
}

func TestRequestLocation_Failure_LeavesGPSUnsetAndStateUnchanged(t *testing.T) {
	s := newTestSession(t, report.Options{})
	require.NoError(t, s.SetType(models.IncidentLandslide))

	require.NoError(t, s.RequestLocation(report.LocatorFunc(func(context.Context) (models.GeoPoint, error) {
		return models.GeoPoint{}, errors.New("permission denied")
	})))

	require.Eventually(t, func() bool { return !s.View().Locating }, waitTimeout, waitTick)
	view := s.View()
	assert.Nil(t, view.Report.GPSCoordinate)
	assert.Equal(t, models.StateEditing, view.State)
	assert.Equal(t, models.IncidentLandslide, view.Report.Type)

	notices := s.Notices()
	require.Len(t, notices, 1)
	assert.Equal(t, "Location error", notices[0].Title)
	assert.Equal(t, models.NoticeError, notices[0].Level)
}

func TestRequestLocation_Unsupported(t *testing.T) {
	s := newTestSession(t, report.Options{})

	require.NoError(t, s.RequestLocation(nil))
	assert.Equal(t, []string{"Not supported"}, noticeTitles(s.Notices()))

	require.NoError(t, s.RequestLocation(report.LocatorFunc(func(context.Context) (models.GeoPoint, error) {
		return models.GeoPoint{}, report.ErrLocationUnsupported
	})))
	require.Eventually(t, func() bool { return !s.View().Locating }, waitTimeout, waitTick)
	assert.Equal(t, []string{"Not supported"}, noticeTitles(s.Notices()))
	assert.Nil(t, s.View().Report.GPSCoordinate)
}

func TestRequestLocation_DoesNotBlockSubmission(t *testing.T) {
	s := newTestSession(t, report.Options{})
	release := make(chan struct{})

	require.NoError(t, s.SetType(models.IncidentFlood))
	require.NoError(t, s.RequestLocation(report.LocatorFunc(func(ctx context.Context) (models.GeoPoint, error) {
		select {
		case <-release:
			return models.GeoPoint{}, errors.New("timeout")
		case <-ctx.Done():
			return models.GeoPoint{}, ctx.Err()
		}
	})))
	require.NoError(t, s.Submit())

	waitForState(t, s, models.StateSucceeded)
	assert.True(t, s.View().Locating)

	close(release)
	require.Eventually(t, func() bool { return !s.View().Locating }, waitTimeout, waitTick)
	assert.Equal(t, models.StateSucceeded, s.View().State)
}

func TestReset_DropsStaleLocationResult(t *testing.T) {
	s := newTestSession(t, report.Options{})
	release := make(chan struct{})
	done := make(chan struct{})

	require.NoError(t, s.RequestLocation(report.LocatorFunc(func(context.Context) (models.GeoPoint, error) {
		defer close(done)
		<-release
		return models.GeoPoint{Latitude: 1, Longitude: 2}, nil
	})))
	require.NoError(t, s.Reset())

	close(release)
	<-done
	s.Close()
	s.Wait()

	assert.Nil(t, s.View().Report.GPSCoordinate)
	assert.Empty(t, s.Notices())
}

func TestAttachPhoto_FailureRaisesNotice(t *testing.T) {
	s := newTestSession(t, report.Options{})

	require.NoError(t, s.AttachPhoto(report.PhotoReaderFunc(func(context.Context) (*models.Photo, error) {
		return nil, errors.New("not an image")
	})))

	require.Eventually(t, func() bool { return !s.View().ReadingPhoto }, waitTimeout, waitTick)
	assert.Nil(t, s.View().Report.Photo)
	assert.Equal(t, []string{"Photo error"}, noticeTitles(s.Notices()))
	assert.Equal(t, models.StateEditing, s.View().State)
}

func TestRemovePhoto(t *testing.T) {
	s := newTestSession(t, report.Options{})
	require.NoError(t, s.AttachPhoto(report.PhotoReaderFunc(func(context.Context) (*models.Photo, error) {
		return &models.Photo{Name: "flood.png", ContentType: "image/png"}, nil
	})))
	require.Eventually(t, func() bool { return s.View().Report.Photo != nil }, waitTimeout, waitTick)

	require.NoError(t, s.RemovePhoto())

	assert.Nil(t, s.View().Report.Photo)
}

// blockingPhoto возвращает фото с именем name после закрытия release
func blockingPhoto(name string, release <-chan struct{}) report.PhotoReader {
	return report.PhotoReaderFunc(func(ctx context.Context) (*models.Photo, error) {
		select {
		case <-release:
			return &models.Photo{Name: name, ContentType: "image/jpeg"}, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	})
}

func TestAttachPhoto_OlderReadFinishingLastIsDropped(t *testing.T) {
	s := newTestSession(t, report.Options{})
	releaseA := make(chan struct{})
	releaseB := make(chan struct{})

	require.NoError(t, s.AttachPhoto(blockingPhoto("A.jpg", releaseA)))
	require.NoError(t, s.AttachPhoto(blockingPhoto("B.jpg", releaseB)))

	close(releaseB)
	require.Eventually(t, func() bool { return s.View().Report.Photo != nil }, waitTimeout, waitTick)
	assert.False(t, s.View().ReadingPhoto)

	close(releaseA)
	assert.Never(t, func() bool {
		return s.View().Report.Photo.Name != "B.jpg"
	}, 50*time.Millisecond, waitTick)
	assert.Empty(t, s.Notices())
}

func TestAttachPhoto_OlderReadFinishingFirstKeepsReading(t *testing.T) {
	s := newTestSession(t, report.Options{})
	releaseA := make(chan struct{})
	releaseB := make(chan struct{})

	require.NoError(t, s.AttachPhoto(blockingPhoto("A.jpg", releaseA)))
	require.NoError(t, s.AttachPhoto(blockingPhoto("B.jpg", releaseB)))

	close(releaseA)
	assert.Never(t, func() bool {
		view := s.View()
		return !view.ReadingPhoto || view.Report.Photo != nil
	}, 50*time.Millisecond, waitTick)

	close(releaseB)
	require.Eventually(t, func() bool { return s.View().Report.Photo != nil }, waitTimeout, waitTick)
	view := s.View()
	assert.Equal(t, "B.jpg", view.Report.Photo.Name)
	assert.False(t, view.ReadingPhoto)
}

func TestRemovePhoto_WhileReading_DropsPendingResult(t *testing.T) {
	s := newTestSession(t, report.Options{})
	release := make(chan struct{})

	require.NoError(t, s.AttachPhoto(blockingPhoto("A.jpg", release)))
	require.NoError(t, s.RemovePhoto())
	assert.False(t, s.View().ReadingPhoto)

	close(release)
	assert.Never(t, func() bool {
		view := s.View()
		return view.Report.Photo != nil || view.ReadingPhoto
	}, 50*time.Millisecond, waitTick)
	assert.Empty(t, s.Notices())
}

func TestAttachPhoto_EmptyResultRaisesNotice(t *testing.T) {
	s := newTestSession(t, report.Options{})

	require.NoError(t, s.AttachPhoto(report.PhotoReaderFunc(func(context.Context) (*models.Photo, error) {
		return nil, nil
	})))

	require.Eventually(t, func() bool { return !s.View().ReadingPhoto }, waitTimeout, waitTick)
	assert.Nil(t, s.View().Report.Photo)
	assert.Equal(t, []string{"Photo error"}, noticeTitles(s.Notices()))
}

func TestRequestLocation_ResultAfterSucceeded_IsDropped(t *testing.T) {
	s := newTestSession(t, report.Options{})
	release := make(chan struct{})

	require.NoError(t, s.SetType(models.IncidentLandslide))
	require.NoError(t, s.RequestLocation(report.LocatorFunc(func(ctx context.Context) (models.GeoPoint, error) {
		select {
		case <-release:
			return models.GeoPoint{Latitude: 6.9, Longitude: 80.7}, nil
		case <-ctx.Done():
			return models.GeoPoint{}, ctx.Err()
		}
	})))
	require.NoError(t, s.Submit())
	waitForState(t, s, models.StateSucceeded)
	assert.Equal(t, []string{"Report submitted"}, noticeTitles(s.Notices()))

	close(release)
	require.Eventually(t, func() bool { return !s.View().Locating }, waitTimeout, waitTick)

	view := s.View()
	assert.Nil(t, view.Report.GPSCoordinate)
	assert.Equal(t, models.StateSucceeded, view.State)
	assert.Empty(t, s.Notices())
}

func TestAttachPhoto_ResultAfterSucceeded_IsDropped(t *testing.T) {
	s := newTestSession(t, report.Options{})
	release := make(chan struct{})

	require.NoError(t, s.SetType(models.IncidentOther))
	require.NoError(t, s.AttachPhoto(blockingPhoto("late.jpg", release)))
	require.NoError(t, s.Submit())
	waitForState(t, s, models.StateSucceeded)
	s.Notices()

	close(release)
	require.Eventually(t, func() bool { return !s.View().ReadingPhoto }, waitTimeout, waitTick)

	assert.Nil(t, s.View().Report.Photo)
	assert.Empty(t, s.Notices())
}

func TestDispatch_HangingAttemptTimesOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	dispatcher := mocks.NewMockDispatcher(ctrl)
	dispatcher.EXPECT().
		Dispatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ report.Submission) error {
			<-ctx.Done()
			return ctx.Err()
		}).
		Times(3)

	s := newTestSession(t, report.Options{
		Dispatcher: dispatcher,
		Retry: report.RetryPolicy{
			MaxAttempts:    3,
			BaseDelay:      time.Millisecond,
			AttemptTimeout: 20 * time.Millisecond,
		},
	})
	require.NoError(t, s.SetType(models.IncidentMedical))
	require.NoError(t, s.Submit())

	waitForState(t, s, models.StateFailed)

	view := s.View()
	assert.Equal(t, 3, view.Attempts)
	assert.Empty(t, view.Reference)
	assert.True(t, view.SubmitEnabled)
	assert.Equal(t, []string{"Submission failed"}, noticeTitles(s.Notices()))
}

func TestDispatch_RetriesThenFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	dispatcher := mocks.NewMockDispatcher(ctrl)
	dispatcher.EXPECT().
		Dispatch(gomock.Any(), gomock.Any()).
		Return(errors.New("connection refused")).
		Times(3)

	s := newTestSession(t, report.Options{
		Dispatcher: dispatcher,
		Retry:      report.RetryPolicy{MaxAttempts: 3, BaseDelay: time.Millisecond},
	})
	require.NoError(t, s.SetType(models.IncidentFire))
	require.NoError(t, s.Submit())

	waitForState(t, s, models.StateFailed)

	view := s.View()
	assert.Empty(t, view.Reference)
	assert.True(t, view.SubmitEnabled)
	assert.Equal(t, 3, view.Attempts)
	assert.Equal(t, []string{"Submission failed"}, noticeTitles(s.Notices()))

	// Правка возвращает форму в Editing, поля сохраняются
	require.NoError(t, s.SetDescription("still burning"))
	view = s.View()
	assert.Equal(t, models.StateEditing, view.State)
	assert.Equal(t, models.IncidentFire, view.Report.Type)
}

func TestDispatch_RetrySucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	dispatcher := mocks.NewMockDispatcher(ctrl)

	var received report.Submission
	gomock.InOrder(
		dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(errors.New("503")),
		dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sub report.Submission) error {
				received = sub
				return nil
			}),
	)

	s := newTestSession(t, report.Options{
		Dispatcher: dispatcher,
		Retry:      report.RetryPolicy{MaxAttempts: 3, BaseDelay: time.Millisecond},
	})
	require.NoError(t, s.SetType(models.IncidentFlood))
	require.NoError(t, s.SetDescription("water rising fast"))
	require.NoError(t, s.Submit())

	waitForState(t, s, models.StateSucceeded)

	view := s.View()
	assert.Equal(t, 2, view.Attempts)
	assert.Equal(t, view.Reference, received.Reference)
	assert.Equal(t, "test-session", received.SessionID)
	assert.Equal(t, models.IncidentFlood, received.Report.Type)
	assert.Equal(t, "water rising fast", received.Report.Description)
}

func TestSubmit_FromFailedAgain(t *testing.T) {
	ctrl := gomock.NewController(t)
	dispatcher := mocks.NewMockDispatcher(ctrl)
	gomock.InOrder(
		dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(errors.New("down")),
		dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil),
	)

	s := newTestSession(t, report.Options{Dispatcher: dispatcher})
	require.NoError(t, s.SetType(models.IncidentMedical))
	require.NoError(t, s.Submit())
	waitForState(t, s, models.StateFailed)

	require.NoError(t, s.Submit())
	waitForState(t, s, models.StateSucceeded)
	assert.Regexp(t, referencePattern, s.View().Reference)
}

func TestClose_DuringSubmitting_AbandonsSubmission(t *testing.T) {
	ctrl := gomock.NewController(t)
	dispatcher := mocks.NewMockDispatcher(ctrl)
	dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Times(0)

	s := newTestSession(t, report.Options{Dispatcher: dispatcher, SubmitDelay: time.Hour})
	events, _ := s.Subscribe()
	require.NoError(t, s.SetType(models.IncidentFlood))
	require.NoError(t, s.Submit())

	s.Close()
	s.Wait()

	view := s.View()
	assert.True(t, view.Closed)
	assert.False(t, view.SubmitEnabled)
	assert.ErrorIs(t, s.Submit(), report.ErrSessionClosed)
	assert.ErrorIs(t, s.SetDescription("x"), report.ErrSessionClosed)

	for range events {
		// поток закрывается вместе с сессией
	}
}

func TestSubscribe_ReceivesNotices(t *testing.T) {
	s := newTestSession(t, report.Options{})
	events, unsubscribe := s.Subscribe()

	require.ErrorIs(t, s.Submit(), report.ErrTypeRequired)

	select {
	case ev := <-events:
		require.NotNil(t, ev.Notice)
		assert.Equal(t, "Select incident type", ev.Notice.Title)
		assert.Equal(t, models.StateEditing, ev.View.State)
	case <-time.After(waitTimeout):
		t.Fatal("no event received")
	}

	unsubscribe()
	_, ok := <-events
	assert.False(t, ok)
}

func TestReferenceGenerator_Range(t *testing.T) {
	gen := report.NewReferenceGenerator("")
	for i := 0; i < 1000; i++ {
		ref := gen.Next()
		match := referencePattern.FindStringSubmatch(ref)
		require.NotNil(t, match, ref)
		n, err := strconv.Atoi(match[1])
		require.NoError(t, err)
		require.LessOrEqual(t, n, report.MaxReferenceNumber)
	}

	assert.Regexp(t, `^DMC-\d{1,4}$`, report.NewReferenceGenerator("DMC").Next())
}
