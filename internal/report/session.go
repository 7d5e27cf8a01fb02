// Package report реализует форму гражданского сообщения о происшествии:
// заполнение полей, проверку типа и машину состояний отправки
// Editing -> Submitting -> Succeeded (или Failed при ошибке доставки).
package report

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/disaster_portal/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	DefaultSubmitDelay     = 2 * time.Second
	DefaultRetryBaseDelay  = 500 * time.Millisecond
	DefaultAttemptTimeout  = 10 * time.Second
	subscriberBufferLength = 16
)

var errPhotoEmpty = errors.New("photo reader returned no photo")

// RetryPolicy - политика повторов доставки
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	// AttemptTimeout ограничивает одну попытку Dispatch
	AttemptTimeout time.Duration
}

// Options - зависимости и параметры сессии
type Options struct {
	// SubmitDelay - имитация сетевой задержки перед доставкой
	SubmitDelay time.Duration
	Dispatcher  Dispatcher
	Retry       RetryPolicy
	References  ReferenceGenerator
	Logger      *logrus.Logger
	Now         func() time.Time
}

func (o Options) withDefaults() Options {
	if o.SubmitDelay <= 0 {
		o.SubmitDelay = DefaultSubmitDelay
	}
	if o.Retry.MaxAttempts < 1 {
		o.Retry.MaxAttempts = 1
	}
	if o.Retry.BaseDelay <= 0 {
		o.Retry.BaseDelay = DefaultRetryBaseDelay
	}
	if o.Retry.AttemptTimeout <= 0 {
		o.Retry.AttemptTimeout = DefaultAttemptTimeout
	}
	if o.References == nil {
		o.References = NewReferenceGenerator(DefaultReferencePrefix)
	}
	if o.Logger == nil {
		o.Logger = logrus.StandardLogger()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// View - снимок состояния формы для слоя представления
type View struct {
	ID            string
	State         models.ReportState
	Report        models.IncidentReport
	Reference     string
	SubmitEnabled bool
	Locating      bool
	ReadingPhoto  bool
	Attempts      int
	Closed        bool
}

// Event отправляется подписчикам при каждом изменении сессии
type Event struct {
	Notice *models.Notice
	View   View
}

// Session - одна открытая форма сообщения
type Session struct {
	id   string
	opts Options
	log  *logrus.Entry

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu           sync.Mutex
	state        models.ReportState
	report       models.IncidentReport
	reference    string
	locating     bool
	readingPhoto bool
	attempts     int
	epoch        uint64
	// photoSeq - номер последнего запроса фото; старые результаты отбрасываются
	photoSeq     uint64
	closed       bool
	lastActivity time.Time
	notices      []models.Notice
	subscribers  map[uint64]chan Event
	nextSubID    uint64
}

// NewSession создает пустую форму в состоянии Editing
func NewSession(ctx context.Context, id string, opts Options) *Session {
	opts = opts.withDefaults()
	sctx, cancel := context.WithCancel(ctx)
	return &Session{
		id:           id,
		opts:         opts,
		log:          opts.Logger.WithFields(logrus.Fields{"component": "report", "session_id": id}),
		ctx:          sctx,
		cancel:       cancel,
		state:        models.StateEditing,
		lastActivity: opts.Now(),
		subscribers:  make(map[uint64]chan Event),
	}
}

func (s *Session) ID() string {
	return s.id
}

// View возвращает текущее состояние формы
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

// LastActivity - время последнего действия пользователя
func (s *Session) LastActivity() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity
}

// SetType выбирает тип происшествия
func (s *Session) SetType(t models.IncidentType) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
	return s.edit(func(r *models.IncidentReport) {
		r.Type = t
	})
}

func (s *Session) SetLocationText(text string) error {
	return s.edit(func(r *models.IncidentReport) {
		r.LocationText = strings.TrimSpace(text)
	})
}

func (s *Session) SetDescription(text string) error {
	return s.edit(func(r *models.IncidentReport) {
		r.Description = strings.TrimSpace(text)
	})
}

// RemovePhoto убирает вложение и предпросмотр
func (s *Session) RemovePhoto() error {
	return s.edit(func(r *models.IncidentReport) {
		r.Photo = nil
		s.photoSeq++
		s.readingPhoto = false
	})
}

func (s *Session) edit(apply func(r *models.IncidentReport)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.editableLocked(); err != nil {
		return err
	}
	apply(&s.report)
	if s.state == models.StateFailed {
		s.state = models.StateEditing
	}
	s.touchLocked()
	s.broadcastLocked(nil)
	return nil
}

func (s *Session) editableLocked() error {
	if s.closed {
		return ErrSessionClosed
	}
	switch s.state {
	case models.StateSubmitting:
		return ErrSubmissionInProgress
	case models.StateSucceeded:
		return ErrInvalidTransition
	}
	return nil
}

// RequestLocation запрашивает координаты устройства в фоне.
// Результат меняет только поле координат и очередь уведомлений.
func (s *Session) RequestLocation(loc Locator) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}
	if s.state == models.StateSucceeded {
		return ErrInvalidTransition
	}
	s.touchLocked()
	if loc == nil {
		s.emitLocked(locationUnsupportedNotice(s.opts.Now()))
		return nil
	}
	if s.locating {
		return nil
	}

	s.locating = true
	epoch := s.epoch
	s.broadcastLocked(nil)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		point, err := loc.Locate(s.ctx)
		s.completeLocation(epoch, point, err)
	}()
	return nil
}

func (s *Session) completeLocation(epoch uint64, point models.GeoPoint, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.epoch != epoch {
		return
	}
	s.locating = false
	if s.state == models.StateSucceeded {
		s.log.Debug("Location result dropped, report already submitted")
		s.broadcastLocked(nil)
		return
	}
	now := s.opts.Now()
	switch {
	case err == nil:
		s.report.GPSCoordinate = &point
		s.emitLocked(locationCapturedNotice(now))
	case errors.Is(err, ErrLocationUnsupported):
		s.log.WithError(err).Warn("Location capability unavailable")
		s.emitLocked(locationUnsupportedNotice(now))
	default:
		s.log.WithError(err).Warn("Failed to capture location")
		s.emitLocked(locationErrorNotice(now))
	}
}

// AttachPhoto читает фото в фоне для предпросмотра
func (s *Session) AttachPhoto(r PhotoReader) error {
	if r == nil {
		return fmt.Errorf("photo reader is nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}
	if s.state == models.StateSucceeded {
		return ErrInvalidTransition
	}
	s.touchLocked()
	s.readingPhoto = true
	s.photoSeq++
	epoch, seq := s.epoch, s.photoSeq
	s.broadcastLocked(nil)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		photo, err := r.ReadPhoto(s.ctx)
		s.completePhoto(epoch, seq, photo, err)
	}()
	return nil
}

func (s *Session) completePhoto(epoch, seq uint64, photo *models.Photo, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.epoch != epoch || s.photoSeq != seq {
		return
	}
	s.readingPhoto = false
	if s.state == models.StateSucceeded {
		s.log.Debug("Photo result dropped, report already submitted")
		s.broadcastLocked(nil)
		return
	}
	if err == nil && photo == nil {
		err = errPhotoEmpty
	}
	if err != nil {
		s.log.WithError(err).Warn("Failed to read photo")
		s.emitLocked(photoErrorNotice(s.opts.Now()))
		return
	}
	s.report.Photo = photo
	s.broadcastLocked(nil)
}

// Submit переводит форму в Submitting, если выбран тип.
// Без типа форма остается в Editing и получает уведомление.
func (s *Session) Submit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}
	switch s.state {
	case models.StateSubmitting:
		return ErrSubmissionInProgress
	case models.StateSucceeded:
		return ErrInvalidTransition
	}
	s.touchLocked()
	if s.report.Type == "" {
		s.emitLocked(typeRequiredNotice(s.opts.Now()))
		return ErrTypeRequired
	}

	s.state = models.StateSubmitting
	s.attempts = 0
	draft := cloneReport(s.report)
	epoch := s.epoch
	s.log.WithField("type", draft.Type).Info("Report submission started")
	s.broadcastLocked(nil)

	s.wg.Add(1)
	go s.runSubmission(epoch, draft)
	return nil
}

func (s *Session) runSubmission(epoch uint64, draft models.IncidentReport) {
	defer s.wg.Done()

	if !sleepContext(s.ctx, s.opts.SubmitDelay) {
		s.log.Info("Submission abandoned, session closed")
		return
	}
	reference, err := s.deliver(draft)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.epoch != epoch {
		return
	}
	if err != nil {
		s.log.WithError(err).Error("Report submission failed")
		s.state = models.StateFailed
		s.emitLocked(submissionFailedNotice(s.opts.Now()))
		return
	}
	s.state = models.StateSucceeded
	s.reference = reference
	s.log.WithField("reference", reference).Info("Report submitted successfully")
	s.emitLocked(submittedNotice(s.opts.Now()))
}

func (s *Session) deliver(draft models.IncidentReport) (string, error) {
	reference := s.opts.References.Next()
	submissionID := uuid.New()
	if s.opts.Dispatcher == nil {
		return reference, nil
	}

	maxAttempts := s.opts.Retry.MaxAttempts
	delay := s.opts.Retry.BaseDelay
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		s.setAttempts(attempt)
		err = s.dispatchAttempt(Submission{
			ID:        submissionID,
			SessionID: s.id,
			Reference: reference,
			Report:    draft,
		})
		if err == nil {
			return reference, nil
		}
		if s.ctx.Err() != nil {
			return "", err
		}
		if attempt == maxAttempts {
			break
		}
		s.log.WithError(err).Warnf("Dispatch failed. Retrying in %v. Retries left: %d", delay, maxAttempts-attempt)
		if !sleepContext(s.ctx, delay) {
			return "", s.ctx.Err()
		}
		delay *= 2
	}
	return "", fmt.Errorf("dispatch failed after %d attempts: %w", maxAttempts, err)
}

// dispatchAttempt - одна попытка доставки с таймаутом
func (s *Session) dispatchAttempt(sub Submission) error {
	ctx, cancel := context.WithTimeout(s.ctx, s.opts.Retry.AttemptTimeout)
	defer cancel()

	err := s.opts.Dispatcher.Dispatch(ctx, sub)
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("dispatch attempt timed out after %v: %w", s.opts.Retry.AttemptTimeout, err)
	}
	return err
}

func (s *Session) setAttempts(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts = n
}

// Reset - "отправить еще одно сообщение": все поля очищаются
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}
	if s.state == models.StateSubmitting {
		return ErrSubmissionInProgress
	}
	s.epoch++
	s.report = models.IncidentReport{}
	s.reference = ""
	s.attempts = 0
	s.locating = false
	s.readingPhoto = false
	s.state = models.StateEditing
	s.touchLocked()
	s.broadcastLocked(nil)
	return nil
}

// Notices забирает накопленные уведомления
func (s *Session) Notices() []models.Notice {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.notices
	s.notices = nil
	return out
}

// Subscribe возвращает поток событий сессии и функцию отписки.
// Канал закрывается при отписке или закрытии сессии.
func (s *Session) Subscribe() (<-chan Event, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan Event, subscriberBufferLength)
	if s.closed {
		close(ch)
		return ch, func() {}
	}
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = ch

	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subscribers[id]; ok {
			delete(s.subscribers, id)
			close(sub)
		}
	}
}

// Close отбрасывает форму. Ожидающая отправка отменяется.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.cancel()
	for id, ch := range s.subscribers {
		delete(s.subscribers, id)
		close(ch)
	}
	s.log.Debug("Report session closed")
}

// Wait ждет завершения фоновых операций сессии
func (s *Session) Wait() {
	s.wg.Wait()
}

func (s *Session) touchLocked() {
	s.lastActivity = s.opts.Now()
}

func (s *Session) emitLocked(n models.Notice) {
	s.notices = append(s.notices, n)
	s.broadcastLocked(&n)
}

func (s *Session) broadcastLocked(n *models.Notice) {
	if len(s.subscribers) == 0 {
		return
	}
	ev := Event{Notice: n, View: s.viewLocked()}
	for _, ch := range s.subscribers {
		select {
		case ch <- ev:
		default:
			s.log.Warn("Subscriber is too slow, event dropped")
		}
	}
}

func (s *Session) viewLocked() View {
	return View{
		ID:            s.id,
		State:         s.state,
		Report:        cloneReport(s.report),
		Reference:     s.reference,
		SubmitEnabled: !s.closed && (s.state == models.StateEditing || s.state == models.StateFailed),
		Locating:      s.locating,
		ReadingPhoto:  s.readingPhoto,
		Attempts:      s.attempts,
		Closed:        s.closed,
	}
}

func cloneReport(r models.IncidentReport) models.IncidentReport {
	out := r
	if r.GPSCoordinate != nil {
		p := *r.GPSCoordinate
		out.GPSCoordinate = &p
	}
	if r.Photo != nil {
		ph := *r.Photo
		out.Photo = &ph
	}
	return out
}

func sleepContext(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
