package report

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shenikar/disaster_portal/internal/models"
)

var (
	ErrTypeRequired         = errors.New("incident type is required")
	ErrUnknownType          = errors.New("unknown incident type")
	ErrSubmissionInProgress = errors.New("submission is in progress")
	ErrInvalidTransition    = errors.New("invalid state transition")
	ErrSessionClosed        = errors.New("report session is closed")
	ErrLocationUnsupported  = errors.New("geolocation is not supported")
)

// Locator - источник координат устройства
type Locator interface {
	Locate(ctx context.Context) (models.GeoPoint, error)
}

// LocatorFunc позволяет использовать функцию как Locator
type LocatorFunc func(ctx context.Context) (models.GeoPoint, error)

func (f LocatorFunc) Locate(ctx context.Context) (models.GeoPoint, error) {
	return f(ctx)
}

// PhotoReader читает выбранный файл и готовит предпросмотр
type PhotoReader interface {
	ReadPhoto(ctx context.Context) (*models.Photo, error)
}

// PhotoReaderFunc - адаптер функции к PhotoReader для подстановки
// своего чтения файла, например в тестах. HTTP слой использует media.PreviewReader
type PhotoReaderFunc func(ctx context.Context) (*models.Photo, error)

func (f PhotoReaderFunc) ReadPhoto(ctx context.Context) (*models.Photo, error) {
	return f(ctx)
}

// Submission - то, что уходит во внешнюю систему после задержки
type Submission struct {
	// ID одинаков для всех повторов одной отправки
	ID        uuid.UUID
	SessionID string
	Reference string
	Report    models.IncidentReport
}

// Dispatcher доставляет отправленное сообщение во внешнюю систему
//
//go:generate mockgen -destination=mocks/mock_dispatcher.go -package=mocks github.com/shenikar/disaster_portal/internal/report Dispatcher
type Dispatcher interface {
	Dispatch(ctx context.Context, submission Submission) error
}
