package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// IncidentType - тип происшествия, о котором сообщает гражданин
type IncidentType string

const (
	IncidentFlood     IncidentType = "flood"
	IncidentLandslide IncidentType = "landslide"
	IncidentFire      IncidentType = "fire"
	IncidentRoadblock IncidentType = "roadblock"
	IncidentMedical   IncidentType = "medical"
	IncidentOther     IncidentType = "other"
)

var incidentTypeLabels = map[IncidentType]string{
	IncidentFlood:     "Flood",
	IncidentLandslide: "Landslide",
	IncidentFire:      "Fire",
	IncidentRoadblock: "Road Block",
	IncidentMedical:   "Medical Emergency",
	IncidentOther:     "Other",
}

// IncidentTypes возвращает все допустимые типы в порядке отображения
func IncidentTypes() []IncidentType {
	return []IncidentType{
		IncidentFlood,
		IncidentLandslide,
		IncidentFire,
		IncidentRoadblock,
		IncidentMedical,
		IncidentOther,
	}
}

// ParseIncidentType разбирает идентификатор типа
func ParseIncidentType(s string) (IncidentType, error) {
	t := IncidentType(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := incidentTypeLabels[t]; !ok {
		return "", fmt.Errorf("unknown incident type %q", s)
	}
	return t, nil
}

// Valid проверяет, что тип входит в перечисление
func (t IncidentType) Valid() bool {
	_, ok := incidentTypeLabels[t]
	return ok
}

// Label возвращает человекочитаемое название типа
func (t IncidentType) Label() string {
	if label, ok := incidentTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

// GeoPoint - координаты, полученные с устройства
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// String форматирует координаты с точностью до 4 знаков, как на форме
func (p GeoPoint) String() string {
	return fmt.Sprintf("%.4f, %.4f", p.Latitude, p.Longitude)
}

// Photo - вложение, которое хранится только в памяти для предпросмотра
type Photo struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	PreviewURL  string `json:"preview_url,omitempty"`
}

// IncidentReport - черновик сообщения о происшествии
type IncidentReport struct {
	Type          IncidentType `json:"type,omitempty"`
	LocationText  string       `json:"location_text,omitempty"`
	GPSCoordinate *GeoPoint    `json:"gps_coordinate,omitempty"`
	Description   string       `json:"description,omitempty"`
	Photo         *Photo       `json:"photo,omitempty"`
}

// IsEmpty проверяет, что все поля сброшены
func (r IncidentReport) IsEmpty() bool {
	return r.Type == "" && r.LocationText == "" && r.GPSCoordinate == nil && r.Description == "" && r.Photo == nil
}

// ReportState - состояние формы отправки
type ReportState string

const (
	StateEditing    ReportState = "editing"
	StateSubmitting ReportState = "submitting"
	StateSucceeded  ReportState = "succeeded"
	StateFailed     ReportState = "failed"
)

// NoticeLevel - уровень уведомления для пользователя
type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
)

// Notice - уведомление, которое отображает слой представления
type Notice struct {
	Level       NoticeLevel `json:"level"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	CreatedAt   time.Time   `json:"created_at"`
}

// ReportStatusPending - статус нового сообщения до проверки оператором
const ReportStatusPending = "pending"

// SubmittedReport - отправленное сообщение, которое сохраняется в бд
type SubmittedReport struct {
	ID            uuid.UUID    `json:"id"`
	SessionID     string       `json:"session_id"`
	Reference     string       `json:"reference"`
	Type          IncidentType `json:"type"`
	LocationText  string       `json:"location_text,omitempty"`
	GPSCoordinate *GeoPoint    `json:"gps_coordinate,omitempty"`
	Description   string       `json:"description,omitempty"`
	HasPhoto      bool         `json:"has_photo"`
	Status        string       `json:"status"`
	SubmittedAt   time.Time    `json:"submitted_at"`
}
