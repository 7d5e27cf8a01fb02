package v1

import (
	"time"
)

// UpdateReportRequest DTO для изменения полей формы. Пустые поля не меняются
// @Description DTO для изменения полей формы
type UpdateReportRequest struct {
	Type         *string `json:"type,omitempty" validate:"omitempty,oneof=flood landslide fire roadblock medical other"`
	LocationText *string `json:"location_text,omitempty" validate:"omitempty,max=500"`
	Description  *string `json:"description,omitempty" validate:"omitempty,max=5000"`
}

// LocationRequest DTO с результатом запроса геолокации в браузере
// @Description Координаты устройства, либо error, либо unsupported=true
type LocationRequest struct {
	Latitude    *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	Error       string   `json:"error,omitempty" validate:"max=200"`
	Unsupported bool     `json:"unsupported,omitempty"`
}

// GeoPointResponse DTO координат
type GeoPointResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Text      string  `json:"text"`
}

// PhotoResponse DTO предпросмотра фото
type PhotoResponse struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	PreviewURL  string `json:"preview_url,omitempty"`
}

// ReportSessionResponse DTO состояния формы
// @Description Состояние формы сообщения о происшествии
type ReportSessionResponse struct {
	ID            string            `json:"id"`
	State         string            `json:"state"`
	Type          string            `json:"type,omitempty"`
	TypeLabel     string            `json:"type_label,omitempty"`
	LocationText  string            `json:"location_text,omitempty"`
	GPSCoordinate *GeoPointResponse `json:"gps_coordinate,omitempty"`
	Description   string            `json:"description,omitempty"`
	Photo         *PhotoResponse    `json:"photo,omitempty"`
	Reference     string            `json:"reference,omitempty"`
	SubmitEnabled bool              `json:"submit_enabled"`
	Locating      bool              `json:"locating"`
	ReadingPhoto  bool              `json:"reading_photo"`
	Attempts      int               `json:"attempts,omitempty"`
}

// NoticeResponse DTO уведомления
type NoticeResponse struct {
	Level       string    `json:"level"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// StreamEvent - сообщение websocket потока
type StreamEvent struct {
	Notice  *NoticeResponse       `json:"notice,omitempty"`
	Session ReportSessionResponse `json:"session"`
}

// IncidentTypeResponse DTO типа происшествия
type IncidentTypeResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}
