package v1

import (
	"github.com/shenikar/disaster_portal/internal/models"
	"github.com/shenikar/disaster_portal/internal/report"
)

func ViewToResponse(v report.View) ReportSessionResponse {
	resp := ReportSessionResponse{
		ID:            v.ID,
		State:         string(v.State),
		Type:          string(v.Report.Type),
		LocationText:  v.Report.LocationText,
		Description:   v.Report.Description,
		Reference:     v.Reference,
		SubmitEnabled: v.SubmitEnabled,
		Locating:      v.Locating,
		ReadingPhoto:  v.ReadingPhoto,
		Attempts:      v.Attempts,
	}
	if v.Report.Type != "" {
		resp.TypeLabel = v.Report.Type.Label()
	}
	if p := v.Report.GPSCoordinate; p != nil {
		resp.GPSCoordinate = &GeoPointResponse{
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
			Text:      p.String(),
		}
	}
	if ph := v.Report.Photo; ph != nil {
		resp.Photo = &PhotoResponse{
			Name:        ph.Name,
			ContentType: ph.ContentType,
			Size:        ph.Size,
			PreviewURL:  ph.PreviewURL,
		}
	}
	return resp
}

func NoticeToResponse(n models.Notice) NoticeResponse {
	return NoticeResponse{
		Level:       string(n.Level),
		Title:       n.Title,
		Description: n.Description,
		CreatedAt:   n.CreatedAt,
	}
}

func NoticesToResponses(notices []models.Notice) []NoticeResponse {
	out := make([]NoticeResponse, 0, len(notices))
	for _, n := range notices {
		out = append(out, NoticeToResponse(n))
	}
	return out
}

func EventToStream(e report.Event) StreamEvent {
	ev := StreamEvent{Session: ViewToResponse(e.View)}
	if e.Notice != nil {
		n := NoticeToResponse(*e.Notice)
		ev.Notice = &n
	}
	return ev
}

func IncidentTypesToResponses(types []models.IncidentType) []IncidentTypeResponse {
	out := make([]IncidentTypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, IncidentTypeResponse{ID: string(t), Label: t.Label()})
	}
	return out
}
