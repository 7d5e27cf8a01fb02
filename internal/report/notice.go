package report

import (
	"time"

	"github.com/shenikar/disaster_portal/internal/models"
)

func newNotice(now time.Time, level models.NoticeLevel, title, description string) models.Notice {
	return models.Notice{
		Level:       level,
		Title:       title,
		Description: description,
		CreatedAt:   now,
	}
}

func typeRequiredNotice(now time.Time) models.Notice {
	return newNotice(now, models.NoticeError, "Select incident type", "Please select the type of incident you're reporting.")
}

func locationCapturedNotice(now time.Time) models.Notice {
	return newNotice(now, models.NoticeSuccess, "Location captured", "Your GPS coordinates have been recorded.")
}

func locationErrorNotice(now time.Time) models.Notice {
	return newNotice(now, models.NoticeError, "Location error", "Could not get your location. Please enter manually.")
}

func locationUnsupportedNotice(now time.Time) models.Notice {
	return newNotice(now, models.NoticeError, "Not supported", "Geolocation is not supported by your browser.")
}

func photoErrorNotice(now time.Time) models.Notice {
	return newNotice(now, models.NoticeError, "Photo error", "Could not read the selected photo. Please choose another image.")
}

func submittedNotice(now time.Time) models.Notice {
	return newNotice(now, models.NoticeSuccess, "Report submitted", "Thank you for your report. Emergency services have been notified.")
}

func submissionFailedNotice(now time.Time) models.Notice {
	return newNotice(now, models.NoticeError, "Submission failed", "We could not deliver your report. Please try again.")
}
