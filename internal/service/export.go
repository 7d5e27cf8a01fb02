package service

import (
	"fmt"
	"time"

	"github.com/shenikar/disaster_portal/internal/models"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Reports"

var exportHeaders = []string{
	"Reference", "Type", "Location", "Latitude", "Longitude",
	"Description", "Photo", "Status", "Submitted At",
}

// buildReportsWorkbook собирает книгу: заголовок, время выгрузки, таблица с строки 4
func buildReportsWorkbook(reports []*models.SubmittedReport, generatedAt time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1E3A8A"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, err
	}

	if err := f.SetCellValue(exportSheet, "A1", "Incident Reports"); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(exportSheet, "A1", "A1", titleStyle); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(exportSheet, "A2", fmt.Sprintf("Generated: %s", generatedAt.Format("2006-01-02 15:04:05"))); err != nil {
		return nil, err
	}

	for col, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 4)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheet, cell, header); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(exportSheet, cell, cell, headerStyle); err != nil {
			return nil, err
		}
	}
	if err := f.SetColWidth(exportSheet, "A", "I", 18); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(exportSheet, "F", "F", 48); err != nil {
		return nil, err
	}

	for i, r := range reports {
		row := []any{
			r.Reference,
			r.Type.Label(),
			r.LocationText,
			nil,
			nil,
			r.Description,
			photoMark(r.HasPhoto),
			r.Status,
			r.SubmittedAt.Format("2006-01-02 15:04:05"),
		}
		if r.GPSCoordinate != nil {
			row[3] = r.GPSCoordinate.Latitude
			row[4] = r.GPSCoordinate.Longitude
		}
		start, err := excelize.CoordinatesToCellName(1, i+5)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(exportSheet, start, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func photoMark(has bool) string {
	if has {
		return "yes"
	}
	return "no"
}
