// Package export flattens record lists into downloadable tabular formats.
// Output is deterministic: input order is preserved and every value uses a
// fixed format.
package export

import (
	"fmt"
	"strings"
	"time"

	"admin-service/internal/models"

	"github.com/xuri/excelize/v2"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

var resultHeaders = []string{
	"Test Name",
	"Student",
	"Email",
	"Mobile",
	"Test ID",
	"Score (%)",
	"Questions Total",
	"Questions Attempted",
	"Time Spent (seconds)",
	"Status",
	"Date",
	"Time",
}

var bookingHeaders = []string{
	"Name",
	"Email",
	"Phone",
	"Booking Date",
	"Scheduled Date",
	"Status",
	"Meet Link",
	"Notes",
}

// ResultsCSV renders test results as comma-separated text: header row first,
// then one double-quoted record per line.
func ResultsCSV(results []models.TestResult) []byte {
	return renderCSV(resultHeaders, resultRows(results))
}

// BookingsCSV renders interview bookings in the same format.
func BookingsCSV(bookings []models.Purchase) []byte {
	return renderCSV(bookingHeaders, bookingRows(bookings))
}

// ResultsXLSX renders the same results table as a single-sheet workbook.
func ResultsXLSX(results []models.TestResult) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Test Results"
	f.SetSheetName("Sheet1", sheet)
	if err := writeSheetRow(f, sheet, 1, resultHeaders); err != nil {
		return nil, err
	}
	for i, row := range resultRows(results) {
		if err := writeSheetRow(f, sheet, i+2, row); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func resultRows(results []models.TestResult) [][]string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			orDefault(r.TestName, "Unknown Test"),
			r.UserDetails.Name,
			r.UserDetails.Email,
			r.UserDetails.Phone,
			orDefault(r.TestID, models.UnavailableVal),
			score(r.Percentage),
			fmt.Sprintf("%d", r.QuestionsTotal),
			fmt.Sprintf("%d", r.QuestionsAttempted),
			fmt.Sprintf("%d", r.TimeSpentSeconds),
			orDefault(r.ResultStatus, models.UnavailableVal),
			formatInstant(r.Timestamp, dateLayout),
			formatInstant(r.Timestamp, timeLayout),
		})
	}
	return rows
}

func bookingRows(bookings []models.Purchase) [][]string {
	rows := make([][]string, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, []string{
			b.UserDetails.Name,
			b.UserDetails.Email,
			b.UserDetails.Phone,
			formatInstant(b.BookingDate, dateLayout),
			formatInstant(b.ScheduledDate, dateLayout),
			orDefault(b.Status, models.UnavailableVal),
			b.MeetLink,
			b.Notes,
		})
	}
	return rows
}

func renderCSV(headers []string, rows [][]string) []byte {
	var sb strings.Builder
	sb.WriteString(strings.Join(headers, ","))
	for _, row := range rows {
		sb.WriteByte('\n')
		for i, cell := range row {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteByte('"')
			sb.WriteString(strings.ReplaceAll(cell, `"`, `""`))
			sb.WriteByte('"')
		}
	}
	return []byte(sb.String())
}

func writeSheetRow(f *excelize.File, sheet string, row int, cells []string) error {
	for col, cell := range cells {
		name, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, name, cell); err != nil {
			return err
		}
	}
	return nil
}

// orDefault substitutes def for an empty string.
func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// score keeps the dashboard's display rule: a zero percentage renders as
// N/A, everything else with two decimals.
func score(pct float64) string {
	if pct == 0 {
		return models.UnavailableVal
	}
	return fmt.Sprintf("%.2f", pct)
}

func formatInstant(t *time.Time, layout string) string {
	if t == nil {
		return models.UnavailableVal
	}
	return t.Format(layout)
}
