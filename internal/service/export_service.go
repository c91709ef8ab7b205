package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"marketing-calendar-be/internal/entity"
	"marketing-calendar-be/internal/repository/specification"
	"marketing-calendar-be/internal/repository/unitofwork"

	"marketing-calendar-be/pkg/suggest"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
)

type IExportService interface {
	ExportCSV(ctx context.Context, userId, calendarId uuid.UUID, w io.Writer) (string, error)
	ExportICS(ctx context.Context, userId, calendarId uuid.UUID, w io.Writer) (string, error)
	ExportPDF(ctx context.Context, userId, calendarId uuid.UUID, year int, month time.Month, w io.Writer) (string, error)
}

type exportService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewExportService(uowFactory unitofwork.RepositoryFactory) IExportService {
	return &exportService{uowFactory: uowFactory}
}

func (s *exportService) loadCalendarCampaigns(ctx context.Context, userId, calendarId uuid.UUID, specs ...specification.Specification) (*entity.Calendar, []*entity.Campaign, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	calendar, err := uow.CalendarRepository().FindOne(ctx,
		specification.ByID{ID: calendarId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, nil, err
	}
	if calendar == nil {
		return nil, nil, errors.New("calendar not found")
	}

	allSpecs := append([]specification.Specification{
		specification.ByCalendarID{CalendarID: calendarId},
		specification.OrderBy{Field: "start_date", Desc: false},
	}, specs...)

	campaigns, err := uow.CampaignRepository().FindAll(ctx, allSpecs...)
	if err != nil {
		return nil, nil, err
	}

	return calendar, campaigns, nil
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

// ExportCSV writes one row per campaign. encoding/csv handles quoting since
// objective and description are free text.
func (s *exportService) ExportCSV(ctx context.Context, userId, calendarId uuid.UUID, w io.Writer) (string, error) {
	calendar, campaigns, err := s.loadCalendarCampaigns(ctx, userId, calendarId)
	if err != nil {
		return "", err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"Número", "Nome", "Data Início", "Data Fim", "Objetivo", "Descrição", "Oferta"}); err != nil {
		return "", err
	}

	for i, campaign := range campaigns {
		record := []string{
			strconv.Itoa(i + 1),
			campaign.Name,
			campaign.StartDate.Format(suggest.DateLayout),
			campaign.EndDate.Format(suggest.DateLayout),
			deref(campaign.Objective),
			deref(campaign.Description),
			deref(campaign.Offer),
		}
		if err := writer.Write(record); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return fmt.Sprintf("calendario_%s.csv", calendar.Id), nil
}

// icsEscaper handles the TEXT value escapes of RFC 5545 §3.3.11.
var icsEscaper = strings.NewReplacer(
	"\\", "\\\\",
	";", "\\;",
	",", "\\,",
	"\r\n", "\\n",
	"\n", "\\n",
)

// icsLine writes one content line, folded at 75 octets onto space-prefixed
// continuation lines (RFC 5545 §3.1). Folds land on rune boundaries.
func icsLine(w io.Writer, line string) {
	for len(line) > 75 {
		cut := 75
		for cut > 0 && !utf8.RuneStart(line[cut]) {
			cut--
		}
		fmt.Fprintf(w, "%s\r\n", line[:cut])
		line = " " + line[cut:]
	}
	fmt.Fprintf(w, "%s\r\n", line)
}

// ExportICS emits one all-day VEVENT per campaign spanning its date range.
// UIDs are stable so re-imports update instead of duplicating.
func (s *exportService) ExportICS(ctx context.Context, userId, calendarId uuid.UUID, w io.Writer) (string, error) {
	calendar, campaigns, err := s.loadCalendarCampaigns(ctx, userId, calendarId)
	if err != nil {
		return "", err
	}

	icsLine(w, "BEGIN:VCALENDAR")
	icsLine(w, "VERSION:2.0")
	icsLine(w, "PRODID:-//marketing-calendar//campaigns//PT")
	icsLine(w, "X-WR-CALNAME:"+icsEscaper.Replace(calendar.Name))
	icsLine(w, "CALSCALE:GREGORIAN")

	for _, campaign := range campaigns {
		uid := fmt.Sprintf("%s@marketing-calendar", campaign.Id)

		icsLine(w, "BEGIN:VEVENT")
		icsLine(w, "UID:"+uid)
		icsLine(w, "DTSTAMP:"+time.Now().UTC().Format("20060102T150405Z"))
		icsLine(w, "DTSTART;VALUE=DATE:"+campaign.StartDate.Format("20060102"))
		icsLine(w, "DTEND;VALUE=DATE:"+campaign.EndDate.AddDate(0, 0, 1).Format("20060102"))
		icsLine(w, "SUMMARY:"+icsEscaper.Replace(campaign.Name))
		if campaign.Description != nil {
			icsLine(w, "DESCRIPTION:"+icsEscaper.Replace(*campaign.Description))
		}
		icsLine(w, "END:VEVENT")
	}

	icsLine(w, "END:VCALENDAR")

	return fmt.Sprintf("calendario_%s.ics", calendar.Id), nil
}

// ExportPDF renders a month grid with campaign names on their days, followed
// by a detail table for every campaign overlapping the month.
func (s *exportService) ExportPDF(ctx context.Context, userId, calendarId uuid.UUID, year int, month time.Month, w io.Writer) (string, error) {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	calendar, campaigns, err := s.loadCalendarCampaigns(ctx, userId, calendarId,
		specification.DateRangeOverlap{From: monthStart, To: monthEnd},
	)
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	translator := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, translator(fmt.Sprintf("%s - %s %d", calendar.Name, monthStart.Month(), year)), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// Week day headings
	const cellWidth = 39.0
	const cellHeight = 24.0
	weekDays := []string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}
	pdf.SetFont("Helvetica", "B", 10)
	for _, day := range weekDays {
		pdf.CellFormat(cellWidth, 7, translator(day), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	byDay := make(map[int][]string)
	for _, campaign := range campaigns {
		for d := campaign.StartDate; !d.After(campaign.EndDate); d = d.AddDate(0, 0, 1) {
			if d.Month() == month && d.Year() == year {
				byDay[d.Day()] = append(byDay[d.Day()], campaign.Name)
			}
		}
	}

	// Grid rows
	day := 1
	startOffset := int(monthStart.Weekday())
	daysInMonth := monthEnd.Day()
	for day <= daysInMonth {
		x := pdf.GetX()
		y := pdf.GetY()
		for col := 0; col < 7; col++ {
			cellX := x + float64(col)*cellWidth
			pdf.SetXY(cellX, y)
			pdf.CellFormat(cellWidth, cellHeight, "", "1", 0, "", false, 0, "")

			if (day == 1 && col < startOffset) || day > daysInMonth {
				continue
			}

			pdf.SetXY(cellX+1, y+1)
			pdf.SetFont("Helvetica", "B", 9)
			pdf.CellFormat(cellWidth-2, 4, strconv.Itoa(day), "", 0, "L", false, 0, "")

			pdf.SetFont("Helvetica", "", 7)
			for i, name := range byDay[day] {
				if i >= 4 {
					break
				}
				pdf.SetXY(cellX+1, y+5+float64(i)*4)
				pdf.CellFormat(cellWidth-2, 4, translator(truncate(name, 28)), "", 0, "L", false, 0, "")
			}
			day++
		}
		pdf.SetXY(x, y+cellHeight)
		startOffset = 0
	}

	// Detail table
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, translator("Campanhas"), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 9)
	headers := []string{"Nome", "Início", "Fim", "Objetivo", "Oferta"}
	widths := []float64{90, 30, 30, 70, 57}
	for i, header := range headers {
		pdf.CellFormat(widths[i], 7, translator(header), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, campaign := range campaigns {
		cols := []string{
			truncate(campaign.Name, 55),
			campaign.StartDate.Format("02/01/2006"),
			campaign.EndDate.Format("02/01/2006"),
			truncate(deref(campaign.Objective), 45),
			truncate(deref(campaign.Offer), 35),
		}
		for i, col := range cols {
			pdf.CellFormat(widths[i], 6, translator(col), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return "", err
	}

	return fmt.Sprintf("calendario_%s_%04d-%02d.pdf", calendar.Id, year, int(month)), nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
