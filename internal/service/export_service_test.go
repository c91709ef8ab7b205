package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"testing"
	"time"

	"marketing-calendar-be/internal/entity"

	"github.com/google/uuid"
)

func newExportFixture() (IExportService, uuid.UUID, uuid.UUID, []*entity.Campaign) {
	userId := uuid.New()
	calendarId := uuid.New()

	objective := "Aumentar vendas"
	offer := "20% off"
	campaigns := []*entity.Campaign{
		{
			Id:         uuid.New(),
			Name:       "Dia das Mães",
			StartDate:  dateOf("2026-05-04"),
			EndDate:    dateOf("2026-05-10"),
			Objective:  &objective,
			Offer:      &offer,
			UserId:     userId,
			CalendarId: calendarId,
		},
		{
			Id:         uuid.New(),
			Name:       "Black Friday",
			StartDate:  dateOf("2026-11-23"),
			EndDate:    dateOf("2026-11-27"),
			UserId:     userId,
			CalendarId: calendarId,
		},
	}

	store := &fakeStore{
		calendars: []*entity.Calendar{{Id: calendarId, Name: "Calendário 2026", UserId: userId}},
		campaigns: campaigns,
	}
	return NewExportService(&fakeFactory{store: store}), userId, calendarId, campaigns
}

func TestExportCSV(t *testing.T) {
	svc, userId, calendarId, _ := newExportFixture()

	var buf bytes.Buffer
	filename, err := svc.ExportCSV(context.Background(), userId, calendarId, &buf)
	if err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	if want := fmt.Sprintf("calendario_%s.csv", calendarId); filename != want {
		t.Errorf("filename = %q, want %q", filename, want)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d rows, want header + 2 campaigns", len(records))
	}
	if records[0][1] != "Nome" {
		t.Errorf("header = %v", records[0])
	}
	// Ordered by start date.
	if records[1][1] != "Dia das Mães" || records[2][1] != "Black Friday" {
		t.Errorf("rows out of order: %v / %v", records[1], records[2])
	}
	if records[1][4] != "Aumentar vendas" || records[1][6] != "20% off" {
		t.Errorf("optional fields not exported: %v", records[1])
	}
	if records[2][4] != "" {
		t.Errorf("nil objective must export empty, got %q", records[2][4])
	}
}

func TestExportICS(t *testing.T) {
	svc, userId, calendarId, campaigns := newExportFixture()

	var buf bytes.Buffer
	filename, err := svc.ExportICS(context.Background(), userId, calendarId, &buf)
	if err != nil {
		t.Fatalf("ExportICS: %v", err)
	}
	if want := fmt.Sprintf("calendario_%s.ics", calendarId); filename != want {
		t.Errorf("filename = %q, want %q", filename, want)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "BEGIN:VCALENDAR") || !strings.Contains(out, "END:VCALENDAR") {
		t.Fatal("output is not a VCALENDAR")
	}
	if got := strings.Count(out, "BEGIN:VEVENT"); got != 2 {
		t.Fatalf("got %d events, want 2", got)
	}
	for _, campaign := range campaigns {
		uid := fmt.Sprintf("UID:%s@marketing-calendar", campaign.Id)
		if !strings.Contains(out, uid) {
			t.Errorf("missing stable UID for %q", campaign.Name)
		}
	}
	// All-day events: DTEND is the day after the inclusive end date.
	if !strings.Contains(out, "DTSTART;VALUE=DATE:20260504") || !strings.Contains(out, "DTEND;VALUE=DATE:20260511") {
		t.Error("Dia das Mães date span wrong")
	}
}

func TestExportICSEscapesAndFoldsText(t *testing.T) {
	userId := uuid.New()
	calendarId := uuid.New()

	description := "Primeira linha\nSegunda linha; com ponto e vírgula, vírgula e texto comprido o bastante para forçar a dobra da linha de conteúdo em setenta e cinco octetos"
	store := &fakeStore{
		calendars: []*entity.Calendar{{Id: calendarId, Name: "Calendário; 2026", UserId: userId}},
		campaigns: []*entity.Campaign{{
			Id:          uuid.New(),
			Name:        "Promoção; inverno, especial",
			StartDate:   dateOf("2026-07-01"),
			EndDate:     dateOf("2026-07-07"),
			Description: &description,
			UserId:      userId,
			CalendarId:  calendarId,
		}},
	}
	svc := NewExportService(&fakeFactory{store: store})

	var buf bytes.Buffer
	if _, err := svc.ExportICS(context.Background(), userId, calendarId, &buf); err != nil {
		t.Fatalf("ExportICS: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, `SUMMARY:Promoção\; inverno\, especial`) {
		t.Errorf("summary not escaped:\n%s", out)
	}
	if !strings.Contains(out, `X-WR-CALNAME:Calendário\; 2026`) {
		t.Errorf("calendar name not escaped:\n%s", out)
	}
	if !strings.Contains(out, `DESCRIPTION:Primeira linha\nSegunda linha\;`) {
		t.Errorf("newline and semicolon in description not escaped:\n%s", out)
	}

	// Content lines are folded at 75 octets with a space continuation.
	for _, line := range strings.Split(out, "\r\n") {
		if len(line) > 75 {
			t.Errorf("line longer than 75 octets: %q", line)
		}
	}
	if !strings.Contains(out, "\r\n ") {
		t.Error("long description did not produce a folded continuation line")
	}
}

func TestExportPDF(t *testing.T) {
	svc, userId, calendarId, _ := newExportFixture()

	var buf bytes.Buffer
	filename, err := svc.ExportPDF(context.Background(), userId, calendarId, 2026, time.May, &buf)
	if err != nil {
		t.Fatalf("ExportPDF: %v", err)
	}
	if want := fmt.Sprintf("calendario_%s_2026-05.pdf", calendarId); filename != want {
		t.Errorf("filename = %q, want %q", filename, want)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatal("output is not a PDF")
	}
}

func TestExportRejectsForeignCalendar(t *testing.T) {
	svc, _, calendarId, _ := newExportFixture()

	var buf bytes.Buffer
	if _, err := svc.ExportCSV(context.Background(), uuid.New(), calendarId, &buf); err == nil {
		t.Fatal("expected error for a calendar owned by another user")
	}
}
