package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/maheshrc27/contentflow/internal/models"
	"github.com/maheshrc27/contentflow/internal/repository"
	"github.com/maheshrc27/contentflow/internal/transfer"
	"github.com/maheshrc27/contentflow/pkg/apperror"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Calendar"

var exportHeaders = []string{
	"Date", "Time", "Status", "Approval", "Caption", "Accounts", "Tags", "Image URL", "Client Feedback",
}

type ExportService interface {
	ExportCalendar(ctx context.Context, userID string, filter transfer.ScheduledFilter) ([]byte, string, error)
}

type exportService struct {
	calendar CalendarService
	a        repository.AccountRepository
	pt       repository.PostTagRepository
}

func NewExportService(calendar CalendarService, a repository.AccountRepository, pt repository.PostTagRepository) ExportService {
	return &exportService{
		calendar: calendar,
		a:        a,
		pt:       pt,
	}
}

// ExportCalendar renders the filtered calendar as an XLSX workbook.
func (s *exportService) ExportCalendar(ctx context.Context, userID string, filter transfer.ScheduledFilter) ([]byte, string, error) {
	posts, err := s.calendar.List(ctx, userID, filter)
	if err != nil {
		return nil, "", err
	}

	accounts, err := s.a.ListByClientID(ctx, filter.ClientID)
	if err != nil {
		return nil, "", apperror.Wrap(err, "Failed to fetch accounts")
	}
	accountNames := make(map[string]string, len(accounts))
	for _, acc := range accounts {
		accountNames[acc.ID] = fmt.Sprintf("%s:@%s", acc.Platform, acc.Username)
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			slog.Info(err.Error())
		}
	}()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, "", apperror.Wrap(err, "Failed to create sheet")
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		slog.Info(err.Error())
	}

	if err := f.SetSheetRow(exportSheet, "A1", &exportHeaders); err != nil {
		return nil, "", apperror.Wrap(err, "Failed to write header")
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		f.SetCellStyle(exportSheet, "A1", fmt.Sprintf("%c1", 'A'+len(exportHeaders)-1), headerStyle)
	}

	for i, p := range posts {
		tags, err := s.pt.ListTags(ctx, p.ID)
		if err != nil {
			return nil, "", apperror.Wrap(err, "Failed to fetch tags")
		}
		row := []interface{}{
			p.ScheduledDate,
			p.ScheduledTime,
			p.Status,
			p.ApprovalStatus,
			p.Caption,
			joinAccounts(p.AccountIDs, accountNames),
			joinTags(tags),
			p.ImageURL,
			p.ClientFeedback,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, "", apperror.Wrap(err, "Failed to write row")
		}
	}

	f.SetColWidth(exportSheet, "E", "E", 60)
	f.SetColWidth(exportSheet, "F", "H", 30)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", apperror.Wrap(err, "Failed to render workbook")
	}

	name := "calendar.xlsx"
	if filter.From != "" || filter.To != "" {
		name = fmt.Sprintf("calendar_%s_%s.xlsx", filter.From, filter.To)
	}
	return buf.Bytes(), name, nil
}

func joinAccounts(ids []string, names map[string]string) string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if n, ok := names[id]; ok {
			out = append(out, n)
		} else {
			out = append(out, id)
		}
	}
	return strings.Join(out, ", ")
}

func joinTags(tags []*models.Tag) string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, t.Name)
	}
	return strings.Join(out, ", ")
}
