package application

import (
	"context"
	"fmt"
	"time"

	"github.com/linskybing/logistics-go/internal/domain/submission"
	"github.com/linskybing/logistics-go/internal/domain/user"
	"github.com/linskybing/logistics-go/internal/repository"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Submissions"

var exportHeaders = []string{
	"Docket", "Customer", "Requirement", "Type", "Department", "Status",
	"Submitted By", "Submitted At", "Reviewer", "Reviewed At", "Comments",
}

type ExportService struct {
	Repos *repository.Repos
}

func NewExportService(repos *repository.Repos) *ExportService {
	return &ExportService{
		Repos: repos,
	}
}

// SubmissionsWorkbook renders the filtered review queue as an XLSX file.
func (s *ExportService) SubmissionsWorkbook(ctx context.Context, actor user.Identity, filter submission.ReviewFilter) ([]byte, error) {
	if err := requireRole(actor, userManagers...); err != nil {
		return nil, err
	}
	views, err := s.Repos.Submission.ListViews(ctx, filter)
	if err != nil {
		return nil, infra("list submissions", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#4472C4"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	header := make([]any, len(exportHeaders))
	for i, h := range exportHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	if err := f.SetCellStyle(exportSheet, "A1", last, headerStyle); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(exportHeaders))
	if err := f.SetColWidth(exportSheet, "A", lastCol, 20); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}

	for i, v := range views {
		row := []any{
			v.DocketNumber,
			v.CustomerName,
			v.AttachmentTitle,
			v.AttachmentType,
			v.AssignedTo,
			string(v.Status),
			v.SubmittedByName,
			v.CreatedAt.Format("2006-01-02 15:04"),
			deref(v.ReviewerName),
			formatTime(v.ReviewedAt),
			deref(v.ReviewerComments),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}
