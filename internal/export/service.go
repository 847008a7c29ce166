package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/scanworks/scanvault/gen/ent"
	"github.com/scanworks/scanvault/internal/repository"
)

// Service produces XLSX bytes summarizing processed documents, one row per
// document with its extraction outcome and parsed identity fields.
type Service struct {
	documents repository.DocumentRepository
	attempts  repository.AttemptRepository
	fields    repository.StructuredFieldsRepository
	faces     repository.FaceRepository
	failures  repository.FailureRepository
	logger    *slog.Logger
}

func NewService(
	documents repository.DocumentRepository,
	attempts repository.AttemptRepository,
	fields repository.StructuredFieldsRepository,
	faces repository.FaceRepository,
	failures repository.FailureRepository,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		documents: documents,
		attempts:  attempts,
		fields:    fields,
		faces:     faces,
		failures:  failures,
		logger:    logger,
	}
}

const listChunk = 500

// ExportDocumentsXLSX returns a workbook of all documents, optionally
// filtered by processing status ("" = every status).
func (s *Service) ExportDocumentsXLSX(ctx context.Context, status string) ([]byte, error) {
	start := time.Now()

	var docs []*ent.Document
	for offset := 0; ; offset += listChunk {
		chunk, total, err := s.documents.List(ctx, status, listChunk, offset)
		if err != nil {
			return nil, fmt.Errorf("list documents: %w", err)
		}
		docs = append(docs, chunk...)
		if len(docs) >= total || len(chunk) == 0 {
			break
		}
	}

	f := excelize.NewFile()
	const sheet = "Documents"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"ID",
		"Filename",
		"Kind",
		"Status",
		"Pages",
		"Uploaded At",
		"Language",
		"Confidence",
		"Document Number",
		"Surname",
		"Given Names",
		"Checksum Valid",
		"Faces",
		"Last Failure",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, d := range docs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, d.ID)
		write(2, d.Filename)
		write(3, d.FileKind)
		write(4, d.ProcessingStatus)
		write(5, d.PageCount)
		write(6, d.UploadedAt.UTC().Format(time.RFC3339))

		if attempt, err := s.attempts.Authoritative(ctx, d.ID); err == nil {
			write(7, attempt.Language)
			write(8, fmt.Sprintf("%.2f", attempt.Confidence))
		}

		if d.HasStructuredFields {
			if fields, err := s.fields.GetForDocument(ctx, d.ID); err == nil {
				write(9, fields.DocumentNumber)
				write(10, fields.Surname)
				write(11, fields.GivenNames)
				write(12, fields.ChecksumValid)
			}
		}

		if faces, err := s.faces.ListForDocument(ctx, d.ID); err == nil {
			write(13, len(faces))
		}

		write(14, s.lastFailure(ctx, d.ID))
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 8)
	_ = f.SetColWidth(sheet, "B", "B", 36)
	_ = f.SetColWidth(sheet, "C", "E", 12)
	_ = f.SetColWidth(sheet, "F", "F", 22)
	_ = f.SetColWidth(sheet, "G", "H", 12)
	_ = f.SetColWidth(sheet, "I", "K", 20)
	_ = f.SetColWidth(sheet, "L", "M", 14)
	_ = f.SetColWidth(sheet, "N", "N", 48)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"status_filter", status,
		"rows", len(docs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// lastFailure returns the newest failure message, truncated for a cell.
func (s *Service) lastFailure(ctx context.Context, documentID int) string {
	if s.failures == nil {
		return ""
	}
	rows, err := s.failures.ListForDocument(ctx, documentID)
	if err != nil || len(rows) == 0 {
		return ""
	}
	last := rows[len(rows)-1]
	return truncate(fmt.Sprintf("%s: %s", last.Category, last.Message), 140)
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
