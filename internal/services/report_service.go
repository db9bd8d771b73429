package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/skillshare-lk/user-service/internal/repositories"
)

const usersSheet = "Users"

// exportPageSize bounds each repository page while walking the full listing.
const exportPageSize = 100

type reportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewReportService(repo repositories.Repository, logger *slog.Logger) ReportService {
	return &reportService{
		repo:   repo,
		logger: logger,
	}
}

// ExportUsers renders the user listing as an xlsx workbook, one row per user,
// walking the listing page by page so the export is not capped by the list
// page-size limit.
func (s *reportService) ExportUsers(ctx context.Context, filters repositories.UserFilters) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", usersSheet); err != nil {
		return nil, fmt.Errorf("failed to prepare workbook: %w", err)
	}

	headers := []string{"ID", "Email", "First Name", "Last Name", "Role", "Status", "Created At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(usersSheet, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	filters.Limit = exportPageSize
	filters.Offset = 0
	row := 2
	for {
		users, total, err := s.repo.User().List(ctx, filters)
		if err != nil {
			return nil, err
		}

		for _, u := range users {
			values := []interface{}{
				u.ID,
				u.Email,
				u.FirstName,
				u.LastName,
				string(u.Role),
				string(u.Status),
				u.CreatedAt.Format(time.RFC3339),
			}
			for i, v := range values {
				cell, _ := excelize.CoordinatesToCellName(i+1, row)
				if err := f.SetCellValue(usersSheet, cell, v); err != nil {
					return nil, fmt.Errorf("failed to write row: %w", err)
				}
			}
			row++
		}

		filters.Offset += len(users)
		if len(users) == 0 || int64(filters.Offset) >= total {
			break
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	s.logger.Info("Users exported", "rows", row-2)
	return buf.Bytes(), nil
}
