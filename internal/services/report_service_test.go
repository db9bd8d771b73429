package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/skillshare-lk/user-service/internal/models"
	"github.com/skillshare-lk/user-service/internal/repositories"
)

func TestExportUsers(t *testing.T) {
	repo := newFakeRepo()
	seedUser(repo, "u1", "u1@b.com", models.RoleLearner)
	seedUser(repo, "u2", "u2@b.com", models.RoleInstructor)
	svc := NewReportService(repo, testLogger())

	data, err := svc.ExportUsers(context.Background(), repositories.UserFilters{})
	if err != nil {
		t.Fatalf("ExportUsers() error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("exported bytes are not a valid workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Users")
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("row count = %d, want header + 2 users", len(rows))
	}
	if rows[0][0] != "ID" || rows[0][1] != "Email" {
		t.Errorf("unexpected header row: %v", rows[0])
	}

	emails := map[string]bool{}
	for _, row := range rows[1:] {
		emails[row[1]] = true
	}
	if !emails["u1@b.com"] || !emails["u2@b.com"] {
		t.Errorf("exported emails missing: %v", emails)
	}
}

func TestExportUsersRoleFilter(t *testing.T) {
	repo := newFakeRepo()
	seedUser(repo, "u1", "u1@b.com", models.RoleLearner)
	seedUser(repo, "u2", "u2@b.com", models.RoleInstructor)
	svc := NewReportService(repo, testLogger())

	role := models.RoleInstructor
	data, err := svc.ExportUsers(context.Background(), repositories.UserFilters{Role: &role})
	if err != nil {
		t.Fatalf("ExportUsers() error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Users")
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("row count = %d, want header + 1 instructor", len(rows))
	}
	if rows[1][1] != "u2@b.com" {
		t.Errorf("unexpected exported row: %v", rows[1])
	}
}
