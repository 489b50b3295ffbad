package services

import (
	"testing"
	"time"

	"github.com/studytrack/studytrack/internal/models"
)

func TestActivityLog_WriteAndList(t *testing.T) {
	db := newTestDB(t)
	InitActivityLogger(db)
	t.Cleanup(func() { activityDB = nil })

	studentID := uint(1)
	LogInfo("auth", "login", "student logged in", &studentID, "127.0.0.1", "test-agent", nil)
	LogWarning("tasks", "toggle", "blocked toggle", nil, "", "", map[string]uint{"taskId": 3})
	LogError("reminder", "deliver", "delivery failed", nil, "", "", nil)

	svc := NewActivityLogService(db)
	resp, err := svc.List(&ActivityLogListRequest{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if resp.Total != 3 {
		t.Errorf("Total = %d, expected 3", resp.Total)
	}

	filtered, err := svc.List(&ActivityLogListRequest{Level: "warning"})
	if err != nil {
		t.Fatalf("filtered List failed: %v", err)
	}
	if filtered.Total != 1 {
		t.Fatalf("Total = %d, expected 1 warning", filtered.Total)
	}
	if filtered.Items[0].Module != "tasks" {
		t.Errorf("Module = %q, expected tasks", filtered.Items[0].Module)
	}
	if filtered.Items[0].Extra == "" {
		t.Error("expected extra payload to be recorded")
	}
}

func TestActivityLog_ListPagination(t *testing.T) {
	db := newTestDB(t)
	svc := NewActivityLogService(db)

	for i := 0; i < 25; i++ {
		mustCreate(t, db, &models.ActivityLog{Level: "info", Module: "auth", Action: "login", CreatedAt: time.Now()})
	}

	page, err := svc.List(&ActivityLogListRequest{Page: 2, PageSize: 10})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if page.Total != 25 {
		t.Errorf("Total = %d, expected 25", page.Total)
	}
	if len(page.Items) != 10 {
		t.Errorf("page size = %d, expected 10", len(page.Items))
	}
}

func TestActivityLog_Cleanup(t *testing.T) {
	db := newTestDB(t)
	svc := NewActivityLogService(db)

	old := models.ActivityLog{Level: "info", Module: "auth", Action: "login", CreatedAt: time.Now().AddDate(0, 0, -60)}
	recent := models.ActivityLog{Level: "info", Module: "auth", Action: "login", CreatedAt: time.Now()}
	mustCreate(t, db, &old)
	mustCreate(t, db, &recent)

	removed, err := svc.Cleanup(30)
	if err != nil {
		t.Fatalf("Cleanup failed: %v", err)
	}
	if removed != 1 {
		t.Errorf("removed %d rows, expected 1", removed)
	}

	var count int64
	db.Model(&models.ActivityLog{}).Count(&count)
	if count != 1 {
		t.Errorf("remaining rows = %d, expected 1", count)
	}
}

func TestLogInfo_NoWriterIsNoop(t *testing.T) {
	activityDB = nil
	LogInfo("auth", "login", "should not panic", nil, "", "", nil)
}
