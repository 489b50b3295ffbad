package services

import (
	"errors"
	"testing"

	"github.com/studytrack/studytrack/internal/models"
	"github.com/studytrack/studytrack/pkg/response"
)

func TestSubjectService_CRUD(t *testing.T) {
	svc := NewSubjectService(newTestDB(t))

	subject, err := svc.Create(&SubjectRequest{Name: "Databases", Description: "SQL and friends"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.Update(subject.ID, &SubjectRequest{Name: "Databases II"}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	loaded, err := svc.GetByID(subject.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if loaded.Name != "Databases II" {
		t.Errorf("Name = %q, expected Databases II", loaded.Name)
	}

	all, err := svc.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected 1 subject, got %d", len(all))
	}
}

func TestSubjectService_Delete_DetachesTasks(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubjectService(db)

	subject, err := svc.Create(&SubjectRequest{Name: "Databases"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	task := models.Task{Title: "schema homework", SubjectID: &subject.ID}
	mustCreate(t, db, &task)

	if err := svc.Delete(subject.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	var reloaded models.Task
	if err := db.First(&reloaded, task.ID).Error; err != nil {
		t.Fatalf("task should survive subject deletion: %v", err)
	}
	if reloaded.SubjectID != nil {
		t.Errorf("SubjectID = %v, expected nil after subject deletion", reloaded.SubjectID)
	}
}

func TestSubjectService_GetByID_NotFound(t *testing.T) {
	svc := NewSubjectService(newTestDB(t))

	_, err := svc.GetByID(42)
	var appErr *response.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.HTTPStatus != 404 {
		t.Errorf("HTTPStatus = %d, expected 404", appErr.HTTPStatus)
	}
}
