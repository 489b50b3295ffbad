package services

import (
	"errors"
	"testing"

	"github.com/studytrack/studytrack/internal/models"
	"github.com/studytrack/studytrack/pkg/response"
	"gorm.io/gorm"
)

func TestTeamService_Create_GeneratesInviteCode(t *testing.T) {
	svc := NewTeamService(newTestDB(t))

	team, err := svc.Create(&CreateTeamRequest{Name: "Backend", Description: "server work"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if len(team.InviteCode) != 8 {
		t.Errorf("InviteCode = %q, expected 8 characters", team.InviteCode)
	}

	other, err := svc.Create(&CreateTeamRequest{Name: "Frontend"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if other.InviteCode == team.InviteCode {
		t.Error("two teams got the same invite code")
	}
}

func TestTeamService_Join_Idempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewTeamService(db)

	team := models.Team{Name: "Backend", InviteCode: "AB12CD34"}
	mustCreate(t, db, &team)
	student := models.Student{Name: "Alice", Email: "alice@example.com", PasswordHash: "x", Role: models.RoleDeveloper}
	mustCreate(t, db, &student)

	if err := svc.Join(team.ID, student.ID); err != nil {
		t.Fatalf("first Join failed: %v", err)
	}
	if err := svc.Join(team.ID, student.ID); err != nil {
		t.Fatalf("joining the same team again should be a no-op, got %v", err)
	}

	var reloaded models.Student
	if err := db.First(&reloaded, student.ID).Error; err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.TeamID == nil || *reloaded.TeamID != team.ID {
		t.Errorf("TeamID = %v, expected %d", reloaded.TeamID, team.ID)
	}
}

func TestTeamService_Join_RejectsOtherTeam(t *testing.T) {
	db := newTestDB(t)
	svc := NewTeamService(db)

	first := models.Team{Name: "Backend", InviteCode: "AB12CD34"}
	second := models.Team{Name: "Frontend", InviteCode: "EF56GH78"}
	mustCreate(t, db, &first)
	mustCreate(t, db, &second)
	student := models.Student{Name: "Alice", Email: "alice@example.com", PasswordHash: "x", Role: models.RoleDeveloper, TeamID: &first.ID}
	mustCreate(t, db, &student)

	err := svc.Join(second.ID, student.ID)
	var appErr *response.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.HTTPStatus != 400 {
		t.Errorf("HTTPStatus = %d, expected 400", appErr.HTTPStatus)
	}

	var reloaded models.Student
	db.First(&reloaded, student.ID)
	if reloaded.TeamID == nil || *reloaded.TeamID != first.ID {
		t.Errorf("student moved teams; TeamID = %v, expected %d", reloaded.TeamID, first.ID)
	}
}

func TestTeamService_JoinByInviteCode(t *testing.T) {
	db := newTestDB(t)
	svc := NewTeamService(db)

	team := models.Team{Name: "Backend", InviteCode: "AB12CD34"}
	mustCreate(t, db, &team)
	student := models.Student{Name: "Alice", Email: "alice@example.com", PasswordHash: "x", Role: models.RoleDeveloper}
	mustCreate(t, db, &student)

	joined, err := svc.JoinByInviteCode("AB12CD34", student.ID)
	if err != nil {
		t.Fatalf("JoinByInviteCode failed: %v", err)
	}
	if joined.ID != team.ID {
		t.Errorf("joined team %d, expected %d", joined.ID, team.ID)
	}
}

func TestTeamService_JoinByInviteCode_UnknownCode(t *testing.T) {
	db := newTestDB(t)
	svc := NewTeamService(db)

	student := models.Student{Name: "Alice", Email: "alice@example.com", PasswordHash: "x", Role: models.RoleDeveloper}
	mustCreate(t, db, &student)

	_, err := svc.JoinByInviteCode("NOPE0000", student.ID)
	var appErr *response.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.HTTPStatus != 404 {
		t.Errorf("HTTPStatus = %d, expected 404", appErr.HTTPStatus)
	}
}

func TestTeamService_Delete_DetachesMembers(t *testing.T) {
	db := newTestDB(t)
	svc := NewTeamService(db)

	team := models.Team{Name: "Backend", InviteCode: "AB12CD34"}
	mustCreate(t, db, &team)
	alice := models.Student{Name: "Alice", Email: "alice@example.com", PasswordHash: "x", Role: models.RoleDeveloper, TeamID: &team.ID}
	bob := models.Student{Name: "Bob", Email: "bob@example.com", PasswordHash: "x", Role: models.RoleTester, TeamID: &team.ID}
	mustCreate(t, db, &alice)
	mustCreate(t, db, &bob)

	if err := svc.Delete(team.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	var count int64
	db.Model(&models.Team{}).Where("id = ?", team.ID).Count(&count)
	if count != 0 {
		t.Error("team still exists after delete")
	}

	var students []models.Student
	if err := db.Find(&students).Error; err != nil {
		t.Fatalf("listing students failed: %v", err)
	}
	if len(students) != 2 {
		t.Fatalf("expected members to survive team deletion, got %d students", len(students))
	}
	for _, s := range students {
		if s.TeamID != nil {
			t.Errorf("student %s still has TeamID %d", s.Name, *s.TeamID)
		}
	}
}

func TestTeamService_GetByID_IncludesMembers(t *testing.T) {
	db := newTestDB(t)
	svc := NewTeamService(db)

	team := models.Team{Name: "Backend", InviteCode: "AB12CD34"}
	mustCreate(t, db, &team)
	alice := models.Student{Name: "Alice", Email: "alice@example.com", PasswordHash: "x", Role: models.RoleDeveloper, TeamID: &team.ID}
	mustCreate(t, db, &alice)
	outsider := models.Student{Name: "Carol", Email: "carol@example.com", PasswordHash: "x", Role: models.RoleDesigner}
	mustCreate(t, db, &outsider)

	detail, err := svc.GetByID(team.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if len(detail.Members) != 1 {
		t.Fatalf("expected 1 member, got %d", len(detail.Members))
	}
	if detail.Members[0].Name != "Alice" {
		t.Errorf("member = %q, expected Alice", detail.Members[0].Name)
	}
}

func TestTeamService_Update_KeepsInviteCode(t *testing.T) {
	db := newTestDB(t)
	svc := NewTeamService(db)

	team := models.Team{Name: "Backend", InviteCode: "AB12CD34"}
	mustCreate(t, db, &team)

	if err := svc.Update(team.ID, &UpdateTeamRequest{Name: "Platform", Description: "renamed"}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	var reloaded models.Team
	db.First(&reloaded, team.ID)
	if reloaded.Name != "Platform" {
		t.Errorf("Name = %q, expected Platform", reloaded.Name)
	}
	if reloaded.InviteCode != "AB12CD34" {
		t.Errorf("InviteCode changed to %q", reloaded.InviteCode)
	}
}

func TestTeamService_ListAllTasks_UnionOfTeamAndMemberTasks(t *testing.T) {
	db := newTestDB(t)
	svc := NewTeamService(db)

	team := models.Team{Name: "Backend", InviteCode: "AB12CD34"}
	mustCreate(t, db, &team)
	alice := models.Student{Name: "Alice", Email: "alice@example.com", PasswordHash: "x", Role: models.RoleDeveloper, TeamID: &team.ID}
	mustCreate(t, db, &alice)

	teamTask := models.Task{Title: "team task", TeamID: &team.ID}
	memberTask := models.Task{Title: "member task", AssignedStudentID: &alice.ID}
	unrelated := models.Task{Title: "unrelated"}
	mustCreate(t, db, &teamTask)
	mustCreate(t, db, &memberTask)
	mustCreate(t, db, &unrelated)

	tasks, err := svc.ListAllTasks(team.ID)
	if err != nil {
		t.Fatalf("ListAllTasks failed: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}

	direct, err := svc.ListTasks(team.ID)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(direct) != 1 || direct[0].Title != "team task" {
		t.Errorf("ListTasks should return only team-tagged tasks, got %d", len(direct))
	}
}

func TestTeamService_GetByID_NotFound(t *testing.T) {
	svc := NewTeamService(newTestDB(t))

	_, err := svc.GetByID(999)
	var appErr *response.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.HTTPStatus != 404 {
		t.Errorf("HTTPStatus = %d, expected 404", appErr.HTTPStatus)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		t.Error("gorm error should not leak out of the service")
	}
}
