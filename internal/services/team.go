package services

import (
	"errors"

	"github.com/studytrack/studytrack/internal/models"
	"github.com/studytrack/studytrack/internal/utils"
	"github.com/studytrack/studytrack/pkg/response"
	"gorm.io/gorm"
)

type TeamService struct {
	db *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{db: db}
}

type CreateTeamRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
}

type UpdateTeamRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
}

type JoinByCodeRequest struct {
	InviteCode string `json:"inviteCode" binding:"required"`
	StudentID  uint   `json:"studentId" binding:"required"`
}

// TeamDetail is a team together with its member list. Members are fetched in
// a separate query so the payload has no circular references.
type TeamDetail struct {
	models.Team
	Members []models.Student `json:"members"`
}

func (s *TeamService) List() ([]models.Team, error) {
	var teams []models.Team
	if err := s.db.Order("created_at").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

func (s *TeamService) GetByID(id uint) (*TeamDetail, error) {
	var team models.Team
	if err := s.db.First(&team, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("team not found")
		}
		return nil, err
	}

	var members []models.Student
	if err := s.db.Where("team_id = ?", team.ID).Find(&members).Error; err != nil {
		return nil, err
	}

	return &TeamDetail{Team: team, Members: members}, nil
}

// GetByInviteCode resolves a team from its invite code, for the join-by-code
// preview.
func (s *TeamService) GetByInviteCode(code string) (*models.Team, error) {
	var team models.Team
	if err := s.db.Where("invite_code = ?", code).First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("no team with this invite code")
		}
		return nil, err
	}
	return &team, nil
}

// Create stores a new team with a freshly generated invite code. Codes are
// random enough that collisions are practically impossible, but the unique
// index is authoritative, so generation retries a few times anyway.
func (s *TeamService) Create(req *CreateTeamRequest) (*models.Team, error) {
	team := models.Team{
		Name:        req.Name,
		Description: req.Description,
	}

	const maxAttempts = 5
	var lastErr error
	for i := 0; i < maxAttempts; i++ {
		team.InviteCode = utils.GenerateInviteCode()

		var count int64
		if err := s.db.Model(&models.Team{}).Where("invite_code = ?", team.InviteCode).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			continue
		}

		if lastErr = s.db.Create(&team).Error; lastErr == nil {
			return &team, nil
		}
	}
	if lastErr == nil {
		lastErr = errors.New("could not generate a unique invite code")
	}
	return nil, lastErr
}

// Update changes name and description only; the invite code is immutable.
func (s *TeamService) Update(id uint, req *UpdateTeamRequest) error {
	var team models.Team
	if err := s.db.First(&team, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFound("team not found")
		}
		return err
	}

	team.Name = req.Name
	team.Description = req.Description
	return s.db.Save(&team).Error
}

// Delete removes a team after detaching its members, so the student rows
// survive with a cleared teamId.
func (s *TeamService) Delete(id uint) error {
	var team models.Team
	if err := s.db.First(&team, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFound("team not found")
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Student{}).Where("team_id = ?", id).Update("team_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&team).Error
	})
}

// Join adds a student to a team. Joining the team the student is already in
// is a no-op; joining while in a different team is rejected.
func (s *TeamService) Join(teamID, studentID uint) error {
	var team models.Team
	if err := s.db.First(&team, teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFound("team not found")
		}
		return err
	}

	var student models.Student
	if err := s.db.First(&student, studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFound("student not found")
		}
		return err
	}

	if student.TeamID != nil {
		if *student.TeamID == teamID {
			return nil
		}
		return response.NewBadRequest("student already belongs to another team")
	}

	return s.db.Model(&student).Update("team_id", teamID).Error
}

// JoinByInviteCode resolves the team by code and then applies Join semantics.
func (s *TeamService) JoinByInviteCode(code string, studentID uint) (*models.Team, error) {
	team, err := s.GetByInviteCode(code)
	if err != nil {
		return nil, err
	}
	if err := s.Join(team.ID, studentID); err != nil {
		return nil, err
	}
	return team, nil
}

// ListTasks returns the tasks explicitly tagged with the team.
func (s *TeamService) ListTasks(teamID uint) ([]models.Task, error) {
	if err := s.ensureExists(teamID); err != nil {
		return nil, err
	}

	var tasks []models.Task
	err := s.db.Where("team_id = ?", teamID).
		Preload("Subject").
		Preload("AssignedStudent").
		Find(&tasks).Error
	return tasks, err
}

// ListAllTasks returns the union of tasks tagged with the team and tasks
// assigned to any of its members.
func (s *TeamService) ListAllTasks(teamID uint) ([]models.Task, error) {
	if err := s.ensureExists(teamID); err != nil {
		return nil, err
	}

	var memberIDs []uint
	if err := s.db.Model(&models.Student{}).Where("team_id = ?", teamID).Pluck("id", &memberIDs).Error; err != nil {
		return nil, err
	}

	query := s.db.Where("team_id = ?", teamID)
	if len(memberIDs) > 0 {
		query = query.Or("assigned_student_id IN ?", memberIDs)
	}

	var tasks []models.Task
	err := query.
		Preload("Subject").
		Preload("AssignedStudent").
		Find(&tasks).Error
	return tasks, err
}

func (s *TeamService) ensureExists(teamID uint) error {
	var count int64
	if err := s.db.Model(&models.Team{}).Where("id = ?", teamID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return response.NewNotFound("team not found")
	}
	return nil
}
