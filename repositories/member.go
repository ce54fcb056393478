package repositories

import (
	"errors"

	"github.com/taskdesk/database"
	"github.com/taskdesk/models"
	"gorm.io/gorm"
)

// MemberRepository handles database operations for project memberships
type MemberRepository struct{}

// NewMemberRepository creates a new member repository instance
func NewMemberRepository() *MemberRepository {
	return &MemberRepository{}
}

// FindByProjectID retrieves all memberships of a project with user rows
func (r *MemberRepository) FindByProjectID(projectID string) ([]models.ProjectMember, error) {
	var members []models.ProjectMember
	result := database.DB.Preload("User").
		Where("project_id = ?", projectID).Order("added_at asc").Find(&members)
	return members, result.Error
}

// RoleInProject returns the project-scoped role of a user, or empty when the
// user is not a member.
func (r *MemberRepository) RoleInProject(projectID, userID string) (models.ProjectRole, error) {
	var member models.ProjectMember
	err := database.DB.Where("project_id = ? AND user_id = ?", projectID, userID).
		First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return member.Role, nil
}

// IsMember checks whether a user has a membership row in a project
func (r *MemberRepository) IsMember(projectID, userID string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.ProjectMember{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).Count(&count).Error
	return count > 0, err
}

// DB returns the database instance
func (r *MemberRepository) DB() *gorm.DB {
	return database.DB
}
