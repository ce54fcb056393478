package services

import (
	"fmt"

	"github.com/taskdesk/config"
	"github.com/taskdesk/dto"
	"github.com/taskdesk/logging"
	"github.com/taskdesk/models"
	"github.com/taskdesk/permissions"
	"github.com/taskdesk/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService handles administrative user management
type UserService struct {
	userRepo     *repositories.UserRepository
	emailService *EmailService
}

// NewUserService creates a new user service instance
func NewUserService() *UserService {
	return &UserService{
		userRepo:     repositories.NewUserRepository(),
		emailService: NewEmailService(),
	}
}

// ListUsers returns all users. Admin only.
func (s *UserService) ListUsers(actor models.Actor) ([]models.User, error) {
	if !permissions.CanManageUsers(actor) {
		return nil, forbidden("only admins can list users")
	}
	return s.userRepo.FindAll()
}

// CreateUser creates an account on behalf of a user. Admin only. The welcome
// email carries the initial password and is best-effort.
func (s *UserService) CreateUser(actor models.Actor, req dto.CreateUserRequest) (models.User, error) {
	if !permissions.CanManageUsers(actor) {
		return models.User{}, forbidden("only admins can create users")
	}

	taken, err := s.userRepo.EmailTaken(req.Email)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, invalid("email already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Role:         models.Role(req.Role),
		Department:   req.Department,
	}

	err = s.userRepo.DB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&models.AuditLog{
			Action:     models.AuditUserCreated,
			EntityType: "user",
			EntityID:   user.ID,
			UserID:     actor.ID,
			Details: models.JSONMap{
				"name":  user.Name,
				"email": user.Email,
				"role":  string(user.Role),
			},
		}).Error
	})
	if err != nil {
		return models.User{}, err
	}

	body := fmt.Sprintf(`
		<h2>Добро пожаловать в Задачник!</h2>
		<p>Здравствуйте, %s!</p>
		<p>Для вас был создан аккаунт в системе управления задачами.</p>
		<div style="background: #f5f5f5; padding: 15px; border-radius: 5px; margin: 15px 0;">
			<p><strong>Email:</strong> %s</p>
			<p><strong>Пароль:</strong> %s</p>
			<p><strong>Роль:</strong> %s</p>
		</div>
		<p><strong>Важно:</strong> Рекомендуем сменить пароль после первого входа в систему.</p>
		<p>Войдите в систему по адресу: %s</p>`,
		user.Name, user.Email, req.Password, user.Role, config.GetEnv("APP_URL", ""))
	if err := s.emailService.Send(user.Email, "Добро пожаловать в Задачник!", body); err != nil {
		logging.Logger.Warnf("Failed to send welcome email to %s: %v", user.Email, err)
	}

	return user, nil
}

// UpdateUserRole changes a user's global role. The self-check runs before the
// permission check: nobody may change their own role, admins included.
func (s *UserService) UpdateUserRole(actor models.Actor, targetID, newRole string) error {
	if targetID == actor.ID {
		return forbidden("cannot change your own role")
	}
	if !permissions.CanManageUsers(actor) {
		return forbidden("only admins can change user roles")
	}
	if !models.ValidRole(newRole) {
		return invalid("unknown role %q", newRole)
	}

	target, err := s.userRepo.FindByID(targetID)
	if err != nil {
		return notFound("user %s", targetID)
	}

	oldRole := target.Role
	return s.userRepo.DB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).Where("id = ?", targetID).
			Update("role", newRole).Error; err != nil {
			return err
		}
		return tx.Create(&models.AuditLog{
			Action:     models.AuditUserRoleChanged,
			EntityType: "user",
			EntityID:   targetID,
			UserID:     actor.ID,
			Details: models.JSONMap{
				"oldRole": string(oldRole),
				"newRole": newRole,
			},
		}).Error
	})
}

// DeactivateUser records the deactivation of an account. Accounts are never
// deleted; the audit trail is the authoritative record. Self-deactivation is
// rejected before the permission check.
func (s *UserService) DeactivateUser(actor models.Actor, targetID string) error {
	if targetID == actor.ID {
		return forbidden("cannot deactivate your own account")
	}
	if !permissions.CanManageUsers(actor) {
		return forbidden("only admins can deactivate users")
	}

	if _, err := s.userRepo.FindByID(targetID); err != nil {
		return notFound("user %s", targetID)
	}

	return s.userRepo.DB().Transaction(func(tx *gorm.DB) error {
		return tx.Create(&models.AuditLog{
			Action:     models.AuditUserDeactivated,
			EntityType: "user",
			EntityID:   targetID,
			UserID:     actor.ID,
			Details:    models.JSONMap{},
		}).Error
	})
}
