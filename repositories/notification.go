package repositories

import (
	"github.com/taskdesk/database"
	"github.com/taskdesk/models"
	"gorm.io/gorm"
)

// NotificationRepository handles database operations for notifications
type NotificationRepository struct{}

// NewNotificationRepository creates a new notification repository instance
func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

// Create inserts a notification row
func (r *NotificationRepository) Create(n *models.Notification) error {
	return database.DB.Create(n).Error
}

// FindByUserID retrieves a user's notifications, newest first
func (r *NotificationRepository) FindByUserID(userID string, unreadOnly bool) ([]models.Notification, error) {
	var notifications []models.Notification
	db := database.DB.Where("user_id = ?", userID)
	if unreadOnly {
		db = db.Where("read = ?", false)
	}
	result := db.Order("created_at desc").Find(&notifications)
	return notifications, result.Error
}

// MarkRead flags a single notification as read. The user ID guards against
// marking someone else's notification.
func (r *NotificationRepository) MarkRead(id, userID string) (int64, error) {
	result := database.DB.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)
	return result.RowsAffected, result.Error
}

// MarkAllRead flags every unread notification of a user as read
func (r *NotificationRepository) MarkAllRead(userID string) (int64, error) {
	result := database.DB.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true)
	return result.RowsAffected, result.Error
}

// DB returns the database instance
func (r *NotificationRepository) DB() *gorm.DB {
	return database.DB
}
