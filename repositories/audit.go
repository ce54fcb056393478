package repositories

import (
	"github.com/taskdesk/database"
	"github.com/taskdesk/models"
	"gorm.io/gorm"
)

// AuditRepository handles database operations for the audit log
type AuditRepository struct{}

// NewAuditRepository creates a new audit repository instance
func NewAuditRepository() *AuditRepository {
	return &AuditRepository{}
}

// CreateTx appends an audit row inside the caller's transaction so the
// primary write and its audit entry commit or roll back together.
func (r *AuditRepository) CreateTx(tx *gorm.DB, entry *models.AuditLog) error {
	return tx.Create(entry).Error
}

// Create appends an audit row outside any transaction. Used for best-effort
// records such as notification_sent.
func (r *AuditRepository) Create(entry *models.AuditLog) error {
	return database.DB.Create(entry).Error
}

// FindByProjectID retrieves a project's audit history, newest first
func (r *AuditRepository) FindByProjectID(projectID string, limit int) ([]models.AuditLog, error) {
	var entries []models.AuditLog
	db := database.DB.Preload("User").
		Where("project_id = ?", projectID).Order("created_at desc")
	if limit > 0 {
		db = db.Limit(limit)
	}
	result := db.Find(&entries)
	return entries, result.Error
}

// FindByEntity retrieves audit rows for one entity, newest first
func (r *AuditRepository) FindByEntity(entityType, entityID string) ([]models.AuditLog, error) {
	var entries []models.AuditLog
	result := database.DB.
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("created_at desc").Find(&entries)
	return entries, result.Error
}

// DB returns the database instance
func (r *AuditRepository) DB() *gorm.DB {
	return database.DB
}
