package repositories

import (
	"context"

	"github.com/pss-admin/models"
	"gorm.io/gorm"
)

// OriginalImageRepository handles read queries over captured frames
type OriginalImageRepository struct {
	db *gorm.DB
}

// NewOriginalImageRepository creates a new frame repository instance
func NewOriginalImageRepository(db *gorm.DB) *OriginalImageRepository {
	return &OriginalImageRepository{db: db}
}

// DistinctCameraIDs returns every camera id seen in a project's frames
func (r *OriginalImageRepository) DistinctCameraIDs(ctx context.Context, projectID int64) ([]int64, error) {
	cameraIDs := make([]int64, 0)
	result := r.db.WithContext(ctx).
		Model(&models.OriginalImage{}).
		Where("project_id = ?", projectID).
		Distinct().
		Order("camera_id").
		Pluck("camera_id", &cameraIDs)
	return cameraIDs, result.Error
}
