package repositories

import (
	"context"
	"time"

	"github.com/pss-admin/models"
	"gorm.io/gorm"
)

// ImageQuery selects one page of crops for a project, camera and cluster
type ImageQuery struct {
	ProjectID int64
	CameraID  int64
	ClassID   int64
	Since     *time.Time // nil means no time window
	Ascending bool
	Limit     int
	Offset    int
}

// MovingObjectRepository handles database operations for detected crops
type MovingObjectRepository struct {
	db *gorm.DB
}

// NewMovingObjectRepository creates a new crop repository instance
func NewMovingObjectRepository(db *gorm.DB) *MovingObjectRepository {
	return &MovingObjectRepository{db: db}
}

// withFrame joins every crop to the frame it was cut from
func (r *MovingObjectRepository) withFrame(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("moving_objects AS mo").
		Joins("INNER JOIN original_images oi ON mo.original_image_id = oi.id")
}

// DistinctClassIDs returns the non-null clusters among crops of a project's camera
func (r *MovingObjectRepository) DistinctClassIDs(ctx context.Context, projectID, cameraID int64) ([]int64, error) {
	frames := r.db.Model(&models.OriginalImage{}).
		Select("id").
		Where("project_id = ? AND camera_id = ?", projectID, cameraID)

	classIDs := make([]int64, 0)
	result := r.db.WithContext(ctx).
		Model(&models.MovingObject{}).
		Where("original_image_id IN (?)", frames).
		Where("class_id IS NOT NULL").
		Distinct().
		Order("class_id").
		Pluck("class_id", &classIDs)
	return classIDs, result.Error
}

// FindPage returns crops joined with their frames, ordered by capture time
func (r *MovingObjectRepository) FindPage(ctx context.Context, q ImageQuery) ([]models.ImageRow, error) {
	tx := r.withFrame(ctx).
		Select("mo.id, mo.object_filename, mo.class_id, oi.camera_id, oi.timestamp, oi.filename AS original_filename").
		Where("oi.project_id = ? AND oi.camera_id = ? AND mo.class_id = ?", q.ProjectID, q.CameraID, q.ClassID)

	if q.Since != nil {
		tx = tx.Where("oi.timestamp >= ?", *q.Since)
	}

	if q.Ascending {
		tx = tx.Order("oi.timestamp ASC").Order("mo.id ASC")
	} else {
		tx = tx.Order("oi.timestamp DESC").Order("mo.id DESC")
	}

	rows := make([]models.ImageRow, 0)
	result := tx.Limit(q.Limit).Offset(q.Offset).Scan(&rows)
	return rows, result.Error
}

// FindRef resolves a single crop to the fields its file path is built from.
// The boolean is false when no such crop exists.
func (r *MovingObjectRepository) FindRef(ctx context.Context, id int64) (models.ObjectRef, bool, error) {
	var refs []models.ObjectRef
	result := r.withFrame(ctx).
		Select("mo.id, mo.object_filename, mo.class_id, oi.camera_id").
		Where("mo.id = ?", id).
		Limit(1).
		Scan(&refs)
	if result.Error != nil {
		return models.ObjectRef{}, false, result.Error
	}
	if len(refs) == 0 {
		return models.ObjectRef{}, false, nil
	}
	return refs[0], true, nil
}

// FindRefsByClassID resolves every crop of a cluster across all projects and cameras
func (r *MovingObjectRepository) FindRefsByClassID(ctx context.Context, classID int64) ([]models.ObjectRef, error) {
	refs := make([]models.ObjectRef, 0)
	result := r.withFrame(ctx).
		Select("mo.id, mo.object_filename, mo.class_id, oi.camera_id").
		Where("mo.class_id = ?", classID).
		Order("mo.id").
		Scan(&refs)
	return refs, result.Error
}

// Delete removes one crop row and reports how many rows went away
func (r *MovingObjectRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.MovingObject{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

// DeleteByClassID removes every crop row of a cluster in one statement
func (r *MovingObjectRepository) DeleteByClassID(ctx context.Context, classID int64) (int64, error) {
	result := r.db.WithContext(ctx).Where("class_id = ?", classID).Delete(&models.MovingObject{})
	return result.RowsAffected, result.Error
}
