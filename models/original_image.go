package models

import (
	"time"
)

// OriginalImage represents a full frame captured by a camera
type OriginalImage struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	ProjectID int64     `json:"projectId" gorm:"not null;index:idx_original_images_project_camera"`
	CameraID  int64     `json:"cameraId" gorm:"not null;index:idx_original_images_project_camera"`
	Filename  string    `json:"filename" gorm:"type:varchar(255);not null"`
	Timestamp time.Time `json:"timestamp" gorm:"not null;index"`

	// Relations
	MovingObjects []MovingObject `json:"movingObjects,omitempty" gorm:"foreignKey:OriginalImageID;constraint:OnDelete:CASCADE"`
}

// TableName sets the table name for OriginalImage model
func (OriginalImage) TableName() string {
	return "original_images"
}
