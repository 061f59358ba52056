package models

// MovingObject represents a detected crop cut out of an OriginalImage.
// ClassID is the cluster assigned by the classifier and stays nil until then.
type MovingObject struct {
	ID              int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	OriginalImageID int64  `json:"originalImageId" gorm:"not null;index"`
	ObjectFilename  string `json:"objectFilename" gorm:"type:varchar(255);not null"`
	ClassID         *int64 `json:"classId" gorm:"index"`

	// Relations
	OriginalImage OriginalImage `json:"originalImage,omitempty" gorm:"foreignKey:OriginalImageID"`
}

// TableName sets the table name for MovingObject model
func (MovingObject) TableName() string {
	return "moving_objects"
}
