package models

import "time"

// ImageRow is one crop joined with its parent frame, as returned by image listings
type ImageRow struct {
	ID               int64
	ObjectFilename   string
	ClassID          *int64
	CameraID         int64
	Timestamp        time.Time
	OriginalFilename string
}

// ObjectRef is the minimum needed to locate a crop's file in the image store
type ObjectRef struct {
	ID             int64
	ObjectFilename string
	ClassID        *int64
	CameraID       int64
}
