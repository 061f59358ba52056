package dto

import "time"

// CameraListResponse is the body of the cameras endpoint
type CameraListResponse struct {
	Cameras []string `json:"cameras"`
}

// ClusterListResponse is the body of the clusters endpoint
type ClusterListResponse struct {
	Clusters []string `json:"clusters"`
}

// ImageListParams carries the query options of the images endpoint after coercion
type ImageListParams struct {
	Page   int
	Limit  int
	Period string
	Order  string
}

// ImageResponse describes one crop and the frame it came from
type ImageResponse struct {
	ID               int64     `json:"id"`
	ObjectImage      string    `json:"objectImage"`
	OriginalImage    string    `json:"originalImage"`
	CameraID         int64     `json:"cameraId"`
	ClassID          *int64    `json:"classId"`
	Filename         string    `json:"filename"`
	OriginalFilename string    `json:"originalfilename"`
	Timestamp        time.Time `json:"timestamp"`
}

// ImageListResponse wraps one page of images
type ImageListResponse struct {
	Images []ImageResponse `json:"images"`
}

// MessageResponse is returned by successful deletions
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is returned by every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}
