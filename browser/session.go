package browser

import (
	"context"
	"errors"

	"github.com/pss-admin/dto"
	"github.com/pss-admin/lib/gallery"
	"github.com/pss-admin/logging"
)

// Filter values understood by the image listing
const (
	DefaultPeriod   = "all"
	DefaultOrder    = "newest"
	DefaultPageSize = 10
)

// ErrNoSelection is returned by actions that need a camera and cluster
var ErrNoSelection = errors.New("select a camera and a cluster first")

// API is the subset of the gallery client the session drives
type API interface {
	Cameras(ctx context.Context, projectID int64) ([]string, error)
	Clusters(ctx context.Context, projectID int64, cameraID string) ([]string, error)
	Images(ctx context.Context, projectID int64, cameraID, clusterID string, q gallery.ImageQuery) ([]dto.ImageResponse, error)
	DeleteImage(ctx context.Context, id int64) (string, error)
	DeleteCluster(ctx context.Context, clusterID string) (string, error)
}

// Modal is the detail view of one image
type Modal struct {
	ImageID          int64
	ObjectImage      string
	OriginalImage    string
	Filename         string
	OriginalFilename string
}

// Session is the state of one browsing session.
// Every transition applies its resets before any fetch, and a failed fetch leaves the
// state as the resets left it.
type Session struct {
	api API
	log *logging.Logger

	ProjectID int64
	PageSize  int

	Cameras  []string
	Clusters []string
	Images   []dto.ImageResponse

	Camera  string
	Cluster string
	Page    int
	Period  string
	Order   string

	Modal *Modal
}

// NewSession creates a session for a fixed project
func NewSession(api API, projectID int64, pageSize int, log *logging.Logger) *Session {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Session{
		api:       api,
		log:       log,
		ProjectID: projectID,
		PageSize:  pageSize,
		Page:      1,
		Period:    DefaultPeriod,
		Order:     DefaultOrder,
	}
}

// Load fetches the project's cameras and clears every selection
func (s *Session) Load(ctx context.Context) error {
	cameras, err := s.api.Cameras(ctx, s.ProjectID)
	if err != nil {
		s.log.Error("Failed to fetch cameras", "project_id", s.ProjectID, "error", err)
		return err
	}

	s.Cameras = cameras
	s.Camera = ""
	s.Cluster = ""
	s.Clusters = nil
	s.Images = nil
	s.Page = 1
	return nil
}

// SelectCamera switches camera, dropping the cluster and images, then loads its clusters
func (s *Session) SelectCamera(ctx context.Context, camera string) error {
	s.Camera = camera
	s.Cluster = ""
	s.Clusters = nil
	s.Images = nil
	s.Page = 1

	if camera == "" {
		return nil
	}

	clusters, err := s.api.Clusters(ctx, s.ProjectID, camera)
	if err != nil {
		s.log.Error("Failed to fetch clusters", "camera_id", camera, "error", err)
		return err
	}
	s.Clusters = clusters
	return nil
}

// SelectCluster switches cluster and reloads from the first page
func (s *Session) SelectCluster(ctx context.Context, cluster string) error {
	s.Cluster = cluster
	s.Page = 1
	return s.refresh(ctx)
}

// SetPeriod changes the capture period filter
func (s *Session) SetPeriod(ctx context.Context, period string) error {
	s.Period = period
	return s.refresh(ctx)
}

// SetOrder changes the sort order
func (s *Session) SetOrder(ctx context.Context, order string) error {
	s.Order = order
	return s.refresh(ctx)
}

// HasNext reports whether the last page came back full
func (s *Session) HasNext() bool {
	return len(s.Images) >= s.PageSize
}

// HasPrev reports whether there is a page before the current one
func (s *Session) HasPrev() bool {
	return s.Page > 1
}

// NextPage steps forward when the current page is full
func (s *Session) NextPage(ctx context.Context) error {
	if !s.HasNext() {
		return nil
	}
	s.Page++
	return s.refresh(ctx)
}

// PrevPage steps back unless already on the first page
func (s *Session) PrevPage(ctx context.Context) error {
	if !s.HasPrev() {
		return nil
	}
	s.Page--
	return s.refresh(ctx)
}

// Refresh reloads the current page
func (s *Session) Refresh(ctx context.Context) error {
	return s.refresh(ctx)
}

func (s *Session) refresh(ctx context.Context) error {
	if s.Camera == "" || s.Cluster == "" {
		s.Images = nil
		return nil
	}

	images, err := s.api.Images(ctx, s.ProjectID, s.Camera, s.Cluster, gallery.ImageQuery{
		Page:   s.Page,
		Limit:  s.PageSize,
		Period: s.Period,
		Order:  s.Order,
	})
	if err != nil {
		s.log.Error("Failed to fetch images",
			"camera_id", s.Camera,
			"cluster_id", s.Cluster,
			"page", s.Page,
			"error", err,
		)
		return err
	}
	s.Images = images
	return nil
}

// DeleteImage deletes one image and drops it from the displayed page
func (s *Session) DeleteImage(ctx context.Context, id int64) (string, error) {
	msg, err := s.api.DeleteImage(ctx, id)
	if err != nil {
		s.log.Error("Failed to delete image", "image_id", id, "error", err)
		return "", err
	}

	kept := s.Images[:0]
	for _, img := range s.Images {
		if img.ID != id {
			kept = append(kept, img)
		}
	}
	s.Images = kept
	if s.Modal != nil && s.Modal.ImageID == id {
		s.Modal = nil
	}
	return msg, nil
}

// DeleteCluster deletes every image of the selected cluster
func (s *Session) DeleteCluster(ctx context.Context) (string, error) {
	if s.Cluster == "" {
		return "", ErrNoSelection
	}

	msg, err := s.api.DeleteCluster(ctx, s.Cluster)
	if err != nil {
		s.log.Error("Failed to delete cluster", "cluster_id", s.Cluster, "error", err)
		return "", err
	}
	s.Images = nil
	s.Modal = nil
	return msg, nil
}

// OpenModal shows the crop and its source frame side by side
func (s *Session) OpenModal(id int64) bool {
	for _, img := range s.Images {
		if img.ID == id {
			s.Modal = &Modal{
				ImageID:          img.ID,
				ObjectImage:      img.ObjectImage,
				OriginalImage:    img.OriginalImage,
				Filename:         img.Filename,
				OriginalFilename: img.OriginalFilename,
			}
			return true
		}
	}
	return false
}

// CloseModal dismisses the detail view
func (s *Session) CloseModal() {
	s.Modal = nil
}
