package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/pss-admin/dto"
	"github.com/pss-admin/repositories"
	"github.com/pss-admin/storage"
	"gorm.io/gorm"
)

// Recognized values of the period filter
const (
	PeriodAll       = "all"
	PeriodDay       = "1d"
	PeriodWeek      = "1w"
	PeriodMonth     = "1m"
	PeriodHalfYear  = "6m"
	PeriodYear      = "1y"
	OrderNewest     = "newest"
	OrderOldest     = "oldest"
	DefaultPage     = 1
	DefaultPageSize = 10
)

// PeriodStart returns the earliest capture time admitted by a period.
// "all" and unrecognized values return nil, meaning no lower bound.
func PeriodStart(period string, now time.Time) *time.Time {
	var since time.Time
	switch period {
	case PeriodDay:
		since = now.AddDate(0, 0, -1)
	case PeriodWeek:
		since = now.AddDate(0, 0, -7)
	case PeriodMonth:
		since = now.AddDate(0, -1, 0)
	case PeriodHalfYear:
		since = now.AddDate(0, -6, 0)
	case PeriodYear:
		since = now.AddDate(-1, 0, 0)
	default:
		return nil
	}
	return &since
}

// GalleryService answers the read-only browsing queries
type GalleryService struct {
	frames  *repositories.OriginalImageRepository
	objects *repositories.MovingObjectRepository
	layout  storage.Layout
	now     func() time.Time
	loc     *time.Location
}

// NewGalleryService creates a new gallery service instance
func NewGalleryService(db *gorm.DB, layout storage.Layout) *GalleryService {
	return &GalleryService{
		frames:  repositories.NewOriginalImageRepository(db),
		objects: repositories.NewMovingObjectRepository(db),
		layout:  layout,
		now:     time.Now,
		loc:     time.UTC,
	}
}

// SetClock replaces the time source used by period filters
func (s *GalleryService) SetClock(now func() time.Time) {
	s.now = now
}

// SetLocation sets the timezone capture timestamps are stored in.
// Period cutoffs are expressed in it so they compare against stored values unshifted.
func (s *GalleryService) SetLocation(loc *time.Location) {
	if loc == nil {
		loc = time.UTC
	}
	s.loc = loc
}

// ListCameras returns the cameras observed in a project
func (s *GalleryService) ListCameras(ctx context.Context, projectID int64) ([]string, error) {
	ids, err := s.frames.DistinctCameraIDs(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("%w: listing cameras: %v", ErrDatabase, err)
	}
	return formatIDs(ids), nil
}

// ListClusters returns the clusters among a camera's crops
func (s *GalleryService) ListClusters(ctx context.Context, projectID, cameraID int64) ([]string, error) {
	ids, err := s.objects.DistinctClassIDs(ctx, projectID, cameraID)
	if err != nil {
		return nil, fmt.Errorf("%w: listing clusters: %v", ErrDatabase, err)
	}
	return formatIDs(ids), nil
}

// ListImages returns one page of a cluster's crops with their public paths
func (s *GalleryService) ListImages(ctx context.Context, projectID, cameraID, classID int64, params dto.ImageListParams) ([]dto.ImageResponse, error) {
	page := params.Page
	if page < 1 {
		page = DefaultPage
	}
	limit := params.Limit
	if limit < 1 {
		limit = DefaultPageSize
	}

	rows, err := s.objects.FindPage(ctx, repositories.ImageQuery{
		ProjectID: projectID,
		CameraID:  cameraID,
		ClassID:   classID,
		Since:     PeriodStart(params.Period, s.now().In(s.loc)),
		Ascending: params.Order == OrderOldest,
		Limit:     limit,
		Offset:    (page - 1) * limit,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: listing images: %v", ErrDatabase, err)
	}

	images := make([]dto.ImageResponse, 0, len(rows))
	for _, row := range rows {
		images = append(images, dto.ImageResponse{
			ID:               row.ID,
			ObjectImage:      s.layout.ObjectURL(row.ClassID, row.ObjectFilename),
			OriginalImage:    s.layout.OriginalURL(row.OriginalFilename),
			CameraID:         row.CameraID,
			ClassID:          row.ClassID,
			Filename:         row.ObjectFilename,
			OriginalFilename: row.OriginalFilename,
			Timestamp:        row.Timestamp,
		})
	}
	return images, nil
}

func formatIDs(ids []int64) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, strconv.FormatInt(id, 10))
	}
	return out
}
