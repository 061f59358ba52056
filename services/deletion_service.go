package services

import (
	"context"
	"fmt"

	"github.com/pss-admin/logging"
	"github.com/pss-admin/metrics"
	"github.com/pss-admin/repositories"
	"github.com/pss-admin/storage"
	"gorm.io/gorm"
)

// ClusterDeleteResult summarizes a cluster-wide delete
type ClusterDeleteResult struct {
	Matched      int
	FilesRemoved int
	FilesFailed  int
	RowsDeleted  int64
}

// DeletionService removes crops from the image store and the metadata store.
// File and row removal are two independent steps with no transaction across them.
type DeletionService struct {
	objects *repositories.MovingObjectRepository
	layout  storage.Layout
	store   storage.Remover
	log     *logging.Logger
}

// NewDeletionService creates a new deletion service instance
func NewDeletionService(db *gorm.DB, layout storage.Layout, store storage.Remover, log *logging.Logger) *DeletionService {
	return &DeletionService{
		objects: repositories.NewMovingObjectRepository(db),
		layout:  layout,
		store:   store,
		log:     log,
	}
}

// DeleteImage removes one crop's file and then its row.
// A failed file removal aborts before the row is touched.
func (s *DeletionService) DeleteImage(ctx context.Context, id int64) error {
	// Step 1: Resolve the crop
	ref, found, err := s.objects.FindRef(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: looking up image %d: %v", ErrDatabase, id, err)
	}
	if !found {
		return fmt.Errorf("%w: image %d", ErrNotFound, id)
	}

	// Step 2: Remove the file
	path, err := s.layout.ObjectFilePath(ref.ClassID, ref.ObjectFilename)
	if err == nil {
		err = s.store.Remove(path)
		metrics.FileRemoved(err)
	}
	if err != nil {
		s.log.Error("Failed to delete image file", "image_id", id, "path", path, "error", err)
		return fmt.Errorf("%w: %v", ErrFileDeletion, err)
	}

	// Step 3: Remove the row. A failure here leaves the row without its file.
	rows, err := s.objects.Delete(ctx, id)
	if err != nil {
		s.log.Error("Failed to delete image row after removing its file", "image_id", id, "path", path, "error", err)
		return fmt.Errorf("%w: %v", ErrDataDeletion, err)
	}
	metrics.ImagesDeleted("image", rows)

	s.log.Info("Deleted image", "image_id", id, "path", path)
	return nil
}

// DeleteCluster removes every crop file of a cluster on a best-effort basis, then all of
// the cluster's rows in one statement whether or not their files went away.
func (s *DeletionService) DeleteCluster(ctx context.Context, classID int64) (ClusterDeleteResult, error) {
	var result ClusterDeleteResult

	// Step 1: Resolve the crops
	refs, err := s.objects.FindRefsByClassID(ctx, classID)
	if err != nil {
		return result, fmt.Errorf("%w: looking up cluster %d: %v", ErrDatabase, classID, err)
	}
	if len(refs) == 0 {
		return result, fmt.Errorf("%w: cluster %d has no images", ErrNotFound, classID)
	}
	result.Matched = len(refs)

	// Step 2: Remove the files; failures are only logged
	for _, ref := range refs {
		path, err := s.layout.ObjectFilePath(ref.ClassID, ref.ObjectFilename)
		if err == nil {
			err = s.store.Remove(path)
			metrics.FileRemoved(err)
		}
		if err != nil {
			result.FilesFailed++
			s.log.Warn("Failed to delete image file", "cluster_id", classID, "image_id", ref.ID, "path", path, "error", err)
			continue
		}
		result.FilesRemoved++
		s.log.Debug("Deleted image file", "cluster_id", classID, "path", path)
	}

	// Step 3: Remove all rows of the cluster
	rows, err := s.objects.DeleteByClassID(ctx, classID)
	if err != nil {
		s.log.Error("Failed to delete cluster rows", "cluster_id", classID, "error", err)
		return result, fmt.Errorf("%w: %v", ErrDataDeletion, err)
	}
	result.RowsDeleted = rows
	metrics.ImagesDeleted("cluster", rows)

	s.log.Info("Deleted cluster",
		"cluster_id", classID,
		"rows", rows,
		"files_removed", result.FilesRemoved,
		"files_failed", result.FilesFailed,
	)
	return result, nil
}
