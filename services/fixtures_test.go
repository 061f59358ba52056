package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pss-admin/database"
	"github.com/pss-admin/models"
	"github.com/pss-admin/storage"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

type fixture struct {
	t      *testing.T
	db     *gorm.DB
	layout storage.Layout
}

func newFixture(t *testing.T) *fixture {
	layout := storage.DefaultLayout()
	layout.Root = t.TempDir()
	return &fixture{t: t, db: database.OpenTestDB(t), layout: layout}
}

func (f *fixture) frame(projectID, cameraID int64, filename string, ts time.Time) models.OriginalImage {
	frame := models.OriginalImage{ProjectID: projectID, CameraID: cameraID, Filename: filename, Timestamp: ts}
	require.NoError(f.t, f.db.Omit("MovingObjects").Create(&frame).Error)
	return frame
}

func (f *fixture) crop(frameID int64, classID *int64, filename string) models.MovingObject {
	obj := models.MovingObject{OriginalImageID: frameID, ObjectFilename: filename, ClassID: classID}
	require.NoError(f.t, f.db.Omit("OriginalImage").Create(&obj).Error)
	return obj
}

// file writes a crop's backing file into the temp image store
func (f *fixture) file(classID int64, filename string) string {
	path, err := f.layout.ObjectFilePath(&classID, filename)
	require.NoError(f.t, err)
	require.NoError(f.t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(f.t, os.WriteFile(path, []byte("jpeg"), 0o644))
	return path
}

func (f *fixture) countCrops(where string, args ...interface{}) int64 {
	var n int64
	require.NoError(f.t, f.db.Model(&models.MovingObject{}).Where(where, args...).Count(&n).Error)
	return n
}

func int64Ptr(v int64) *int64 { return &v }
