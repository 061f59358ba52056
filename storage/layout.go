package storage

import (
	"fmt"
	"path"
	"path/filepath"
	"strconv"
	"strings"
)

// Layout describes where the detection pipeline writes its outputs.
// Crops live under <root>/<results>/<camera>/<model>/class_<id>/<file> and frames under
// <root>/<originals>/<file>. The camera and model segments are fixed by the pipeline
// and are not derived from the camera id of a row.
type Layout struct {
	Root          string // filesystem root of the image store
	URLPrefix     string // URL prefix the store is served under
	ResultsDir    string
	CameraSegment string
	ModelSegment  string
	OriginalsDir  string
}

// DefaultLayout is the layout the pipeline uses out of the box
func DefaultLayout() Layout {
	return Layout{
		Root:          "/images",
		URLPrefix:     "/images",
		ResultsDir:    "Results",
		CameraSegment: "camera0",
		ModelSegment:  "ResNet50",
		OriginalsDir:  "detection_result/0923/image0/filter",
	}
}

// ClassDir names the directory of one cluster
func ClassDir(classID *int64) string {
	if classID == nil {
		return "class_null"
	}
	return "class_" + strconv.FormatInt(*classID, 10)
}

// ObjectURL is the public path of a crop
func (l Layout) ObjectURL(classID *int64, filename string) string {
	return path.Join("/", l.URLPrefix, l.ResultsDir, l.CameraSegment, l.ModelSegment, ClassDir(classID), filename)
}

// OriginalURL is the public path of a source frame
func (l Layout) OriginalURL(filename string) string {
	return path.Join("/", l.URLPrefix, l.OriginalsDir, filename)
}

// ObjectFilePath is the on-disk location of a crop.
// It fails when the filename would resolve outside the cluster directory.
func (l Layout) ObjectFilePath(classID *int64, filename string) (string, error) {
	dir := filepath.Join(l.Root, l.ResultsDir, l.CameraSegment, l.ModelSegment, ClassDir(classID))
	full := filepath.Join(dir, filename)

	rel, err := filepath.Rel(dir, full)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("object filename %q escapes %s", filename, dir)
	}
	return full, nil
}
