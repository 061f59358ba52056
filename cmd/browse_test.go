package cmd

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pss-admin/browser"
	"github.com/pss-admin/lib/gallery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGalleryServer(t *testing.T, deleted *[]string) *gallery.Client {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/projects/1/cameras", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"cameras":["2"]}`))
	})
	mux.HandleFunc("/api/projects/1/cameras/2/clusters", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"clusters":["7"]}`))
	})
	mux.HandleFunc("/api/projects/1/cameras/2/clusters/7/images", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"images":[
			{"id":1,"objectImage":"/images/Results/camera0/ResNet50/class_7/a.jpg","originalImage":"/images/detection_result/0923/image0/filter/fa.jpg","filename":"a.jpg","originalfilename":"fa.jpg","timestamp":"2024-06-01T10:00:00Z"},
			{"id":2,"objectImage":"/images/Results/camera0/ResNet50/class_7/b.jpg","originalImage":"/images/detection_result/0923/image0/filter/fb.jpg","filename":"b.jpg","originalfilename":"fb.jpg","timestamp":"2024-06-01T09:00:00Z"}
		]}`)
	})
	mux.HandleFunc("/api/images/", func(w http.ResponseWriter, r *http.Request) {
		*deleted = append(*deleted, r.Method+" "+r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Image and data deleted"}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return gallery.New(gallery.ClientConfig{BaseURL: srv.URL + "/api"})
}

func TestRunBrowse(t *testing.T) {
	var deleted []string
	session := browser.NewSession(newGalleryServer(t, &deleted), 1, 10, nil)
	input := strings.Join([]string{
		"camera 2",
		"cluster 7",
		"open 2",
		"close",
		"rm 1",
		"bogus",
		"quit",
	}, "\n")
	var out bytes.Buffer

	require.NoError(t, runBrowse(context.Background(), session, strings.NewReader(input), &out))

	text := out.String()
	assert.Contains(t, text, "Cameras:  2")
	assert.Contains(t, text, "Clusters: 7")
	assert.Contains(t, text, "fb.jpg")
	assert.Contains(t, text, "Image and data deleted")
	assert.Contains(t, text, `Unknown command "bogus"`)
	assert.Equal(t, []string{"DELETE /api/images/1"}, deleted)

	require.Len(t, session.Images, 1)
	assert.Equal(t, int64(2), session.Images[0].ID)
	assert.Nil(t, session.Modal)
}

func TestRunBrowseStopsAtEOF(t *testing.T) {
	var deleted []string
	session := browser.NewSession(newGalleryServer(t, &deleted), 1, 10, nil)

	require.NoError(t, runBrowse(context.Background(), session, strings.NewReader("help\n"), &bytes.Buffer{}))
	assert.Empty(t, deleted)
}
