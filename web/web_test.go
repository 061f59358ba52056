package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Register(r.Group("/pss-backend"), Options{BasePath: "/pss-backend", ProjectID: 1, PageSize: 10})
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestIndexIsServed(t *testing.T) {
	w := get(newRouter(), "/pss-backend/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "app.js")
}

func TestConfigScript(t *testing.T) {
	w := get(newRouter(), "/pss-backend/config.js")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `window.PSS_CONFIG = {"basePath":"/pss-backend","projectId":1,"pageSize":10};`+"\n", w.Body.String())
}

func TestStaticAssets(t *testing.T) {
	r := newRouter()
	for _, name := range []string{"app.js", "app.css"} {
		w := get(r, "/pss-backend/static/"+name)
		assert.Equal(t, http.StatusOK, w.Code, name)
	}
}
