package web

import (
	"embed"
	"encoding/json"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static/*
var staticFiles embed.FS

var staticContentFS fs.FS

func init() {
	var err error
	staticContentFS, err = fs.Sub(staticFiles, "static")
	if err != nil {
		staticContentFS = staticFiles
	}
}

// Options are handed to the browser through /config.js
type Options struct {
	BasePath  string `json:"basePath"`
	ProjectID int64  `json:"projectId"`
	PageSize  int    `json:"pageSize"`
}

// Register serves the browsing UI on the given group
func Register(router *gin.RouterGroup, opts Options) {
	router.GET("/", handleIndex)
	router.GET("/config.js", handleConfig(opts))
	router.StaticFS("/static", http.FS(staticContentFS))
}

func handleIndex(c *gin.Context) {
	content, err := fs.ReadFile(staticContentFS, "index.html")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read index.html"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", content)
}

func handleConfig(opts Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, err := json.Marshal(opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Cache-Control", "no-store")
		c.Data(http.StatusOK, "application/javascript; charset=utf-8",
			append(append([]byte("window.PSS_CONFIG = "), payload...), ";\n"...))
	}
}
