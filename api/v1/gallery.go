package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pss-admin/dto"
	"github.com/pss-admin/services"
)

const fetchErrorMessage = "Failed to fetch data"

// GalleryController handles the read-only browsing endpoints
type GalleryController struct {
	gallery         *services.GalleryService
	defaultPageSize int
	maxPageSize     int
}

// NewGalleryController creates a new gallery controller
func NewGalleryController(gallery *services.GalleryService, defaultPageSize, maxPageSize int) *GalleryController {
	if defaultPageSize < 1 {
		defaultPageSize = services.DefaultPageSize
	}
	if maxPageSize < defaultPageSize {
		maxPageSize = defaultPageSize
	}
	return &GalleryController{
		gallery:         gallery,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// RegisterRoutes registers gallery routes
func (gc *GalleryController) RegisterRoutes(router *gin.RouterGroup) {
	projects := router.Group("/projects/:projectId")
	{
		projects.GET("/cameras", gc.ListCameras)
		projects.GET("/cameras/:cameraId/clusters", gc.ListClusters)
		projects.GET("/cameras/:cameraId/clusters/:clusterId/images", gc.ListImages)
	}
}

// ListCameras returns the cameras of a project
func (gc *GalleryController) ListCameras(c *gin.Context) {
	projectID, err := pathID(c, "projectId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cameras, err := gc.gallery.ListCameras(c.Request.Context(), projectID)
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fetchErrorMessage})
		return
	}

	c.JSON(http.StatusOK, dto.CameraListResponse{Cameras: cameras})
}

// ListClusters returns the clusters seen by a camera
func (gc *GalleryController) ListClusters(c *gin.Context) {
	projectID, err := pathID(c, "projectId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cameraID, err := pathID(c, "cameraId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	clusters, err := gc.gallery.ListClusters(c.Request.Context(), projectID, cameraID)
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fetchErrorMessage})
		return
	}

	c.JSON(http.StatusOK, dto.ClusterListResponse{Clusters: clusters})
}

// ListImages returns one page of a cluster's images
func (gc *GalleryController) ListImages(c *gin.Context) {
	var ids [3]int64
	for i, name := range []string{"projectId", "cameraId", "clusterId"} {
		id, err := pathID(c, name)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ids[i] = id
	}

	limit := queryInt(c, "limit", gc.defaultPageSize)
	if limit > gc.maxPageSize {
		limit = gc.maxPageSize
	}
	params := dto.ImageListParams{
		Page:   queryInt(c, "page", services.DefaultPage),
		Limit:  limit,
		Period: c.DefaultQuery("period", services.PeriodAll),
		Order:  c.DefaultQuery("order", services.OrderNewest),
	}

	images, err := gc.gallery.ListImages(c.Request.Context(), ids[0], ids[1], ids[2], params)
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fetchErrorMessage})
		return
	}

	c.JSON(http.StatusOK, dto.ImageListResponse{Images: images})
}
