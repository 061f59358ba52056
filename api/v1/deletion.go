package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pss-admin/dto"
	"github.com/pss-admin/services"
)

// DeletionController handles image and cluster deletion
type DeletionController struct {
	deletion *services.DeletionService
}

// NewDeletionController creates a new deletion controller
func NewDeletionController(deletion *services.DeletionService) *DeletionController {
	return &DeletionController{deletion: deletion}
}

// RegisterRoutes registers deletion routes
func (dc *DeletionController) RegisterRoutes(router *gin.RouterGroup) {
	router.DELETE("/images/:id", dc.DeleteImage)
	router.DELETE("/clusters/:clusterId/images", dc.DeleteCluster)
}

// DeleteImage removes one image file and its row
func (dc *DeletionController) DeleteImage(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := dc.deletion.DeleteImage(c.Request.Context(), id); err != nil {
		c.Error(err)
		status, message := deletionError(err, "Image not found")
		c.JSON(status, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Image and data deleted"})
}

// DeleteCluster removes every image of a cluster
func (dc *DeletionController) DeleteCluster(c *gin.Context) {
	clusterID, err := pathID(c, "clusterId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := dc.deletion.DeleteCluster(c.Request.Context(), clusterID); err != nil {
		c.Error(err)
		status, message := deletionError(err, "No images found in cluster")
		c.JSON(status, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "All images and data in the cluster deleted"})
}

func deletionError(err error, notFound string) (int, string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound, notFound
	case errors.Is(err, services.ErrFileDeletion):
		return http.StatusInternalServerError, "File deletion failed"
	case errors.Is(err, services.ErrDataDeletion):
		return http.StatusInternalServerError, "Data deletion failed"
	default:
		return http.StatusInternalServerError, fetchErrorMessage
	}
}
