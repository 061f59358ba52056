package gallery

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pss-admin/dto"
)

// ClientConfig contains options for connecting to a pss-admin backend
type ClientConfig struct {
	// BaseURL is the API root including the base path (e.g. http://host:5000/pss-backend/api)
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Client talks to the gallery API
type Client struct {
	HTTP   *resty.Client
	Config ClientConfig
}

// APIError is a non-2xx answer from the API
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.Status, e.Message)
}

// ImageQuery holds the optional filters of an image listing
type ImageQuery struct {
	Page   int
	Limit  int
	Period string
	Order  string
}

// New creates a client for the given backend
func New(cfg ClientConfig) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	r := resty.New()
	r.SetBaseURL(strings.TrimRight(cfg.BaseURL, "/"))
	r.SetTimeout(cfg.Timeout)
	r.SetHeader("Accept", "application/json")
	if cfg.Token != "" {
		r.SetAuthToken(cfg.Token)
	}

	return &Client{
		HTTP:   r,
		Config: cfg,
	}
}

// Login exchanges the admin password for a token and uses it for later requests
func (c *Client) Login(ctx context.Context, password string) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	resp, err := c.HTTP.R().
		SetContext(ctx).
		SetBody(dto.LoginRequest{Password: password}).
		SetResult(&out).
		SetError(&dto.ErrorResponse{}).
		Post("/auth/login")
	if err := check(resp, err); err != nil {
		return nil, err
	}

	if out.Token == "" {
		return nil, fmt.Errorf("login succeeded but no token was returned")
	}
	c.HTTP.SetAuthToken(out.Token)
	c.Config.Token = out.Token
	return &out, nil
}

// Cameras lists the cameras of a project
func (c *Client) Cameras(ctx context.Context, projectID int64) ([]string, error) {
	var out dto.CameraListResponse
	resp, err := c.HTTP.R().
		SetContext(ctx).
		SetPathParam("projectId", strconv.FormatInt(projectID, 10)).
		SetResult(&out).
		SetError(&dto.ErrorResponse{}).
		Get("/projects/{projectId}/cameras")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out.Cameras, nil
}

// Clusters lists the clusters of a camera
func (c *Client) Clusters(ctx context.Context, projectID int64, cameraID string) ([]string, error) {
	var out dto.ClusterListResponse
	resp, err := c.HTTP.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"projectId": strconv.FormatInt(projectID, 10),
			"cameraId":  cameraID,
		}).
		SetResult(&out).
		SetError(&dto.ErrorResponse{}).
		Get("/projects/{projectId}/cameras/{cameraId}/clusters")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out.Clusters, nil
}

// Images fetches one page of a cluster's images
func (c *Client) Images(ctx context.Context, projectID int64, cameraID, clusterID string, q ImageQuery) ([]dto.ImageResponse, error) {
	params := url.Values{}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Period != "" {
		params.Set("period", q.Period)
	}
	if q.Order != "" {
		params.Set("order", q.Order)
	}

	var out dto.ImageListResponse
	resp, err := c.HTTP.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"projectId": strconv.FormatInt(projectID, 10),
			"cameraId":  cameraID,
			"clusterId": clusterID,
		}).
		SetQueryParamsFromValues(params).
		SetResult(&out).
		SetError(&dto.ErrorResponse{}).
		Get("/projects/{projectId}/cameras/{cameraId}/clusters/{clusterId}/images")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out.Images, nil
}

// DeleteImage deletes one image and returns the server's message
func (c *Client) DeleteImage(ctx context.Context, id int64) (string, error) {
	var out dto.MessageResponse
	resp, err := c.HTTP.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&out).
		SetError(&dto.ErrorResponse{}).
		Delete("/images/{id}")
	if err := check(resp, err); err != nil {
		return "", err
	}
	return out.Message, nil
}

// DeleteCluster deletes every image of a cluster and returns the server's message
func (c *Client) DeleteCluster(ctx context.Context, clusterID string) (string, error) {
	var out dto.MessageResponse
	resp, err := c.HTTP.R().
		SetContext(ctx).
		SetPathParam("clusterId", clusterID).
		SetResult(&out).
		SetError(&dto.ErrorResponse{}).
		Delete("/clusters/{clusterId}/images")
	if err := check(resp, err); err != nil {
		return "", err
	}
	return out.Message, nil
}

func check(resp *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if !resp.IsError() {
		return nil
	}

	apiErr := &APIError{Status: resp.StatusCode()}
	if body, ok := resp.Error().(*dto.ErrorResponse); ok && body.Error != "" {
		apiErr.Message = body.Error
	} else {
		apiErr.Message = strings.TrimSpace(resp.String())
	}
	return apiErr
}
