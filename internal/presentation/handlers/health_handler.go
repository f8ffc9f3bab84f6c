package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness together with the proxied GitHub API
type HealthHandler struct {
	upstream string
}

// NewHealthHandler creates a health handler for the given GitHub API base URL
func NewHealthHandler(upstream string) *HealthHandler {
	return &HealthHandler{upstream: upstream}
}

// Health handles GET /health
// @Summary Health check
// @Description Reports that the proxy is up and which GitHub API it forwards to. The upstream is not contacted.
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:   "healthy",
		Message:  "Proxying the GitHub API",
		Upstream: h.upstream,
	})
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Upstream string `json:"upstream"`
}
