package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github-repos-proxy/internal/application/dto"
	"github-repos-proxy/internal/middleware"
)

// RepositoryLister lists the non-fork repositories of a GitHub user with branches
type RepositoryLister interface {
	ListUserRepositories(ctx context.Context, username string, version dto.APIVersion) (interface{}, error)
}

// RepositoryHandler handles repository-related HTTP requests
type RepositoryHandler struct {
	repositoryService RepositoryLister
	logger            logrus.FieldLogger
}

// NewRepositoryHandler creates a new repository handler
func NewRepositoryHandler(repositoryService RepositoryLister, logger logrus.FieldLogger) *RepositoryHandler {
	return &RepositoryHandler{
		repositoryService: repositoryService,
		logger:            logger,
	}
}

// ListUserRepositories handles GET /users/:username/repositories
// @Summary List non-fork repositories of a GitHub user with their branches
// @Description Version 1.0 returns a bare list; version 2.0 wraps it with a count
// @Tags Repositories
// @Produce json
// @Param username path string true "GitHub username"
// @Param API-Version header string false "Response version (1.0 or 2.0)" default(1.0)
// @Success 200 {array} dto.RepositoryResponse "API-Version 1.0"
// @Success 200 {object} dto.RepositoriesResponseV2 "API-Version 2.0"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /users/{username}/repositories [get]
func (h *RepositoryHandler) ListUserRepositories(c *gin.Context) {
	username := c.Param("username")

	rawVersion := c.GetHeader(dto.APIVersionHeader)
	version, err := dto.ParseAPIVersion(rawVersion)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  http.StatusBadRequest,
			Message: fmt.Sprintf("Unsupported API version '%s'", rawVersion),
		})
		return
	}

	response, err := h.repositoryService.ListUserRepositories(c.Request.Context(), username, version)
	if err != nil {
		errResp := errorResponseFor(err)
		h.logger.WithFields(logrus.Fields{
			"request_id": middleware.GetRequestID(c),
			"username":   username,
			"status":     errResp.Status,
			"error":      err.Error(),
		}).Warn("failed to list repositories")

		c.JSON(errResp.Status, errResp)
		return
	}

	c.Header(dto.APIVersionHeader, string(version))
	c.JSON(http.StatusOK, response)
}
