package handlers

import (
	"errors"
	"net/http"

	"github-repos-proxy/internal/domain/repo"
)

// ErrorResponse represents an error body
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	messageRemoteFailure = "Failed to fetch repositories from GitHub"
	messageInterrupted   = "Request was cancelled before completion"
	messageInternal      = "Internal server error"
)

// errorResponseFor maps a domain error to its HTTP representation
func errorResponseFor(err error) ErrorResponse {
	var domainErr *repo.DomainError
	if !errors.As(err, &domainErr) {
		return ErrorResponse{Status: http.StatusInternalServerError, Message: messageInternal}
	}

	switch domainErr.Code {
	case repo.CodeUserNotFound:
		return ErrorResponse{Status: http.StatusNotFound, Message: domainErr.Message}
	case repo.CodeRemoteAPIFailure:
		return ErrorResponse{Status: http.StatusBadGateway, Message: messageRemoteFailure}
	case repo.CodeAggregationInterrupted:
		return ErrorResponse{Status: http.StatusServiceUnavailable, Message: messageInterrupted}
	default:
		return ErrorResponse{Status: http.StatusInternalServerError, Message: messageInternal}
	}
}
