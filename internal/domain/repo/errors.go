package repo

import "fmt"

// Domain errors

const (
	CodeUserNotFound           = "USER_NOT_FOUND"
	CodeRemoteAPIFailure       = "REMOTE_API_FAILURE"
	CodeAggregationInterrupted = "AGGREGATION_INTERRUPTED"
	CodeInvalidRepositoryData  = "INVALID_REPOSITORY_DATA"
)

type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a DomainError with the same code
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Sentinels for errors.Is checks

var (
	ErrUserNotFoundKind           = &DomainError{Code: CodeUserNotFound}
	ErrRemoteAPIFailureKind       = &DomainError{Code: CodeRemoteAPIFailure}
	ErrAggregationInterruptedKind = &DomainError{Code: CodeAggregationInterrupted}
)

// Predefined domain errors

func ErrUserNotFound(username string) *DomainError {
	return &DomainError{
		Code:    CodeUserNotFound,
		Message: fmt.Sprintf("GitHub user '%s' not found", username),
	}
}

func ErrRemoteAPIFailure(operation string, err error) *DomainError {
	return &DomainError{
		Code:    CodeRemoteAPIFailure,
		Message: fmt.Sprintf("GitHub API call failed: %s", operation),
		Err:     err,
	}
}

func ErrAggregationInterrupted(username string, err error) *DomainError {
	return &DomainError{
		Code:    CodeAggregationInterrupted,
		Message: fmt.Sprintf("aggregation for GitHub user '%s' was interrupted", username),
		Err:     err,
	}
}

func ErrInvalidRepositoryData(field string, err error) *DomainError {
	return &DomainError{
		Code:    CodeInvalidRepositoryData,
		Message: fmt.Sprintf("invalid %s", field),
		Err:     err,
	}
}
