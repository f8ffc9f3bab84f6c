package dto

import (
	"fmt"
	"strings"
)

// APIVersionHeader is the request header selecting the response shape
const APIVersionHeader = "API-Version"

// APIVersion identifies a response shape
type APIVersion string

const (
	APIVersion1 APIVersion = "1.0"
	APIVersion2 APIVersion = "2.0"

	DefaultAPIVersion = APIVersion1
)

// ParseAPIVersion resolves a raw header value to a supported version.
// Blank means DefaultAPIVersion; "1" and "2" are accepted as short forms.
func ParseAPIVersion(raw string) (APIVersion, error) {
	switch strings.TrimSpace(raw) {
	case "":
		return DefaultAPIVersion, nil
	case "1", "1.0", "1.0.0":
		return APIVersion1, nil
	case "2", "2.0", "2.0.0":
		return APIVersion2, nil
	default:
		return "", fmt.Errorf("unsupported API version '%s'", raw)
	}
}

// ShapeRepositories renders repositories in the shape of the given version.
// Versions other than APIVersion2 render as the bare list.
func ShapeRepositories(version APIVersion, repositories []RepositoryResponse) interface{} {
	if repositories == nil {
		repositories = []RepositoryResponse{}
	}

	if version == APIVersion2 {
		return RepositoriesResponseV2{
			Count:        len(repositories),
			Repositories: repositories,
		}
	}

	return repositories
}
