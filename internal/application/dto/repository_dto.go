package dto

// BranchResponse represents a branch in API responses
type BranchResponse struct {
	Name          string `json:"name"`
	LastCommitSha string `json:"lastCommitSha"`
}

// RepositoryResponse represents a non-fork repository with its branches
type RepositoryResponse struct {
	RepositoryName string           `json:"repositoryName"`
	OwnerLogin     string           `json:"ownerLogin"`
	Branches       []BranchResponse `json:"branches"`
}

// RepositoriesResponseV2 is the API version 2.0 envelope
type RepositoriesResponseV2 struct {
	Count        int                  `json:"count"`
	Repositories []RepositoryResponse `json:"repositories"`
}
