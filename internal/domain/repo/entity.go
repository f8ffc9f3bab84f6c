package repo

import (
	"fmt"
)

// Repository is a GitHub repository as listed by the remote API.
// Values are immutable once fetched.
type Repository struct {
	name       Name
	ownerLogin Login
	isFork     bool
}

// NewRepository creates a new Repository record
func NewRepository(name, ownerLogin string, isFork bool) (Repository, error) {
	repoName, err := NewName(name)
	if err != nil {
		return Repository{}, ErrInvalidRepositoryData("repository name", err)
	}

	login, err := NewLogin(ownerLogin)
	if err != nil {
		return Repository{}, ErrInvalidRepositoryData("owner login", err)
	}

	return Repository{
		name:       repoName,
		ownerLogin: login,
		isFork:     isFork,
	}, nil
}

func (r Repository) Name() Name {
	return r.name
}

func (r Repository) OwnerLogin() Login {
	return r.ownerLogin
}

func (r Repository) IsFork() bool {
	return r.isFork
}

// String returns string representation (for debugging)
func (r Repository) String() string {
	return fmt.Sprintf("Repository{owner: %s, name: %s, fork: %t}",
		r.ownerLogin.String(), r.name.String(), r.isFork)
}

// Branch is a branch of a repository together with its head commit
type Branch struct {
	name          Name
	lastCommitSHA CommitSHA
}

// NewBranch creates a new Branch record
func NewBranch(name, lastCommitSHA string) (Branch, error) {
	branchName, err := NewName(name)
	if err != nil {
		return Branch{}, ErrInvalidRepositoryData("branch name", err)
	}

	sha, err := NewCommitSHA(lastCommitSHA)
	if err != nil {
		return Branch{}, ErrInvalidRepositoryData("commit SHA", err)
	}

	return Branch{name: branchName, lastCommitSHA: sha}, nil
}

func (b Branch) Name() Name {
	return b.name
}

func (b Branch) LastCommitSHA() CommitSHA {
	return b.lastCommitSHA
}

// RepositoryView is a non-fork repository assembled with its branches
type RepositoryView struct {
	repositoryName Name
	ownerLogin     Login
	branches       []Branch
}

// NewRepositoryView assembles a view for a non-fork repository.
// Branch order is kept as given.
func NewRepositoryView(repository Repository, branches []Branch) (RepositoryView, error) {
	if repository.IsFork() {
		return RepositoryView{}, ErrInvalidRepositoryData(
			"repository",
			fmt.Errorf("%s/%s is a fork", repository.OwnerLogin(), repository.Name()),
		)
	}

	owned := make([]Branch, len(branches))
	copy(owned, branches)

	return RepositoryView{
		repositoryName: repository.Name(),
		ownerLogin:     repository.OwnerLogin(),
		branches:       owned,
	}, nil
}

func (v RepositoryView) RepositoryName() Name {
	return v.repositoryName
}

func (v RepositoryView) OwnerLogin() Login {
	return v.ownerLogin
}

// Branches returns a copy of the branches in remote API order
func (v RepositoryView) Branches() []Branch {
	branches := make([]Branch, len(v.branches))
	copy(branches, v.branches)
	return branches
}
