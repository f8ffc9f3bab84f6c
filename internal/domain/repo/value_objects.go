package repo

import (
	"fmt"
	"strings"
)

// Name is a value object representing a repository or branch name
type Name struct {
	value string
}

// NewName creates a new Name with validation
func NewName(name string) (Name, error) {
	if strings.TrimSpace(name) == "" {
		return Name{}, fmt.Errorf("name cannot be empty")
	}

	return Name{value: name}, nil
}

func (n Name) String() string {
	return n.value
}

func (n Name) Equals(other Name) bool {
	return n.value == other.value
}

// Login is a value object representing the login of a repository owner
type Login struct {
	value string
}

// NewLogin creates a new Login with validation
func NewLogin(login string) (Login, error) {
	if strings.TrimSpace(login) == "" {
		return Login{}, fmt.Errorf("owner login cannot be empty")
	}

	return Login{value: login}, nil
}

func (l Login) String() string {
	return l.value
}

func (l Login) Equals(other Login) bool {
	return l.value == other.value
}

// CommitSHA is a value object representing the SHA of a commit
type CommitSHA struct {
	value string
}

// NewCommitSHA creates a new CommitSHA with validation
func NewCommitSHA(sha string) (CommitSHA, error) {
	sha = strings.TrimSpace(sha)

	if sha == "" {
		return CommitSHA{}, fmt.Errorf("commit SHA cannot be empty")
	}

	return CommitSHA{value: sha}, nil
}

func (c CommitSHA) String() string {
	return c.value
}
