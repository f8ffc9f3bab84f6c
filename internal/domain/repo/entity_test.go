package repo_test

import (
	"errors"
	"testing"

	"github-repos-proxy/internal/domain/repo"
)

func TestNewRepository(t *testing.T) {
	tests := []struct {
		name       string
		repoName   string
		ownerLogin string
		isFork     bool
		wantErr    bool
	}{
		{
			name:       "valid repository",
			repoName:   "my-repo",
			ownerLogin: "octocat",
			wantErr:    false,
		},
		{
			name:       "valid fork",
			repoName:   "forked-repo",
			ownerLogin: "octocat",
			isFork:     true,
			wantErr:    false,
		},
		{
			name:       "missing name",
			repoName:   "",
			ownerLogin: "octocat",
			wantErr:    true,
		},
		{
			name:       "missing owner",
			repoName:   "my-repo",
			ownerLogin: "",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repository, err := repo.NewRepository(tt.repoName, tt.ownerLogin, tt.isFork)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewRepository() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				var domainErr *repo.DomainError
				if !errors.As(err, &domainErr) || domainErr.Code != repo.CodeInvalidRepositoryData {
					t.Errorf("NewRepository() error = %v, want %s", err, repo.CodeInvalidRepositoryData)
				}
				return
			}
			if repository.Name().String() != tt.repoName {
				t.Errorf("Name = %v, want %v", repository.Name().String(), tt.repoName)
			}
			if repository.OwnerLogin().String() != tt.ownerLogin {
				t.Errorf("OwnerLogin = %v, want %v", repository.OwnerLogin().String(), tt.ownerLogin)
			}
			if repository.IsFork() != tt.isFork {
				t.Errorf("IsFork = %v, want %v", repository.IsFork(), tt.isFork)
			}
		})
	}
}

func TestNewBranch(t *testing.T) {
	branch, err := repo.NewBranch("main", "aaa111")
	if err != nil {
		t.Fatalf("NewBranch() error = %v", err)
	}
	if branch.Name().String() != "main" {
		t.Errorf("Name = %v, want main", branch.Name().String())
	}
	if branch.LastCommitSHA().String() != "aaa111" {
		t.Errorf("LastCommitSHA = %v, want aaa111", branch.LastCommitSHA().String())
	}

	if _, err := repo.NewBranch("", "aaa111"); err == nil {
		t.Error("NewBranch() with empty name should fail")
	}
	if _, err := repo.NewBranch("main", ""); err == nil {
		t.Error("NewBranch() with empty SHA should fail")
	}
}

func TestNewRepositoryView(t *testing.T) {
	repository, _ := repo.NewRepository("my-repo", "octocat", false)
	main, _ := repo.NewBranch("main", "aaa111")
	dev, _ := repo.NewBranch("dev", "bbb222")
	branches := []repo.Branch{main, dev}

	view, err := repo.NewRepositoryView(repository, branches)
	if err != nil {
		t.Fatalf("NewRepositoryView() error = %v", err)
	}

	if view.RepositoryName().String() != "my-repo" {
		t.Errorf("RepositoryName = %v, want my-repo", view.RepositoryName().String())
	}
	if view.OwnerLogin().String() != "octocat" {
		t.Errorf("OwnerLogin = %v, want octocat", view.OwnerLogin().String())
	}

	got := view.Branches()
	if len(got) != 2 || got[0].Name().String() != "main" || got[1].Name().String() != "dev" {
		t.Errorf("Branches = %v, want [main dev] in order", got)
	}

	// the view owns its branches
	branches[0] = dev
	got[1] = main
	again := view.Branches()
	if again[0].Name().String() != "main" || again[1].Name().String() != "dev" {
		t.Errorf("Branches mutated through caller slices: %v", again)
	}
}

func TestNewRepositoryViewRejectsFork(t *testing.T) {
	fork, _ := repo.NewRepository("forked-repo", "octocat", true)

	if _, err := repo.NewRepositoryView(fork, nil); err == nil {
		t.Error("NewRepositoryView() should reject forks")
	}
}

func TestNewRepositoryViewWithoutBranches(t *testing.T) {
	repository, _ := repo.NewRepository("empty-repo", "octocat", false)

	view, err := repo.NewRepositoryView(repository, nil)
	if err != nil {
		t.Fatalf("NewRepositoryView() error = %v", err)
	}
	if branches := view.Branches(); branches == nil || len(branches) != 0 {
		t.Errorf("Branches = %#v, want empty non-nil slice", branches)
	}
}
