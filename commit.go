package githubv2

import (
	"context"
	"strings"
)

// DefaultBranch is used when a commit listing is requested with an empty
// branch name.
const DefaultBranch = "master"

// CommitsEndpoint exposes the read operations of the commit resource
// family.
type CommitsEndpoint struct {
	client *Client
}

// ForBranch returns the commits on the given branch. An empty branch
// defaults to DefaultBranch.
func (e *CommitsEndpoint) ForBranch(ctx context.Context, user, repo, branch string) ([]*Commit, error) {
	if branch == "" {
		branch = DefaultBranch
	}
	path := strings.Join([]string{"commits", "list", user, repo, branch}, "/")
	return fetchList[*Commit](ctx, e.client, path)
}

// ForFile returns the commits touching the given file within the given
// branch. An empty branch defaults to DefaultBranch.
func (e *CommitsEndpoint) ForFile(ctx context.Context, user, repo, file, branch string) ([]*Commit, error) {
	if branch == "" {
		branch = DefaultBranch
	}
	path := strings.Join([]string{"commits", "list", user, repo, branch, file}, "/")
	return fetchList[*Commit](ctx, e.client, path)
}
