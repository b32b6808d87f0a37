package githubv2

import (
	"context"
	"strings"

	"github.com/nixon/githubv2/xmlkind"
)

// Issue state constants.
const (
	// StateOpen indicates an issue is open.
	StateOpen = "open"

	// StateClosed indicates an issue is closed.
	StateClosed = "closed"
)

// IssuesEndpoint exposes the read operations of the issue resource family.
type IssuesEndpoint struct {
	client *Client
}

// IssueFilterOption configures issue listing.
type IssueFilterOption func(*listIssuesOptions)

type listIssuesOptions struct {
	state string
}

// WithState filters issues by state ("open" or "closed").
func WithState(state string) IssueFilterOption {
	return func(opts *listIssuesOptions) {
		opts.state = state
	}
}

// List returns the issues of the given repository in the requested state,
// defaulting to open.
//
// Example:
//
//	issues, err := client.Issues().List(ctx, "dustin", "py-github",
//	    githubv2.WithState(githubv2.StateClosed),
//	)
func (e *IssuesEndpoint) List(ctx context.Context, user, repo string, opts ...IssueFilterOption) ([]*Issue, error) {
	options := listIssuesOptions{state: StateOpen}
	for _, opt := range opts {
		opt(&options)
	}

	// The issue payload's <user> element carries a plain login string, not
	// a user record. Shadow the user kind for the duration of the decode;
	// the deferred restore runs whether or not decoding fails.
	restore := e.client.registry.Override("user", xmlkind.StringKind)
	defer restore()

	path := strings.Join([]string{"issues", "list", user, repo, options.state}, "/")
	return fetchList[*Issue](ctx, e.client, path)
}
