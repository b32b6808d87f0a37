package githubv2

import (
	"context"
	"net/url"
)

// ReposEndpoint exposes the read operations of the repository resource
// family.
type ReposEndpoint struct {
	client *Client
}

// ForUser returns the repositories of the given user.
func (e *ReposEndpoint) ForUser(ctx context.Context, username string) ([]*Repository, error) {
	return fetchList[*Repository](ctx, e.client, "repos/show/"+username)
}

// Search finds repositories matching the given term. The term is free-form
// and is query-escaped (spaces become "+").
func (e *ReposEndpoint) Search(ctx context.Context, term string) ([]*Repository, error) {
	return fetchList[*Repository](ctx, e.client, "repos/search/"+url.QueryEscape(term))
}

// Branches lists the branches of a repository as a mapping from branch name
// to commit id. The branch listing bypasses the generic decoder: its
// response is a flat element whose children map names to raw text.
func (e *ReposEndpoint) Branches(ctx context.Context, user, repo string) (map[string]string, error) {
	doc, err := e.client.fetchDocument(ctx, "repos/show/"+user+"/"+repo+"/branches")
	if err != nil {
		return nil, err
	}

	branches := make(map[string]string)
	for _, ch := range doc.Root().ChildElements() {
		branches[ch.Tag] = ch.Text()
	}
	return branches, nil
}
