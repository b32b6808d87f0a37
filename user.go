package githubv2

import (
	"context"
	"net/url"
)

// UsersEndpoint exposes the read operations of the user resource family.
//
// Endpoint accessors are created through a Client:
//
//	users, err := client.Users().Search(ctx, "dustin")
type UsersEndpoint struct {
	client *Client
}

// Search finds users matching the given query.
func (e *UsersEndpoint) Search(ctx context.Context, q string) ([]*User, error) {
	return fetchList[*User](ctx, e.client, "user/search/"+url.PathEscape(q))
}

// Show returns the info for the given user.
func (e *UsersEndpoint) Show(ctx context.Context, username string) (*User, error) {
	return fetchOne[*User](ctx, e.client, "user/show/"+username)
}

// Keys returns the public keys of the authenticated user. Requires
// credentials.
func (e *UsersEndpoint) Keys(ctx context.Context) ([]*PublicKey, error) {
	return fetchList[*PublicKey](ctx, e.client, "user/keys")
}
