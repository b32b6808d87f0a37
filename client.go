package githubv2

import (
	"net/http"
	"strings"

	"github.com/nixon/githubv2/xmlkind"
)

// Client provides read access to the GitHub API v2 XML endpoints.
// It holds the caller's credentials, the page fetcher, and the kind
// registry, and constructs the per-resource endpoint accessors.
//
// Example usage:
//
//	client := githubv2.New(githubv2.WithCredentials("dustin", "token"))
//
//	users, err := client.Users().Search(ctx, "dustin")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, u := range users {
//	    fmt.Println(u.Name)
//	}
//
// A Client and its registry are not safe for concurrent use; issue calls
// from a single goroutine, or create one client per goroutine.
type Client struct {
	login    string
	token    string
	baseURL  string
	fetcher  Fetcher
	registry *xmlkind.Registry
}

// Option configures a Client.
type Option func(*Client)

// WithCredentials sets the login and API token appended to every request.
// Both must be set for the credential parameters to be sent.
func WithCredentials(login, token string) Option {
	return func(c *Client) {
		c.login = login
		c.token = token
	}
}

// WithFetcher replaces the default HTTP fetcher. This supports restricted
// execution environments where net/http is unavailable or undesirable, and
// testing with canned responses.
func WithFetcher(fetcher Fetcher) Option {
	return func(c *Client) {
		c.fetcher = fetcher
	}
}

// WithHTTPClient keeps the default fetcher but backs it with the given
// http.Client, allowing timeout and transport control.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.fetcher = NewHTTPFetcher(client)
	}
}

// WithBaseURL overrides the API base URL. A trailing slash is added when
// missing.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		c.baseURL = base
	}
}

// New creates a client with a freshly seeded kind registry. Unauthenticated
// by default; see WithCredentials.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:  DefaultBaseURL,
		fetcher:  NewHTTPFetcher(nil),
		registry: xmlkind.NewRegistry(),
	}
	registerKinds(c.registry)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Users returns the accessor for the user resource family.
func (c *Client) Users() *UsersEndpoint {
	return &UsersEndpoint{client: c}
}

// Repos returns the accessor for the repository resource family.
func (c *Client) Repos() *ReposEndpoint {
	return &ReposEndpoint{client: c}
}

// Commits returns the accessor for the commit resource family.
func (c *Client) Commits() *CommitsEndpoint {
	return &CommitsEndpoint{client: c}
}

// Issues returns the accessor for the issue resource family.
func (c *Client) Issues() *IssuesEndpoint {
	return &IssuesEndpoint{client: c}
}

// Registry returns the client's kind registry.
// This is an escape hatch that allows registering additional record kinds
// or overriding bindings for responses the built-in shapes do not cover.
func (c *Client) Registry() *xmlkind.Registry {
	return c.registry
}
