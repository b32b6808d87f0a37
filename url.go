package githubv2

import (
	"strings"

	"github.com/google/go-querystring/query"

	"github.com/nixon/githubv2/errors"
)

// DefaultBaseURL is the fixed base path of the XML API.
const DefaultBaseURL = "http://github.com/api/v2/xml/"

// credentials is the query parameter pair appended to authenticated
// requests.
type credentials struct {
	Login string `url:"login"`
	Token string `url:"token"`
}

// requestURL builds the fully qualified URL for a resource path. When both
// login and token are present their pair is appended to the query string,
// after any parameters already in the path.
func (c *Client) requestURL(path string) (string, error) {
	u := c.baseURL + path
	if c.login == "" || c.token == "" {
		return u, nil
	}

	values, err := query.Values(credentials{Login: c.login, Token: c.token})
	if err != nil {
		return "", errors.Wrap(err, errors.CodeInvalidInput, "failed to encode credentials")
	}

	sep := "?"
	if strings.Contains(u, "?") {
		sep = "&"
	}
	return u + sep + values.Encode(), nil
}
