package githubv2

import (
	"context"

	"github.com/beevik/etree"

	"github.com/nixon/githubv2/errors"
	"github.com/nixon/githubv2/xmlkind"
)

// fetchDocument performs one GET for the given resource path and parses the
// response body into an element tree.
func (c *Client) fetchDocument(ctx context.Context, path string) (*etree.Document, error) {
	url, err := c.requestURL(path)
	if err != nil {
		return nil, err
	}

	body, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, wrapFetch(err, path)
	}
	defer func() { _ = body.Close() }()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, errors.Wrapf(err, errors.CodeDecodeFailed, "failed to parse response for %s", path)
	}
	if doc.Root() == nil {
		return nil, errors.Newf(errors.CodeDecodeFailed, "empty response for %s", path)
	}
	return doc, nil
}

// decodeRoot fetches a resource and decodes its top-level element.
func (c *Client) decodeRoot(ctx context.Context, path string) (any, error) {
	doc, err := c.fetchDocument(ctx, path)
	if err != nil {
		return nil, err
	}
	return xmlkind.Decode(c.registry, doc.Root())
}

// fetchOne fetches a resource whose response decodes to a single record.
func fetchOne[T any](ctx context.Context, c *Client, path string) (T, error) {
	var zero T
	v, err := c.decodeRoot(ctx, path)
	if err != nil {
		return zero, err
	}
	rec, ok := v.(T)
	if !ok {
		return zero, errors.Newf(errors.CodeDecodeFailed, "unexpected response shape %T for %s", v, path)
	}
	return rec, nil
}

// fetchList fetches a resource whose response decodes to a sequence of
// records.
func fetchList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	v, err := c.decodeRoot(ctx, path)
	if err != nil {
		return nil, err
	}
	items, ok := v.([]any)
	if !ok {
		return nil, errors.Newf(errors.CodeDecodeFailed, "unexpected response shape %T for %s", v, path)
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		rec, ok := item.(T)
		if !ok {
			return nil, errors.Newf(errors.CodeDecodeFailed, "unexpected %T in response for %s", item, path)
		}
		out = append(out, rec)
	}
	return out, nil
}
