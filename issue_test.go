package githubv2_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nixon/githubv2"
	"github.com/nixon/githubv2/errors"
	"github.com/nixon/githubv2/mocks"
)

const issueListXML = `<issues type="array">
	<issue>
		<number type="integer">1</number>
		<title type="string">Branch listing fails on empty repos</title>
		<body type="string">Calling branches() on a fresh repo raises.</body>
		<state type="string">open</state>
		<user>dustin22</user>
		<votes type="integer">3</votes>
		<created-at type="datetime">2009/04/17 14:55:33 -0700</created-at>
		<updated-at type="datetime">2009/04/18 09:12:04 -0700</updated-at>
	</issue>
	<issue>
		<number type="integer">2</number>
		<title type="string">Add paging support</title>
		<state type="string">open</state>
		<user>someone</user>
	</issue>
</issues>`

func TestIssues_List(t *testing.T) {
	mock := fixtureFetcher(issueListXML)
	client := githubv2.New(githubv2.WithFetcher(mock))

	issues, err := client.Issues().List(context.Background(), "dustin", "py-github")
	require.NoError(t, err)

	require.Len(t, issues, 2)
	assert.Equal(t, 1, issues[0].Number)
	assert.Equal(t, "Branch listing fails on empty repos", issues[0].Title)
	assert.Equal(t, 3, issues[0].Votes)
	assert.Equal(t, "<<Issue #1>>", issues[0].String())

	// The issue's <user> element decodes as a plain login string while the
	// user kind is shadowed.
	assert.Equal(t, "dustin22", issues[0].User)
	assert.Equal(t, "someone", issues[1].User)

	// Default state is open.
	require.Len(t, mock.FetchCalls(), 1)
	assert.Equal(t, "http://github.com/api/v2/xml/issues/list/dustin/py-github/open", mock.FetchCalls()[0].URL)
}

func TestIssues_List_WithState(t *testing.T) {
	mock := fixtureFetcher(`<issues type="array"></issues>`)
	client := githubv2.New(githubv2.WithFetcher(mock))

	_, err := client.Issues().List(context.Background(), "dustin", "py-github",
		githubv2.WithState(githubv2.StateClosed),
	)
	require.NoError(t, err)

	require.Len(t, mock.FetchCalls(), 1)
	assert.Equal(t, "http://github.com/api/v2/xml/issues/list/dustin/py-github/closed", mock.FetchCalls()[0].URL)
}

func TestIssues_List_RegistryUnchangedAfterSuccess(t *testing.T) {
	client := githubv2.New(githubv2.WithFetcher(fixtureFetcher(issueListXML)))
	before := client.Registry().Known()

	_, err := client.Issues().List(context.Background(), "dustin", "py-github")
	require.NoError(t, err)

	assert.Equal(t, before, client.Registry().Known())
}

func TestIssues_List_RegistryRestoredAfterFailure(t *testing.T) {
	// The second issue's <mystery> child is unresolvable, so decoding
	// fails part way through. The user kind must still be restored.
	broken := `<issues type="array">
		<issue>
			<number type="integer">1</number>
			<user>dustin</user>
		</issue>
		<issue>
			<mystery>?</mystery>
		</issue>
	</issues>`

	fixtures := map[string]string{
		"http://github.com/api/v2/xml/issues/list/dustin/py-github/open": broken,
		"http://github.com/api/v2/xml/user/show/dustin":                  userShowXML,
	}
	mock := &mocks.FetcherMock{
		FetchFunc: func(_ context.Context, url string) (io.ReadCloser, error) {
			body, ok := fixtures[url]
			if !ok {
				panic("unexpected fetch: " + url)
			}
			return io.NopCloser(strings.NewReader(body)), nil
		},
	}

	client := githubv2.New(githubv2.WithFetcher(mock))
	before := client.Registry().Known()

	_, err := client.Issues().List(context.Background(), "dustin", "py-github")
	require.Error(t, err)
	assert.Equal(t, errors.CodeDecodeFailed, errors.GetCode(err))
	assert.Equal(t, before, client.Registry().Known())

	// The user kind decodes records again after the restore.
	user, err := client.Users().Show(context.Background(), "dustin")
	require.NoError(t, err)
	assert.Equal(t, "Dustin Sallings", user.Name)
}
