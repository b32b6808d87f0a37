package githubv2_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nixon/githubv2"
)

func TestRepos_ForUser(t *testing.T) {
	mock := fixtureFetcher(`<repositories type="array">
		<repository>
			<owner type="string">dustin</owner>
			<name type="string">py-github</name>
			<description type="string">GitHub API v2 bindings</description>
			<url type="string">http://github.com/dustin/py-github</url>
			<forks type="integer">5</forks>
			<watchers type="integer">21</watchers>
			<open-issues type="integer">2</open-issues>
			<fork type="boolean">false</fork>
			<private type="boolean">false</private>
		</repository>
		<repository>
			<owner type="string">dustin</owner>
			<name type="string">snippets</name>
		</repository>
	</repositories>`)
	client := githubv2.New(githubv2.WithFetcher(mock))

	repos, err := client.Repos().ForUser(context.Background(), "dustin")
	require.NoError(t, err)

	require.Len(t, repos, 2)
	assert.Equal(t, "py-github", repos[0].Name)
	assert.Equal(t, 21, repos[0].Watchers)
	assert.Equal(t, 2, repos[0].OpenIssues)
	assert.False(t, repos[0].Fork)
	assert.Equal(t, "<<Repository dustin/py-github>>", repos[0].String())

	require.Len(t, mock.FetchCalls(), 1)
	assert.Equal(t, "http://github.com/api/v2/xml/repos/show/dustin", mock.FetchCalls()[0].URL)
}

func TestRepos_Search(t *testing.T) {
	mock := fixtureFetcher(`<repositories type="array">
		<repository>
			<name type="string">memcached</name>
			<username type="string">dustin</username>
			<language type="string">C</language>
			<followers type="integer">300</followers>
			<score type="float">8.53</score>
		</repository>
	</repositories>`)
	client := githubv2.New(githubv2.WithFetcher(mock))

	repos, err := client.Repos().Search(context.Background(), "memcached client")
	require.NoError(t, err)

	require.Len(t, repos, 1)
	assert.Equal(t, "memcached", repos[0].Name)
	assert.Equal(t, "dustin", repos[0].Username)
	assert.Equal(t, 300, repos[0].Followers)
	assert.Equal(t, 8.53, repos[0].Score)

	// Free-form terms are query-escaped, spaces as "+".
	require.Len(t, mock.FetchCalls(), 1)
	assert.Equal(t, "http://github.com/api/v2/xml/repos/search/memcached+client", mock.FetchCalls()[0].URL)
}

func TestRepos_Branches(t *testing.T) {
	mock := fixtureFetcher(`<branches>
		<master>4ac5b0cd9a04f8c6b3a4f2e30ab8dcbd54b8d2c4</master>
		<experimental>8b9e4a2d13c7b9ed99e29c4f3f84b3f0e93bd81a</experimental>
	</branches>`)
	client := githubv2.New(githubv2.WithFetcher(mock))

	branches, err := client.Repos().Branches(context.Background(), "dustin", "py-github")
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"master":       "4ac5b0cd9a04f8c6b3a4f2e30ab8dcbd54b8d2c4",
		"experimental": "8b9e4a2d13c7b9ed99e29c4f3f84b3f0e93bd81a",
	}, branches)

	require.Len(t, mock.FetchCalls(), 1)
	assert.Equal(t, "http://github.com/api/v2/xml/repos/show/dustin/py-github/branches", mock.FetchCalls()[0].URL)
}
