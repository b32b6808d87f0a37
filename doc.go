// Package githubv2 is a typed, read-only client for the GitHub API v2 XML
// endpoints.
//
// The package converts the tree-structured XML payloads of the v2 API into
// typed records through a schema-light decoding engine (see the xmlkind
// subpackage): each element's kind is resolved from a type attribute, its
// tag name, or a nested type marker, and dispatched to a scalar converter
// or a registered record shape. No per-endpoint schema is declared; the
// record shapes supply kind identity, a closed field set, and display
// formatting.
//
// # Quick Start
//
//	client := githubv2.New()
//
//	users, err := client.Users().Search(ctx, "dustin")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, u := range users {
//	    fmt.Println(u)
//	}
//
// Authenticated reads attach the login/token pair to every request:
//
//	client := githubv2.New(githubv2.WithCredentials("dustin", "api-token"))
//	keys, err := client.Users().Keys(ctx)
//
// # Endpoints
//
// The client exposes four resource families, each a thin accessor over the
// shared fetch-and-decode path:
//
//   - Users: Search, Show, Keys
//   - Repos: ForUser, Search, Branches
//   - Commits: ForBranch, ForFile
//   - Issues: List (state filter via WithState, default open)
//
// Every operation performs exactly one blocking GET and either fully
// decodes the response or fails; there are no partial results, retries, or
// caching. Branch listing is the one endpoint that bypasses the decoder and
// returns a plain name-to-commit mapping.
//
// # Records
//
// Decoded records are plain structs (User, Plan, Repository, PublicKey,
// Commit, Issue) with display forms matching the wire shapes, for example:
//
//	fmt.Println(repo) // <<Repository dustin/py-github>>
//
// Children the typed fields do not cover are retained and reachable via
// Field:
//
//	if v, ok := repo.Field("pledgie"); ok { ... }
//
// # Fetching
//
// Network access goes through the Fetcher interface; the default
// HTTPFetcher issues one GET per call via net/http. Supply WithFetcher to
// run in restricted environments or to serve canned responses in tests,
// and WithHTTPClient to control timeouts and transports.
//
// # Errors
//
// All failures carry structured codes from the errors subpackage. Decoding
// failures use CodeDecodeFailed and attach the offending element's
// serialized form plus the set of known kinds; HTTP failures map status
// codes (404 to CodeNotFound, 401 to CodeUnauthorized, and so on):
//
//	if errors.GetCode(err) == errors.CodeNotFound {
//	    // repository or user does not exist
//	}
package githubv2
