package githubv2

import (
	"fmt"

	"github.com/nixon/githubv2/xmlkind"
)

// record is the shared base for decoded records. Children the typed field
// switch does not recognize are retained here instead of being dropped, so
// additions to the wire format remain visible to callers.
type record struct {
	extra map[string]any
}

func (r *record) put(name string, value any) {
	if r.extra == nil {
		r.extra = make(map[string]any)
	}
	r.extra[name] = value
}

// Field returns a decoded child that has no typed field on the record.
func (r *record) Field(name string) (any, bool) {
	v, ok := r.extra[name]
	return v, ok
}

// assign stores value into dst when it has the expected type, reporting
// whether the assignment happened.
func assign[T any](dst *T, value any) bool {
	v, ok := value.(T)
	if ok {
		*dst = v
	}
	return ok
}

// assignSlice converts a decoded sequence into a typed slice, reporting
// whether every element had the expected type.
func assignSlice[T any](dst *[]T, value any) bool {
	items, ok := value.([]any)
	if !ok {
		return false
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		v, ok := item.(T)
		if !ok {
			return false
		}
		out = append(out, v)
	}
	*dst = out
	return true
}

// User is a GitHub user.
type User struct {
	record

	ID         int
	Login      string
	Name       string
	Email      string
	Blog       string
	Company    string
	Location   string
	GravatarID string

	FollowersCount  int
	FollowingCount  int
	PublicGistCount int
	PublicRepoCount int

	Plan      *Plan
	CreatedAt string
}

func (u *User) SetField(name string, value any) {
	ok := false
	switch name {
	case "id":
		ok = assign(&u.ID, value)
	case "login":
		ok = assign(&u.Login, value)
	case "name":
		ok = assign(&u.Name, value)
	case "email":
		ok = assign(&u.Email, value)
	case "blog":
		ok = assign(&u.Blog, value)
	case "company":
		ok = assign(&u.Company, value)
	case "location":
		ok = assign(&u.Location, value)
	case "gravatar_id":
		ok = assign(&u.GravatarID, value)
	case "followers_count":
		ok = assign(&u.FollowersCount, value)
	case "following_count":
		ok = assign(&u.FollowingCount, value)
	case "public_gist_count":
		ok = assign(&u.PublicGistCount, value)
	case "public_repo_count":
		ok = assign(&u.PublicRepoCount, value)
	case "plan":
		ok = assign(&u.Plan, value)
	case "created_at":
		ok = assign(&u.CreatedAt, value)
	}
	if !ok {
		u.put(name, value)
	}
}

func (u *User) String() string {
	return fmt.Sprintf("<<User %s>>", u.Name)
}

// Plan is a GitHub billing plan, nested inside an authenticated user.
type Plan struct {
	record

	Name          string
	Collaborators int
	Space         int
	PrivateRepos  int
}

func (p *Plan) SetField(name string, value any) {
	ok := false
	switch name {
	case "name":
		ok = assign(&p.Name, value)
	case "collaborators":
		ok = assign(&p.Collaborators, value)
	case "space":
		ok = assign(&p.Space, value)
	case "private_repos":
		ok = assign(&p.PrivateRepos, value)
	}
	if !ok {
		p.put(name, value)
	}
}

func (p *Plan) String() string {
	return fmt.Sprintf("<<Plan %s>>", p.Name)
}

// Repository is a GitHub repository. Search results reuse this shape with a
// partially different field set (username, followers, score).
type Repository struct {
	record

	Owner       string
	Name        string
	Description string
	Homepage    string
	URL         string
	Language    string

	Fork    bool
	Private bool

	Forks      int
	Watchers   int
	OpenIssues int
	Size       int

	// Search result fields.
	Username  string
	Followers int
	Score     float64

	Pushed  string
	Created string
}

func (r *Repository) SetField(name string, value any) {
	ok := false
	switch name {
	case "owner":
		ok = assign(&r.Owner, value)
	case "name":
		ok = assign(&r.Name, value)
	case "description":
		ok = assign(&r.Description, value)
	case "homepage":
		ok = assign(&r.Homepage, value)
	case "url":
		ok = assign(&r.URL, value)
	case "language":
		ok = assign(&r.Language, value)
	case "fork":
		ok = assign(&r.Fork, value)
	case "private":
		ok = assign(&r.Private, value)
	case "forks":
		ok = assign(&r.Forks, value)
	case "watchers":
		ok = assign(&r.Watchers, value)
	case "open_issues":
		ok = assign(&r.OpenIssues, value)
	case "size":
		ok = assign(&r.Size, value)
	case "username":
		ok = assign(&r.Username, value)
	case "followers":
		ok = assign(&r.Followers, value)
	case "score":
		ok = assign(&r.Score, value)
	case "pushed":
		ok = assign(&r.Pushed, value)
	case "created":
		ok = assign(&r.Created, value)
	}
	if !ok {
		r.put(name, value)
	}
}

func (r *Repository) String() string {
	return fmt.Sprintf("<<Repository %s/%s>>", r.Owner, r.Name)
}

// PublicKey is an SSH public key attached to a user.
type PublicKey struct {
	record

	ID    int
	Title string
	Key   string
}

func (k *PublicKey) SetField(name string, value any) {
	ok := false
	switch name {
	case "id":
		ok = assign(&k.ID, value)
	case "title":
		ok = assign(&k.Title, value)
	case "key":
		ok = assign(&k.Key, value)
	}
	if !ok {
		k.put(name, value)
	}
}

func (k *PublicKey) String() string {
	return fmt.Sprintf("<<Public key %s>>", k.Title)
}

// Commit is a commit on a repository branch.
type Commit struct {
	record

	ID      string
	Tree    string
	Message string
	URL     string

	AuthoredDate  string
	CommittedDate string

	Author    *Author
	Committer *Committer
	Parents   []*Parent
}

func (c *Commit) SetField(name string, value any) {
	ok := false
	switch name {
	case "id":
		ok = assign(&c.ID, value)
	case "tree":
		ok = assign(&c.Tree, value)
	case "message":
		ok = assign(&c.Message, value)
	case "url":
		ok = assign(&c.URL, value)
	case "authored_date":
		ok = assign(&c.AuthoredDate, value)
	case "committed_date":
		ok = assign(&c.CommittedDate, value)
	case "author":
		ok = assign(&c.Author, value)
	case "committer":
		ok = assign(&c.Committer, value)
	case "parents":
		ok = assignSlice(&c.Parents, value)
	}
	if !ok {
		c.put(name, value)
	}
}

func (c *Commit) String() string {
	return fmt.Sprintf("<<Commit: %s>>", c.ID)
}

// Parent is a commit parent. It decodes exactly like a commit but registers
// under its own kind name.
type Parent struct {
	Commit
}

// Author is the user who authored a commit. It decodes exactly like a user
// but registers under its own kind name.
type Author struct {
	User
}

// Committer is the user who committed a commit. It decodes exactly like a
// user but registers under its own kind name.
type Committer struct {
	User
}

// Issue is an entry in a repository's issue tracker. The user field is a
// plain login string: the issue payload's <user> element collides with the
// user record tag but carries no record structure.
type Issue struct {
	record

	Number int
	Title  string
	Body   string
	State  string
	User   string
	Votes  int

	CreatedAt string
	UpdatedAt string
	ClosedAt  string
}

func (i *Issue) SetField(name string, value any) {
	ok := false
	switch name {
	case "number":
		ok = assign(&i.Number, value)
	case "title":
		ok = assign(&i.Title, value)
	case "body":
		ok = assign(&i.Body, value)
	case "state":
		ok = assign(&i.State, value)
	case "user":
		ok = assign(&i.User, value)
	case "votes":
		ok = assign(&i.Votes, value)
	case "created_at":
		ok = assign(&i.CreatedAt, value)
	case "updated_at":
		ok = assign(&i.UpdatedAt, value)
	case "closed_at":
		ok = assign(&i.ClosedAt, value)
	}
	if !ok {
		i.put(name, value)
	}
}

func (i *Issue) String() string {
	return fmt.Sprintf("<<Issue #%d>>", i.Number)
}

// registerKinds binds the record shapes into a registry. Parent, author,
// and committer borrow the structural decoding of commit and user through
// embedding while keeping distinct kind identities.
func registerKinds(reg *xmlkind.Registry) {
	reg.Register("user", xmlkind.RecordKind{New: func() xmlkind.Record { return new(User) }})
	reg.Register("plan", xmlkind.RecordKind{New: func() xmlkind.Record { return new(Plan) }})
	reg.Register("repository", xmlkind.RecordKind{New: func() xmlkind.Record { return new(Repository) }})
	reg.Register("public-key", xmlkind.RecordKind{New: func() xmlkind.Record { return new(PublicKey) }})
	reg.Register("commit", xmlkind.RecordKind{New: func() xmlkind.Record { return new(Commit) }})
	reg.Register("parent", xmlkind.RecordKind{New: func() xmlkind.Record { return new(Parent) }})
	reg.Register("author", xmlkind.RecordKind{New: func() xmlkind.Record { return new(Author) }})
	reg.Register("committer", xmlkind.RecordKind{New: func() xmlkind.Record { return new(Committer) }})
	reg.Register("issue", xmlkind.RecordKind{New: func() xmlkind.Record { return new(Issue) }})
}
