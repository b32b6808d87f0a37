package githubv2

import (
	"time"

	"github.com/nixon/githubv2/errors"
)

// TimeLayout is the timestamp layout used by most v2 XML responses.
const TimeLayout = "2006/01/02 15:04:05 -0700"

// ParseTime parses a timestamp string from the API. Datetime fields decode
// as raw strings; this converts them on demand. Both the v2 layout and
// RFC3339 (used by commit timestamps) are accepted.
func ParseTime(s string) (time.Time, error) {
	for _, layout := range []string{TimeLayout, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Newf(errors.CodeInvalidInput, "unrecognized timestamp %q", s)
}
