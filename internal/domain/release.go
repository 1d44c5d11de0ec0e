package domain

// Release is the descriptor of a single upstream release.

type Release struct {
	ID      int64
	TagName string
}

// NewRelease creates a Release. Both fields are expected to come from a
// validated upstream response.
func NewRelease(id int64, tagName string) *Release {
	return &Release{ID: id, TagName: tagName}
}

// Version parses the tag name as a semantic version.
func (r *Release) Version() (*Version, error) {
	return NewVersion(r.TagName)
}
