package domain

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// LatestAlias is the release token resolving to the most recent release.
const LatestAlias = "latest"

// IsLatest reports whether token is the most-recent-release alias.
func IsLatest(token string) bool {
	return strings.EqualFold(strings.TrimSpace(token), LatestAlias)
}

// Version wraps semver.Version for additional methods.
type Version struct {
	*semver.Version
}

// NewVersion creates a new Version from a string.
func NewVersion(s string) (*Version, error) {
	v, err := semver.NewVersion(s)
	if err != nil {
		return nil, err
	}
	return &Version{v}, nil
}

// Compare compares two versions.
func (v *Version) Compare(other *Version) int {
	return v.Version.Compare(other.Version)
}

// NewerThan reports whether v is strictly greater than other.
func (v *Version) NewerThan(other *Version) bool {
	return v.Compare(other) > 0
}

// String returns the version string with v prefix.
func (v *Version) String() string {
	return "v" + v.Version.String()
}
