package repository

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/compozy/releaseresolver/internal/domain"
)

// releasePayload mirrors the upstream release object; pointers tell a
// missing field apart from a zero value.
type releasePayload struct {
	ID      *int64  `json:"id"`
	TagName *string `json:"tag_name"`
}

// decodeRelease turns a response body into a release. An empty or null
// body yields no release and no error.
func decodeRelease(body []byte) (*domain.Release, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return nil, nil
	}
	var payload releasePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if payload.ID == nil {
		return nil, fmt.Errorf("%w: missing id", ErrMalformedResponse)
	}
	if payload.TagName == nil {
		return nil, fmt.Errorf("%w: missing tag_name", ErrMalformedResponse)
	}
	return domain.NewRelease(*payload.ID, *payload.TagName), nil
}
