package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnazariah/aura-sub009/pkg/models"
)

// The fixture has no GitHub client, so every issue route resolves to the
// not-configured validation error. Positive paths are covered by the
// story service tests against a fake GitHub API.
func TestIssueEndpointsWithoutIntegration(t *testing.T) {
	f := newAPIFixture(t)
	created := createStoryViaAPI(t, f, models.CreateStoryRequest{Title: "linked"})
	id := created["id"].(string)

	for _, path := range []string{"/issue/refresh", "/issue/close"} {
		rec := f.do(t, http.MethodPost, "/api/developer/stories/"+id+path, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code, "path %s body: %s", path, rec.Body.String())
		assert.Equal(t, problemMissingField, decodeJSON[Problem](t, rec).Type)
	}

	rec := f.do(t, http.MethodPost, "/api/developer/stories/"+id+"/issue/comment",
		models.IssueCommentRequest{Message: "status update"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/developer/stories/nope/issue/refresh", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
