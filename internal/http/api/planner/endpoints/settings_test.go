package endpoints

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Onimuxha/wexly/internal/http/api/planner/packets"
)

func TestLanguage_DefaultsToEnglish(t *testing.T) {
	store := newMemStore()
	r := newTestRouter(t, store, routerOptions{})

	w := doJSON(t, r, http.MethodGet, "/api/planner/settings/language", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody[packets.LanguageResponse](t, w)
	assert.Equal(t, "en", resp.Language)
}

func TestLanguage_SetAndGet(t *testing.T) {
	store := newMemStore()
	r := newTestRouter(t, store, routerOptions{})

	w := doJSON(t, r, http.MethodPut, "/api/planner/settings/language",
		packets.UpdateLanguageRequest{Language: "kh"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/planner/settings/language", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[packets.LanguageResponse](t, w)
	assert.Equal(t, "kh", resp.Language)
}

func TestLanguage_RejectsUnknownCode(t *testing.T) {
	store := newMemStore()
	r := newTestRouter(t, store, routerOptions{})

	w := doJSON(t, r, http.MethodPut, "/api/planner/settings/language",
		packets.UpdateLanguageRequest{Language: "fr"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
