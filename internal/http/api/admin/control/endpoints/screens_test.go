package endpoints_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tickworks/fuzzyclock/internal/db"
	"github.com/tickworks/fuzzyclock/internal/fuzzy"
	"github.com/tickworks/fuzzyclock/internal/http/api"
	authapi "github.com/tickworks/fuzzyclock/internal/http/api/admin/auth/endpoints"
	"github.com/tickworks/fuzzyclock/internal/http/api/admin/control/endpoints"
	"github.com/tickworks/fuzzyclock/internal/http/api/admin/control/packets"
)

const testSecret = "supersecret"

// frozenClock controls time for deterministic testing.
type frozenClock struct {
	current time.Time
}

func (f frozenClock) Now() time.Time {
	return f.current
}

func setupRouter(store db.Store, clk frozenClock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/admin",
	},
		authapi.AuthPublicModule(testSecret, store),
	)
	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/admin",
		Auth:      true,
		SecretKey: testSecret,
		Store:     store,
	},
		endpoints.ScreenModule(store, clk),
		authapi.AuthSessionModule(testSecret, store),
	)
	return r
}

func doJSON(t *testing.T, router *gin.Engine, method, url, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// TestScreenLifecycle runs against a real Postgres; it skips when
// TEST_DATABASE_URL is not set.
func TestScreenLifecycle(t *testing.T) {
	if err := db.InitTestDB("../../../../../../migrations"); err != nil {
		t.Skipf("test database not available, skipping: %v", err)
	}

	// 19:45 UTC is 15:45 in New York (summer time)
	now := time.Date(2026, time.June, 1, 19, 45, 0, 0, time.UTC)
	router := setupRouter(db.TestStore, frozenClock{current: now})

	// signup returns a token
	email := fmt.Sprintf("admin+%d@example.com", time.Now().UnixNano())
	w := doJSON(t, router, http.MethodPost, "/api/admin/auth/signup", "", map[string]string{
		"email":    email,
		"password": "testpassword",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var signupResp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &signupResp))
	require.NotEmpty(t, signupResp.Token)
	token := signupResp.Token

	// unauthorized without a token
	w = doJSON(t, router, http.MethodGet, "/api/admin/screens", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// create a screen in New York
	tz := "America/New_York"
	w = doJSON(t, router, http.MethodPost, "/api/admin/screens", token, packets.CreateScreenRequest{
		Name:     "lobby clock",
		Timezone: &tz,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var screen packets.ScreenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &screen))
	assert.Equal(t, "lobby clock", screen.Name)
	assert.Equal(t, tz, screen.Timezone)
	assert.False(t, screen.Paired)

	// unknown timezones are rejected
	bad := "Not/AZone"
	w = doJSON(t, router, http.MethodPost, "/api/admin/screens", token, packets.CreateScreenRequest{
		Name:     "broken clock",
		Timezone: &bad,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// the screen renders its local phrase
	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/admin/screens/%d/phrase", screen.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var preview packets.PhrasePreviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &preview))
	assert.Equal(t, tz, preview.Timezone)
	assert.Equal(t, 15, preview.Hour)
	assert.Equal(t, 45, preview.Minute)
	assert.Equal(t, "quarter to four", preview.Phrase)
	assert.Equal(t, fuzzy.Phrase(preview.Hour, preview.Minute), preview.Phrase)

	// move the screen to UTC
	utc := "UTC"
	w = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/admin/screens/%d", screen.ID), token, packets.UpdateScreenRequest{
		Timezone: &utc,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &screen))
	assert.Equal(t, "UTC", screen.Timezone)

	// now it reads 19:45
	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/admin/screens/%d/phrase", screen.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &preview))
	assert.Equal(t, "quarter to eight", preview.Phrase)

	// delete it
	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/admin/screens/%d", screen.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/admin/screens/%d", screen.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
