package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mockview/mockview/internal/client/session"
	"github.com/mockview/mockview/internal/common"
	"github.com/mockview/mockview/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *session.Memory) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	store := session.NewMemory()
	return New(srv.URL+"/api", store, testLogger()), store
}

func writeEnvelope(w http.ResponseWriter, status int, success bool, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": success,
		"message": message,
		"data":    data,
	})
}

func TestLogin_StoresTokenAndUser(t *testing.T) {
	client, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)
		require.Empty(t, r.Header.Get(common.AuthorizationHeader), "login must not send a token")
		writeEnvelope(w, http.StatusOK, true, "Login successful", map[string]any{
			"access_token": "tok-1",
			"user":         map[string]any{"id": "u-1", "email": "ada@example.com", "name": "Ada"},
		})
	})

	res, err := client.Login(context.Background(), "ada@example.com", "Password1!")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", res.AccessToken)

	token, err := store.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	user, err := store.User(context.Background())
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "ada@example.com", user.Email)
}

func TestLogin_LegacyTokenField(t *testing.T) {
	client, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, true, "Login successful", map[string]any{
			"token": "legacy-tok",
			"user":  map[string]any{"id": "u-1"},
		})
	})

	_, err := client.Login(context.Background(), "ada@example.com", "Password1!")
	require.NoError(t, err)

	token, err := store.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "legacy-tok", token)
}

func TestDo_InjectsBearerToken(t *testing.T) {
	var gotHeader string
	client, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get(common.AuthorizationHeader)
		writeEnvelope(w, http.StatusOK, true, "", map[string]any{"id": "u-1"})
	})
	require.NoError(t, store.SaveToken(context.Background(), "tok-1"))

	_, err := client.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, common.BearerPrefix+"tok-1", gotHeader)
}

func TestDo_UnauthorizedClearsSessionAndNotifies(t *testing.T) {
	client, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, false, "Token has expired", nil)
	})
	require.NoError(t, store.SaveToken(context.Background(), "stale-tok"))

	var notified bool
	client.OnUnauthorized = func() { notified = true }

	_, err := client.Profile(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUnauthorized))

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Token has expired", apiErr.Message)

	assert.True(t, notified, "OnUnauthorized must fire")

	token, err := store.Token(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token, "session must be cleared on 401")
}

func TestDo_NotFoundSentinel(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusNotFound, false, "Interview session not found", nil)
	})

	_, err := client.InterviewFeedback(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Interview session not found", apiErr.Message)
}

func TestDo_ForbiddenSentinel(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusForbidden, false, "Unauthorized access to session", nil)
	})

	_, err := client.InterviewFeedback(context.Background(), "s-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrForbidden))
}

func TestDo_ServerUnreachable(t *testing.T) {
	store := session.NewMemory()
	client := New("http://127.0.0.1:1/api", store, testLogger())

	_, err := client.Profile(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUnavailable))
}

func TestLogout_ClearsLocalSessionOnTransportFailure(t *testing.T) {
	store := session.NewMemory()
	require.NoError(t, store.SaveToken(context.Background(), "tok-1"))
	client := New("http://127.0.0.1:1/api", store, testLogger())

	err := client.Logout(context.Background())
	require.Error(t, err, "transport failure must surface")

	token, terr := store.Token(context.Background())
	require.NoError(t, terr)
	assert.Empty(t, token, "local session must be cleared regardless")
}

func TestLogout_Success(t *testing.T) {
	client, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, true, "Logged out successfully", nil)
	})
	require.NoError(t, store.SaveToken(context.Background(), "tok-1"))

	require.NoError(t, client.Logout(context.Background()))

	token, err := store.Token(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestStartInterview_DecodesSession(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/interview/start", r.URL.Path)
		writeEnvelope(w, http.StatusCreated, true, "Interview session started", map[string]any{
			"session_id":      "s-1",
			"job_role":        "Software Engineer",
			"skill_level":     "Beginner",
			"questions":       []map[string]any{{"id": "q_1", "question": "Tell me about yourself."}},
			"total_questions": 1,
		})
	})

	res, err := client.StartInterview(context.Background(), "Software Engineer", "Beginner", 1)
	require.NoError(t, err)
	assert.Equal(t, "s-1", res.SessionID)
	require.Len(t, res.Questions, 1)
	assert.Equal(t, "q_1", res.Questions[0].ID)
}

func TestDashboardStats_Decodes(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/dashboard/stats", r.URL.Path)
		writeEnvelope(w, http.StatusOK, true, "", map[string]any{
			"interviews":    map[string]any{"total_count": 3, "average_score": 80.0, "latest_score": 90.0},
			"fluency_tests": map[string]any{"total_count": 1},
			"resumes":       map[string]any{"total_count": 2},
			"overall":       map[string]any{"total_activities": 6, "overall_performance": 81.67},
		})
	})

	stats, err := client.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Interviews.TotalCount)
	assert.Equal(t, 81.67, stats.Overall.OverallPerformance)
}

func TestUpdateProfile_RefreshesStoredUser(t *testing.T) {
	client, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		writeEnvelope(w, http.StatusOK, true, "Profile updated successfully",
			map[string]any{"id": "u-1", "name": "Ada L."})
	})
	require.NoError(t, store.SaveToken(context.Background(), "tok-1"))

	user, err := client.UpdateProfile(context.Background(), "Ada L.", "", "")
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", user.Name)

	stored, err := store.User(context.Background())
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Ada L.", stored.Name)
}
