package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mockview/mockview/internal/common"
	"github.com/mockview/mockview/internal/server/auth"
)

var jwtSecret = []byte("test-secret")

func protectedEcho(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := UserIDFromContext(r.Context())
		if !ok {
			t.Fatal("user id missing from context")
		}
		token, ok := TokenFromContext(r.Context())
		if !ok || token == "" {
			t.Fatal("token missing from context")
		}
		writeData(w, map[string]any{"user_id": userID})
	})
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	handler := JWTAuth(jwtSecret, &fakeDenylist{})(protectedEcho(t))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Message != "No authorization token provided" {
		t.Fatalf("unexpected message %q", env.Message)
	}
}

func TestJWTAuth_NotBearer(t *testing.T) {
	handler := JWTAuth(jwtSecret, &fakeDenylist{})(protectedEcho(t))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(common.AuthorizationHeader, "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	token, err := auth.GenerateToken("u-1", jwtSecret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	handler := JWTAuth(jwtSecret, &fakeDenylist{})(protectedEcho(t))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Message != "Token has expired" {
		t.Fatalf("unexpected message %q", env.Message)
	}
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	handler := JWTAuth(jwtSecret, &fakeDenylist{})(protectedEcho(t))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+"not.a.jwt")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Message != "Invalid token" {
		t.Fatalf("unexpected message %q", env.Message)
	}
}

func TestJWTAuth_RevokedToken(t *testing.T) {
	token, err := auth.GenerateToken("u-1", jwtSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	handler := JWTAuth(jwtSecret, &fakeDenylist{denied: true})(protectedEcho(t))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Message != "Token has been revoked" {
		t.Fatalf("unexpected message %q", env.Message)
	}
}

func TestJWTAuth_ValidToken(t *testing.T) {
	token, err := auth.GenerateToken("u-1", jwtSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	handler := JWTAuth(jwtSecret, &fakeDenylist{})(protectedEcho(t))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	data := dataField(t, decodeEnvelope(t, rec))
	if data["user_id"] != "u-1" {
		t.Fatalf("unexpected data: %v", data)
	}
}

func TestRateLimit_RejectsBurstOverflow(t *testing.T) {
	handler := RateLimit(1, 2)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	var last int
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		last = rec.Code
	}
	if last != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after burst, got %d", last)
	}

	// A different client IP gets its own bucket.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for fresh ip, got %d", rec.Code)
	}
}

func TestRecoverer_ConvertsPanicTo500(t *testing.T) {
	handler := Recoverer(testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Message != "Internal server error" {
		t.Fatalf("unexpected message %q", env.Message)
	}
}
