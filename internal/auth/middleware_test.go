package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func optionalRouter(m *Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", OptionalAuth(m), func(c *gin.Context) {
		id := IdentityFrom(c.Request.Context())
		c.JSON(200, gin.H{"kind": id.Kind.String(), "userId": id.UserID})
	})
	return r
}

func requireRouter(m *Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/x", RequireUser(m), func(c *gin.Context) {
		uid, _ := UserID(c.Request.Context())
		c.JSON(200, gin.H{"userId": uid})
	})
	return r
}

func doReq(t *testing.T, r *gin.Engine, method, path, authz string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	r.ServeHTTP(w, req)

	var body map[string]any
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("bad json body %q: %v", w.Body.String(), err)
		}
	}
	return w, body
}

func TestOptionalAuth_NoHeaderIsAnonymous200(t *testing.T) {
	m := testManager(t)
	r := optionalRouter(m)

	w, body := doReq(t, r, http.MethodGet, "/x", "")
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body["kind"] != "anonymous" {
		t.Fatalf("expected anonymous, got %v", body["kind"])
	}
}

func TestOptionalAuth_InvalidTokenBehavesLikeNoToken(t *testing.T) {
	m := testManager(t)
	r := optionalRouter(m)

	expired, _ := m.Issue(time.Now().Add(-30*24*time.Hour), "u", "", "n", false)

	for _, authz := range []string{"Bearer garbage", "Bearer " + expired, "NotBearer x"} {
		w, body := doReq(t, r, http.MethodGet, "/x", authz)
		if w.Code != 200 {
			t.Fatalf("%q: expected 200, got %d", authz, w.Code)
		}
		if body["kind"] != "anonymous" {
			t.Fatalf("%q: expected anonymous, got %v", authz, body["kind"])
		}
	}
}

func TestOptionalAuth_AttachesGuestAndUser(t *testing.T) {
	m := testManager(t)
	r := optionalRouter(m)
	now := time.Now()

	guestTok, _ := m.Issue(now, "guest_1", "", "Guest User", true)
	userTok, _ := m.Issue(now, "user-1", "a@b.com", "Alice", false)

	_, body := doReq(t, r, http.MethodGet, "/x", "Bearer "+guestTok)
	if body["kind"] != "guest" || body["userId"] != "guest_1" {
		t.Fatalf("expected guest identity, got %v", body)
	}

	_, body = doReq(t, r, http.MethodGet, "/x", "Bearer "+userTok)
	if body["kind"] != "authenticated" || body["userId"] != "user-1" {
		t.Fatalf("expected authenticated identity, got %v", body)
	}
}

func TestOptionalAuth_PreflightPassesThrough(t *testing.T) {
	m := testManager(t)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.OPTIONS("/x", OptionalAuth(m), func(c *gin.Context) { c.Status(204) })

	w, _ := doReq(t, r, http.MethodOptions, "/x", "Bearer garbage")
	if w.Code != 204 {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestRequireUser_MissingHeader401(t *testing.T) {
	m := testManager(t)
	r := requireRouter(m)

	w, body := doReq(t, r, http.MethodPost, "/x", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if body["error"] != "Authentication required. Please create an account to continue." {
		t.Fatalf("unexpected error body: %v", body)
	}
}

func TestRequireUser_MalformedHeader401(t *testing.T) {
	m := testManager(t)
	r := requireRouter(m)

	for _, authz := range []string{"Bearer ", "Bearer", "Basic abc"} {
		w, body := doReq(t, r, http.MethodPost, "/x", authz)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%q: expected 401, got %d", authz, w.Code)
		}
		if body["error"] != "Invalid token format" {
			t.Fatalf("%q: unexpected error body: %v", authz, body)
		}
	}
}

func TestRequireUser_InvalidToken401(t *testing.T) {
	m := testManager(t)
	r := requireRouter(m)

	expired, _ := m.Issue(time.Now().Add(-30*24*time.Hour), "u", "", "n", false)
	for _, authz := range []string{"Bearer not.a.jwt", "Bearer " + expired} {
		w, _ := doReq(t, r, http.MethodPost, "/x", authz)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%q: expected 401, got %d", authz, w.Code)
		}
	}
}

func TestRequireUser_GuestToken403WithUpgradeHint(t *testing.T) {
	m := testManager(t)
	r := requireRouter(m)

	guestTok, _ := m.Issue(time.Now(), "guest_1", "", "Guest User", true)
	w, body := doReq(t, r, http.MethodPost, "/x", "Bearer "+guestTok)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if body["requiresRegistration"] != true {
		t.Fatalf("expected requiresRegistration flag, got %v", body)
	}
}

func TestRequireUser_UserTokenReachesHandler(t *testing.T) {
	m := testManager(t)
	r := requireRouter(m)

	userTok, _ := m.Issue(time.Now(), "user-1", "a@b.com", "Alice", false)
	w, body := doReq(t, r, http.MethodPost, "/x", "Bearer "+userTok)
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body["userId"] != "user-1" {
		t.Fatalf("expected handler to see user-1, got %v", body)
	}
}
