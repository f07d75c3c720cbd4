package access

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"capstack-api/internal/auth"

	"github.com/gin-gonic/gin"
)

type demoPayload struct {
	IsGuest bool   `json:"isGuest"`
	Note    string `json:"note"`
}

func branchRouter(attach auth.Identity) (*gin.Engine, *bool) {
	gin.SetMode(gin.TestMode)
	realCalled := false

	r := gin.New()
	r.GET("/x", func(c *gin.Context) {
		if attach.Kind != auth.KindAnonymous {
			ctx := auth.WithIdentity(c.Request.Context(), attach)
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}, DemoOrReal(
		func() any { return demoPayload{IsGuest: true, Note: RegisterNote} },
		func(c *gin.Context) {
			realCalled = true
			c.JSON(200, gin.H{"isGuest": false})
		},
	))
	return r, &realCalled
}

func serve(r *gin.Engine) (*httptest.ResponseRecorder, map[string]any) {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestDemoOrReal_AnonymousGetsDemo(t *testing.T) {
	r, realCalled := branchRouter(auth.Anonymous)
	w, body := serve(r)
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body["isGuest"] != true {
		t.Fatalf("expected isGuest:true demo payload, got %v", body)
	}
	if *realCalled {
		t.Fatalf("real handler must not run for anonymous")
	}
}

func TestDemoOrReal_GuestGetsDemo(t *testing.T) {
	r, realCalled := branchRouter(auth.Identity{Kind: auth.KindGuest, UserID: "guest_1", Name: "Guest User"})
	w, body := serve(r)
	if w.Code != 200 || body["isGuest"] != true {
		t.Fatalf("expected demo payload, got %d %v", w.Code, body)
	}
	if *realCalled {
		t.Fatalf("real handler must not run for guest")
	}
}

func TestDemoOrReal_AuthenticatedGetsReal(t *testing.T) {
	r, realCalled := branchRouter(auth.Identity{Kind: auth.KindAuthenticated, UserID: "user-1"})
	w, body := serve(r)
	if w.Code != 200 || body["isGuest"] != false {
		t.Fatalf("expected real payload, got %d %v", w.Code, body)
	}
	if !*realCalled {
		t.Fatalf("real handler should have run")
	}
}
