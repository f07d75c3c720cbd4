// Package access holds the demo/real branch policy for read endpoints.
//
// Read endpoints serve anonymous and guest callers a fixed synthetic payload
// instead of failing with 401/403. Mutation safety is structural: mutating
// routes never pass through this package, only through auth.RequireUser.
package access

import (
	"net/http"

	"capstack-api/internal/auth"

	"github.com/gin-gonic/gin"
)

// RegisterNote accompanies every demo payload so clients can surface an
// upgrade prompt.
const RegisterNote = "Sample data shown. Create an account to see your personalized numbers."

// DemoFunc produces the synthetic payload for anonymous/guest callers.
// It must not touch the database.
type DemoFunc func() any

// DemoOrReal returns a handler that serves demo() to anonymous and guest
// identities and delegates to real for authenticated ones. The repeated
// per-endpoint guest check lives here and only here.
func DemoOrReal(demo DemoFunc, real gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := auth.IdentityFrom(c.Request.Context())
		if id.Kind != auth.KindAuthenticated {
			c.JSON(http.StatusOK, demo())
			return
		}
		real(c)
	}
}
