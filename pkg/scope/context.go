package scope

import (
	"github.com/gin-gonic/gin"

	"nextstep/internal/model"
)

const ctxKey = "nextstep_scope"

// SetToContext stores the verified scope in the gin context.
func SetToContext(c *gin.Context, s model.Scope) {
	c.Set(ctxKey, s)
}

// FromContext returns the scope stored by the auth middleware.
func FromContext(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(ctxKey)
	if !ok {
		return model.Scope{}, false
	}
	s, ok := v.(model.Scope)
	return s, ok
}
