package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/qingliul/huangbinhong-backend-go/internal/logging"
	"github.com/qingliul/huangbinhong-backend-go/pkg/response"
)

// Recovery turns a handler panic into the generic 500 envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		logging.Ctx(c.Request.Context()).Error().
			Str("panic", fmt.Sprint(recovered)).
			Str("path", c.Request.URL.Path).
			Msg("recovered from panic")
		response.InternalError(c)
	})
}
