// Package handler holds the gin handlers of the content API. Handlers bind
// query parameters, call a service and write the response envelope.
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/qingliul/huangbinhong-backend-go/internal/logging"
	"github.com/qingliul/huangbinhong-backend-go/internal/service"
	"github.com/qingliul/huangbinhong-backend-go/pkg/response"
)

// respondError maps a service error onto the envelope. Unclassified errors
// are logged and reported as a generic 500.
func respondError(c *gin.Context, err error) {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		switch {
		case errors.Is(err, service.ErrInvalidArgument):
			response.BadRequest(c, svcErr.Msg)
			return
		case errors.Is(err, service.ErrNotFound):
			response.NotFound(c, svcErr.Msg)
			return
		case errors.Is(err, service.ErrConflict):
			response.Conflict(c, svcErr.Msg)
			return
		}
	}

	_ = c.Error(err)
	logging.Ctx(c.Request.Context()).Error().Err(err).
		Str("method", c.Request.Method).
		Str("route", c.FullPath()).
		Msg("request failed")
	response.InternalError(c)
}

// bindQuery binds the query string into obj, answering 400 on failure.
func bindQuery(c *gin.Context, obj any) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		response.ErrorWithData(c, http.StatusBadRequest, response.MsgBindFailed, bindErrors(err))
		return false
	}
	return true
}

func bindErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"query": err.Error()}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = validationMessage(fe)
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "不能为空"
	case "gt":
		return "必须大于" + fe.Param()
	case tagCSVInts:
		return "必须为逗号分隔的正整数"
	default:
		return "校验失败: " + fe.Tag()
	}
}

// queryID reads a required positive integer query parameter. msg is sent
// with the 400 when it is missing or malformed.
func queryID(c *gin.Context, name, msg string) (int, bool) {
	raw := strings.TrimSpace(c.Query(name))
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		response.BadRequest(c, msg)
		return 0, false
	}
	return id, true
}
