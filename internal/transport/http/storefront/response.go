package storefront

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/murkotick/b2b-catalog-service/internal/transport/apperr"
)

// Response defines the standard API response envelope.
type Response struct {
	Success bool        `json:"success"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
	Meta    Meta        `json:"meta"`
}

type ErrorInfo struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable,omitempty"`
}

type Meta struct {
	RequestID  string      `json:"requestId"`
	Timestamp  string      `json:"timestamp"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	Page    int    `json:"page"`
	Limit   int    `json:"limit"`
	Count   int    `json:"count"`
	HasMore bool   `json:"hasMore"`
	Query   string `json:"query,omitempty"`
}

func meta(c *gin.Context) Meta {
	return Meta{RequestID: c.GetString(requestIDKey), Timestamp: time.Now().UTC().Format(time.RFC3339)}
}

func success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{Success: true, Code: code, Message: message, Data: data, Meta: meta(c)})
}

func successPage(c *gin.Context, message string, data interface{}, page Pagination) {
	m := meta(c)
	m.Pagination = &page
	c.JSON(http.StatusOK, Response{Success: true, Code: http.StatusOK, Message: message, Data: data, Meta: m})
}

func fail(c *gin.Context, code int, errCode, message string, retryable bool) {
	c.AbortWithStatusJSON(code, Response{
		Success: false,
		Code:    code,
		Message: message,
		Error:   &ErrorInfo{Code: errCode, Message: message, Retryable: retryable},
		Meta:    meta(c),
	})
}

// failWith maps an application error onto the envelope. Internal errors are
// logged by the request logger and never echoed to the client.
func failWith(c *gin.Context, err error) {
	_ = c.Error(err)
	switch apperr.Classify(err) {
	case apperr.KindInvalid:
		fail(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), false)
	case apperr.KindNotFound:
		fail(c, http.StatusNotFound, "NOT_FOUND", err.Error(), false)
	case apperr.KindConflict:
		fail(c, http.StatusConflict, "CONFLICT", err.Error(), true)
	case apperr.KindPrecondition:
		fail(c, http.StatusUnprocessableEntity, "UNPROCESSABLE", err.Error(), false)
	case apperr.KindUnauthenticated:
		fail(c, http.StatusUnauthorized, "UNAUTHORIZED", err.Error(), false)
	case apperr.KindForbidden:
		fail(c, http.StatusForbidden, "FORBIDDEN", err.Error(), false)
	case apperr.KindDeadline:
		fail(c, http.StatusGatewayTimeout, "TIMEOUT", "request timed out", true)
	default:
		fail(c, http.StatusInternalServerError, "INTERNAL", "internal error", false)
	}
}
