// Package response centralizes HTTP response shapes and helpers.
// Handlers rely on it to keep controllers thin and uniform.
package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tifofan/football-proxy/pkg/apierror"
	"github.com/tifofan/football-proxy/pkg/pagination"
)

// Meta describes how a payload was produced.
type Meta struct {
	Cached     bool             `json:"cached"`
	Timestamp  int64            `json:"timestamp"`
	Pagination *pagination.Meta `json:"pagination,omitempty"`
}

// Envelope is the canonical success envelope returned by the API.
type Envelope struct {
	Data any  `json:"data"`
	Meta Meta `json:"meta"`
}

// ErrorBody is the canonical error envelope returned by the API.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the stable code and message of a failure.
type ErrorDetail struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	RetryAfter int    `json:"retryAfter,omitempty"`
}

// OK writes a success envelope with a current timestamp.
func OK(c *gin.Context, data any, cached bool, page *pagination.Meta) {
	c.JSON(http.StatusOK, Envelope{
		Data: data,
		Meta: Meta{
			Cached:     cached,
			Timestamp:  time.Now().Unix(),
			Pagination: page,
		},
	})
}

// MapError converts a domain / infrastructure error into an HTTP status
// and payload. Upstream shape violations and empty responses are
// deliberately flattened: their detail is for server-side logs, not
// callers.
func MapError(err error) (int, ErrorBody) {
	if apiErr, ok := apierror.As(err); ok {
		return apiErr.Status, ErrorBody{Error: ErrorDetail{
			Code:       apiErr.Code,
			Message:    apiErr.Message,
			RetryAfter: apiErr.RetryAfter,
		}}
	}

	// Shape violations, empty upstream responses and cache failures
	// carry detail a caller must not see; they flatten to the same
	// opaque 500 as anything unknown. The detail is logged server-side.
	return http.StatusInternalServerError, internalError()
}

// WriteError writes an error envelope and aborts the context. The
// original error stays available to logging middleware via the context.
func WriteError(c *gin.Context, err error) {
	_ = c.Error(err)
	status, payload := MapError(err)
	c.AbortWithStatusJSON(status, payload)
}

func internalError() ErrorBody {
	return ErrorBody{Error: ErrorDetail{
		Code:    "internal_error",
		Message: "Internal server error",
	}}
}
