package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"projecthub/internal/apperr"
)

var statusByKind = map[apperr.Kind]int{
	apperr.KindInvalidArgument: http.StatusBadRequest,
	apperr.KindNotFound:        http.StatusNotFound,
	apperr.KindDuplicate:       http.StatusConflict,
	apperr.KindForbidden:       http.StatusForbidden,
	apperr.KindInvalidToken:    http.StatusUnauthorized,
	apperr.KindInternal:        http.StatusInternalServerError,
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string      `json:"error"`
	Code  apperr.Kind `json:"code"`
}

func statusOf(kind apperr.Kind) int {
	if status, ok := statusByKind[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// abortWithError translates err into its status and body and stops the chain.
func abortWithError(c *gin.Context, logger logrus.FieldLogger, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.KindInternal {
		logger.WithError(err).
			WithField("request_id", c.GetString(requestIDKey)).
			Errorf("%s %s failed", c.Request.Method, c.FullPath())
	}
	c.AbortWithStatusJSON(statusOf(kind), ErrorResponse{
		Error: apperr.MessageOf(err),
		Code:  kind,
	})
}

func badRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Error: message,
		Code:  apperr.KindInvalidArgument,
	})
}
