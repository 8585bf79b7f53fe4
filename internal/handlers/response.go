package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookreview/internal/entity"
	"bookreview/internal/logger"
	"bookreview/internal/services"
	"bookreview/internal/validators"
)

func jsonOK(c *gin.Context, status int, message string, data any) {
	c.JSON(status, entity.OK(message, data))
}

// respondError writes the envelope for err. Anything that is not a domain
// error is logged and hidden behind the generic 500 message.
func respondError(c *gin.Context, err error) {
	e := services.AsError(err)
	if e.Kind == services.KindInternal {
		logger.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.AbortWithStatusJSON(e.Kind.HTTPStatus(), entity.Fail(e.Message, e.Fields))
}

// bind decodes the JSON body into req. It writes the 400 itself and reports
// false when the body is malformed or fails validation.
func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondError(c, services.BadRequest("Invalid request", validators.FieldErrors(err)))
		return false
	}
	return true
}

// pathID reads a UUID path parameter.
func pathID(c *gin.Context, name string) (string, bool) {
	id, err := validators.ParseID(c.Param(name))
	if err != nil {
		respondError(c, services.BadRequest("invalid id", nil))
		return "", false
	}
	return id, true
}

func recovery(c *gin.Context, recovered any) {
	logger.Errorf("panic serving %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
	c.AbortWithStatusJSON(http.StatusInternalServerError, entity.Fail(services.InternalMessage, nil))
}
