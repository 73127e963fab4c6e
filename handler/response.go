package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"meetsum/types"
)

// respondError maps a failure to its HTTP status while keeping the client
// body a plain {"error": message}. The error kind only shows up in the log.
func respondError(c *gin.Context, err error) {
	var appErr *types.AppError
	if errors.As(err, &appErr) {
		log.Printf("%s %s failed (%s): %v", c.Request.Method, c.Request.URL.Path, appErr.Kind, err)
		c.JSON(appErr.HTTPStatus(), types.ErrorResponse{Error: appErr.Message})
		return
	}

	log.Printf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: err.Error()})
}
