package controllers

import (
	"net/http"

	"marketplace-service/errs"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps an application error to a JSON response, logging server
// faults.
func respondError(c *gin.Context, err error) {
	code, message := errs.Status(err)
	if code >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
	}
	c.JSON(code, gin.H{"error": message})
}
