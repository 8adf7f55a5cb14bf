package api

import (
	"errors"
	"net/http"

	"shop-service/internal/store"

	"github.com/gin-gonic/gin"
)

// respondError translates a core error kind into an HTTP status and JSON
// body. The core never formats user-facing text; the mapping lives here.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, store.ErrInsufficientStock),
		errors.Is(err, store.ErrDuplicateReview),
		errors.Is(err, store.ErrAlreadyExists),
		errors.Is(err, store.ErrEmailTaken):
		status = http.StatusBadRequest
	case errors.Is(err, store.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	}

	c.JSON(status, gin.H{"error": err.Error()})
}

// respondBadRequest reports a malformed or invalid request body.
func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Invalid request body",
		"details": err.Error(),
	})
}
