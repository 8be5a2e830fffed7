package handlers

import (
	"errors"
	"net/http"

	"inkpost/auth"
	"inkpost/posts"
	"inkpost/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// writeError maps service and store failures onto the HTTP error taxonomy
// in one place, instead of per-route conditionals.
func writeError(c *gin.Context, err error) {
	var uploadErr *posts.UploadError
	switch {
	case errors.Is(err, auth.ErrInvalid),
		errors.Is(err, posts.ErrIncomplete),
		errors.Is(err, store.ErrDuplicateUsername),
		errors.Is(err, auth.ErrBadCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, auth.ErrBadToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, posts.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.As(err, &uploadErr):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload cover"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// sessionUserID reads the authenticated user's id set by the auth
// middleware. Second return is false when the id is missing or malformed,
// which means the middleware did not run or the token carried garbage.
func sessionUserID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.GetString("userId"))
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}
