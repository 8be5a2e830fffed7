package handlers

import (
	"errors"
	"net/http"

	"inkpost/auth"
	"inkpost/store"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	sessions *auth.Service
}

func NewAuth(sessions *auth.Service) *Auth {
	return &Auth{sessions: sessions}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Auth) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.sessions.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *Auth) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	token, err := h.sessions.Login(c.Request.Context(), req.Username, req.Password)
	if errors.Is(err, store.ErrNotFound) {
		// Unknown users come back as a 400 here, not 404; the frontend
		// treats both login failures the same way.
		c.JSON(http.StatusBadRequest, gin.H{"error": "user not found"})
		return
	}
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "ok", "token": token})
}

// Profile returns the identity embedded in the verified token.
func (h *Auth) Profile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"id":       c.GetString("userId"),
		"username": c.GetString("username"),
	})
}

// Logout is stateless: the server keeps no session table, so a token stays
// valid until its exp. Clients discard the token on their side.
func (h *Auth) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
