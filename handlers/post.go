package handlers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"inkpost/posts"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Posts struct {
	service   *posts.Service
	uploadDir string
}

func NewPosts(service *posts.Service, uploadDir string) *Posts {
	return &Posts{service: service, uploadDir: uploadDir}
}

// stageFile saves the optional multipart file to the local upload dir and
// returns its path, or "" when no file was attached. The caller removes
// the staged file once the asset host has it.
func (h *Posts) stageFile(c *gin.Context) (string, error) {
	file, err := c.FormFile("file")
	if err != nil {
		return "", nil
	}

	dst := filepath.Join(h.uploadDir, primitive.NewObjectID().Hex()+"_"+filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}
	return dst, nil
}

func (h *Posts) Create(c *gin.Context) {
	authorID, ok := sessionUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
		return
	}

	staged, err := h.stageFile(c)
	if err != nil {
		log.Printf("staging upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to receive file"})
		return
	}
	if staged != "" {
		defer os.Remove(staged)
	}

	post, err := h.service.Create(c.Request.Context(), authorID, posts.Input{
		Title:    c.PostForm("title"),
		Summary:  c.PostForm("summary"),
		Content:  c.PostForm("content"),
		FilePath: staged,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (h *Posts) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		log.Printf("list posts failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch posts"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Posts) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	post, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *Posts) Update(c *gin.Context) {
	authorID, ok := sessionUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	staged, err := h.stageFile(c)
	if err != nil {
		log.Printf("staging upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to receive file"})
		return
	}
	if staged != "" {
		defer os.Remove(staged)
	}

	post, err := h.service.Update(c.Request.Context(), id, authorID, posts.Input{
		Title:    c.PostForm("title"),
		Summary:  c.PostForm("summary"),
		Content:  c.PostForm("content"),
		FilePath: staged,
		Cover:    c.PostForm("cover"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}
