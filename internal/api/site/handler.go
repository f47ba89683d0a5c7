package siteapi

import (
	"net/http"
	"strings"
	"time"

	"gym-backend/database"
	"gym-backend/internal/api/apiutil"
	"gym-backend/internal/api/respond"
	"gym-backend/internal/domain/site"

	"github.com/gin-gonic/gin"
)

type updateContentRequest struct {
	Title    string `form:"title" json:"title"`
	Subtitle string `form:"subtitle" json:"subtitle"`
	Body     string `form:"body" json:"body"`
	ImageURL string `form:"imageUrl" json:"imageUrl"`
}

// GET /api/content/:section
func GetContent(c *gin.Context) {
	sc, err := site.Get(database.DB, c.Param("section"))
	if err != nil {
		respond.Error(c, "siteapi.GetContent", err)
		return
	}
	c.JSON(http.StatusOK, sc)
}

// PUT /api/content/:section (JSON, or multipart with an "image" file)
func UpdateContent(c *gin.Context) {
	var req updateContentRequest
	if err := c.ShouldBind(&req); err != nil {
		respond.BindError(c, err)
		return
	}

	image, err := apiutil.SaveUpload(c, database.DB, "image")
	if err != nil {
		respond.Error(c, "siteapi.UpdateContent", err)
		return
	}
	if image == nil && strings.TrimSpace(req.ImageURL) != "" {
		u := strings.TrimSpace(req.ImageURL)
		image = &u
	}

	sc, err := site.Upsert(database.DB, c.Param("section"), site.UpsertInput{
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Body:     req.Body,
		ImageURL: image,
	}, c.GetUint("user_id"), time.Now())
	if err != nil {
		respond.Error(c, "siteapi.UpdateContent", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Content updated", "content": sc})
}
