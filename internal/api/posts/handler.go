package posts

import (
	"log/slog"
	"net/http"
	"time"

	"gym-backend/database"
	"gym-backend/internal/api/apiutil"
	"gym-backend/internal/api/respond"
	"gym-backend/internal/domain/posts"
	"gym-backend/internal/lib/sl"

	"github.com/gin-gonic/gin"
)

// GET /api/posts
func List(c *gin.Context) {
	feed, err := posts.List(database.DB)
	if err != nil {
		respond.Error(c, "posts.List", err)
		return
	}
	c.JSON(http.StatusOK, feed)
}

// POST /api/posts (JSON, or multipart with an "image" file)
func Create(c *gin.Context) {
	var req struct {
		TextContent string `form:"textContent" json:"textContent"`
	}
	if err := c.ShouldBind(&req); err != nil {
		respond.BindError(c, err)
		return
	}

	image, err := apiutil.SaveUpload(c, database.DB, "image")
	if err != nil {
		respond.Error(c, "posts.Create", err)
		return
	}

	p, err := posts.Create(database.DB, c.GetUint("user_id"), req.TextContent, image, time.Now())
	if err != nil {
		respond.Error(c, "posts.Create", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Post created", "post": p})
}

// DELETE /api/posts/:id
func Delete(c *gin.Context) {
	id, err := apiutil.ParseID(c, "id")
	if err != nil {
		respond.Error(c, "posts.Delete", err)
		return
	}
	p, err := posts.Delete(database.DB, id)
	if err != nil {
		respond.Error(c, "posts.Delete", err)
		return
	}
	if p.Image != nil {
		if err := apiutil.RemoveUpload(database.DB, *p.Image); err != nil {
			slog.Warn("post image left on disk", sl.Op("posts.Delete"), sl.Err(err))
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}
