package contact

import (
	"log/slog"
	"net/http"
	"strings"

	"gym-backend/internal/infra/mail"
	"gym-backend/internal/infra/metrics"
	"gym-backend/internal/lib/sl"

	"github.com/gin-gonic/gin"
)

// Handler forwards public enquiries to the gym's inbox.
type Handler struct {
	mailer mail.Mailer
	to     string
}

func NewHandler(mailer mail.Mailer, to string) *Handler {
	return &Handler{mailer: mailer, to: to}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type joinRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Plan  string `json:"plan"`
}

// POST /api/contact
func (h *Handler) Contact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}
	if blank(req.Name, req.Phone, req.Message) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Name, phone and message are required"})
		return
	}

	msg := mail.ContactMessage(h.to, mail.Contact{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Message: strings.TrimSpace(req.Message),
	})
	h.send(c, "contact", msg)
}

// POST /api/join
func (h *Handler) Join(c *gin.Context) {
	var req joinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}
	if blank(req.Name, req.Phone) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Name and phone are required"})
		return
	}

	msg := mail.JoinMessage(h.to, mail.JoinRequest{
		Name:  strings.TrimSpace(req.Name),
		Email: strings.TrimSpace(req.Email),
		Phone: strings.TrimSpace(req.Phone),
		Plan:  strings.TrimSpace(req.Plan),
	})
	h.send(c, "join", msg)
}

func (h *Handler) send(c *gin.Context, kind string, msg mail.Message) {
	if err := h.mailer.Send(c.Request.Context(), msg); err != nil {
		metrics.MailSent.WithLabelValues(kind, "error").Inc()
		slog.Error("enquiry mail failed", sl.Op("contact."+kind), sl.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Mail error"})
		return
	}
	metrics.MailSent.WithLabelValues(kind, "sent").Inc()
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Message sent"})
}

func blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
