package handler

import (
	"context"
	"errors"
	"net/http"

	"groomer-directory/internal/models"
	"groomer-directory/internal/service"

	"github.com/gin-gonic/gin"
)

// ContactHandler handles contact form submissions
type ContactHandler struct {
	service ContactService
}

// Service interface for dependency injection
type ContactService interface {
	Submit(ctx context.Context, in service.ContactInput) (*models.ContactMessage, error)
}

// NewContactHandler creates a new contact handler
func NewContactHandler(svc ContactService) *ContactHandler {
	return &ContactHandler{service: svc}
}

// ContactRequest is the body of POST /api/contact.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// Submit handles POST /api/contact
//
//	@Summary	Send a message to the site owner
//	@Tags		contact
//	@Accept		json
//	@Produce	json
//	@Param		request	body		ContactRequest	true	"Contact form"
//	@Success	201		{object}	map[string]interface{}
//	@Failure	400		{object}	map[string]string
//	@Failure	500		{object}	map[string]string
//	@Router		/api/contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, a valid email and message are required"})
		return
	}

	msg, err := h.service.Submit(c.Request.Context(), service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidContact) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, a valid email and message are required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send message"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": msg.ID})
}
