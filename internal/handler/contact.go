package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nebulastellary-afk/fash-rodah/internal/config"
	"github.com/nebulastellary-afk/fash-rodah/internal/models"
	"github.com/nebulastellary-afk/fash-rodah/internal/service"
)

// ContactHandler exposes the contact-form endpoints over ContactService.
type ContactHandler struct {
	service *service.ContactService
	contact config.ContactInfo
}

func NewContactHandler(svc *service.ContactService, contact config.ContactInfo) *ContactHandler {
	return &ContactHandler{
		service: svc,
		contact: contact,
	}
}

// Submit accepts a JSON contact-form payload.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req models.SubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "No data received",
		})
		return
	}

	_, err := h.service.Submit(req, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		h.submitError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Thank you for your message! We will contact you soon.",
	})
}

func (h *ContactHandler) submitError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMissingFields):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Please fill in all required fields.",
		})
	case errors.Is(err, service.ErrInvalidEmail):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Please enter a valid email address.",
		})
	case errors.Is(err, service.ErrRateLimited):
		ip := c.ClientIP()
		retryAfter := int(h.service.RetryAfter(ip).Seconds())

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", h.service.Limit()))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", h.service.Remaining(ip)))
		c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
		c.JSON(http.StatusTooManyRequests, gin.H{
			"success": false,
			"message": "Too many requests. Please try again later.",
		})
	default:
		requestID := c.GetString("request_id")
		log.Printf("[%s] Error processing contact form: %v", requestID, err)

		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "There was an error sending your message. Please try again or contact us directly.",
		})
	}
}

// ContactInfo returns the static contact metadata.
func (h *ContactHandler) ContactInfo(c *gin.Context) {
	c.JSON(http.StatusOK, h.contact)
}

// Submissions lists every stored submission, oldest first.
func (h *ContactHandler) Submissions(c *gin.Context) {
	subs, err := h.service.Submissions()
	if err != nil {
		requestID := c.GetString("request_id")
		log.Printf("[%s] Error reading submissions: %v", requestID, err)

		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error reading submissions",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"count":       len(subs),
		"submissions": subs,
	})
}
