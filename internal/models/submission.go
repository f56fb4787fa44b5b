package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactSubmission is one stored contact-form entry. Immutable once
// written; records are only dropped when the store truncates to its cap.
type ContactSubmission struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	Service       string    `json:"service"`
	Message       string    `json:"message"`
	ContactMethod string    `json:"contact_method"`
	IP            string    `json:"ip"`
	Timestamp     time.Time `json:"timestamp"`
	UserAgent     string    `json:"user_agent"`
}

// SubmissionRequest is the inbound form payload from the landing page.
type SubmissionRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Service       string `json:"service"`
	Message       string `json:"message"`
	ContactMethod string `json:"contact_method"`
}
