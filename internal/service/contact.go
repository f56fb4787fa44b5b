package service

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nebulastellary-afk/fash-rodah/internal/models"
	"github.com/nebulastellary-afk/fash-rodah/internal/ratelimit"
)

var (
	ErrMissingFields = errors.New("missing required fields")
	ErrInvalidEmail  = errors.New("invalid email address")
	ErrRateLimited   = errors.New("rate limit exceeded")
)

// Store is the persistence surface the contact flow needs.
type Store interface {
	Append(models.ContactSubmission) error
	List() ([]models.ContactSubmission, error)
}

// ContactService validates and persists contact-form submissions behind
// a per-IP rate limit.
type ContactService struct {
	store   Store
	limiter ratelimit.Limiter
}

func NewContactService(store Store, limiter ratelimit.Limiter) *ContactService {
	return &ContactService{
		store:   store,
		limiter: limiter,
	}
}

// Submit runs the check → validate → persist transaction for one form
// submission. Sentinel errors identify client faults; anything else is
// an internal failure.
func (s *ContactService) Submit(req models.SubmissionRequest, ip, userAgent string) (models.ContactSubmission, error) {
	if !s.limiter.Allow(ip) {
		return models.ContactSubmission{}, ErrRateLimited
	}

	sub := models.ContactSubmission{
		ID:            uuid.New(),
		Name:          strings.TrimSpace(req.Name),
		Email:         strings.TrimSpace(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		Service:       req.Service,
		Message:       strings.TrimSpace(req.Message),
		ContactMethod: req.ContactMethod,
		IP:            ip,
		Timestamp:     time.Now(),
		UserAgent:     userAgent,
	}

	if sub.ContactMethod == "" {
		sub.ContactMethod = "phone"
	}

	if sub.Name == "" || sub.Email == "" || sub.Message == "" || sub.Service == "" {
		return models.ContactSubmission{}, ErrMissingFields
	}

	// Deliberately loose check, not full address validation.
	if !strings.Contains(sub.Email, "@") || !strings.Contains(sub.Email, ".") {
		return models.ContactSubmission{}, ErrInvalidEmail
	}

	log.Printf("Contact form submission: %s, %s, %s", sub.Name, sub.Email, sub.Service)

	if err := s.store.Append(sub); err != nil {
		return models.ContactSubmission{}, fmt.Errorf("failed to save submission: %w", err)
	}

	return sub, nil
}

// Submissions returns every stored record, oldest first.
func (s *ContactService) Submissions() ([]models.ContactSubmission, error) {
	return s.store.List()
}

// RetryAfter reports how long the client should wait before the limiter
// frees a slot.
func (s *ContactService) RetryAfter(ip string) time.Duration {
	wait := time.Until(s.limiter.Reset(ip))
	if wait < 0 {
		wait = 0
	}
	return wait
}

func (s *ContactService) Limit() int {
	return s.limiter.Limit()
}

func (s *ContactService) Remaining(ip string) int {
	return s.limiter.Remaining(ip)
}
