package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"groomer-directory/internal/models"
	"groomer-directory/internal/notify"

	"github.com/rs/zerolog/log"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactInput is a contact form submission.
type ContactInput struct {
	Name    string
	Email   string
	Message string
}

// ContactRepository stores contact messages.
type ContactRepository interface {
	CreateContactMessage(ctx context.Context, msg *models.ContactMessage) error
}

// Notifier delivers an HTML email.
type Notifier interface {
	Send(ctx context.Context, to, subject, html string) error
}

// ContactService handles contact form submissions.
type ContactService struct {
	repo     ContactRepository
	notifier Notifier
	to       string
	siteName string
}

// NewContactService creates a new contact service. notifier may be nil,
// in which case messages are only stored.
func NewContactService(repo ContactRepository, notifier Notifier, notificationEmail, siteName string) *ContactService {
	return &ContactService{repo: repo, notifier: notifier, to: notificationEmail, siteName: siteName}
}

// Submit validates and stores a submission, then notifies the site owner.
// A failed notification is logged and does not fail the submission.
func (s *ContactService) Submit(ctx context.Context, in ContactInput) (*models.ContactMessage, error) {
	msg := &models.ContactMessage{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Message: strings.TrimSpace(in.Message),
	}

	switch {
	case msg.Name == "":
		return nil, fmt.Errorf("service: %w: name is required", ErrInvalidContact)
	case msg.Email == "":
		return nil, fmt.Errorf("service: %w: email is required", ErrInvalidContact)
	case !emailPattern.MatchString(msg.Email):
		return nil, fmt.Errorf("service: %w: invalid email address", ErrInvalidContact)
	case msg.Message == "":
		return nil, fmt.Errorf("service: %w: message is required", ErrInvalidContact)
	}

	if err := s.repo.CreateContactMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("service: failed to store contact message: %w", err)
	}

	s.notify(ctx, msg)

	return msg, nil
}

func (s *ContactService) notify(ctx context.Context, msg *models.ContactMessage) {
	if s.notifier == nil || s.to == "" {
		return
	}

	subject, html, err := notify.RenderContact(notify.ContactEmail{
		SiteName:    s.siteName,
		Name:        msg.Name,
		Email:       msg.Email,
		Message:     msg.Message,
		SubmittedAt: msg.CreatedAt,
	})
	if err != nil {
		log.Error().Err(err).Int64("contact_id", msg.ID).Msg("failed to render contact notification")
		return
	}

	if err := s.notifier.Send(ctx, s.to, subject, html); err != nil {
		log.Error().Err(err).Int64("contact_id", msg.ID).Msg("failed to send contact notification")
	}
}
