package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/habitatmx/realestate-api/internal/core/domain"
	"github.com/habitatmx/realestate-api/internal/core/ports"
)

// InquiryService stores contact-form messages and alerts the back office.
type InquiryService struct {
	repo       ports.InquiryRepository
	mailer     ports.Mailer
	alertEmail string
	logger     zerolog.Logger
}

func NewInquiryService(repo ports.InquiryRepository, mailer ports.Mailer, alertEmail string, logger zerolog.Logger) *InquiryService {
	return &InquiryService{repo: repo, mailer: mailer, alertEmail: alertEmail, logger: logger}
}

// Submit persists the inquiry, then fires a best-effort alert email to the
// back office. A failed alert never fails the submission.
func (s *InquiryService) Submit(ctx context.Context, in *domain.Inquiry) (*domain.Inquiry, error) {
	in.CreatedAt = time.Now().UTC()

	created, err := s.repo.Create(ctx, in)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to store inquiry")
		return nil, err
	}

	if s.alertEmail != "" {
		alertCtx, cancel := context.WithTimeout(ctx, notifyTimeout)
		defer cancel()

		body := fmt.Sprintf("New inquiry from %s <%s>\nSubject: %s\n\n%s", created.Name, created.Email, created.Subject, created.Message)
		if err := s.mailer.Send(alertCtx, s.alertEmail, "New website inquiry: "+created.Subject, body); err != nil {
			s.logger.Warn().Err(err).Str("id", created.ID).Msg("inquiry alert email failed")
		}
	}

	s.logger.Info().Str("id", created.ID).Str("subject", created.Subject).Msg("inquiry received")
	return created, nil
}

func (s *InquiryService) List(ctx context.Context) ([]domain.Inquiry, error) {
	return s.repo.List(ctx)
}

func (s *InquiryService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
