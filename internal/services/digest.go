package services

import (
	"context"
	"log"
	"time"

	"learnpath-backend/internal/repository"
)

const (
	digestInterval     = 7 * 24 * time.Hour
	digestPollInterval = 1 * time.Hour
)

// DigestScheduler mails opted-in students their weekly progress report.
type DigestScheduler struct {
	userRepo *repository.UserRepo
	progress *ProgressService
	coach    *CoachService
	email    *EmailService
	stopChan chan struct{}
}

func NewDigestScheduler(userRepo *repository.UserRepo, progress *ProgressService, coach *CoachService, email *EmailService) *DigestScheduler {
	return &DigestScheduler{
		userRepo: userRepo,
		progress: progress,
		coach:    coach,
		email:    email,
		stopChan: make(chan struct{}),
	}
}

func (s *DigestScheduler) Start() {
	if s.userRepo == nil || s.email == nil {
		return
	}

	go s.loop()

	log.Printf("Digest scheduler started")
}

func (s *DigestScheduler) Stop() {
	select {
	case <-s.stopChan:
		return
	default:
		close(s.stopChan)
	}
}

func (s *DigestScheduler) loop() {
	// Run on startup as well as by interval.
	s.sendDigests(context.Background(), time.Now().UTC())

	ticker := time.NewTicker(digestPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.sendDigests(context.Background(), time.Now().UTC())
		}
	}
}

func (s *DigestScheduler) sendDigests(ctx context.Context, now time.Time) {
	recipients, err := s.userRepo.ListDigestRecipients(ctx)
	if err != nil {
		log.Printf("progress digest: failed to list recipients: %v", err)
		return
	}

	for _, recipient := range recipients {
		if !digestDue(recipient.DigestLastSentAt, digestInterval, now) {
			continue
		}

		report, reportErr := s.progress.GetProgress(ctx, recipient.ID)
		if reportErr != nil {
			log.Printf("progress digest: failed to load report for user %s: %v", recipient.ID, reportErr)
			continue
		}

		// Nothing tracked yet, nothing to report.
		if report.TotalActivities == 0 && report.TotalGoals == 0 {
			continue
		}

		summary := ""
		if s.coach != nil {
			summary = s.coach.SummarizeProgress(ctx, recipient.FullName, report)
		}

		if err := s.email.SendProgressDigestEmail(recipient.Email, recipient.FullName, report, summary); err != nil {
			log.Printf("progress digest: failed to send to %s: %v", recipient.Email, err)
			continue
		}

		if err := s.userRepo.SetDigestSentAt(ctx, recipient.ID, now); err != nil {
			log.Printf("progress digest: failed to persist last sent at for user %s: %v", recipient.ID, err)
		}
	}
}

func digestDue(lastSentAt *time.Time, minInterval time.Duration, now time.Time) bool {
	if lastSentAt == nil || lastSentAt.IsZero() {
		return true
	}

	return now.Sub(*lastSentAt) >= minInterval
}
