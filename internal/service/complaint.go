package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/shenikar/bodycam_dashboard/internal/metrics"
	"github.com/shenikar/bodycam_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

// ComplaintStore - удалённое хранилище жалоб
type ComplaintStore interface {
	CreateComplaint(ctx context.Context, draft models.ComplaintDraft, idempotencyKey string) error
	ListComplaints(ctx context.Context) ([]models.Complaint, error)
}

// IdempotencyStore защищает от повторной отправки одной и той же формы
type IdempotencyStore interface {
	// Claim возвращает false, если ключ уже занят
	Claim(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

// ComplaintService определяет контракт отправки и чтения жалоб
type ComplaintService interface {
	Submit(ctx context.Context, draft *models.ComplaintDraft, idempotencyKey string) error
	List(ctx context.Context) ([]models.Complaint, error)
}

type complaintService struct {
	store   ComplaintStore
	idem    IdempotencyStore
	logger  *logrus.Logger
	metrics *metrics.Collector
	timeout time.Duration
}

func NewComplaintService(store ComplaintStore, idem IdempotencyStore, logger *logrus.Logger, collector *metrics.Collector, timeout time.Duration) ComplaintService {
	return &complaintService{
		store:   store,
		idem:    idem,
		logger:  logger,
		metrics: collector,
		timeout: timeout,
	}
}

// Submit отправляет жалобу ровно один раз на ключ.
// При успехе draft очищается, при ошибке остаётся как был.
func (s *complaintService) Submit(ctx context.Context, draft *models.ComplaintDraft, idempotencyKey string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "complaint",
		"method":  "Submit",
	})

	if draft == nil || !draft.Complete() {
		s.metrics.ObserveComplaint("invalid")
		return fmt.Errorf("service: %w", models.ErrInvalidDraft)
	}
	normalized := draft.Normalize()

	key := idempotencyKey
	if key == "" {
		key = DraftKey(normalized)
	}
	log = log.WithField("idempotency_key", key)

	claimed, err := s.idem.Claim(ctx, key)
	if err != nil {
		log.WithError(err).Error("Failed to claim idempotency key")
		s.metrics.ObserveComplaint("transport")
		return fmt.Errorf("service: could not submit complaint: %w: %w", models.ErrTransport, err)
	}
	if !claimed {
		log.Warn("Duplicate complaint submission ignored")
		s.metrics.ObserveComplaint("duplicate")
		return fmt.Errorf("service: %w", models.ErrDuplicateSubmission)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	err = s.store.CreateComplaint(ctx, normalized, key)
	s.metrics.ObserveRemote("create_complaint", start, err)
	if err != nil {
		cause := failureCause(err)
		log.WithError(err).WithField("cause", cause).Error("Failed to submit complaint")
		s.metrics.ObserveComplaint(cause)
		// ключ освобождается, чтобы пользователь мог повторить
		if relErr := s.idem.Release(context.WithoutCancel(ctx), key); relErr != nil {
			log.WithError(relErr).Warn("Failed to release idempotency key")
		}
		return fmt.Errorf("service: could not submit complaint: %w", err)
	}

	draft.Reset()
	s.metrics.ObserveComplaint("success")
	log.Info("Complaint submitted successfully")
	return nil
}

// List возвращает все жалобы или ошибку, без частичных результатов
func (s *complaintService) List(ctx context.Context) ([]models.Complaint, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "complaint",
		"method":  "List",
	})

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	complaints, err := s.store.ListComplaints(ctx)
	s.metrics.ObserveRemote("list_complaints", start, err)
	if err != nil {
		log.WithError(err).WithField("cause", failureCause(err)).Error("Failed to fetch complaints")
		return nil, fmt.Errorf("service: could not list complaints: %w", err)
	}

	log.WithField("count", len(complaints)).Info("Complaints fetched successfully")
	return complaints, nil
}

func (s *complaintService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// DraftKey - ключ идемпотентности по содержимому формы
func DraftKey(d models.ComplaintDraft) string {
	h := sha256.New()
	for _, f := range []string{d.FullName, d.Country, d.City, d.Summary} {
		h.Write([]byte(f))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

func failureCause(err error) string {
	switch {
	case errors.Is(err, models.ErrTimeout):
		return "timeout"
	case errors.Is(err, models.ErrServerRejected):
		return "rejected"
	default:
		return "transport"
	}
}
