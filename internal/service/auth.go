package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/bodycam_dashboard/internal/metrics"
	"github.com/shenikar/bodycam_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

// AuthProvider - внешний сервис аутентификации
type AuthProvider interface {
	SignUp(ctx context.Context, creds models.Credentials) (models.Session, error)
	SignIn(ctx context.Context, creds models.Credentials) (models.Session, error)
}

// AuthService проксирует регистрацию и вход. Состояние сессии не хранится.
type AuthService interface {
	SignUp(ctx context.Context, creds models.Credentials) (models.Session, error)
	SignIn(ctx context.Context, creds models.Credentials) (models.Session, error)
}

type authService struct {
	provider AuthProvider
	logger   *logrus.Logger
	metrics  *metrics.Collector
	timeout  time.Duration
}

func NewAuthService(provider AuthProvider, logger *logrus.Logger, collector *metrics.Collector, timeout time.Duration) AuthService {
	return &authService{
		provider: provider,
		logger:   logger,
		metrics:  collector,
		timeout:  timeout,
	}
}

func (s *authService) SignUp(ctx context.Context, creds models.Credentials) (models.Session, error) {
	return s.call(ctx, "SignUp", creds, s.provider.SignUp)
}

func (s *authService) SignIn(ctx context.Context, creds models.Credentials) (models.Session, error) {
	return s.call(ctx, "SignIn", creds, s.provider.SignIn)
}

type authFunc func(ctx context.Context, creds models.Credentials) (models.Session, error)

func (s *authService) call(ctx context.Context, method string, creds models.Credentials, fn authFunc) (models.Session, error) {
	// пароль в лог не пишется
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  method,
		"email":   creds.Email,
	})

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	session, err := fn(ctx, creds)
	s.metrics.ObserveRemote(method, start, err)
	if err != nil {
		log.WithError(err).Warn("Authentication call failed")
		return nil, fmt.Errorf("service: %s: %w", method, err)
	}

	log.Info("Authentication call succeeded")
	return session, nil
}
