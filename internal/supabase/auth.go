package supabase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/shenikar/bodycam_dashboard/internal/models"
)

// SignUp регистрирует пользователя во внешнем сервисе
func (c *Client) SignUp(ctx context.Context, creds models.Credentials) (models.Session, error) {
	return c.auth(ctx, "/auth/v1/signup", creds)
}

// SignIn выполняет вход по email и паролю
func (c *Client) SignIn(ctx context.Context, creds models.Credentials) (models.Session, error) {
	return c.auth(ctx, "/auth/v1/token?grant_type=password", creds)
}

func (c *Client) auth(ctx context.Context, path string, creds models.Credentials) (models.Session, error) {
	req, err := c.newRequest(ctx, http.MethodPost, path, creds)
	if err != nil {
		return nil, err
	}
	body, err := c.do(req)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode < 500 {
			return nil, fmt.Errorf("auth: %w: %w", models.ErrAuthRejected, err)
		}
		return nil, fmt.Errorf("auth: %w", err)
	}
	return models.Session(body), nil
}
