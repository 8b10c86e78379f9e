package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shenikar/bodycam_dashboard/internal/models"
)

const complaintsPath = "/rest/v1/complaints"

type complaintRow struct {
	FullName string `json:"full_name"`
	Country  string `json:"country"`
	City     string `json:"city"`
	Summary  string `json:"summary"`
}

// CreateComplaint отправляет одну запись. Повторов нет, чтобы не создать дубликат.
func (c *Client) CreateComplaint(ctx context.Context, draft models.ComplaintDraft, idempotencyKey string) error {
	row := complaintRow{
		FullName: draft.FullName,
		Country:  draft.Country,
		City:     draft.City,
		Summary:  draft.Summary,
	}
	req, err := c.newRequest(ctx, http.MethodPost, complaintsPath, row)
	if err != nil {
		return err
	}
	req.Header.Set("Prefer", "return=minimal")
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	if _, err := c.do(req); err != nil {
		return fmt.Errorf("create complaint: %w", err)
	}
	return nil
}

// ListComplaints читает все жалобы одним запросом. Частичный результат не возвращается.
func (c *Client) ListComplaints(ctx context.Context) ([]models.Complaint, error) {
	req, err := c.newRequest(ctx, http.MethodGet, complaintsPath+"?select=*", nil)
	if err != nil {
		return nil, fmt.Errorf("list complaints: %w: %w", models.ErrFetch, err)
	}

	body, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("list complaints: %w: %w", models.ErrFetch, err)
	}

	complaints := make([]models.Complaint, 0)
	if err := json.Unmarshal(body, &complaints); err != nil {
		return nil, fmt.Errorf("list complaints: %w: decode: %w", models.ErrFetch, err)
	}
	return complaints, nil
}
