package api

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/sopeal/AskYourFeed/internal/domain"
)

// CreateQA submits a question about the user's feed.
func (c *Client) CreateQA(ctx context.Context, cmd domain.CreateQACommand) (*domain.QADetail, error) {
	body := createQARequest{
		Question: cmd.Question,
	}
	if cmd.DateFrom != nil {
		body.DateFrom = cmd.DateFrom.Format(time.RFC3339)
	}
	if cmd.DateTo != nil {
		body.DateTo = cmd.DateTo.Format(time.RFC3339)
	}

	var resp qaDetailResponse
	if err := c.post(ctx, "/api/v1/qa", body, &resp); err != nil {
		return nil, err
	}
	return resp.toDetail(), nil
}

// ListQA fetches one history page. The cursor is opaque and passed back
// verbatim.
func (c *Client) ListQA(ctx context.Context, limit int, cursor string) (*domain.HistoryPage, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", fmt.Sprintf("%d", limit))
	}
	if cursor != "" {
		params.Set("cursor", cursor)
	}

	path := "/api/v1/qa"
	if len(params) > 0 {
		path = fmt.Sprintf("%s?%s", path, params.Encode())
	}

	var resp qaListResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.toPage(), nil
}

// GetQA fetches the full detail for one interaction.
func (c *Client) GetQA(ctx context.Context, id string) (*domain.QADetail, error) {
	var resp qaDetailResponse
	if err := c.get(ctx, "/api/v1/qa/"+url.PathEscape(id), &resp); err != nil {
		return nil, err
	}
	return resp.toDetail(), nil
}

// DeleteQA deletes one interaction by ID.
func (c *Client) DeleteQA(ctx context.Context, id string) error {
	var resp deleteResponse
	return c.delete(ctx, "/api/v1/qa/"+url.PathEscape(id), &resp)
}

// DeleteAllQA deletes the whole history and returns the deleted count.
func (c *Client) DeleteAllQA(ctx context.Context) (int64, error) {
	var resp deleteAllResponse
	if err := c.delete(ctx, "/api/v1/qa", &resp); err != nil {
		return 0, err
	}
	return resp.DeletedCount, nil
}
