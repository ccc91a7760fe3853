package api

import (
	"context"

	"github.com/sopeal/AskYourFeed/internal/domain"
)

// IngestStatus reports the current feed sync state.
func (c *Client) IngestStatus(ctx context.Context) (*domain.IngestStatus, error) {
	var resp ingestStatusResponse
	if err := c.get(ctx, "/api/v1/ingest/status", &resp); err != nil {
		return nil, err
	}
	return resp.toStatus(), nil
}
