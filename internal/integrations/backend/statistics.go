package backend

import (
	"context"
	"net/url"

	"tire-service/internal/entities"
	"tire-service/pkg/session"
)

func (c *Client) ManagerStatistics(ctx context.Context, sess *session.Session, query url.Values) (entities.Statistics, error) {
	return getJSON[entities.Statistics](ctx, c, sess, pathManagerStats, query)
}

func (c *Client) WorkerStatistics(ctx context.Context, sess *session.Session, query url.Values) (entities.Statistics, error) {
	return getJSON[entities.Statistics](ctx, c, sess, pathWorkerStats, query)
}
