package backend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"tire-service/internal/entities"
	"tire-service/pkg/session"
)

func VehiclesPath(clientID int64) string {
	return fmt.Sprintf("%s/%d/vehicles", PathClients, clientID)
}

func (c *Client) ListClients(ctx context.Context, sess *session.Session) ([]entities.Client, error) {
	return List[entities.Client](ctx, c, sess, PathClients, nil)
}

func (c *Client) GetClient(ctx context.Context, sess *session.Session, id int64) (entities.Client, error) {
	return Get[entities.Client](ctx, c, sess, PathClients, id)
}

func (c *Client) ListWorkers(ctx context.Context, sess *session.Session) ([]entities.Worker, error) {
	return List[entities.Worker](ctx, c, sess, PathWorkers, nil)
}

// ListContractServices - прайс договора.
func (c *Client) ListContractServices(ctx context.Context, sess *session.Session, contractID int64) ([]entities.Service, error) {
	query := url.Values{}
	query.Set("contract_id", strconv.FormatInt(contractID, 10))
	return List[entities.Service](ctx, c, sess, PathServices, query)
}
