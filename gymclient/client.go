// Package gymclient es el cliente HTTP/JSON del backend de administración.
// Cada método es una llamada única: sin reintentos ni backoff; ante un
// error la pantalla lo muestra y el estado local queda como estaba.
package gymclient

import (
	"context"
	"fmt"
	"net/http"

	"resty.dev/v3"

	"gym_admin/internal/catalog"
	"gym_admin/internal/clients"
	"gym_admin/internal/memberships"
	"gym_admin/internal/payments"
	"gym_admin/internal/sales"
	"gym_admin/internal/stats"
	"gym_admin/internal/subscriptions"
	"gym_admin/internal/suppliers"
	"gym_admin/internal/venues"
)

// APIError is a non-2xx backend response: either a per-field validation
// map or a single message.
type APIError struct {
	StatusCode int               `json:"-"`
	Message    string            `json:"error"`
	Fields     map[string]string `json:"errors"`
}

func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("backend rejected request (%d): %d field errors", e.StatusCode, len(e.Fields))
	}
	return fmt.Sprintf("backend rejected request (%d): %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether the backend answered 404.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// Client is a typed resty client over the admin API.
type Client struct {
	http *resty.Client
}

// New creates a Client talking to the given base URL.
func New(baseURL string) *Client {
	return &Client{http: resty.New().SetBaseURL(baseURL)}
}

// Close releases the underlying transport.
func (c *Client) Close() error {
	return c.http.Close()
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	apiErr := &APIError{}
	req := c.http.R().SetContext(ctx).SetError(apiErr)
	if body != nil {
		req.SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}
	res, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("request %s %s failed: %w", method, path, err)
	}
	if res.IsError() {
		apiErr.StatusCode = res.StatusCode()
		return apiErr
	}
	return nil
}

type resultsEnvelope[T any] struct {
	Results []T `json:"results"`
}

// SubmitSale sends a finished POS sale. Satisfies cart.Submitter.
func (c *Client) SubmitSale(ctx context.Context, req sales.Request) (*sales.Receipt, error) {
	var receipt sales.Receipt
	if err := c.do(ctx, http.MethodPost, "/sales", req, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

// SearchSales lists sales with the listing metadata.
func (c *Client) SearchSales(ctx context.Context, clientID, sedeID string) ([]*sales.Sale, sales.SalesMetadata, error) {
	var out struct {
		Results  []*sales.Sale       `json:"results"`
		Metadata sales.SalesMetadata `json:"metadata"`
	}
	path := "/sales?client_id=" + clientID + "&sede_id=" + sedeID
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, sales.SalesMetadata{}, err
	}
	return out.Results, out.Metadata, nil
}

// MembershipView fetches the classified membership view of a client.
func (c *Client) MembershipView(ctx context.Context, clientID string) (*subscriptions.View, error) {
	var view subscriptions.View
	if err := c.do(ctx, http.MethodGet, "/clients/"+clientID+"/membership", nil, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// SubscriptionHistory fetches a client's full subscription list.
func (c *Client) SubscriptionHistory(ctx context.Context, clientID string) ([]*subscriptions.Subscription, error) {
	var out resultsEnvelope[*subscriptions.Subscription]
	if err := c.do(ctx, http.MethodGet, "/clients/"+clientID+"/subscriptions", nil, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// Subscribe enrolls a client in a membership plan.
func (c *Client) Subscribe(ctx context.Context, in subscriptions.SubscribeInput) (*subscriptions.Subscription, error) {
	var sub subscriptions.Subscription
	if err := c.do(ctx, http.MethodPost, "/subscriptions", in, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// RenewSubscription renews an enrollment with the given payment method.
func (c *Client) RenewSubscription(ctx context.Context, id string, method payments.Method) (*subscriptions.Subscription, error) {
	var sub subscriptions.Subscription
	body := map[string]payments.Method{"payment_method": method}
	if err := c.do(ctx, http.MethodPost, "/subscriptions/"+id+"/renew", body, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// CancelSubscription cancels an enrollment. No body, per the endpoint.
func (c *Client) CancelSubscription(ctx context.Context, id string) (*subscriptions.Subscription, error) {
	var sub subscriptions.Subscription
	if err := c.do(ctx, http.MethodPost, "/subscriptions/"+id+"/cancel", nil, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// CreateClient registers a gym client.
func (c *Client) CreateClient(ctx context.Context, in clients.Input) (*clients.Client, error) {
	var cl clients.Client
	if err := c.do(ctx, http.MethodPost, "/clients", in, &cl); err != nil {
		return nil, err
	}
	return &cl, nil
}

// GetClient fetches a single client.
func (c *Client) GetClient(ctx context.Context, id string) (*clients.Client, error) {
	var cl clients.Client
	if err := c.do(ctx, http.MethodGet, "/clients/"+id, nil, &cl); err != nil {
		return nil, err
	}
	return &cl, nil
}

// SearchClients lists clients filtered by free text and sede.
func (c *Client) SearchClients(ctx context.Context, query, sedeID string) ([]*clients.Client, error) {
	var out resultsEnvelope[*clients.Client]
	path := "/clients?q=" + query + "&sede_id=" + sedeID
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// CreateMembership registers a membership plan.
func (c *Client) CreateMembership(ctx context.Context, in memberships.Input) (*memberships.Membership, error) {
	var m memberships.Membership
	if err := c.do(ctx, http.MethodPost, "/memberships", in, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// CreateProduct registers a product.
func (c *Client) CreateProduct(ctx context.Context, in catalog.ProductInput) (*catalog.Product, error) {
	var p catalog.Product
	if err := c.do(ctx, http.MethodPost, "/products", in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetProduct fetches a single product, precio y stock actuales incluidos.
func (c *Client) GetProduct(ctx context.Context, id string) (*catalog.Product, error) {
	var p catalog.Product
	if err := c.do(ctx, http.MethodGet, "/products/"+id, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateCategory registers a product category.
func (c *Client) CreateCategory(ctx context.Context, name, description string) (*catalog.Category, error) {
	var cat catalog.Category
	body := map[string]string{"name": name, "description": description}
	if err := c.do(ctx, http.MethodPost, "/categories", body, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// CreateSede registers a venue.
func (c *Client) CreateSede(ctx context.Context, in venues.SedeInput) (*venues.Sede, error) {
	var s venues.Sede
	if err := c.do(ctx, http.MethodPost, "/sedes", in, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateSupplier registers a supplier.
func (c *Client) CreateSupplier(ctx context.Context, in suppliers.Input) (*suppliers.Supplier, error) {
	var s suppliers.Supplier
	if err := c.do(ctx, http.MethodPost, "/suppliers", in, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Dashboard fetches the aggregate cards for the home screen.
func (c *Client) Dashboard(ctx context.Context) (*stats.Dashboard, error) {
	var d stats.Dashboard
	if err := c.do(ctx, http.MethodGet, "/stats/dashboard", nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
