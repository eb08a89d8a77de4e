package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Property es la foto de una propiedad tal como llega del feed. Price se
// conserva como json.Number para renderizarlo literal, sin redondeos del
// lado del cliente.
type Property struct {
	PropertyID int64       `json:"property_id"`
	Title      string      `json:"title"`
	City       string      `json:"city"`
	Price      json.Number `json:"price"`
}

// OwnerDashboardEntry llega precalculada del servidor; el cliente la trata
// como opaca y la muestra literal.
type OwnerDashboardEntry struct {
	PropertyTitle      string      `json:"property_title"`
	RentalYieldPercent json.Number `json:"rental_yield_percent"`
	YearsToCoverPrice  json.Number `json:"years_to_cover_price"`
}

type InterestedTenant struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type TenantDashboardEntry struct {
	Title             string             `json:"title"`
	TotalLikes        int                `json:"total_likes"`
	InterestedTenants []InterestedTenant `json:"interested_tenants"`
}

// AuthResult es la respuesta de un login exitoso.
type AuthResult struct {
	Message  string
	UserID   int64
	UserType UserType
}

// Gateway abstrae las operaciones remotas de las que depende el núcleo.
// fetchDashboard se divide en dos porque cada rol pega a su propio endpoint.
type Gateway interface {
	Authenticate(ctx context.Context, email, password string) (AuthResult, error)
	Register(ctx context.Context, email, password string, userType UserType) (string, error)
	ListProperties(ctx context.Context) ([]Property, error)
	RecordInterest(ctx context.Context, propertyID, tenantUserID int64) (string, error)
	FetchOwnerDashboard(ctx context.Context, userID int64) ([]OwnerDashboardEntry, error)
	FetchTenantDashboard(ctx context.Context, userID int64) ([]TenantDashboardEntry, error)
}

// HTTPGateway implementa Gateway contra la API REST. El único discriminador
// entre forma de éxito y de error es el status 2xx, como define el contrato.
type HTTPGateway struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewHTTPGateway construye el gateway apuntando a la API.
func NewHTTPGateway(baseURL string, logger *zap.Logger) *HTTPGateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
		logger:  logger,
	}
}

func (g *HTTPGateway) Authenticate(ctx context.Context, email, password string) (AuthResult, error) {
	body := map[string]string{"email": email, "password": password}
	var resp struct {
		Message  string `json:"message"`
		UserID   int64  `json:"user_id"`
		UserType string `json:"user_type"`
	}
	if serverMsg, err := g.post(ctx, "/login", body, &resp); err != nil {
		if serverMsg != "" {
			return AuthResult{}, &AuthError{Message: serverMsg}
		}
		return AuthResult{}, err
	}
	return AuthResult{
		Message:  resp.Message,
		UserID:   resp.UserID,
		UserType: UserType(resp.UserType),
	}, nil
}

func (g *HTTPGateway) Register(ctx context.Context, email, password string, userType UserType) (string, error) {
	body := map[string]string{
		"email":     email,
		"password":  password,
		"user_type": string(userType),
	}
	var resp struct {
		Message string `json:"message"`
	}
	if serverMsg, err := g.post(ctx, "/signup", body, &resp); err != nil {
		if serverMsg != "" {
			return "", &RegistrationError{Message: serverMsg}
		}
		return "", err
	}
	return resp.Message, nil
}

func (g *HTTPGateway) ListProperties(ctx context.Context) ([]Property, error) {
	var props []Property
	if _, err := g.get(ctx, "/properties", &props); err != nil {
		return nil, err
	}
	return props, nil
}

func (g *HTTPGateway) RecordInterest(ctx context.Context, propertyID, tenantUserID int64) (string, error) {
	body := map[string]int64{
		"property_id":    propertyID,
		"tenant_user_id": tenantUserID,
	}
	var resp struct {
		Message string `json:"message"`
	}
	if serverMsg, err := g.post(ctx, "/like_property", body, &resp); err != nil {
		if serverMsg != "" {
			return "", &LikeError{Message: serverMsg}
		}
		return "", err
	}
	return resp.Message, nil
}

func (g *HTTPGateway) FetchOwnerDashboard(ctx context.Context, userID int64) ([]OwnerDashboardEntry, error) {
	var entries []OwnerDashboardEntry
	if serverMsg, err := g.get(ctx, fmt.Sprintf("/owner_dashboard/%d", userID), &entries); err != nil {
		if serverMsg != "" {
			return nil, &DashboardError{Message: serverMsg}
		}
		return nil, err
	}
	return entries, nil
}

func (g *HTTPGateway) FetchTenantDashboard(ctx context.Context, userID int64) ([]TenantDashboardEntry, error) {
	var entries []TenantDashboardEntry
	if serverMsg, err := g.get(ctx, fmt.Sprintf("/tenant_dashboard/%d", userID), &entries); err != nil {
		if serverMsg != "" {
			return nil, &DashboardError{Message: serverMsg}
		}
		return nil, err
	}
	return entries, nil
}

// post hace el request y decodifica la forma de éxito en out. Cuando el
// status no es 2xx devuelve el mensaje del servidor (campo error o message)
// para que el llamador lo envuelva en su tipo de error propio.
func (g *HTTPGateway) post(ctx context.Context, path string, body, out any) (string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return g.do(req, out)
}

func (g *HTTPGateway) get(ctx context.Context, path string, out any) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	return g.do(req, out)
}

func (g *HTTPGateway) do(req *http.Request, out any) (string, error) {
	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := serverMessage(respBody)
		g.logger.Warn("api error",
			zap.String("path", req.URL.Path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", msg),
		)
		if msg == "" {
			return "", fmt.Errorf("api error: status=%d", resp.StatusCode)
		}
		return msg, fmt.Errorf("api error: status=%d", resp.StatusCode)
	}

	if out == nil {
		return "", nil
	}
	dec := json.NewDecoder(bytes.NewReader(respBody))
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	return "", nil
}

// serverMessage extrae el texto mostrable de un cuerpo de error. La mayoría
// de los endpoints responden {error}; los dashboards responden {message}.
func serverMessage(body []byte) string {
	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	if envelope.Error != "" {
		return envelope.Error
	}
	return envelope.Message
}
