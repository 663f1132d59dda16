package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jhoicas/trendify-api/internal/application/ports"
	"github.com/jhoicas/trendify-api/pkg/config"
)

var _ ports.PaymentGateway = (*EMISClient)(nil)

// EMISClient cliente HTTP de la pasarela de pagos EMIS (Multicaixa Express,
// ATM y referencias de pago). La pasarela solo responde autorizado/denegado:
// no hay transaction id, captura parcial ni void.
type EMISClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewEMISClient construye el cliente con el timeout de la config.
func NewEMISClient(cfg config.PaymentConfig) *EMISClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &EMISClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
	}
}

type authorizeRequest struct {
	Method string  `json:"method"`
	Amount float64 `json:"amount"`
}

type authorizeResponse struct {
	Authorized bool `json:"authorized"`
}

// Authorize envía la autorización y devuelve la decisión de la pasarela.
// Respeta el deadline del ctx además del timeout propio del cliente.
func (c *EMISClient) Authorize(ctx context.Context, method string, amount float64) (bool, error) {
	body, err := json.Marshal(authorizeRequest{Method: method, Amount: amount})
	if err != nil {
		return false, fmt.Errorf("serializar autorización: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/charges/authorize", bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("crear request de autorización: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("llamar pasarela: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("pasarela respondió %d", resp.StatusCode)
	}
	var out authorizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false, fmt.Errorf("decodificar respuesta de la pasarela: %w", err)
	}
	return out.Authorized, nil
}
