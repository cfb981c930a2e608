package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Andres05MD/Wingx-Stock-sub001/internal/domain/repository"
	"github.com/Andres05MD/Wingx-Stock-sub001/pkg/retry"
)

var _ repository.RateSource = (*BCVClient)(nil)

// BCVClient adaptador HTTP del puerto RateSource: consulta el promedio
// oficial USD -> Bs publicado por el endpoint configurado.
type BCVClient struct {
	url    string
	client *http.Client
}

// NewBCVClient construye el cliente. httpClient nil usa uno con timeout de 10s.
func NewBCVClient(url string, httpClient *http.Client) *BCVClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &BCVClient{url: url, client: httpClient}
}

// FetchRate obtiene la tasa promedio actual. Fallos transitorios de red se
// reintentan con backoff; cualquier respuesta sin el campo "promedio"
// positivo se trata como fallo del servicio.
func (c *BCVClient) FetchRate(ctx context.Context) (decimal.Decimal, error) {
	return retry.Do(ctx, "tasa-bcv", c.fetchOnce, retry.Options{
		MaxRetries:   3,
		InitialDelay: 500 * time.Millisecond,
		MaxDelay:     5 * time.Second,
		ShouldRetry:  retry.IsTransient,
	})
}

func (c *BCVClient) fetchOnce(ctx context.Context) (decimal.Decimal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("crear request BCV: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("consultar tasa BCV: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("consultar tasa BCV: status %d", resp.StatusCode)
	}

	var payload struct {
		Promedio float64 `json:"promedio"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return decimal.Zero, fmt.Errorf("decodificar tasa BCV: %w", err)
	}
	if payload.Promedio <= 0 {
		return decimal.Zero, fmt.Errorf("tasa BCV inválida: %v", payload.Promedio)
	}
	return decimal.NewFromFloat(payload.Promedio), nil
}
