// Package dianpayroll implementa el cliente HTTP del servicio de recepción de
// nómina electrónica DIAN. El servicio se consume como API JSON opaca; la
// firma y validación del documento las hace el proveedor tecnológico.
package dianpayroll

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/acuasoft/acueducto-api/internal/application/payroll"
	"github.com/acuasoft/acueducto-api/pkg/config"
)

var _ payroll.Submitter = (*Client)(nil)

// Client envía documentos de nómina al endpoint de recepción.
type Client struct {
	baseURL     string
	softwarePIN string
	httpClient  *http.Client
}

// NewClient construye el cliente con la configuración DIAN.
func NewClient(cfg config.DIANPayrollConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:     cfg.BaseURL,
		softwarePIN: cfg.SoftwarePIN,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

type submitResponse struct {
	Accepted bool   `json:"aceptado"`
	TrackID  string `json:"track_id"`
	Message  string `json:"mensaje"`
}

// Submit publica el documento en POST {base}/nomina/recepcion y mapea la respuesta.
func (c *Client) Submit(ctx context.Context, doc *payroll.Document) (*payroll.SubmitResult, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal documento nomina: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/nomina/recepcion", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request nomina: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Software-Pin", c.softwarePIN)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("enviar nomina DIAN: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("servicio nomina DIAN: status %d", resp.StatusCode)
	}

	var out submitResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode respuesta nomina: %w", err)
	}
	return &payroll.SubmitResult{
		Accepted: out.Accepted && resp.StatusCode == http.StatusOK,
		TrackID:  out.TrackID,
		Message:  out.Message,
	}, nil
}
