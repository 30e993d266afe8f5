package dianpayroll_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acuasoft/acueducto-api/internal/application/payroll"
	"github.com/acuasoft/acueducto-api/internal/infrastructure/dianpayroll"
	"github.com/acuasoft/acueducto-api/pkg/config"
)

func TestClient_Submit(t *testing.T) {
	var received payroll.Document
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/nomina/recepcion", r.URL.Path)
		assert.Equal(t, "pin-123", r.Header.Get("X-Software-Pin"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"aceptado": true,
			"track_id": "track-7",
		})
	}))
	defer srv.Close()

	client := dianpayroll.NewClient(config.DIANPayrollConfig{
		BaseURL:     srv.URL,
		SoftwarePIN: "pin-123",
		TimeoutSec:  5,
	})

	doc := &payroll.Document{
		SoftwareID:  "sw-001",
		Environment: "2",
		EmployerNIT: "901234567",
		Period:      "2026-03",
		Workers: []payroll.DocumentEntry{
			{DocumentType: "CC", DocumentID: "1012345678", WorkerType: "01", DaysWorked: 30, Earned: "1300000.00"},
		},
	}
	result, err := client.Submit(context.Background(), doc)
	require.NoError(t, err)
	assert.True(t, result.Accepted)
	assert.Equal(t, "track-7", result.TrackID)
	assert.Equal(t, "901234567", received.EmployerNIT)
	require.Len(t, received.Workers, 1)
	assert.Equal(t, "1300000.00", received.Workers[0].Earned)
}

func TestClient_SubmitRechazado(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"aceptado": false,
			"track_id": "track-8",
			"mensaje":  "documento con errores de validación",
		})
	}))
	defer srv.Close()

	client := dianpayroll.NewClient(config.DIANPayrollConfig{BaseURL: srv.URL, TimeoutSec: 5})
	result, err := client.Submit(context.Background(), &payroll.Document{Period: "2026-03"})
	require.NoError(t, err)
	assert.False(t, result.Accepted)
	assert.Equal(t, "documento con errores de validación", result.Message)
}

func TestClient_SubmitErrorServidor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := dianpayroll.NewClient(config.DIANPayrollConfig{BaseURL: srv.URL, TimeoutSec: 5})
	_, err := client.Submit(context.Background(), &payroll.Document{Period: "2026-03"})
	assert.Error(t, err)
}
