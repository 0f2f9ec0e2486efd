package billing

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(Config{
		BaseURL: server.URL,
		APIKey:  "xnd_test_key",
		Timeout: 2 * time.Second,
	})
}

func TestCreatePlanRequestShape(t *testing.T) {
	var gotMethod, gotPath, gotUser, gotPass string
	var gotBody CreatePlanRequest

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(Plan{ID: "repl-1", Status: "ACTIVE"})
	})

	plan, err := client.CreatePlan(context.Background(), CreatePlanRequest{
		ReferenceID:     "plan-abc",
		CustomerID:      "cust-1",
		Amount:          450000,
		Currency:        "IDR",
		RecurringAction: "PAYMENT",
		Recurring:       RecurringSchedule{Interval: "MONTH", IntervalCount: 1},
	})
	if err != nil {
		t.Fatalf("CreatePlan failed: %v", err)
	}

	if gotMethod != http.MethodPost || gotPath != "/recurring/plans" {
		t.Errorf("got %s %s, want POST /recurring/plans", gotMethod, gotPath)
	}
	if gotUser != "xnd_test_key" || gotPass != "" {
		t.Errorf("basic auth must be the API key with an empty password, got %q/%q", gotUser, gotPass)
	}
	if gotBody.CustomerID != "cust-1" || gotBody.Currency != "IDR" {
		t.Errorf("unexpected body: %+v", gotBody)
	}
	if plan.ID != "repl-1" {
		t.Errorf("plan id %q", plan.ID)
	}
}

func TestUpdatePlanPatchesByExternalID(t *testing.T) {
	var gotMethod, gotPath string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(Plan{ID: "repl-1"})
	})

	_, err := client.UpdatePlan(context.Background(), "repl-1", UpdatePlanRequest{
		Metadata: map[string]interface{}{"plan_name": "Pro"},
	})
	if err != nil {
		t.Fatalf("UpdatePlan failed: %v", err)
	}
	if gotMethod != http.MethodPatch || gotPath != "/recurring/plans/repl-1" {
		t.Errorf("got %s %s, want PATCH /recurring/plans/repl-1", gotMethod, gotPath)
	}
}

func TestDeactivatePlanPath(t *testing.T) {
	var gotMethod, gotPath string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})

	if err := client.DeactivatePlan(context.Background(), "repl-1"); err != nil {
		t.Fatalf("DeactivatePlan failed: %v", err)
	}
	if gotMethod != http.MethodPost || gotPath != "/recurring/plans/repl-1/deactivate" {
		t.Errorf("got %s %s, want POST /recurring/plans/repl-1/deactivate", gotMethod, gotPath)
	}
}

func TestCreateCustomer(t *testing.T) {
	var gotPath string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(Customer{ID: "cust-1", ReferenceID: "trendlens-billing"})
	})

	customer, err := client.CreateCustomer(context.Background(), CreateCustomerRequest{
		ReferenceID: "trendlens-billing",
		GivenNames:  "Trendlens Billing",
	})
	if err != nil {
		t.Fatalf("CreateCustomer failed: %v", err)
	}
	if gotPath != "/customers" {
		t.Errorf("path %q, want /customers", gotPath)
	}
	if customer.ID != "cust-1" {
		t.Errorf("customer id %q", customer.ID)
	}
}

func TestProviderErrorCarriesMessageVerbatim(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error_code": "INVALID_API_KEY", "message": "API key is invalid"}`))
	})

	_, err := client.CreatePlan(context.Background(), CreatePlanRequest{})

	var perr *ProviderError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ProviderError, got %v", err)
	}
	if perr.StatusCode != http.StatusBadRequest {
		t.Errorf("status %d", perr.StatusCode)
	}
	if perr.Message != "API key is invalid" {
		t.Errorf("message must pass through verbatim, got %q", perr.Message)
	}
}

func TestProviderErrorFallsBackToRawBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	})

	err := client.DeactivatePlan(context.Background(), "repl-1")

	var perr *ProviderError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ProviderError, got %v", err)
	}
	if perr.Message != "upstream exploded" {
		t.Errorf("expected raw body as message, got %q", perr.Message)
	}
}

func TestNoRetryOnFailure(t *testing.T) {
	attempts := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, _ = client.CreatePlan(context.Background(), CreatePlanRequest{})
	if attempts != 1 {
		t.Errorf("client must not retry, saw %d attempts", attempts)
	}
}
