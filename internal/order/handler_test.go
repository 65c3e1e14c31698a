package order

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"incorply/internal/catalog"
)

func setupOrderTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	repo := NewInMemoryRepository()
	service := NewService(repo, catalog.Default(), zap.NewNop())
	handler := NewHandler(service)

	r.POST("/orders", handler.CreateOrder)
	r.GET("/orders/:id", handler.GetOrder)
	r.PATCH("/orders/:id", handler.UpdateOrder)
	r.DELETE("/orders/:id", handler.DeleteOrder)
	r.GET("/orders/:id/items", handler.GetItems)
	r.POST("/orders/:id/checkout", handler.Checkout)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createOrder(t *testing.T, r *gin.Engine) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/orders", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}

	var resp struct {
		SessionID string `json:"session_id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.SessionID == "" {
		t.Fatalf("missing session id")
	}
	return resp.SessionID
}

func TestCreateAndGetOrder(t *testing.T) {
	r := setupOrderTestRouter()
	id := createOrder(t, r)

	w := doJSON(t, r, http.MethodGet, "/orders/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestGetUnknownOrder(t *testing.T) {
	r := setupOrderTestRouter()

	w := doJSON(t, r, http.MethodGet, "/orders/nope", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestDeleteOrder(t *testing.T) {
	r := setupOrderTestRouter()
	id := createOrder(t, r)

	w := doJSON(t, r, http.MethodDelete, "/orders/"+id, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/orders/"+id, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("deleted order still readable, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodDelete, "/orders/"+id, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for second delete, got %d", w.Code)
	}
}

func TestPatchRecomputesItems(t *testing.T) {
	r := setupOrderTestRouter()
	id := createOrder(t, r)

	w := doJSON(t, r, http.MethodPatch, "/orders/"+id, map[string]any{
		"needs_assessment": map[string]any{"region": "Asia-Pacific"},
		"incorporation": map[string]any{
			"jurisdiction": "Singapore",
			"company_type": "Private Limited Company",
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Items []Item  `json:"items"`
		Total float64 `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(resp.Items) != 2 || resp.Total != 599 {
		t.Fatalf("unexpected derivation: %d items, total %v", len(resp.Items), resp.Total)
	}
}

func TestCheckoutFlow(t *testing.T) {
	r := setupOrderTestRouter()
	id := createOrder(t, r)

	// Checkout before selecting anything is rejected.
	w := doJSON(t, r, http.MethodPost, "/orders/"+id+"/checkout", map[string]any{"payment_method": "card"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	doJSON(t, r, http.MethodPatch, "/orders/"+id, map[string]any{
		"needs_assessment": map[string]any{"region": "Europe"},
		"incorporation": map[string]any{
			"jurisdiction": "United Kingdom",
			"company_type": "Private Limited Company",
		},
	})

	// Paid checkout needs a payment method.
	w = doJSON(t, r, http.MethodPost, "/orders/"+id+"/checkout", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 without payment method, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/orders/"+id+"/checkout", map[string]any{"payment_method": "card"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		State State `json:"state"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.State.OrderStatus != StatusSuccess || resp.State.OrderID == "" || resp.State.PaymentDate == nil {
		t.Fatalf("checkout did not stamp the order: %+v", resp.State)
	}

	// A second checkout is rejected.
	w = doJSON(t, r, http.MethodPost, "/orders/"+id+"/checkout", map[string]any{"payment_method": "card"})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", w.Code)
	}
}
