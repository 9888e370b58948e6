package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"emunah/internal/config"
	"emunah/internal/http/handlers"
	"emunah/internal/store"
)

// Minimal app setup shared by the API tests.
func newTestApp(t *testing.T) (*fiber.App, store.Storage) {
	t.Helper()
	st := store.NewMemory()
	cfg := config.Config{UploadDir: t.TempDir()}

	app := fiber.New()
	app.Server().MaxRequestBodySize = 6 << 20
	app.Use(requestid.New())
	handlers.Register(app, handlers.NewDeps(st, cfg))
	return app, st
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	raw, _ := io.ReadAll(resp.Body)
	var m map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		_ = json.Unmarshal(raw, &m)
	}
	return resp, m
}

func doJSONList(t *testing.T, app *fiber.App, path string) (*http.Response, []map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	if err != nil {
		t.Fatal(err)
	}
	raw, _ := io.ReadAll(resp.Body)
	var list []map[string]any
	if err := json.Unmarshal(raw, &list); err != nil {
		t.Fatalf("expected JSON array from %s, got %s", path, raw)
	}
	return resp, list
}

func TestProductLifecycle(t *testing.T) {
	app, _ := newTestApp(t)

	resp, p := doJSON(t, app, "POST", "/api/products", `{
		"name":"Camiseta EMUNAH Básica","slug":"camiseta-emunah-basica",
		"price":"89.90","description":"Algodão premium","category":"Roupas",
		"image":"/uploads/camiseta.png","stock":10
	}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create expected 201, got %d body=%v", resp.StatusCode, p)
	}
	if p["price"] != "89.90" {
		t.Fatalf("price should serialize as 2-digit string, got %v", p["price"])
	}
	if p["active"] != true {
		t.Fatalf("active should default to true, got %v", p["active"])
	}
	id := p["id"].(string)

	// duplicate slug is a conflict
	resp, body := doJSON(t, app, "POST", "/api/products", `{
		"name":"Outra","slug":"camiseta-emunah-basica","price":"10.00",
		"description":"d","category":"Roupas","image":"i"
	}`)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("dup slug expected 409, got %d body=%v", resp.StatusCode, body)
	}

	// slug lookup must not be shadowed by the :id route
	resp, bySlug := doJSON(t, app, "GET", "/api/products/slug/camiseta-emunah-basica", "")
	if resp.StatusCode != http.StatusOK || bySlug["id"] != id {
		t.Fatalf("slug lookup failed: %d %v", resp.StatusCode, bySlug)
	}

	resp, patched := doJSON(t, app, "PATCH", "/api/products/"+id, `{"stock":5}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("patch expected 200, got %d", resp.StatusCode)
	}
	if patched["stock"] != float64(5) {
		t.Fatalf("stock not updated: %v", patched["stock"])
	}
	if patched["name"] != "Camiseta EMUNAH Básica" {
		t.Fatalf("patch clobbered name: %v", patched["name"])
	}

	resp, _ = doJSON(t, app, "DELETE", "/api/products/"+id, "")
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete expected 204, got %d", resp.StatusCode)
	}
	resp, _ = doJSON(t, app, "DELETE", "/api/products/"+id, "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("second delete expected 404, got %d", resp.StatusCode)
	}
	resp, _ = doJSON(t, app, "GET", "/api/products/"+id, "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("get after delete expected 404, got %d", resp.StatusCode)
	}
}

func TestClientDedupOverHTTP(t *testing.T) {
	app, _ := newTestApp(t)

	resp, first := doJSON(t, app, "POST", "/api/clients", `{"name":"Maria Silva","phone":"(11) 98888-7777"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("first create expected 201, got %d", resp.StatusCode)
	}

	resp, second := doJSON(t, app, "POST", "/api/clients", `{"name":"M. Silva","phone":"(11) 98888-7777"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("duplicate phone expected 200, got %d", resp.StatusCode)
	}
	if second["id"] != first["id"] {
		t.Fatalf("dedup should return the existing client: %v vs %v", second["id"], first["id"])
	}
	if second["name"] != "Maria Silva" {
		t.Fatalf("existing record must win: %v", second["name"])
	}

	_, list := doJSONList(t, app, "/api/clients")
	if len(list) != 1 {
		t.Fatalf("expected exactly one client, got %d", len(list))
	}
}

func TestQuoteToOrderFlow(t *testing.T) {
	app, _ := newTestApp(t)

	resp, q := doJSON(t, app, "POST", "/api/quotes", `{
		"clientId":"c1","clientName":"Maria Silva","clientPhone":"(11) 98888-7777",
		"items":"[{\"productName\":\"Camiseta\",\"quantity\":2,\"unitPrice\":\"10.00\"},{\"productName\":\"Caneca\",\"quantity\":1,\"unitPrice\":\"5.00\"}]",
		"subtotal":"25.00","total":"25.00"
	}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("quote create expected 201, got %d body=%v", resp.StatusCode, q)
	}
	if q["subtotal"] != "25.00" {
		t.Fatalf("subtotal = %v", q["subtotal"])
	}
	num, _ := q["quoteNumber"].(string)
	if !strings.HasPrefix(num, "ORC-") {
		t.Fatalf("quoteNumber = %q", num)
	}
	quoteID := q["id"].(string)

	// wrong subtotal is refused with the field named
	resp, body := doJSON(t, app, "POST", "/api/quotes", `{
		"clientId":"c1","clientName":"Maria","clientPhone":"11",
		"items":"[{\"productName\":\"Camiseta\",\"quantity\":2,\"unitPrice\":\"10.00\"}]",
		"subtotal":"99.00","total":"99.00"
	}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad subtotal expected 400, got %d", resp.StatusCode)
	}
	if msg, _ := body["error"].(string); !strings.Contains(msg, "subtotal") {
		t.Fatalf("error should name the field: %v", body)
	}

	resp, o := doJSON(t, app, "POST", "/api/quotes/"+quoteID+"/convert", "")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("convert expected 201, got %d body=%v", resp.StatusCode, o)
	}
	if o["quoteId"] != quoteID {
		t.Fatalf("order should reference the quote: %v", o["quoteId"])
	}
	if o["total"] != "25.00" || o["shippingCost"] != "0.00" {
		t.Fatalf("converted order totals wrong: %v / %v", o["total"], o["shippingCost"])
	}
	if onum, _ := o["orderNumber"].(string); !strings.HasPrefix(onum, "PED-") {
		t.Fatalf("orderNumber = %v", o["orderNumber"])
	}

	resp, body = doJSON(t, app, "POST", "/api/quotes/"+quoteID+"/convert", "")
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("second convert expected 409, got %d", resp.StatusCode)
	}
	if body["error"] != "Quote already converted" {
		t.Fatalf("conflict message = %v", body["error"])
	}

	resp, quote := doJSON(t, app, "GET", "/api/quotes/"+quoteID, "")
	if resp.StatusCode != http.StatusOK || quote["status"] != "converted" {
		t.Fatalf("quote should be converted: %d %v", resp.StatusCode, quote["status"])
	}
}

func TestOrderTotalsOverHTTP(t *testing.T) {
	app, _ := newTestApp(t)

	resp, o := doJSON(t, app, "POST", "/api/orders", `{
		"clientId":"c1","clientName":"Maria Silva","clientPhone":"(11) 98888-7777",
		"items":"[{\"productName\":\"Camiseta\",\"quantity\":2,\"unitPrice\":\"10.00\"},{\"productName\":\"Caneca\",\"quantity\":1,\"unitPrice\":\"5.00\"}]",
		"subtotal":"25.00","shippingCost":"25.00","total":"50.00"
	}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("order create expected 201, got %d body=%v", resp.StatusCode, o)
	}
	if o["total"] != "50.00" {
		t.Fatalf("total = %v", o["total"])
	}

	resp, body := doJSON(t, app, "POST", "/api/orders", `{
		"clientId":"c1","clientName":"Maria","clientPhone":"11",
		"items":"[{\"productName\":\"Camiseta\",\"quantity\":1,\"unitPrice\":\"10.00\"}]",
		"subtotal":"10.00","shippingCost":"5.00","total":"10.00"
	}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("broken total expected 400, got %d body=%v", resp.StatusCode, body)
	}

	id := o["id"].(string)
	resp, patched := doJSON(t, app, "PATCH", "/api/orders/"+id, `{"status":"shipped","trackingCode":"BR123456789"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status patch expected 200, got %d", resp.StatusCode)
	}
	if patched["status"] != "shipped" || patched["trackingCode"] != "BR123456789" {
		t.Fatalf("patch not applied: %v", patched)
	}
}

func TestDashboardStatsShape(t *testing.T) {
	app, _ := newTestApp(t)

	doJSON(t, app, "POST", "/api/orders", `{
		"clientId":"c1","clientName":"Maria","clientPhone":"11",
		"items":"[{\"productName\":\"Caneca\",\"quantity\":1,\"unitPrice\":\"45.90\"}]",
		"subtotal":"45.90","total":"45.90"
	}`)

	resp, stats := doJSON(t, app, "GET", "/api/dashboard/stats", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("stats expected 200, got %d", resp.StatusCode)
	}
	if stats["totalSales"] != "45.90" {
		t.Fatalf("totalSales = %v", stats["totalSales"])
	}
	if stats["pendingOrders"] != float64(1) || stats["totalOrders"] != float64(1) {
		t.Fatalf("order counts wrong: %v", stats)
	}
	for _, key := range []string{"approvedQuotes", "conversionRate", "newClients", "totalQuotes"} {
		if _, ok := stats[key]; !ok {
			t.Fatalf("stats missing %s: %v", key, stats)
		}
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	app, _ := newTestApp(t)

	resp, s := doJSON(t, app, "GET", "/api/settings", "")
	if resp.StatusCode != http.StatusOK || s["storeName"] != "EMUNAH" {
		t.Fatalf("default settings wrong: %d %v", resp.StatusCode, s)
	}

	resp, s = doJSON(t, app, "PATCH", "/api/settings", `{"instagram":"@emunah.store","quoteAlerts":false}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("settings patch expected 200, got %d", resp.StatusCode)
	}
	if s["instagram"] != "@emunah.store" || s["quoteAlerts"] != false {
		t.Fatalf("patch not applied: %v", s)
	}
	if s["storeName"] != "EMUNAH" {
		t.Fatalf("unpatched field lost: %v", s["storeName"])
	}
}

func TestLoginEndpoint(t *testing.T) {
	app, st := newTestApp(t)
	if err := store.Seed(st); err != nil {
		t.Fatal(err)
	}

	resp, u := doJSON(t, app, "POST", "/api/auth/login", `{"username":"admin","password":"emunah123"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login expected 200, got %d", resp.StatusCode)
	}
	if u["username"] != "admin" {
		t.Fatalf("login body = %v", u)
	}
	if _, leaked := u["password_hash"]; leaked {
		t.Fatal("password hash must never serialize")
	}

	resp, _ = doJSON(t, app, "POST", "/api/auth/login", `{"username":"admin","password":"wrong"}`)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bad password expected 401, got %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, app, "POST", "/api/auth/login", `{"username":"admin"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing password expected 400, got %d", resp.StatusCode)
	}
}
