package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"petstore-server/internal/platform/logger"
	"petstore-server/internal/router"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	quiet := logger.New(logger.Options{Level: logger.Error})
	ts := httptest.NewServer(router.NewRouter(router.Options{Log: quiet}))
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, base, method, path string, body any) (int, []byte) {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, base+path, rd)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	b, _ := io.ReadAll(res.Body)
	return res.StatusCode, b
}

func TestHTTP_EndToEnd_PetLifecycle(t *testing.T) {
	ts := newTestServer(t)

	// 1) Alta de mascota con tags: id asignado 0, cascada incluida
	st, body := doJSON(t, ts.URL, "POST", "/v2/pet", map[string]any{
		"name":      "Rex",
		"photoUrls": []string{"http://example.com/rex.jpg"},
		"tags":      []map[string]any{{"name": "dog"}},
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 creating pet, got %d body=%s", st, body)
	}
	var created struct {
		ID   *uint64 `json:"id"`
		Name string  `json:"name"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("decode created pet: %v", err)
	}
	if created.ID == nil || *created.ID != 0 || created.Name != "Rex" {
		t.Fatalf("unexpected created pet: %s", body)
	}

	// 2) Alta con id pre-cargado: rechazada
	st, _ = doJSON(t, ts.URL, "POST", "/v2/pet", map[string]any{
		"id": 5, "name": "bad", "photoUrls": []string{},
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for preset id, got %d", st)
	}

	// 3) Perfil por id
	st, body = doJSON(t, ts.URL, "GET", "/v2/pet/0", nil)
	if st != http.StatusOK || !strings.Contains(string(body), "Rex") {
		t.Fatalf("expected 200 with Rex, got %d body=%s", st, body)
	}

	// 4) findByStatus OR: Rex no tiene status, matchea cualquier filtro
	st, body = doJSON(t, ts.URL, "GET", "/v2/pet/findByStatus?status=available,adopted", nil)
	if st != http.StatusOK || !strings.Contains(string(body), "Rex") {
		t.Fatalf("expected 200 including unset-status pet, got %d body=%s", st, body)
	}

	// 5) status inválido en el filtro: 400
	st, _ = doJSON(t, ts.URL, "GET", "/v2/pet/findByStatus?status=bogus", nil)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for bogus status, got %d", st)
	}

	// 6) findByTags AND
	st, _ = doJSON(t, ts.URL, "POST", "/v2/pet", map[string]any{
		"name":      "Whiskers",
		"photoUrls": []string{},
		"tags":      []map[string]any{{"name": "cat"}, {"name": "cute"}},
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 creating second pet, got %d", st)
	}
	st, body = doJSON(t, ts.URL, "GET", "/v2/pet/findByTags?tags=cat,cute", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	if !strings.Contains(string(body), "Whiskers") || strings.Contains(string(body), "Rex") {
		t.Fatalf("expected only the pet with both tags, got %s", body)
	}

	// 7) Patch parcial por form: nombre y status
	form := url.Values{"name": {"Alice"}, "status": {"adopted"}}
	res, err := http.Post(ts.URL+"/v2/pet/0", "application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("form post failed: %v", err)
	}
	b, _ := io.ReadAll(res.Body)
	res.Body.Close()
	if res.StatusCode != http.StatusOK || !strings.Contains(string(b), "Alice") {
		t.Fatalf("expected 200 with renamed pet, got %d body=%s", res.StatusCode, b)
	}

	// 8) PUT sin id: 400 por identificador faltante
	st, _ = doJSON(t, ts.URL, "PUT", "/v2/pet", map[string]any{
		"name": "NoID", "photoUrls": []string{},
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for update without id, got %d", st)
	}

	// 9) Baja: 204 la primera vez, 404 la segunda (asimetría con órdenes)
	st, _ = doJSON(t, ts.URL, "DELETE", "/v2/pet/0", nil)
	if st != http.StatusNoContent {
		t.Fatalf("expected 204 deleting pet, got %d", st)
	}
	st, _ = doJSON(t, ts.URL, "DELETE", "/v2/pet/0", nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 deleting absent pet, got %d", st)
	}
}

func TestHTTP_EndToEnd_StoreOrders(t *testing.T) {
	ts := newTestServer(t)

	// Inventario con mascotas en varios estados
	for _, p := range []map[string]any{
		{"name": "a", "photoUrls": []string{}, "status": "available"},
		{"name": "b", "photoUrls": []string{}, "status": "available"},
		{"name": "c", "photoUrls": []string{}, "status": "pending"},
		{"name": "d", "photoUrls": []string{}},
		{"name": "e", "photoUrls": []string{}, "status": "adopted"},
	} {
		if st, body := doJSON(t, ts.URL, "POST", "/v2/pet", p); st != http.StatusCreated {
			t.Fatalf("seed pet failed: %d body=%s", st, body)
		}
	}

	st, body := doJSON(t, ts.URL, "GET", "/v2/store/inventory", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 for inventory, got %d", st)
	}
	var inv struct {
		Available uint32 `json:"available"`
		Pending   uint32 `json:"pending"`
		Adopted   uint32 `json:"adopted"`
	}
	if err := json.Unmarshal(body, &inv); err != nil {
		t.Fatalf("decode inventory: %v", err)
	}
	if inv.Available != 2 || inv.Pending != 1 || inv.Adopted != 1 {
		t.Fatalf("expected {2,1,1}, got %+v", inv)
	}

	// Alta de orden: el guard rechaza status pre-cargado
	st, _ = doJSON(t, ts.URL, "POST", "/v2/store/order", map[string]any{
		"petId": 0, "quantity": 1, "status": "placed",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for order with status, got %d", st)
	}

	st, body = doJSON(t, ts.URL, "POST", "/v2/store/order", map[string]any{
		"petId": 0, "quantity": 2,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 creating order, got %d body=%s", st, body)
	}

	st, _ = doJSON(t, ts.URL, "GET", "/v2/store/order/0", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 for order 0, got %d", st)
	}

	// Delete: 200 con el booleano, nunca 404
	st, body = doJSON(t, ts.URL, "DELETE", "/v2/store/order/0", nil)
	if st != http.StatusOK || strings.TrimSpace(string(body)) != "true" {
		t.Fatalf("expected 200 true, got %d body=%s", st, body)
	}
	st, body = doJSON(t, ts.URL, "DELETE", "/v2/store/order/0", nil)
	if st != http.StatusOK || strings.TrimSpace(string(body)) != "false" {
		t.Fatalf("expected 200 false for absent order, got %d body=%s", st, body)
	}

	st, _ = doJSON(t, ts.URL, "GET", "/v2/store/order/0", nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 for deleted order, got %d", st)
	}
}

func TestHTTP_EndToEnd_Users(t *testing.T) {
	ts := newTestServer(t)

	// Alta: responde el username
	st, body := doJSON(t, ts.URL, "POST", "/v2/user", map[string]any{
		"username": "alice", "password": "s3cret", "email": "a@example.com",
	})
	if st != http.StatusCreated || !strings.Contains(string(body), "alice") {
		t.Fatalf("expected 201 with username, got %d body=%s", st, body)
	}

	// Username duplicado: 409
	st, _ = doJSON(t, ts.URL, "POST", "/v2/user", map[string]any{
		"username": "alice", "password": "other",
	})
	if st != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate username, got %d", st)
	}

	// Lote con duplicado a mitad: la primera entrada queda, el resto no
	st, _ = doJSON(t, ts.URL, "POST", "/v2/user/createWithList", []map[string]any{
		{"username": "bob", "password": "x"},
		{"username": "bob", "password": "y"},
		{"username": "carol", "password": "z"},
	})
	if st != http.StatusConflict {
		t.Fatalf("expected 409 for batch with duplicate, got %d", st)
	}
	if st, _ := doJSON(t, ts.URL, "GET", "/v2/user/bob", nil); st != http.StatusOK {
		t.Fatalf("expected bob persisted, got %d", st)
	}
	if st, _ := doJSON(t, ts.URL, "GET", "/v2/user/carol", nil); st != http.StatusNotFound {
		t.Fatalf("expected carol never attempted, got %d", st)
	}

	// Update por username, conservando el id del alta
	st, body = doJSON(t, ts.URL, "PUT", "/v2/user/alice", map[string]any{
		"username": "ignored", "password": "new", "email": "new@example.com",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 updating user, got %d body=%s", st, body)
	}
	var updated struct {
		ID       *uint64 `json:"id"`
		Username string  `json:"username"`
		Email    string  `json:"email"`
	}
	if err := json.Unmarshal(body, &updated); err != nil {
		t.Fatalf("decode updated user: %v", err)
	}
	if updated.Username != "alice" || updated.Email != "new@example.com" || updated.ID == nil {
		t.Fatalf("unexpected updated user: %s", body)
	}

	st, _ = doJSON(t, ts.URL, "PUT", "/v2/user/ghost", map[string]any{"password": "x"})
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 updating unknown user, got %d", st)
	}

	// Delete idempotente: 204 las dos veces
	for i := 0; i < 2; i++ {
		if st, _ := doJSON(t, ts.URL, "DELETE", "/v2/user/alice", nil); st != http.StatusNoContent {
			t.Fatalf("expected 204 on delete attempt %d, got %d", i+1, st)
		}
	}
	if st, _ := doJSON(t, ts.URL, "GET", "/v2/user/alice", nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", st)
	}
}

func TestHTTP_Health(t *testing.T) {
	ts := newTestServer(t)

	st, body := doJSON(t, ts.URL, "GET", "/health", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected 200 ok, got %d body=%s", st, body)
	}
}
