// ABOUTME: Tests for the product and inventory commands
// ABOUTME: Verifies auth gating, bearer attachment, and table output

package cmd

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/smartsales365/console/internal/api"
)

func TestRunProductsListRequiresAuth(t *testing.T) {
	pointEnvAt(t, "http://localhost:0")

	var buf bytes.Buffer
	if code := runProductsList(context.Background(), &buf); code != 1 {
		t.Fatalf("expected exit 1 without a session, got %d", code)
	}
	if !strings.Contains(buf.String(), "Not logged in") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestRunProductsListOutput(t *testing.T) {
	var sawBearer string
	backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		sawBearer = r.Header.Get("Authorization")
		switch r.URL.Path {
		case "/productos/":
			jsonResponse(t, w, envelope([]api.Product{
				{ID: 1, Name: "Teclado", Precio: "19990", Stock: 2, MinStock: 5, Categoria: api.Category{Nombre: "Periféricos"}},
				{ID: 2, Name: "Mouse", Precio: "9990", Stock: 50, MinStock: 5},
			}))
		case "/categorias/":
			jsonResponse(t, w, envelope([]api.Category{{ID: 1, Nombre: "Periféricos"}}))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})
	dir := pointEnvAt(t, backend.URL)
	access := seedSession(t, dir, "Operador", "maria")

	var buf bytes.Buffer
	if code := runProductsList(context.Background(), &buf); code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, buf.String())
	}

	if sawBearer != "Bearer "+access {
		t.Errorf("expected the stored token as bearer, got %q", sawBearer)
	}

	out := buf.String()
	if !strings.Contains(out, "Teclado") || !strings.Contains(out, "Periféricos") {
		t.Errorf("expected product rows, got: %s", out)
	}
	if !strings.Contains(out, "2 (low)") {
		t.Errorf("expected the low stock marker on understocked rows, got: %s", out)
	}
	if !strings.Contains(out, "2 products, 1 categories") {
		t.Errorf("expected the summary line, got: %s", out)
	}
}

func TestRunProductsDeleteBadID(t *testing.T) {
	pointEnvAt(t, "http://localhost:0")

	var buf bytes.Buffer
	if code := runProductsDelete(context.Background(), &buf, "abc"); code != 1 {
		t.Fatalf("expected exit 1 for a non-numeric id, got %d", code)
	}
}

func TestRunProductsCreateBackendError(t *testing.T) {
	backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		jsonResponse(t, w, map[string]string{"detail": "precio inválido"})
	})
	dir := pointEnvAt(t, backend.URL)
	seedSession(t, dir, "Admin", "dueño")

	var buf bytes.Buffer
	code := runProductsCreate(context.Background(), &buf, api.ProductInput{Name: "X", Precio: "-1"})
	if code != 2 {
		t.Fatalf("expected exit 2 on backend rejection, got %d", code)
	}
	if !strings.Contains(buf.String(), "precio inválido") {
		t.Errorf("expected the backend detail in output, got: %s", buf.String())
	}
}

func TestRunInventoryRecordInvalidType(t *testing.T) {
	dir := pointEnvAt(t, "http://localhost:0")
	seedSession(t, dir, "Operador", "maria")

	var buf bytes.Buffer
	code := runInventoryRecord(context.Background(), &buf, api.MovementInput{
		ProductoID: 1, TipoMovimiento: "TRANSFER", Cantidad: 5,
	})
	if code != 2 {
		t.Fatalf("expected exit 2 for an invalid movement type, got %d", code)
	}
	if !strings.Contains(buf.String(), api.MovementIn) {
		t.Errorf("expected the error to name the accepted types, got: %s", buf.String())
	}
}

func TestRunInventoryRecordSuccess(t *testing.T) {
	backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/logistics/inventory/" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		jsonResponse(t, w, api.InventoryMovement{
			ID: 9, TipoMovimiento: api.MovementOut, Cantidad: 3,
			Producto: api.Product{ID: 1, Name: "Teclado"},
		})
	})
	dir := pointEnvAt(t, backend.URL)
	seedSession(t, dir, "Operador", "maria")

	var buf bytes.Buffer
	code := runInventoryRecord(context.Background(), &buf, api.MovementInput{
		ProductoID: 1, TipoMovimiento: api.MovementOut, Cantidad: 3, Motivo: "venta",
	})
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, buf.String())
	}
	if !strings.Contains(buf.String(), "Recorded SALIDA of 3 x Teclado") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}
