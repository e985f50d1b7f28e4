// ABOUTME: Inventory movement operations against the backend
// ABOUTME: Lists movement history and records stock entries and exits

package api

import (
	"context"
	"fmt"
)

// Movement types accepted by the backend
const (
	MovementIn  = "ENTRADA"
	MovementOut = "SALIDA"
)

// InventoryMovement is one recorded stock movement
type InventoryMovement struct {
	ID              int     `json:"id"`
	Producto        Product `json:"producto"`
	TipoMovimiento  string  `json:"tipo_movimiento"`
	Cantidad        int     `json:"cantidad"`
	Motivo          string  `json:"motivo"`
	FechaMovimiento string  `json:"fecha_movimiento"`
}

// MovementInput is the payload for recording a movement
type MovementInput struct {
	ProductoID     int    `json:"producto_id"`
	TipoMovimiento string `json:"tipo_movimiento"`
	Cantidad       int    `json:"cantidad"`
	Motivo         string `json:"motivo"`
}

const inventoryEndpoint = "/logistics/inventory/"

// InventoryMovements lists movement history via GET /logistics/inventory/
func (c *Client) InventoryMovements(ctx context.Context) ([]InventoryMovement, error) {
	var page Paginated[InventoryMovement]
	if err := c.get(ctx, inventoryEndpoint, nil, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// CreateInventoryMovement records a movement via POST /logistics/inventory/
func (c *Client) CreateInventoryMovement(ctx context.Context, input MovementInput) (*InventoryMovement, error) {
	if input.TipoMovimiento != MovementIn && input.TipoMovimiento != MovementOut {
		return nil, fmt.Errorf("movement type must be %s or %s", MovementIn, MovementOut)
	}

	var created InventoryMovement
	if err := c.post(ctx, inventoryEndpoint, input, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
