// ABOUTME: Product catalog operations against the backend
// ABOUTME: CRUD on products plus category listing and combined catalog fetch

package api

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Category is a product category
type Category struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}

// Attribute is a free-form key/value pair attached to a product
type Attribute struct {
	ID    int    `json:"id"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Product mirrors the backend product model. Precio arrives as a string
// because the backend serializes decimals that way.
type Product struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Categoria   Category    `json:"categoria"`
	Precio      string      `json:"precio"`
	Stock       int         `json:"stock"`
	MinStock    int         `json:"min_stock"`
	Atributos   []Attribute `json:"atributos"`
	SKU         string      `json:"sku"`
	Description string      `json:"description"`
}

// ProductInput is the create/update payload; the category travels by ID
type ProductInput struct {
	Name        string `json:"name"`
	Precio      string `json:"precio"`
	Stock       int    `json:"stock"`
	MinStock    int    `json:"min_stock"`
	SKU         string `json:"sku"`
	Description string `json:"description"`
	CategoriaID int    `json:"categoria_id"`
}

// Products lists the product catalog via GET /productos/
func (c *Client) Products(ctx context.Context) ([]Product, error) {
	var page Paginated[Product]
	if err := c.get(ctx, "/productos/", nil, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// Categories lists product categories via GET /categorias/. The backend has
// served this endpoint both with and without the pagination envelope, so
// both shapes are accepted.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/categorias/", nil, &raw); err != nil {
		return nil, err
	}

	var page Paginated[Category]
	if err := json.Unmarshal(raw, &page); err == nil && page.Results != nil {
		return page.Results, nil
	}

	var bare []Category
	if err := json.Unmarshal(raw, &bare); err != nil {
		return nil, fmt.Errorf("invalid response from backend: %w", err)
	}
	return bare, nil
}

// CatalogData fetches products and categories concurrently, for views that
// render both at once.
func (c *Client) CatalogData(ctx context.Context) ([]Product, []Category, error) {
	var (
		products   []Product
		categories []Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = c.Products(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = c.Categories(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return products, categories, nil
}

// CreateProduct creates a product via POST /productos/
func (c *Client) CreateProduct(ctx context.Context, input ProductInput) (*Product, error) {
	var created Product
	if err := c.post(ctx, "/productos/", input, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProduct replaces a product via PUT /productos/{id}/
func (c *Client) UpdateProduct(ctx context.Context, id int, input ProductInput) (*Product, error) {
	var updated Product
	if err := c.put(ctx, fmt.Sprintf("/productos/%d/", id), input, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteProduct removes a product via DELETE /productos/{id}/
func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/productos/%d/", id))
}
