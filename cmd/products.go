// ABOUTME: Product commands for the smartsales CLI
// ABOUTME: Lists, creates, updates, and deletes catalog products

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/smartsales365/console/internal/api"
)

var productInput api.ProductInput

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Manage the product catalog",
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products with categories and stock",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()
		exit(runProductsList(ctx, os.Stdout))
	},
}

var productsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a product",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()
		exit(runProductsCreate(ctx, os.Stdout, productInput))
	},
}

var productsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace a product",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()
		exit(runProductsUpdate(ctx, os.Stdout, args[0], productInput))
	},
}

var productsCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List product categories",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()
		exit(runProductsCategories(ctx, os.Stdout))
	},
}

var productsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()
		exit(runProductsDelete(ctx, os.Stdout, args[0]))
	},
}

func init() {
	for _, c := range []*cobra.Command{productsCreateCmd, productsUpdateCmd} {
		c.Flags().StringVar(&productInput.Name, "name", "", "Product name")
		c.Flags().StringVar(&productInput.Precio, "price", "", "Price, as the backend's decimal string")
		c.Flags().IntVar(&productInput.Stock, "stock", 0, "Current stock")
		c.Flags().IntVar(&productInput.MinStock, "min-stock", 0, "Minimum stock threshold")
		c.Flags().StringVar(&productInput.SKU, "sku", "", "Stock keeping unit")
		c.Flags().StringVar(&productInput.Description, "description", "", "Description")
		c.Flags().IntVar(&productInput.CategoriaID, "category", 0, "Category ID")
	}
	productsCreateCmd.MarkFlagRequired("name")
	productsCreateCmd.MarkFlagRequired("price")

	productsCmd.AddCommand(productsListCmd, productsCategoriesCmd, productsCreateCmd, productsUpdateCmd, productsDeleteCmd)
	rootCmd.AddCommand(productsCmd)
}

// exit terminates the process for non-zero codes
func exit(code int) {
	if code != 0 {
		os.Exit(code)
	}
}

func runProductsList(ctx context.Context, w io.Writer) int {
	e, code := requireAuth(w)
	if code != 0 {
		return code
	}

	products, categories, err := e.client.CatalogData(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		printJSON(w, map[string]interface{}{"products": products, "categories": categories})
		return 0
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE\tSTOCK\tSKU")
	for _, p := range products {
		stock := strconv.Itoa(p.Stock)
		if p.MinStock > 0 && p.Stock <= p.MinStock {
			stock += " (low)"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Categoria.Nombre, p.Precio, stock, p.SKU)
	}
	tw.Flush()
	fmt.Fprintf(w, "\n%d products, %d categories\n", len(products), len(categories))
	return 0
}

func runProductsCategories(ctx context.Context, w io.Writer) int {
	e, code := requireAuth(w)
	if code != 0 {
		return code
	}

	categories, err := e.client.Categories(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		printJSON(w, categories)
		return 0
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME")
	for _, c := range categories {
		fmt.Fprintf(tw, "%d\t%s\n", c.ID, c.Nombre)
	}
	tw.Flush()
	return 0
}

func runProductsCreate(ctx context.Context, w io.Writer, input api.ProductInput) int {
	e, code := requireAuth(w)
	if code != 0 {
		return code
	}

	created, err := e.client.CreateProduct(ctx, input)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		printJSON(w, created)
		return 0
	}
	fmt.Fprintf(w, "Created product %d: %s\n", created.ID, created.Name)
	return 0
}

func runProductsUpdate(ctx context.Context, w io.Writer, rawID string, input api.ProductInput) int {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		fmt.Fprintf(w, "Error: invalid product id %q\n", rawID)
		return 1
	}

	e, code := requireAuth(w)
	if code != 0 {
		return code
	}

	updated, err := e.client.UpdateProduct(ctx, id, input)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		printJSON(w, updated)
		return 0
	}
	fmt.Fprintf(w, "Updated product %d: %s\n", updated.ID, updated.Name)
	return 0
}

func runProductsDelete(ctx context.Context, w io.Writer, rawID string) int {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		fmt.Fprintf(w, "Error: invalid product id %q\n", rawID)
		return 1
	}

	e, code := requireAuth(w)
	if code != 0 {
		return code
	}

	if err := e.client.DeleteProduct(ctx, id); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		printJSON(w, map[string]int{"deleted": id})
		return 0
	}
	fmt.Fprintf(w, "Deleted product %d\n", id)
	return 0
}
