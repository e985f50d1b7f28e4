// ABOUTME: Inventory commands for the smartsales CLI
// ABOUTME: Lists movement history and records stock entries and exits

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/smartsales365/console/internal/api"
)

var movementInput api.MovementInput

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Manage inventory movements",
}

var inventoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List movement history",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()
		exit(runInventoryList(ctx, os.Stdout))
	},
}

var inventoryRecordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a stock entry or exit",
	Long: `Record an inventory movement. The type must be ` + api.MovementIn + ` (stock in)
or ` + api.MovementOut + ` (stock out); the backend adjusts the product's stock.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()
		exit(runInventoryRecord(ctx, os.Stdout, movementInput))
	},
}

func init() {
	inventoryRecordCmd.Flags().IntVar(&movementInput.ProductoID, "product", 0, "Product ID")
	inventoryRecordCmd.Flags().StringVar(&movementInput.TipoMovimiento, "type", "", "Movement type: "+api.MovementIn+" or "+api.MovementOut)
	inventoryRecordCmd.Flags().IntVar(&movementInput.Cantidad, "qty", 0, "Quantity moved")
	inventoryRecordCmd.Flags().StringVar(&movementInput.Motivo, "reason", "", "Reason for the movement")
	inventoryRecordCmd.MarkFlagRequired("product")
	inventoryRecordCmd.MarkFlagRequired("type")
	inventoryRecordCmd.MarkFlagRequired("qty")

	inventoryCmd.AddCommand(inventoryListCmd, inventoryRecordCmd)
	rootCmd.AddCommand(inventoryCmd)
}

func runInventoryList(ctx context.Context, w io.Writer) int {
	e, code := requireAuth(w)
	if code != 0 {
		return code
	}

	movements, err := e.client.InventoryMovements(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		printJSON(w, movements)
		return 0
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPRODUCT\tTYPE\tQTY\tREASON\tDATE")
	for _, m := range movements {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%s\n",
			m.ID, m.Producto.Name, m.TipoMovimiento, m.Cantidad, m.Motivo, m.FechaMovimiento)
	}
	tw.Flush()
	return 0
}

func runInventoryRecord(ctx context.Context, w io.Writer, input api.MovementInput) int {
	e, code := requireAuth(w)
	if code != 0 {
		return code
	}

	created, err := e.client.CreateInventoryMovement(ctx, input)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		printJSON(w, created)
		return 0
	}
	fmt.Fprintf(w, "Recorded %s of %d x %s\n", created.TipoMovimiento, created.Cantidad, created.Producto.Name)
	return 0
}
