// ABOUTME: Inventory movement entry form as a bubbletea model
// ABOUTME: Selects a product and records an ENTRADA or SALIDA with quantity

package movementform

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/smartsales365/console/internal/api"
)

// CompleteMsg is sent when the form finishes successfully
type CompleteMsg struct {
	Input api.MovementInput
}

// CancelledMsg is sent when the form is cancelled
type CancelledMsg struct{}

// MovementForm collects a stock movement against the loaded product list
type MovementForm struct {
	form *huh.Form

	productID string
	tipo      string
	cantidad  string
	motivo    string
}

// New creates a movement form over the given products
func New(products []api.Product) *MovementForm {
	f := &MovementForm{tipo: api.MovementIn}

	productOptions := make([]huh.Option[string], 0, len(products))
	for _, p := range products {
		label := fmt.Sprintf("%s (stock %d)", p.Name, p.Stock)
		productOptions = append(productOptions, huh.NewOption(label, strconv.Itoa(p.ID)))
	}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Product").
				Options(productOptions...).
				Value(&f.productID),
			huh.NewSelect[string]().
				Title("Movement type").
				Options(
					huh.NewOption("Entry (stock in)", api.MovementIn),
					huh.NewOption("Exit (stock out)", api.MovementOut),
				).
				Value(&f.tipo),
			huh.NewInput().
				Title("Quantity").
				Placeholder("e.g., 10").
				CharLimit(6).
				Value(&f.cantidad).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Reason").
				Placeholder("e.g., reposición de bodega").
				Value(&f.motivo),
		).Title("Record Inventory Movement"),
	).WithTheme(huh.ThemeBase())

	return f
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fmt.Errorf("must be a positive number")
	}
	return nil
}

// Init implements tea.Model
func (f *MovementForm) Init() tea.Cmd {
	return f.form.Init()
}

// Update implements tea.Model
func (f *MovementForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		return f, func() tea.Msg { return CancelledMsg{} }
	}

	form, cmd := f.form.Update(msg)
	if m, ok := form.(*huh.Form); ok {
		f.form = m
	}

	if f.form.State == huh.StateCompleted {
		productID, _ := strconv.Atoi(f.productID)
		cantidad, _ := strconv.Atoi(strings.TrimSpace(f.cantidad))
		input := api.MovementInput{
			ProductoID:     productID,
			TipoMovimiento: f.tipo,
			Cantidad:       cantidad,
			Motivo:         f.motivo,
		}
		return f, func() tea.Msg { return CompleteMsg{Input: input} }
	}

	return f, cmd
}

// View implements tea.Model
func (f *MovementForm) View() string {
	return f.form.View()
}
