package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmdatafocus/kitchen_totals/calculator"
	"github.com/mmdatafocus/kitchen_totals/utils"
	"github.com/shopspring/decimal"
)

// Totals is everything one run produces.
type Totals struct {
	Orders      map[int]decimal.Decimal
	Ingredients map[int]*calculator.IngredientTotals
}

var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6B7280")
)

type styles struct {
	heading lipgloss.Style
	key     lipgloss.Style
}

// Colors are only emitted when w is a terminal.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		heading: r.NewStyle().Foreground(colorPrimary).Bold(true),
		key:     r.NewStyle().Foreground(colorMuted),
	}
}

// WriteConsole prints order totals then ingredient totals, orders ascending by id.
func WriteConsole(w io.Writer, totals Totals) error {
	st := newStyles(w)
	var b strings.Builder

	b.WriteString(st.heading.Render("Order Totals:"))
	b.WriteString("\n")
	for _, orderId := range utils.SortedKeys(totals.Orders) {
		fmt.Fprintf(&b, "%s %d, Total: %s\n", st.key.Render("Order ID:"), orderId, FormatTotal(totals.Orders[orderId]))
	}

	b.WriteString("\n")
	b.WriteString(st.heading.Render("Ingredient Totals:"))
	b.WriteString("\n")
	for _, orderId := range utils.SortedKeys(totals.Ingredients) {
		fmt.Fprintf(&b, "%s %d\n", st.key.Render("OrderId:"), orderId)
		for _, e := range totals.Ingredients[orderId].Entries() {
			fmt.Fprintf(&b, "  Ingredient name: %s, Total amount: %s\n", e.Name, FormatAmount(e.Amount))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func FormatTotal(total decimal.Decimal) string {
	return total.StringFixed(2)
}

// FormatAmount prints the shortest representation: 450, 12.5.
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
