package cart

import (
	"testing"

	"github.com/stretchr/testify/require"

	"kapehan/internal/models"
)

var (
	latte     = models.Product{ID: 1, Name: "Cafe Latte", Price: 150}
	macchiato = models.Product{ID: 2, Name: "Caramel Macchiato", Price: 310}
)

func TestAdd_MergesByID(t *testing.T) {
	c := New()

	c.Add(latte)
	c.Add(macchiato)
	c.Add(latte)

	lines := c.Lines()
	require.Len(t, lines, 2)
	require.Equal(t, 2, lines[0].Quantity)
	require.Equal(t, "Cafe Latte", lines[0].Product.Name)
	require.Equal(t, 1, lines[1].Quantity)
	require.Equal(t, 3, c.Count())
}

func TestUpdateQuantity(t *testing.T) {
	c := New()
	c.Add(latte)

	c.UpdateQuantity(latte.ID, 5)
	require.Equal(t, 5, c.Count())

	// Quantities below one are ignored; the line stays.
	c.UpdateQuantity(latte.ID, 0)
	require.Equal(t, 5, c.Count())
	c.UpdateQuantity(latte.ID, -3)
	require.Equal(t, 5, c.Count())

	// Unknown product is a no-op.
	c.UpdateQuantity(99, 2)
	require.Equal(t, 5, c.Count())
}

func TestRemove(t *testing.T) {
	c := New()
	c.Add(latte)
	c.Add(macchiato)

	c.Remove(latte.ID)
	lines := c.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, "Caramel Macchiato", lines[0].Product.Name)

	c.Remove(99)
	require.Len(t, c.Lines(), 1)
}

func TestClear(t *testing.T) {
	c := New()
	c.Add(latte)
	c.Add(macchiato)

	c.Clear()
	require.Empty(t, c.Lines())
	require.Equal(t, 0, c.Count())
	require.Equal(t, 0.0, c.Subtotal())
}

func TestSubtotal(t *testing.T) {
	c := New()
	c.Add(macchiato)
	c.Add(macchiato)
	c.Add(latte)

	require.Equal(t, 770.0, c.Subtotal())

	c.UpdateQuantity(latte.ID, 3)
	require.Equal(t, 1070.0, c.Subtotal())

	c.Remove(macchiato.ID)
	require.Equal(t, 450.0, c.Subtotal())
}

func TestLines_ReturnsCopy(t *testing.T) {
	c := New()
	c.Add(latte)

	lines := c.Lines()
	lines[0].Quantity = 100

	require.Equal(t, 1, c.Count())
}
