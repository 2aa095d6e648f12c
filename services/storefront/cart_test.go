package storefront

import (
	"math"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

var (
	chocolate = Product{UID: "cake-1", Name: "Chocolate Fudge Cake", PriceInCents: 3200, Image: "choc.jpg"}
	lemon     = Product{UID: "cake-4", Name: "Lemon Drizzle Loaf", PriceInCents: 2100, Image: "lemon.jpg"}
)

func TestCartAdd(t *testing.T) {
	t.Run("Same product twice merges into one line", func(t *testing.T) {
		// given
		cart := NewCart(nil)

		// when
		cart.Add(chocolate, 1)
		cart.Add(chocolate, 2)

		// then
		assert.Equal(t, []CartLine{{ProductUID: "cake-1", Name: "Chocolate Fudge Cake", PriceInCents: 3200, Image: "choc.jpg", Quantity: 3}}, cart.Lines())
		assert.Equal(t, 3, cart.Count())
		assert.Equal(t, int64(9600), cart.Total())
	})

	t.Run("Insertion order kept", func(t *testing.T) {
		cart := NewCart(nil)

		cart.Add(lemon, 1)
		cart.Add(chocolate, 1)
		cart.Add(lemon, 1)

		assert.Equal(t, "cake-4", cart.Lines()[0].ProductUID)
		assert.Equal(t, "cake-1", cart.Lines()[1].ProductUID)
	})

	t.Run("Quantity below one counts as one", func(t *testing.T) {
		cart := NewCart(nil)

		cart.Add(lemon, 0)
		cart.Add(lemon, -3)

		assert.Equal(t, 2, cart.Count())
	})

	t.Run("Price copied at add time", func(t *testing.T) {
		cart := NewCart(nil)
		cart.Add(lemon, 1)

		repriced := lemon
		repriced.PriceInCents = 9999
		cart.Add(repriced, 1)

		assert.Equal(t, int64(4200), cart.Total())
	})
}

func TestCartDecrement(t *testing.T) {
	t.Run("Quantity one removes the line", func(t *testing.T) {
		cart := NewCart(nil)
		cart.Add(chocolate, 1)

		cart.Decrement("cake-1")

		assert.Empty(t, cart.Lines())
		assert.Equal(t, 0, cart.Count())
	})

	t.Run("Quantity n yields n-1", func(t *testing.T) {
		cart := NewCart(nil)
		cart.Add(chocolate, 4)

		cart.Decrement("cake-1")

		assert.Len(t, cart.Lines(), 1)
		assert.Equal(t, 3, cart.Lines()[0].Quantity)
	})
}

func TestCartUnknownIDsAreNoops(t *testing.T) {
	cart := NewCart(nil)
	cart.Add(chocolate, 2)
	before := cart.Lines()

	assert.False(t, cart.Increment("nope"))
	assert.False(t, cart.Decrement("nope"))
	assert.False(t, cart.Remove("nope"))

	assert.Empty(t, cmp.Diff(before, cart.Lines()))
}

func TestCartQuantityIsBounded(t *testing.T) {
	t.Run("Add caps the line", func(t *testing.T) {
		// given
		cart := NewCart(nil)
		cart.Add(chocolate, math.MaxInt)

		// when
		cart.Add(chocolate, 1)

		// then
		assert.Equal(t, MaxLineQuantity, cart.Count())
		assert.Equal(t, int64(3200*MaxLineQuantity), cart.Total())
	})

	t.Run("Increment stops at the maximum", func(t *testing.T) {
		cart := NewCart(nil)
		cart.Add(chocolate, MaxLineQuantity-1)

		assert.True(t, cart.Increment("cake-1"))
		assert.False(t, cart.Increment("cake-1"))

		assert.Equal(t, MaxLineQuantity, cart.Count())
	})

	t.Run("Restored lines are capped when merged", func(t *testing.T) {
		cart := NewCart([]CartLine{
			{ProductUID: "cake-1", PriceInCents: 3200, Quantity: math.MaxInt},
			{ProductUID: "cake-1", PriceInCents: 3200, Quantity: math.MaxInt},
			{ProductUID: "cake-4", PriceInCents: 2100, Quantity: 5000},
		})

		assert.Equal(t, []CartLine{
			{ProductUID: "cake-1", PriceInCents: 3200, Quantity: MaxLineQuantity},
			{ProductUID: "cake-4", PriceInCents: 2100, Quantity: MaxLineQuantity},
		}, cart.Lines())
	})

	t.Run("Restored negative price is dropped", func(t *testing.T) {
		cart := NewCart([]CartLine{{ProductUID: "cake-1", PriceInCents: -1, Quantity: 1}})

		assert.Empty(t, cart.Lines())
	})

	t.Run("Totals saturate", func(t *testing.T) {
		cart := NewCart([]CartLine{
			{ProductUID: "cake-1", PriceInCents: math.MaxInt64 / 2, Quantity: 3},
			{ProductUID: "cake-4", PriceInCents: math.MaxInt64 / 2, Quantity: 1},
		})

		assert.Equal(t, int64(math.MaxInt64), cart.Lines()[0].TotalInCents())
		assert.Equal(t, int64(math.MaxInt64), cart.Total())
	})
}

func TestCartClear(t *testing.T) {
	cart := NewCart(nil)
	cart.Add(chocolate, 2)
	cart.Add(lemon, 1)

	cart.Clear()

	assert.Equal(t, 0, cart.Count())
	assert.Equal(t, int64(0), cart.Total())
	assert.Empty(t, cart.Lines())
}

func TestNewCartRestoresValidLines(t *testing.T) {
	cart := NewCart([]CartLine{
		{ProductUID: "cake-1", PriceInCents: 3200, Quantity: 1},
		{ProductUID: "", PriceInCents: 100, Quantity: 1},
		{ProductUID: "cake-2", PriceInCents: 2900, Quantity: 0},
		{ProductUID: "cake-1", PriceInCents: 3200, Quantity: 2},
	})

	assert.Equal(t, []CartLine{{ProductUID: "cake-1", PriceInCents: 3200, Quantity: 3}}, cart.Lines())
}

func TestCartInvariantsHoldForRandomOperations(t *testing.T) {
	faker := gofakeit.New(1967)
	products := DefaultProducts()
	ids := []string{"cake-1", "cake-2", "cake-3", "cake-4", "unknown"}

	for round := 0; round < 50; round++ {
		cart := NewCart(nil)
		expected := map[string]int{}

		for step := 0; step < 100; step++ {
			id := faker.RandomString(ids)

			switch faker.IntRange(0, 4) {
			case 0:
				p := products[faker.IntRange(0, len(products)-1)]
				qty := faker.IntRange(1, 5)
				cart.Add(p, qty)
				expected[p.UID] += qty
			case 1:
				cart.Increment(id)
				if expected[id] > 0 {
					expected[id]++
				}
			case 2:
				cart.Decrement(id)
				if expected[id] > 0 {
					expected[id]--
				}
			case 3:
				cart.Remove(id)
				delete(expected, id)
			case 4:
				if faker.IntRange(0, 9) == 0 {
					cart.Clear()
					expected = map[string]int{}
				}
			}

			sum := 0
			total := int64(0)
			actual := map[string]int{}
			for _, l := range cart.Lines() {
				assert.GreaterOrEqual(t, l.Quantity, 1)
				sum += l.Quantity
				total += l.PriceInCents * int64(l.Quantity)
				actual[l.ProductUID] = l.Quantity
			}
			for id, qty := range expected {
				if qty == 0 {
					delete(expected, id)
				}
			}
			assert.Equal(t, sum, cart.Count())
			assert.Equal(t, total, cart.Total())
			assert.Empty(t, cmp.Diff(expected, actual))
		}
	}
}
