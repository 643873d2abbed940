package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_AddOne_StartsAtOne(t *testing.T) {
	cart := NewCart()

	cart.AddOne(1)

	assert.Equal(t, 1, cart.Quantity(1))
	assert.Equal(t, []uint{1}, cart.Order)
}

func TestCart_AddOne_Increments(t *testing.T) {
	cart := NewCart()

	cart.AddOne(1)
	cart.AddOne(1)

	assert.Equal(t, 2, cart.Quantity(1))
	assert.Equal(t, []uint{1}, cart.Order, "repeated adds must not duplicate the order entry")
}

func TestCart_Order_IsFirstAddOrder(t *testing.T) {
	cart := NewCart()

	cart.AddOne(3)
	cart.AddOne(1)
	cart.AddOne(2)
	cart.AddOne(1)

	assert.Equal(t, []uint{3, 1, 2}, cart.Order)
}

func TestCart_RemoveOne_Decrements(t *testing.T) {
	cart := NewCart()
	cart.AddOne(1)
	cart.AddOne(1)

	cart.RemoveOne(1)

	assert.Equal(t, 1, cart.Quantity(1))
	assert.Equal(t, []uint{1}, cart.Order)
}

func TestCart_RemoveOne_DropsEntryAtOne(t *testing.T) {
	cart := NewCart()
	cart.AddOne(1)
	cart.AddOne(2)

	cart.RemoveOne(1)

	_, present := cart.Items[1]
	assert.False(t, present, "quantity must never be stored as zero")
	assert.Equal(t, []uint{2}, cart.Order)
}

func TestCart_RemoveOne_AbsentIsNoop(t *testing.T) {
	cart := NewCart()
	cart.AddOne(1)

	cart.RemoveOne(42)

	assert.Equal(t, 1, cart.Quantity(1))
	assert.Equal(t, []uint{1}, cart.Order)
}

// add_one then remove_one on the same id restores the prior cart state.
func TestCart_AddRemove_InversePair(t *testing.T) {
	cart := NewCart()
	cart.AddOne(1)
	cart.AddOne(2)
	cart.AddOne(2)

	before := map[uint]int{1: 1, 2: 2}

	for _, pid := range []uint{1, 2, 7} {
		cart.AddOne(pid)
		cart.RemoveOne(pid)
		assert.Equal(t, before, cart.Items, "pid %d", pid)
	}
}

func TestCart_Clear(t *testing.T) {
	cart := NewCart()
	cart.AddOne(1)
	cart.AddOne(2)

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Empty(t, cart.Order)

	// cleared cart is still usable
	cart.AddOne(3)
	require.Equal(t, 1, cart.Quantity(3))
}

func TestCart_ZeroValue_AddOne(t *testing.T) {
	var cart Cart

	cart.AddOne(1)

	assert.Equal(t, 1, cart.Quantity(1))
}
