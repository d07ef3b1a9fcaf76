package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorStock(t *testing.T) {
	casos := []struct {
		stock int
		color string
	}{
		{10, ColorVerde},
		{6, ColorVerde},
		{5, ColorAmarillo},
		{3, ColorAmarillo},
		{2, ColorRojo},
		{0, ColorRojo},
		{-1, ColorRojo}, // shouldn't occur, still classified
	}
	for _, c := range casos {
		assert.Equal(t, c.color, ColorStock(c.stock), "stock %d", c.stock)
	}
}

func TestVendidoEntre(t *testing.T) {
	assert.Equal(t, 3, VendidoEntre(10, 7))
	assert.Equal(t, 0, VendidoEntre(7, 7))
	// Restocks are clamped to zero, never negative.
	assert.Equal(t, 0, VendidoEntre(5, 20))
	assert.Equal(t, 0, VendidoEntre(0, 0))
}
