package ais

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavStatusText(t *testing.T) {
	assert.Equal(t, "under way using engine", NavStatusText(0))
	assert.Equal(t, "moored", NavStatusText(5))
	assert.Equal(t, "not defined", NavStatusText(15))
	assert.Equal(t, "not defined", NavStatusText(99), "out of range codes fall back to the reserved/undefined entry")
}

func TestShipTypeText(t *testing.T) {
	assert.Equal(t, "fishing", ShipTypeText(30))
	assert.Equal(t, "passenger", ShipTypeText(60))
	assert.Equal(t, "unspecified", ShipTypeText(15))
}
