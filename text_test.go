package ais

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractText(t *testing.T) {
	var testCases = []struct {
		name          string
		given         Payload
		whenStartBit  int
		whenTotalBits int
		expect        string
	}{
		{
			name:          "callsign of type 5 fixture",
			given:         Payload("53eaFL02?;fwTPm7V219E@R1@PE8E<622222221@9hG1A7?@NCPSlm3kc5DhH8888888880"),
			whenStartBit:  70,
			whenTotalBits: 42,
			expect:        "9HMQ9",
		},
		{
			name:          "ship_name of type 5 fixture",
			given:         Payload("53eaFL02?;fwTPm7V219E@R1@PE8E<622222221@9hG1A7?@NCPSlm3kc5DhH8888888880"),
			whenStartBit:  112,
			whenTotalBits: 120,
			expect:        "RUTH THERESA",
		},
		{
			name:          "totalBits not a multiple of six returns empty",
			given:         Payload("177KQJ5000G?tO`K>RA1wUbN0TKH"),
			whenStartBit:  0,
			whenTotalBits: 7,
			expect:        "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, ExtractText(tc.given, tc.whenStartBit, tc.whenTotalBits))
		})
	}
}

func TestExtractText_trimIsIdempotentAndHasNoAtSign(t *testing.T) {
	s := ExtractText(Payload("53eaFL02?;fwTPm7V219E@R1@PE8E<622222221@9hG1A7?@NCPSlm3kc5DhH8888888880"), 112, 120)
	assert.Equal(t, s, ExtractText(Payload("53eaFL02?;fwTPm7V219E@R1@PE8E<622222221@9hG1A7?@NCPSlm3kc5DhH8888888880"), 112, 120))
	assert.NotContains(t, s, "@")
}
