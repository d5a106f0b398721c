package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanModelName(t *testing.T) {
	cases := []struct {
		name          string
		input         string
		manufacturers []string
		want          string
	}{
		{name: "amd prefix", input: "AMD Ryzen 5 3600", manufacturers: []string{"AMD"}, want: "Ryzen 5 3600"},
		{name: "amd with trademark", input: "AMD Ryzen™ 7 3700X", manufacturers: []string{"AMD"}, want: "Ryzen 7 3700X"},
		{name: "intel full decoration", input: "Intel® Core™ i7-10700K Processor", manufacturers: []string{"Intel"}, want: "Core i7-10700K Processor"},
		{name: "registered only", input: "AmpereOne® A192-32X", want: "AmpereOne A192-32X"},
		{name: "untouched", input: "EPYC 7251", manufacturers: []string{"AMD"}, want: "EPYC 7251"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CleanModelName(tc.input, tc.manufacturers...))
		})
	}
}

func TestNormalizeSpaces(t *testing.T) {
	assert.Equal(t, "Xeon Gold 6148", NormalizeSpaces("  Xeon  Gold 6148 "))
	assert.Equal(t, "", NormalizeSpaces("   "))
}
