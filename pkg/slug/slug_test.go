package slug_test

import (
	"testing"

	"katalog/pkg/slug"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Red Shoes", "red-shoes"},
		{"already lowercase", "red shoes", "red-shoes"},
		{"punctuation collapses", "Red, Shoes!", "red-shoes"},
		{"whitespace runs", "Red   Shoes", "red-shoes"},
		{"leading and trailing junk", "  --Red Shoes-- ", "red-shoes"},
		{"diacritics folded", "Café Crème", "cafe-creme"},
		{"digits kept", "iPhone 15 Pro", "iphone-15-pro"},
		{"apostrophe", "Men's Jacket", "men-s-jacket"},
		{"empty", "", ""},
		{"only junk", "!!!", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, slug.Make(tc.input))
		})
	}
}

func TestMakeDeterministic(t *testing.T) {
	// Slugs are external identity, so the mapping must be stable.
	for i := 0; i < 3; i++ {
		assert.Equal(t, slug.Make("Gaming Laptop 2024"), slug.Make("Gaming Laptop 2024"))
	}
}
