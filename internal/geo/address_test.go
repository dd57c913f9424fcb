package geo

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAddress(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "already normalized",
			raw:      "koramangala, bengaluru",
			expected: "koramangala, bengaluru",
		},
		{
			name:     "padding and repeated spaces",
			raw:      "  Koramangala,  Bengaluru ",
			expected: "koramangala, bengaluru",
		},
		{
			name:     "tabs and newlines collapse",
			raw:      "12th Main\tRoad\n\nIndiranagar",
			expected: "12th main road indiranagar",
		},
		{
			name:     "abbreviations are not expanded",
			raw:      "100 Feet Rd",
			expected: "100 feet rd",
		},
		{
			name:     "non ascii case folding",
			raw:      "ÉCOLE Centrale",
			expected: "école centrale",
		},
		{
			name:     "blank input",
			raw:      " \t ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeAddress(tt.raw))
		})
	}
}

func TestNormalizeAddress_CaseAndWhitespaceVariantsShareKey(t *testing.T) {
	variants := []string{
		"HSR Layout, Sector 2",
		"hsr layout, sector 2",
		"  HSR   LAYOUT,\tSector 2  ",
		"Hsr Layout,   SECTOR 2",
	}

	want := NormalizeAddress(variants[0])
	for _, v := range variants[1:] {
		assert.Equal(t, want, NormalizeAddress(v), "variant %q", v)
	}
}

func TestNormalizeAddress_Idempotent(t *testing.T) {
	for _, raw := range []string{"  MG Road ", "Whitefield,\nBengaluru", "ÉCOLE Centrale"} {
		once := NormalizeAddress(raw)
		assert.Equal(t, once, NormalizeAddress(once))
	}
}

func TestNormalizeAddress_ConcurrentCallers(t *testing.T) {
	inputs := []string{"ÉCOLE Centrale", "  MG Road ", "HSR Layout,\tSector 2", "Straße 1"}
	want := make([]string, len(inputs))
	for i, raw := range inputs {
		want[i] = NormalizeAddress(raw)
	}

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, raw := range inputs {
				assert.Equal(t, want[i], NormalizeAddress(raw))
			}
		}()
	}
	wg.Wait()
}
