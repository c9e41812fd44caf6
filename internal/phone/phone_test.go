package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"ten digits", "5551234567", "+15551234567"},
		{"ten digits with punctuation", "(555) 123-4567", "+15551234567"},
		{"eleven digits with leading one", "15551234567", "+15551234567"},
		{"already e164", "+1 555 123 4567", "+15551234567"},
		{"international", "442071234567", "+442071234567"},
		{"too short passes through", "12345", "12345"},
		{"empty passes through", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw))
		})
	}
}

func TestIsDemoNumber(t *testing.T) {
	assert.True(t, IsDemoNumber("5551234567"))
	assert.True(t, IsDemoNumber("+15551234567"))
	assert.True(t, IsDemoNumber("(555) 987-6543"))
	assert.False(t, IsDemoNumber("2125550000"))
	assert.False(t, IsDemoNumber(""))
}
