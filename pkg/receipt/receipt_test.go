package receipt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStamp(t *testing.T) {
	a := Stamp("settle", 42, "up", 12.8)
	b := Stamp("settle", 42, "up", 12.8)

	assert.True(t, Valid(a))
	assert.True(t, Valid(b))
	assert.NotEqual(t, a, b)
}

func TestValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "Empty", input: "", want: false},
		{name: "Missing prefix", input: "ab" + string(make([]byte, 64)), want: false},
		{name: "Not hex", input: "0x" + "zz" + "00000000000000000000000000000000000000000000000000000000000000", want: false},
		{name: "Valid", input: "0x" + "ab00000000000000000000000000000000000000000000000000000000000000", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Valid(tt.input))
		})
	}
}
