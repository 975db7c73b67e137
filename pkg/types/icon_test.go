package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIconForName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Icon
	}{
		{name: "recognized name", input: "Brain", want: IconBrain},
		{name: "another recognized name", input: "Rocket", want: IconRocket},
		{name: "unrecognized name defaults", input: "FluxCapacitor", want: IconActivity},
		{name: "empty name defaults", input: "", want: IconActivity},
		{name: "case sensitive", input: "brain", want: IconActivity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IconForName(tt.input))
		})
	}
}
