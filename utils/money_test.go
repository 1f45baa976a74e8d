package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFCFA(t *testing.T) {
	assert.Equal(t, "0 FCFA", FormatFCFA(0))
	assert.Equal(t, "500 FCFA", FormatFCFA(500))
	assert.Equal(t, "15 000 FCFA", FormatFCFA(15000))
	assert.Equal(t, "55 000 FCFA", FormatFCFA(55000))
	assert.Equal(t, "1 250 000 FCFA", FormatFCFA(1250000))
	assert.Equal(t, "-20 000 FCFA", FormatFCFA(-20000))
}
