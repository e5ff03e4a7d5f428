package pdftext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEmptyInput(t *testing.T) {
	out, err := NewReader().Extract(nil)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestExtractMalformedStream(t *testing.T) {
	_, err := NewReader().Extract([]byte("definitely not a pdf"))
	assert.Error(t, err)
}
