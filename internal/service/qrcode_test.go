package service_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kfc-ordering/internal/service"
)

func TestReceiptQRGenerator_ProducesPNG(t *testing.T) {
	gen := service.ReceiptQRGenerator{BaseURL: "http://localhost:8080"}

	png, err := gen.Generate("KFC000042")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")), "expected a PNG payload")
}
