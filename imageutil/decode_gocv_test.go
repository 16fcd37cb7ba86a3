//go:build gocv

package imageutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenCVFallbackInstalled(t *testing.T) {
	assert.NotNil(t, fallbackDecode)

	_, err := decodeOpenCV([]byte("not an image"))
	assert.Error(t, err)
}
