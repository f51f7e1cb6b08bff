package domain_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Liam44/Dios-sub002/internal/domain"
)

func TestZipResult_Size(t *testing.T) {
	tests := []struct {
		name   string
		result domain.ZipResult
		want   int64
	}{
		{name: "no content", result: domain.ZipResult{FileName: "a.zip"}, want: 0},
		{name: "empty content", result: domain.ZipResult{Content: bytes.NewReader(nil)}, want: 0},
		{name: "content", result: domain.ZipResult{Content: bytes.NewReader([]byte("PK\x03\x04"))}, want: 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.result.Size())
		})
	}
}

func TestZipResult_IsNeutral(t *testing.T) {
	assert.True(t, domain.NewNeutralZipResult().IsNeutral())
	assert.True(t, (&domain.ZipResult{}).IsNeutral(), "no name and no content")
	assert.False(t, (&domain.ZipResult{FileName: "a.zip"}).IsNeutral(), "named archive without content")
	assert.False(t, (&domain.ZipResult{Content: bytes.NewReader([]byte("x"))}).IsNeutral())
}
