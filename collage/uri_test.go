package collage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveURI(t *testing.T) {
	const placeholder = "av://lavfi:color=c=black"

	dir := t.TempDir()
	image := filepath.Join(dir, "a.png")
	require.NoError(t, os.WriteFile(image, []byte{0x89, 'P', 'N', 'G'}, 0600))

	tests := []struct {
		name string
		uri  string
		want string
	}{
		{"empty", "", placeholder},
		{"blank", "  ", placeholder},
		{"invalid", "%zz", placeholder},
		{"http", "https://example.com/a.png", "https://example.com/a.png"},
		{"path", image, image},
		{"file", "file://" + image, image},
		{"missing path", filepath.Join(dir, "b.png"), placeholder},
		{"missing file", "file://" + filepath.Join(dir, "b.png"), placeholder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveURI(tt.uri, placeholder))
		})
	}
}
