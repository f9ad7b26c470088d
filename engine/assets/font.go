package assets

import (
	"fmt"
	"os"

	"github.com/hubastard/wand/engine/text"
)

// LoadFont parses the TTF/OTF file at path. An empty path yields the
// bundled Go Regular typeface.
func LoadFont(path string) (*text.Faces, error) {
	if path == "" {
		return text.DefaultFaces(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load font %q: %w", path, err)
	}
	faces, err := text.NewFaces(b)
	if err != nil {
		return nil, fmt.Errorf("load font %q: %w", path, err)
	}
	return faces, nil
}
