package content

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed default.toml
var defaultPack []byte

// DefaultTOML returns the embedded default pack source.
func DefaultTOML() []byte {
	return append([]byte(nil), defaultPack...)
}

// Default returns the embedded study material.
func Default() (Pack, error) {
	pack, err := Parse(defaultPack)
	if err != nil {
		return Pack{}, fmt.Errorf("embedded content: %w", err)
	}
	return pack, nil
}

// Parse decodes and validates a TOML content pack.
func Parse(data []byte) (Pack, error) {
	var pack Pack
	md, err := toml.Decode(string(data), &pack)
	if err != nil {
		return Pack{}, fmt.Errorf("failed to decode content: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Pack{}, fmt.Errorf("%w: unknown key %q", ErrInvalidPack, undecoded[0].String())
	}
	if err := pack.Validate(); err != nil {
		return Pack{}, err
	}
	return pack, nil
}

// Load reads a content pack from path. An empty path selects the default pack.
func Load(path string) (Pack, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Pack{}, fmt.Errorf("failed to read content: %w", err)
	}
	pack, err := Parse(data)
	if err != nil {
		return Pack{}, fmt.Errorf("%s: %w", path, err)
	}
	return pack, nil
}
