// Package todofile reads seed lists and action scripts from YAML or JSONC files.
package todofile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrInvalidSeed       = errors.New("invalid seed entry")
)

// decodeFile reads path and decodes it into v based on its extension.
func decodeFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := decode(filepath.Ext(path), data, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func decode(ext string, data []byte, v any) error {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	case ".json", ".jsonc", ".hujson":
		std, err := hujson.Standardize(data)
		if err != nil {
			return err
		}
		dec := json.NewDecoder(bytes.NewReader(std))
		dec.DisallowUnknownFields()
		return dec.Decode(v)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
