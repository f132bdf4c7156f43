package answers

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/answergrid/internal/namespace"
	"github.com/specialistvlad/answergrid/internal/valuestore"
)

// Data is the in-memory form of an answers file: namespace → key → value.
type Data = map[string]map[string]any

type codec interface {
	decode(raw []byte, name string) (Data, error)
	encode(w io.Writer, data Data) error
}

func codecFor(f Format) (codec, error) {
	switch f {
	case INI:
		return iniCodec{}, nil
	case JSON:
		return jsonCodec{}, nil
	case YAML:
		return yamlCodec{}, nil
	case TOML:
		return tomlCodec{}, nil
	case HCL:
		return hclCodec{}, nil
	default:
		return nil, fmt.Errorf("unsupported answers format %q", f)
	}
}

// Load decodes answers in format f. Sections that are empty or null are
// dropped; a section whose name is not a valid namespace is an error.
func Load(r io.Reader, f Format) (Data, error) {
	c, err := codecFor(f)
	if err != nil {
		return nil, err
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading answers: %w", err)
	}
	data, err := c.decode(raw, "answers."+string(f))
	if err != nil {
		return nil, fmt.Errorf("parsing %s answers: %w", f, err)
	}
	return compact(data)
}

// LoadFile decodes the answers file at path. The format is inferred from the
// file extension.
func LoadFile(path string) (Data, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	c, err := codecFor(f)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading answers %s: %w", path, err)
	}
	data, err := c.decode(raw, path)
	if err != nil {
		return nil, fmt.Errorf("parsing answers %s: %w", path, err)
	}
	out, err := compact(data)
	if err != nil {
		return nil, fmt.Errorf("answers %s: %w", path, err)
	}
	return out, nil
}

// Write encodes data in format f. Namespaces and keys are written in sorted
// order.
func Write(w io.Writer, f Format, data Data) error {
	c, err := codecFor(f)
	if err != nil {
		return err
	}
	if err := c.encode(w, data); err != nil {
		return fmt.Errorf("writing %s answers: %w", f, err)
	}
	return nil
}

// WriteFile encodes data to path, replacing any existing file.
func WriteFile(path string, f Format, data Data) error {
	var buf bytes.Buffer
	if err := Write(&buf, f, data); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing answers %s: %w", path, err)
	}
	return nil
}

// compact drops empty sections and deep-copies the rest.
func compact(data Data) (Data, error) {
	out := make(Data, len(data))
	for ns, section := range data {
		if len(section) == 0 {
			continue
		}
		if ns != namespace.Global {
			if _, err := namespace.Parse(ns); err != nil {
				return nil, fmt.Errorf("section %q: %w", ns, err)
			}
		}
		out[ns] = valuestore.CopySection(section)
	}
	return out, nil
}
