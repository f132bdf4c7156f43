package answers

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies an answers file encoding.
type Format string

const (
	INI  Format = "ini"
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
	HCL  Format = "hcl"
)

// DefaultFormat is used when neither a flag nor a file extension says
// otherwise.
const DefaultFormat = INI

// DefaultFileName is the answers file looked up in an application directory.
const DefaultFileName = "answers.conf"

// SampleSuffix is appended to generated answers files.
const SampleSuffix = ".sample"

// Formats lists every supported format.
var Formats = []Format{INI, JSON, YAML, TOML, HCL}

var extensions = map[string]Format{
	".conf":  INI,
	".ini":   INI,
	".json":  JSON,
	".jsonc": JSON,
	".yml":   YAML,
	".yaml":  YAML,
	".toml":  TOML,
	".hcl":   HCL,
}

// ParseFormat converts a format name, case-insensitively.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported answers format %q (supported: %s)", name, formatList())
}

// FormatFromPath picks the format from the file extension. A trailing
// ".sample" is ignored.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(strings.TrimSuffix(path, SampleSuffix)))
	if f, ok := extensions[ext]; ok {
		return f, nil
	}
	return "", fmt.Errorf("cannot infer answers format from %q (supported: %s)", path, formatList())
}

// FileName returns the conventional answers file name for f.
func (f Format) FileName() string {
	if f == INI {
		return DefaultFileName
	}
	return "answers." + string(f)
}

func formatList() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
