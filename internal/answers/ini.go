package answers

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/specialistvlad/answergrid/internal/hclutil"
	"github.com/specialistvlad/answergrid/internal/namespace"
	"gopkg.in/ini.v1"
)

// iniCodec reads and writes answers.conf style files. All values read back
// as strings; keys outside any section belong to the Global namespace. Only
// whole-line comments are recognized, so '#' and ';' inside a value are kept.
type iniCodec struct{}

func (iniCodec) decode(raw []byte, _ string) (Data, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		AllowPythonMultilineValues: true,
		IgnoreInlineComment:        true,
	}, raw)
	if err != nil {
		return nil, err
	}

	data := make(Data)
	for _, sec := range cfg.Sections() {
		ns := sec.Name()
		if ns == ini.DefaultSection {
			ns = namespace.Global
		}
		for _, key := range sec.Keys() {
			if data[ns] == nil {
				data[ns] = make(map[string]any)
			}
			data[ns][key.Name()] = key.Value()
		}
	}
	return data, nil
}

func (iniCodec) encode(w io.Writer, data Data) error {
	cfg := ini.Empty()
	for _, ns := range hclutil.SortedKeys(data) {
		sec, err := cfg.NewSection(ns)
		if err != nil {
			return err
		}
		section := data[ns]
		for _, key := range hclutil.SortedKeys(section) {
			value, err := iniValue(section[key])
			if err != nil {
				return fmt.Errorf("%s.%s: %w", ns, key, err)
			}
			if _, err := sec.NewKey(key, value); err != nil {
				return err
			}
		}
	}
	_, err := cfg.WriteTo(w)
	return err
}

// iniValue flattens a value into ini text. Composite values are stored as
// JSON.
func iniValue(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	case map[string]any, []any:
		encoded, err := json.Marshal(val)
		if err != nil {
			return "", err
		}
		return string(encoded), nil
	default:
		return fmt.Sprint(val), nil
	}
}
