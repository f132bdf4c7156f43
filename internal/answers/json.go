package answers

import (
	"encoding/json"
	"io"

	"github.com/tidwall/jsonc"
)

// jsonCodec reads JSON with comments and trailing commas, and writes plain
// indented JSON.
type jsonCodec struct{}

func (jsonCodec) decode(raw []byte, _ string) (Data, error) {
	var data Data
	if err := json.Unmarshal(jsonc.ToJSON(raw), &data); err != nil {
		return nil, err
	}
	return data, nil
}

func (jsonCodec) encode(w io.Writer, data Data) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
