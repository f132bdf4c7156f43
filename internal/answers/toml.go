package answers

import (
	"bytes"
	"io"

	"github.com/BurntSushi/toml"
)

type tomlCodec struct{}

func (tomlCodec) decode(raw []byte, _ string) (Data, error) {
	var data Data
	if _, err := toml.NewDecoder(bytes.NewReader(raw)).Decode(&data); err != nil {
		return nil, err
	}
	return data, nil
}

// encode drops nil values, which TOML cannot represent.
func (tomlCodec) encode(w io.Writer, data Data) error {
	clean := make(Data, len(data))
	for ns, section := range data {
		clean[ns] = make(map[string]any, len(section))
		for k, v := range section {
			if v != nil {
				clean[ns][k] = v
			}
		}
	}
	return toml.NewEncoder(w).Encode(clean)
}
