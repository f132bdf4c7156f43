package answers

import (
	"io"

	"gopkg.in/yaml.v3"
)

type yamlCodec struct{}

func (yamlCodec) decode(raw []byte, _ string) (Data, error) {
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return data, nil
}

func (yamlCodec) encode(w io.Writer, data Data) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		_ = enc.Close()
		return err
	}
	return enc.Close()
}
