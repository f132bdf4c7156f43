package answers

import (
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/answergrid/internal/hclutil"
)

// hclCodec stores one labeled block per namespace:
//
//	namespace "web" {
//	  image = "nginx"
//	}
type hclCodec struct{}

var hclAnswersSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "namespace", LabelNames: []string{"name"}},
	},
}

func (hclCodec) decode(raw []byte, name string) (Data, error) {
	file, diags := hclparse.NewParser().ParseHCL(raw, name)
	if diags.HasErrors() {
		return nil, diags
	}
	content, diags := file.Body.Content(hclAnswersSchema)
	if diags.HasErrors() {
		return nil, diags
	}

	data := make(Data)
	for _, block := range content.Blocks {
		ns := block.Labels[0]
		if _, exists := data[ns]; exists {
			return nil, hcl.Diagnostics{hclutil.DuplicateLabel(block)}
		}
		attrs, diags := block.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, diags
		}
		section := make(map[string]any, len(attrs))
		for key, attr := range attrs {
			// Answers are literal values, so no eval context is provided.
			val, diags := attr.Expr.Value(nil)
			if diags.HasErrors() {
				return nil, diags
			}
			native, err := hclutil.ToNative(val)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", ns, key, err)
			}
			section[key] = native
		}
		data[ns] = section
	}
	return data, nil
}

func (hclCodec) encode(w io.Writer, data Data) error {
	file := hclwrite.NewEmptyFile()
	body := file.Body()
	for i, ns := range hclutil.SortedKeys(data) {
		if i > 0 {
			body.AppendNewline()
		}
		block := body.AppendNewBlock("namespace", []string{ns}).Body()
		section := data[ns]
		for _, key := range hclutil.SortedKeys(section) {
			val, err := hclutil.FromNative(section[key])
			if err != nil {
				return fmt.Errorf("%s.%s: %w", ns, key, err)
			}
			block.SetAttributeValue(key, val)
		}
	}
	_, err := file.WriteTo(w)
	return err
}
