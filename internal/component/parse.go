package component

import (
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/specialistvlad/answergrid/internal/hclutil"
	"github.com/specialistvlad/answergrid/internal/namespace"
)

// applicationSchema is the HCL schema for the body of an `application` block.
var applicationSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "description"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "param", LabelNames: []string{"name"}},
		{Type: "component", LabelNames: []string{"name"}},
	},
}

// componentSchema is the HCL schema for the body of a `component` block.
var componentSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "description"},
		{Name: "source"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "param", LabelNames: []string{"name"}},
		{Type: "artifacts", LabelNames: []string{"provider"}},
		{Type: "component", LabelNames: []string{"name"}},
	},
}

// artifactsSchema is the HCL schema for the body of an `artifacts` block.
var artifactsSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "files", Required: true},
	},
}

func parseApplication(block *hcl.Block, dir string) (*Application, hcl.Diagnostics) {
	app := &Application{Name: block.Labels[0], Dir: dir}

	content, diags := block.Body.Content(applicationSchema)
	if diags.HasErrors() {
		return nil, diags
	}

	diags = append(diags, decodeString(content.Attributes["description"], &app.Description)...)

	params, paramDiags := parseParams(content.Blocks)
	diags = append(diags, paramDiags...)
	app.Params = params

	components, componentDiags := parseComponents(content.Blocks, dir)
	diags = append(diags, componentDiags...)
	app.Components = components

	return app, diags
}

// parseComponents decodes every `component` block in blocks, recursing into
// nested components.
func parseComponents(blocks hcl.Blocks, dir string) ([]*Component, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	var components []*Component
	seen := make(map[string]struct{})

	for _, block := range blocks.OfType("component") {
		name := block.Labels[0]
		if err := namespace.ValidateName(name); err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid component name",
				Detail:   err.Error(),
				Subject:  &block.LabelRanges[0],
			})
			continue
		}
		if _, exists := seen[name]; exists {
			diags = append(diags, hclutil.DuplicateLabel(block))
			continue
		}
		seen[name] = struct{}{}

		c, componentDiags := parseComponent(block, dir)
		diags = append(diags, componentDiags...)
		if c != nil {
			components = append(components, c)
		}
	}

	return components, diags
}

func parseComponent(block *hcl.Block, dir string) (*Component, hcl.Diagnostics) {
	c := &Component{
		Name:      block.Labels[0],
		Dir:       dir,
		Artifacts: make(map[string][]string),
	}

	content, diags := block.Body.Content(componentSchema)
	if diags.HasErrors() {
		return nil, diags
	}

	diags = append(diags, decodeString(content.Attributes["description"], &c.Description)...)

	if attr, exists := content.Attributes["source"]; exists {
		var source string
		diags = append(diags, decodeString(attr, &source)...)
		if source != "" {
			if !filepath.IsAbs(source) {
				source = filepath.Join(dir, source)
			}
			c.Source = filepath.Clean(source)
		}
	}

	params, paramDiags := parseParams(content.Blocks)
	diags = append(diags, paramDiags...)
	c.Params = params

	artifactDiags := parseArtifacts(content.Blocks, c)
	diags = append(diags, artifactDiags...)

	children, childDiags := parseComponents(content.Blocks, dir)
	diags = append(diags, childDiags...)
	c.Components = children

	if c.IsExternal() && (len(c.Artifacts) > 0 || len(c.Components) > 0) {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid external component",
			Detail:   fmt.Sprintf("Component '%s' sets 'source' and cannot also declare artifacts or nested components.", c.Name),
			Subject:  &block.DefRange,
		})
	}

	return c, diags
}

func parseArtifacts(blocks hcl.Blocks, c *Component) hcl.Diagnostics {
	var diags hcl.Diagnostics

	for _, block := range blocks.OfType("artifacts") {
		provider := block.Labels[0]
		if _, exists := c.Artifacts[provider]; exists {
			diags = append(diags, hclutil.DuplicateLabel(block))
			continue
		}

		content, contentDiags := block.Body.Content(artifactsSchema)
		diags = append(diags, contentDiags...)
		if contentDiags.HasErrors() {
			continue
		}

		var files []string
		decodeDiags := gohcl.DecodeExpression(content.Attributes["files"].Expr, nil, &files)
		diags = append(diags, decodeDiags...)
		if decodeDiags.HasErrors() {
			continue
		}
		c.Artifacts[provider] = files
	}

	return diags
}

// decodeString decodes an optional string attribute into target.
func decodeString(attr *hcl.Attribute, target *string) hcl.Diagnostics {
	if attr == nil {
		return nil
	}
	return gohcl.DecodeExpression(attr.Expr, nil, target)
}
