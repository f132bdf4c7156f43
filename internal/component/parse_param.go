// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file holds the logic for parsing `param` blocks from HCL.
//
// Defaults are written as literal HCL values and converted to plain Go values
// here, so that the configuration engine never deals with cty directly. A param
// without a `default` attribute has to be answered, either from an answers file
// or by asking the user.
package component

import (
	"fmt"
	"regexp"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/specialistvlad/answergrid/internal/hclutil"
	"github.com/specialistvlad/answergrid/internal/param"
)

// paramNameRegex matches a param name, e.g. `image` or `db_password`.
var paramNameRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_-]*$`)

// paramBodySchema is the HCL schema for the body of a `param` block.
var paramBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "description"},
		{Name: "default"},
		{Name: "hidden"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "constraint"},
	},
}

// constraintBodySchema is the HCL schema for the body of a `constraint` block.
var constraintBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "allowed_pattern", Required: true},
		{Name: "description"},
	},
}

// parseParams finds and decodes all 'param' blocks, keeping declaration order.
func parseParams(blocks hcl.Blocks) ([]param.Param, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	var params []param.Param
	seen := make(map[string]struct{})

	for _, block := range blocks.OfType("param") {
		// The schema guarantees us one label.
		name := block.Labels[0]

		if !paramNameRegex.MatchString(name) {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid param name",
				Detail:   fmt.Sprintf("Param name %q must start with a letter or underscore and contain only letters, digits, underscores and dashes.", name),
				Subject:  &block.LabelRanges[0],
			})
			continue
		}
		if _, exists := seen[name]; exists {
			diags = append(diags, hclutil.DuplicateLabel(block))
			continue
		}
		seen[name] = struct{}{}

		p, paramDiags := parseParam(block)
		diags = append(diags, paramDiags...)
		if paramDiags.HasErrors() {
			continue
		}
		params = append(params, p)
	}

	return params, diags
}

func parseParam(block *hcl.Block) (param.Param, hcl.Diagnostics) {
	p := param.Param{Name: block.Labels[0]}

	content, diags := block.Body.Content(paramBodySchema)
	if diags.HasErrors() {
		return p, diags
	}

	diags = append(diags, decodeString(content.Attributes["description"], &p.Description)...)

	if attr, exists := content.Attributes["hidden"]; exists {
		diags = append(diags, gohcl.DecodeExpression(attr.Expr, nil, &p.Hidden)...)
	}

	if attr, exists := content.Attributes["default"]; exists {
		// A nil eval context is used because defaults must be literal values.
		val, valDiags := attr.Expr.Value(nil)
		diags = append(diags, valDiags...)
		if !valDiags.HasErrors() {
			native, err := hclutil.ToNative(val)
			if err != nil {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Invalid default value",
					Detail:   fmt.Sprintf("The default value for '%s' cannot be used: %s.", p.Name, err),
					Subject:  attr.Expr.Range().Ptr(),
				})
			}
			p.Default = native
		}
	}

	for _, cb := range content.Blocks.OfType("constraint") {
		c, constraintDiags := parseConstraint(cb)
		diags = append(diags, constraintDiags...)
		if !constraintDiags.HasErrors() {
			p.Constraints = append(p.Constraints, c)
		}
	}

	if err := p.CheckPatterns(); err != nil {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid constraint",
			Detail:   err.Error(),
			Subject:  &block.DefRange,
		})
		return p, diags
	}
	if err := p.Validate(p.Default); err != nil {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Default violates constraint",
			Detail:   err.Error(),
			Subject:  &block.DefRange,
		})
	}

	return p, diags
}

func parseConstraint(block *hcl.Block) (param.Constraint, hcl.Diagnostics) {
	var c param.Constraint

	content, diags := block.Body.Content(constraintBodySchema)
	if diags.HasErrors() {
		return c, diags
	}

	diags = append(diags, decodeString(content.Attributes["allowed_pattern"], &c.AllowedPattern)...)
	diags = append(diags, decodeString(content.Attributes["description"], &c.Description)...)
	return c, diags
}
