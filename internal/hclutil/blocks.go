// Package hclutil holds small helpers shared by the HCL readers: unique block
// lookup and conversion between cty values and native Go values.
package hclutil

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// FindUniqueBlock searches a slice of blocks for all blocks of a given name.
// It returns a diagnostic error if more than one block of that name is found.
// If no block is found, it returns nil.
func FindUniqueBlock(blocks hcl.Blocks, name string) (*hcl.Block, hcl.Diagnostics) {
	var found *hcl.Block
	var diags hcl.Diagnostics

	for _, block := range blocks {
		if block.Type == name {
			if found != nil {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Duplicate \"" + name + "\" block",
					Detail:   "Only one \"" + name + "\" block is allowed.",
					Subject:  &block.DefRange,
				})
			}
			found = block
		}
	}

	return found, diags
}

// DuplicateLabel builds the diagnostic reported when two blocks of the same
// type share a label.
func DuplicateLabel(block *hcl.Block) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  fmt.Sprintf("Duplicate %s definition", block.Type),
		Detail:   fmt.Sprintf("A %s named '%s' has already been defined.", block.Type, block.Labels[0]),
		Subject:  &block.DefRange,
	}
}
