package component

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/answergrid/internal/ctxlog"
	"github.com/specialistvlad/answergrid/internal/fsutil"
	"github.com/specialistvlad/answergrid/internal/hclutil"
)

// rootSchema is the HCL schema for the top level of a definition file.
var rootSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "application", LabelNames: []string{"name"}},
	},
}

// LoadApplication parses every .hcl file directly inside dir. Exactly one
// `application` block must be present across those files.
func LoadApplication(ctx context.Context, dir string) (*Application, error) {
	logger := ctxlog.FromContext(ctx)

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving application directory %s: %w", dir, err)
	}

	files, err := fsutil.FindFilesByExtension(absDir, ".hcl", false)
	if err != nil {
		return nil, fmt.Errorf("discovering definition files in %s: %w", absDir, err)
	}
	logger.Debug("Discovered HCL files.", "dir", absDir, "count", len(files))

	parser := hclparse.NewParser()
	var blocks hcl.Blocks
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}
		content, diags := hclFile.Body.Content(rootSchema)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}
		blocks = append(blocks, content.Blocks...)
	}

	block, diags := hclutil.FindUniqueBlock(blocks, "application")
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid application definition in %s: %w", absDir, diags)
	}
	if block == nil {
		return nil, fmt.Errorf("no application block found in %s", absDir)
	}

	app, diags := parseApplication(block, absDir)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid application definition in %s: %w", absDir, diags)
	}

	logger.Debug("Application definition loaded.", "name", app.Name, "params", len(app.Params), "components", len(app.Components))
	return app, nil
}
