package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/ramodel/internal/config"
	"github.com/specialistvlad/ramodel/internal/ctxlog"
	"github.com/specialistvlad/ramodel/internal/fsutil"
	"github.com/specialistvlad/ramodel/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL study loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file under paths and merges their blocks into one
// study, in file discovery order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Study, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl files found in %v", paths)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	study := &config.Study{}
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root schema.StudyFile
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, v := range root.Variables {
			study.Variables = append(study.Variables, translateVariable(v))
		}
		for _, r := range root.Relations {
			rel, err := translateRelation(ctx, r)
			if err != nil {
				return nil, fmt.Errorf("in %s: %w", file, err)
			}
			study.Relations = append(study.Relations, rel)
		}
		for _, m := range root.Models {
			study.Models = append(study.Models, translateModel(m))
		}
		for _, c := range root.Compares {
			study.Comparisons = append(study.Comparisons, &config.Comparison{Name: c.Name, Left: c.Left, Right: c.Right})
		}
	}

	if err := study.Validate(); err != nil {
		return nil, fmt.Errorf("invalid study: %w", err)
	}

	logger.Debug("HCL loading complete.",
		"variables", len(study.Variables),
		"relations", len(study.Relations),
		"models", len(study.Models),
		"comparisons", len(study.Comparisons),
	)
	return study, nil
}
