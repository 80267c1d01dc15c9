package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/atheler/klang-sub000/internal/config"
	"github.com/atheler/klang-sub000/internal/ctxlog"
	"github.com/atheler/klang-sub000/internal/fsutil"
	"github.com/atheler/klang-sub000/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL patch loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load orchestrates the entire HCL patch loading process. It is agnostic to
// the origin of the paths: files are parsed directly, directories are walked
// for .hcl files, and the blocks and wires of every file are merged into a
// single model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	model := &config.Model{
		Patch: &config.Patch{},
	}

	hclFiles, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	parser := hclparse.NewParser()

	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root schema.PatchFile
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		// Translate and merge all discovered declarations into the model.
		for _, blk := range root.Blocks {
			def, err := l.translateBlock(ctx, blk)
			if err != nil {
				return nil, fmt.Errorf("in file %s: %w", file, err)
			}
			model.Patch.Blocks = append(model.Patch.Blocks, def)
		}
		for _, wire := range root.Wires {
			def, err := l.translateWire(ctx, wire)
			if err != nil {
				return nil, fmt.Errorf("in file %s: %w", file, err)
			}
			model.Patch.Wires = append(model.Patch.Wires, def)
		}
	}

	logger.Debug("HCL loading complete.", "blocks", len(model.Patch.Blocks), "wires", len(model.Patch.Wires))
	return model, nil
}

// findAllHCLFiles resolves all given paths to a flat list of .hcl files.
// Directories are searched recursively, duplicates are dropped.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	add := func(files ...string) {
		for _, f := range files {
			if _, wasSeen := seen[f]; !wasSeen {
				allFiles = append(allFiles, f)
				seen[f] = struct{}{}
			}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue // It's not an error if a configured path doesn't exist.
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if info.IsDir() {
			found, err := fsutil.FindByExtension(path, ".hcl")
			if err != nil {
				return nil, err
			}
			add(found...)
		} else if filepath.Ext(path) == ".hcl" {
			add(path)
		}
	}
	return allFiles, nil
}
