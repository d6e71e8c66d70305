package hclopts

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/trulysimple/tsargp/internal/ctxlog"
	"github.com/trulysimple/tsargp/internal/fsutil"
	"github.com/trulysimple/tsargp/option"
)

// Loader reads option manifests from disk. It carries no state between
// calls; a single instance may load any number of manifests.
type Loader struct{}

// NewLoader creates a manifest loader.
func NewLoader() *Loader { return &Loader{} }

// Load reads every given path, either a manifest file or a directory
// searched recursively for .hcl files, and merges the declared options,
// in file order, into one set.
func (l *Loader) Load(ctx context.Context, paths ...string) (*option.Set, error) {
	logger := ctxlog.FromContext(ctx)
	parser := hclparse.NewParser()
	set := &option.Set{}

	for _, path := range paths {
		files, err := manifestFiles(path)
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			logger.Warn("No .hcl manifest files found in path", "path", path)
			continue
		}
		for _, file := range files {
			hclFile, diags := parser.ParseHCLFile(file)
			if diags.HasErrors() {
				return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
			}
			var m manifest
			if diags := gohcl.DecodeBody(hclFile.Body, nil, &m); diags.HasErrors() {
				return nil, fmt.Errorf("failed to decode option manifest %s: %w", file, diags)
			}
			for _, block := range m.Options {
				opt, err := translateOption(block)
				if err != nil {
					return nil, fmt.Errorf("failed to process option definition in %s: %w", file, err)
				}
				set.Options = append(set.Options, opt)
			}
			logger.Debug("Loaded option definitions from HCL file.", "file", file, "options", len(m.Options))
		}
	}

	logger.Debug("Option manifests loaded.", "options", len(set.Options))
	return set, nil
}

// ParseSet translates manifest source held in memory, for callers that
// embed their manifest.
func (l *Loader) ParseSet(ctx context.Context, filename string, src []byte) (*option.Set, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL source %s: %w", filename, diags)
	}
	var m manifest
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &m); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode option manifest %s: %w", filename, diags)
	}
	set := &option.Set{}
	for _, block := range m.Options {
		opt, err := translateOption(block)
		if err != nil {
			return nil, fmt.Errorf("failed to process option definition in %s: %w", filename, err)
		}
		set.Options = append(set.Options, opt)
	}
	ctxlog.FromContext(ctx).Debug("Option manifest parsed.", "file", filename, "options", len(set.Options))
	return set, nil
}

// manifestFiles resolves a path to the manifest files beneath it.
func manifestFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	return fsutil.FindFilesByExtension(path, ".hcl")
}
