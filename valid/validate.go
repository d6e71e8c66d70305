package valid

import (
	"context"

	"github.com/trulysimple/tsargp/internal/ctxlog"
	"github.com/trulysimple/tsargp/msg"
	"github.com/trulysimple/tsargp/option"
)

// DefaultSimilarityThreshold is the Gestalt similarity above which two
// names are considered suspiciously close. It is a heuristic default, not
// a load-bearing constant; override it through Flags.
const DefaultSimilarityThreshold = 0.8

// Flags tunes the optional validation passes.
type Flags struct {
	// CheckNames enables the similar-name and naming-convention warnings.
	CheckNames bool

	// SimilarityThreshold overrides DefaultSimilarityThreshold when
	// positive.
	SimilarityThreshold float64
}

// walker carries the state of one validation call: the message
// configuration, the visited subcommand sets guarding against recursion
// through shared sub-trees, the dotted key prefix of the current nesting
// level, and the warnings collected so far. It lives for a single
// Validate call and is threaded by reference through the descent.
type walker struct {
	cfg       *msg.Config
	flags     Flags
	threshold float64
	visited   map[*option.Set]struct{}
	prefix    string
	warnings  []*msg.Error
}

// Validate checks an option set and every nested subcommand set for
// structural and constraint consistency. It returns the name registry of
// the top-level set and any non-fatal warnings, or the first fatal
// inconsistency as a *msg.Error. There is no partial recovery: on error
// the schema must be fixed and validated again.
func Validate(ctx context.Context, set *option.Set, cfg *msg.Config, flags Flags) (*Registry, []*msg.Error, error) {
	threshold := flags.SimilarityThreshold
	if threshold <= 0 {
		threshold = DefaultSimilarityThreshold
	}
	w := &walker{
		cfg:       cfg,
		flags:     flags,
		threshold: threshold,
		visited:   make(map[*option.Set]struct{}),
	}
	reg, err := w.validateSet(ctx, set)
	if err != nil {
		return nil, nil, err
	}
	return reg, w.warnings, nil
}

// validateSet validates one level of the option tree and recurses into
// subcommand sets, short-circuiting on sets already visited.
func (w *walker) validateSet(ctx context.Context, set *option.Set) (*Registry, *msg.Error) {
	logger := ctxlog.FromContext(ctx)
	if _, done := w.visited[set]; done {
		logger.Debug("Option set already validated, skipping.", "prefix", w.prefix)
		return nil, nil
	}
	w.visited[set] = struct{}{}
	logger.Debug("Validating option set.", "prefix", w.prefix, "options", len(set.Options))

	reg, err := w.buildRegistry(set)
	if err != nil {
		return nil, err
	}

	for _, opt := range set.Options {
		if err := w.validateConstraints(opt); err != nil {
			return nil, err
		}
		if err := w.validateRequires(reg, opt, opt.Requires); err != nil {
			return nil, err
		}
		if err := w.validateRequires(reg, opt, opt.RequiredIf); err != nil {
			return nil, err
		}
	}

	if w.flags.CheckNames {
		w.checkNamingIssues(set)
	}

	for _, opt := range set.Options {
		if opt.Kind != option.Command || opt.Subcommands == nil {
			continue
		}
		saved := w.prefix
		w.prefix += opt.Key + "."
		_, err := w.validateSet(ctx, opt.Subcommands)
		w.prefix = saved
		if err != nil {
			return nil, err
		}
	}

	logger.Debug("Option set validated.", "prefix", w.prefix, "warnings", len(w.warnings))
	return reg, nil
}
