package hclopts

import (
	"fmt"
	"regexp"

	"github.com/zclconf/go-cty/cty"

	"github.com/trulysimple/tsargp/option"
)

// translateOption converts one HCL block into the format-agnostic option
// model, recursing into nested blocks for subcommands.
func translateOption(block *optionBlock) (*option.Option, error) {
	kind, err := parseKind(block.Kind)
	if err != nil {
		return nil, fmt.Errorf("option %q: %w", block.Key, err)
	}

	opt := &option.Option{
		Kind:             kind,
		Key:              block.Key,
		Names:            block.Names,
		NegationNames:    block.NegationNames,
		Synopsis:         block.Synopsis,
		Group:            block.Group,
		Hidden:           block.Hidden,
		Deprecated:       block.Deprecated,
		Link:             block.Link,
		EnvVar:           block.EnvVar,
		ClusterLetters:   block.ClusterLetters,
		Positional:       block.Positional,
		PositionalMarker: block.PositionalMarker,
		Required:         block.Required,
		Trim:             block.Trim,
		Unique:           block.Unique,
		Limit:            block.Limit,
		Append:           block.Append,
		Separator:        block.Separator,
	}

	opt.Default = deref(block.Default)
	opt.Example = deref(block.Example)
	opt.Fallback = deref(block.Fallback)

	if len(block.Requires) > 0 {
		all := make(option.RequiresAll, len(block.Requires))
		for i, key := range block.Requires {
			all[i] = option.RequiresKey(key)
		}
		opt.Requires = all
	}
	if len(block.RequiresOne) > 0 {
		one := make(option.RequiresOne, len(block.RequiresOne))
		for i, key := range block.RequiresOne {
			one[i] = option.RequiresKey(key)
		}
		if opt.Requires != nil {
			opt.Requires = option.AllOf(opt.Requires, one)
		} else {
			opt.Requires = one
		}
	}

	if len(block.ParamCount) > 0 {
		c, err := parseParamCount(block.ParamCount)
		if err != nil {
			return nil, fmt.Errorf("option %q: %w", block.Key, err)
		}
		opt.ParamCount = c
	}
	if block.Enums != nil && !block.Enums.IsNull() {
		v := *block.Enums
		if !v.CanIterateElements() {
			return nil, fmt.Errorf("option %q: enums must be a list", block.Key)
		}
		for it := v.ElementIterator(); it.Next(); {
			_, e := it.Element()
			opt.Enums = append(opt.Enums, e)
		}
	}
	if block.Regex != "" {
		re, err := regexp.Compile(block.Regex)
		if err != nil {
			return nil, fmt.Errorf("option %q: invalid regex: %w", block.Key, err)
		}
		opt.Regex = re
	}
	if len(block.Range) > 0 {
		if len(block.Range) != 2 {
			return nil, fmt.Errorf("option %q: range must be [min, max]", block.Key)
		}
		opt.Range = &option.Range{Min: block.Range[0], Max: block.Range[1]}
	}
	if opt.Case, err = parseCase(block.Case); err != nil {
		return nil, fmt.Errorf("option %q: %w", block.Key, err)
	}
	if opt.Round, err = parseRound(block.Round); err != nil {
		return nil, fmt.Errorf("option %q: %w", block.Key, err)
	}

	if len(block.Options) > 0 {
		if kind != option.Command {
			return nil, fmt.Errorf("option %q: nested options require kind \"command\"", block.Key)
		}
		sub := &option.Set{}
		for _, nested := range block.Options {
			subOpt, err := translateOption(nested)
			if err != nil {
				return nil, err
			}
			sub.Options = append(sub.Options, subOpt)
		}
		opt.Subcommands = sub
	}
	return opt, nil
}

func deref(v *cty.Value) cty.Value {
	if v == nil {
		return cty.NilVal
	}
	return *v
}

func parseKind(kind string) (option.Kind, error) {
	switch kind {
	case "help":
		return option.Help, nil
	case "version":
		return option.Version, nil
	case "flag":
		return option.Flag, nil
	case "boolean":
		return option.Boolean, nil
	case "string":
		return option.String, nil
	case "number":
		return option.Number, nil
	case "strings":
		return option.Strings, nil
	case "numbers":
		return option.Numbers, nil
	case "command":
		return option.Command, nil
	}
	return 0, fmt.Errorf("unknown option kind %q", kind)
}

// parseParamCount accepts [max] with an implied minimum of zero, or
// [min, max]; a negative maximum means unbounded.
func parseParamCount(bounds []int) (*option.Count, error) {
	switch len(bounds) {
	case 1:
		return &option.Count{Min: 0, Max: bounds[0]}, nil
	case 2:
		return &option.Count{Min: bounds[0], Max: bounds[1]}, nil
	}
	return nil, fmt.Errorf("param_count must be [max] or [min, max]")
}

func parseCase(mode string) (option.CaseMode, error) {
	switch mode {
	case "":
		return option.CaseNone, nil
	case "lower":
		return option.CaseLower, nil
	case "upper":
		return option.CaseUpper, nil
	}
	return option.CaseNone, fmt.Errorf("unknown case mode %q", mode)
}

func parseRound(mode string) (option.RoundMode, error) {
	switch mode {
	case "":
		return option.RoundNone, nil
	case "trunc":
		return option.RoundTrunc, nil
	case "floor":
		return option.RoundFloor, nil
	case "ceil":
		return option.RoundCeil, nil
	case "nearest":
		return option.RoundNearest, nil
	}
	return option.RoundNone, fmt.Errorf("unknown round mode %q", mode)
}
