package hclopts

import "github.com/zclconf/go-cty/cty"

// manifest is the top-level structure of an option manifest file.
type manifest struct {
	Options []*optionBlock `hcl:"option,block"`
}

// optionBlock is the HCL-specific schema of one `option` block. The two
// labels carry the option kind and its key; nested option blocks form a
// subcommand's set.
type optionBlock struct {
	Kind string `hcl:"kind,label"`
	Key  string `hcl:"key,label"`

	Names            []string `hcl:"names,optional"`
	NegationNames    []string `hcl:"negation_names,optional"`
	Synopsis         string   `hcl:"synopsis,optional"`
	Group            string   `hcl:"group,optional"`
	Hidden           bool     `hcl:"hidden,optional"`
	Deprecated       string   `hcl:"deprecated,optional"`
	Link             string   `hcl:"link,optional"`
	EnvVar           string   `hcl:"env_var,optional"`
	ClusterLetters   string   `hcl:"cluster_letters,optional"`
	Positional       bool     `hcl:"positional,optional"`
	PositionalMarker string   `hcl:"positional_marker,optional"`

	Required    bool     `hcl:"required,optional"`
	Requires    []string `hcl:"requires,optional"`
	RequiresOne []string `hcl:"requires_one,optional"`

	Default  *cty.Value `hcl:"default,optional"`
	Example  *cty.Value `hcl:"example,optional"`
	Fallback *cty.Value `hcl:"fallback,optional"`

	ParamCount []int      `hcl:"param_count,optional"`
	Enums      *cty.Value `hcl:"enums,optional"`
	Regex      string     `hcl:"regex,optional"`
	Range      []float64  `hcl:"range,optional"`

	Trim  bool   `hcl:"trim,optional"`
	Case  string `hcl:"case,optional"`
	Round string `hcl:"round,optional"`

	Unique    bool   `hcl:"unique,optional"`
	Limit     int    `hcl:"limit,optional"`
	Append    bool   `hcl:"append,optional"`
	Separator string `hcl:"separator,optional"`

	Options []*optionBlock `hcl:"option,block"`
}
