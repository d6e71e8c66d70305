package hclopts

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/trulysimple/tsargp/option"
)

func parseSet(t *testing.T, src string) *option.Set {
	t.Helper()
	set, err := NewLoader().ParseSet(context.Background(), "test.hcl", []byte(src))
	require.NoError(t, err)
	return set
}

func TestParseSet_Basic(t *testing.T) {
	set := parseSet(t, `
option "flag" "verbose" {
  names          = ["-v", "--verbose"]
  negation_names = ["--no-verbose"]
  synopsis       = "Verbose output."
  group          = "Logging"
  cluster_letters = "v"
}
`)
	require.Len(t, set.Options, 1)
	opt := set.Options[0]
	assert.Equal(t, option.Flag, opt.Kind)
	assert.Equal(t, "verbose", opt.Key)
	assert.Equal(t, []string{"-v", "--verbose"}, opt.Names)
	assert.Equal(t, []string{"--no-verbose"}, opt.NegationNames)
	assert.Equal(t, "Verbose output.", opt.Synopsis)
	assert.Equal(t, "Logging", opt.Group)
	assert.Equal(t, "v", opt.ClusterLetters)
}

func TestParseSet_Constraints(t *testing.T) {
	set := parseSet(t, `
option "number" "jobs" {
  names   = ["-j"]
  range   = [1, 64]
  round   = "trunc"
  default = 4
}

option "string" "mode" {
  names = ["-m"]
  enums = ["fast", "slow"]
  case  = "lower"
  trim  = true
  regex = "^[a-z]+$"
}

option "strings" "tags" {
  names       = ["-t"]
  unique      = true
  limit       = 8
  append      = true
  param_count = [1, -1]
}
`)
	require.Len(t, set.Options, 3)

	jobs := set.Options[0]
	require.NotNil(t, jobs.Range)
	assert.Equal(t, 1.0, jobs.Range.Min)
	assert.Equal(t, 64.0, jobs.Range.Max)
	assert.Equal(t, option.RoundTrunc, jobs.Round)
	assert.True(t, jobs.Default.Equals(cty.NumberIntVal(4)).True())

	mode := set.Options[1]
	require.Len(t, mode.Enums, 2)
	assert.Equal(t, "fast", mode.Enums[0].AsString())
	assert.Equal(t, option.CaseLower, mode.Case)
	assert.True(t, mode.Trim)
	require.NotNil(t, mode.Regex)
	assert.True(t, mode.Regex.MatchString("abc"))

	tags := set.Options[2]
	assert.True(t, tags.Unique)
	assert.Equal(t, 8, tags.Limit)
	assert.True(t, tags.Append)
	require.NotNil(t, tags.ParamCount)
	assert.Equal(t, 1, tags.ParamCount.Min)
	assert.Equal(t, -1, tags.ParamCount.Max)
}

func TestParseSet_Requirements(t *testing.T) {
	set := parseSet(t, `
option "flag" "a" {
  names = ["-a"]
}

option "string" "b" {
  names        = ["-b"]
  requires     = ["a"]
  requires_one = ["a", "c"]
}

option "flag" "c" {
  names = ["-c"]
}
`)
	b := set.Options[1]
	all, ok := b.Requires.(option.RequiresAll)
	require.True(t, ok)
	require.Len(t, all, 2)
	assert.Equal(t, option.RequiresKey("a"), all[0].(option.RequiresAll)[0])
	one := all[1].(option.RequiresOne)
	assert.Equal(t, option.RequiresKey("c"), one[1])
}

func TestParseSet_Subcommands(t *testing.T) {
	set := parseSet(t, `
option "command" "serve" {
  names = ["serve"]

  option "number" "port" {
    names   = ["--port"]
    default = 8080
  }
}
`)
	serve := set.Options[0]
	assert.Equal(t, option.Command, serve.Kind)
	require.NotNil(t, serve.Subcommands)
	require.Len(t, serve.Subcommands.Options, 1)
	assert.Equal(t, "port", serve.Subcommands.Options[0].Key)
}

func TestParseSet_Errors(t *testing.T) {
	loader := NewLoader()
	ctx := context.Background()

	t.Run("unknown kind", func(t *testing.T) {
		_, err := loader.ParseSet(ctx, "t.hcl", []byte(`option "widget" "x" {}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown option kind")
	})

	t.Run("nested options under a non-command", func(t *testing.T) {
		src := `
option "flag" "x" {
  option "flag" "y" {}
}
`
		_, err := loader.ParseSet(ctx, "t.hcl", []byte(src))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `require kind "command"`)
	})

	t.Run("malformed range", func(t *testing.T) {
		src := `
option "number" "x" {
  range = [1]
}
`
		_, err := loader.ParseSet(ctx, "t.hcl", []byte(src))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "range must be [min, max]")
	})

	t.Run("invalid regex", func(t *testing.T) {
		src := `
option "string" "x" {
  regex = "["
}
`
		_, err := loader.ParseSet(ctx, "t.hcl", []byte(src))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid regex")
	})

	t.Run("syntax error", func(t *testing.T) {
		_, err := loader.ParseSet(ctx, "t.hcl", []byte(`option "flag" {`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse HCL source")
	})
}

func TestLoad_Paths(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	write := func(name, src string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(src), 0600))
		return path
	}

	write("a.hcl", `option "flag" "a" { names = ["-a"] }`)
	write("b.hcl", `option "flag" "b" { names = ["-b"] }`)
	write("ignored.txt", `not a manifest`)

	t.Run("directory loads every manifest", func(t *testing.T) {
		set, err := NewLoader().Load(ctx, dir)
		require.NoError(t, err)
		assert.Len(t, set.Options, 2)
	})

	t.Run("single file", func(t *testing.T) {
		set, err := NewLoader().Load(ctx, filepath.Join(dir, "a.hcl"))
		require.NoError(t, err)
		require.Len(t, set.Options, 1)
		assert.Equal(t, "a", set.Options[0].Key)
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := NewLoader().Load(ctx, filepath.Join(dir, "nope.hcl"))
		assert.Error(t, err)
	})
}
