// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

// 📝 Parse parses the config from HCL
//
// Expressions may read environment variables through the env object, e.g. env.USER.
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": envObject(),
		},
	}

	// Define HCL schema
	type hclConfig struct {
		Defaults *struct {
			CaseSensitive *bool `hcl:"case_sensitive,optional"`
			ReplaceAll    *bool `hcl:"replace_all,optional"`
		} `hcl:"defaults,block"`
		Output     *string  `hcl:"output,optional"`
		Workers    *int     `hcl:"workers,optional"`
		WatchTerms []string `hcl:"watch_terms,optional"`
		Ignore     []string `hcl:"ignore,optional"`
		Rules      []struct {
			Search        string  `hcl:"search"`
			Replace       *string `hcl:"replace,optional"`
			CaseSensitive *bool   `hcl:"case_sensitive,optional"`
			First         *bool   `hcl:"first,optional"`
			Files         *string `hcl:"files,optional"`
		} `hcl:"rule,block"`
	}

	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Convert to model
	cfg := &Config{
		Output:     deref(hclCfg.Output),
		Workers:    deref(hclCfg.Workers),
		WatchTerms: hclCfg.WatchTerms,
		Ignore:     hclCfg.Ignore,
	}
	if hclCfg.Defaults != nil {
		cfg.Defaults.CaseSensitive = deref(hclCfg.Defaults.CaseSensitive)
		cfg.Defaults.ReplaceAll = hclCfg.Defaults.ReplaceAll
	}
	for _, r := range hclCfg.Rules {
		cfg.Rules = append(cfg.Rules, Rule{
			Search:        r.Search,
			Replace:       deref(r.Replace),
			CaseSensitive: deref(r.CaseSensitive),
			First:         deref(r.First),
			Files:         deref(r.Files),
		})
	}

	return cfg, nil
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}

func envObject() cty.Value {
	vars := map[string]cty.Value{}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = cty.StringVal(v)
	}
	if len(vars) == 0 {
		return cty.EmptyObjectVal
	}
	return cty.ObjectVal(vars)
}
