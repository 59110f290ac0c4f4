/*
Package config manages configuration parsing and validation for textan.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+-----+ +----+----+ +-----+-----+
	|   YAML    | |   HCL   | |   JSON    |
	|  Parser   | | Parser  | |  Parser   |
	+-----------+ +---------+ +-----------+

🎯 Purpose:
- Loads option defaults (case sensitivity, replace-all) for the CLI
- Holds the batch replacement rules used by the apply command
- Selects the output format and worker count

🔄 Flow:
1. Reads configuration from file, or falls back to Default
2. Picks a parser by file extension (.yaml, .yml, .hcl, .toml, .json)
3. Validates values and fills in defaults
4. Hands typed rules to the text engine

🔍 Example:

	cfg, err := config.LoadOrDefault(ctx, ".textan.yaml")
	if err != nil {
		return err
	}
	rules := cfg.ReplacementRules()
*/
package config
