// Package cli provides common CLI utilities for the gtts command-line tool.
//
// This package includes:
//   - Configuration contexts loaded from ~/.gtts/config.yaml
//   - Environment overrides, with an optional .env file
//   - Catalog file loading (YAML/JSON)
//   - Styled terminal output and logging setup
//
// The configuration file is optional and never written by the tool.
// It supports multiple contexts, similar to kubectl:
//
//	current_context: uk
//	contexts:
//	  uk:
//	    name: uk
//	    tld: co.uk
//	    lang: en
//	  archive:
//	    name: archive
//	    s3:
//	      region: eu-west-1
//	      access_key: AKIA...
//	      secret_key: ...
//
// Example usage:
//
//	cfg, err := cli.LoadConfig("")
//	ctx, err := cfg.ResolveContext("")
//	err = ctx.ApplyEnv(os.LookupEnv)
package cli
