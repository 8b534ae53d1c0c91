package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	quicversion "github.com/OkutaniDaichi0106/goquicversion"
)

// policyFile is the on-disk shape of a version policy.
//
//	[versions]
//	enabled = ["h3-29", "T051"]
type policyFile struct {
	Versions struct {
		Enabled []string `toml:"enabled"`
	} `toml:"versions"`
}

// loadPolicy builds a version gate from a TOML policy file. An empty path
// enables the full supported catalog.
func loadPolicy(path string) (*quicversion.VersionConfig, error) {
	if path == "" {
		return quicversion.NewVersionConfig(), nil
	}

	var file policyFile
	md, err := toml.DecodeFile(path, &file)
	if err != nil {
		return nil, fmt.Errorf("decode policy %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("policy %s: unknown keys %v", path, undecoded)
	}

	cfg := &quicversion.VersionConfig{}
	for _, token := range file.Versions.Enabled {
		version := quicversion.ParseVersion(token)
		if !version.IsKnown() {
			return nil, fmt.Errorf("policy %s: unknown version %q", path, token)
		}
		cfg.Enable(version)
	}
	return cfg, nil
}
