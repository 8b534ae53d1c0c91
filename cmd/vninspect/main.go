// Command vninspect resolves version tokens against the supported catalog
// and reports what each one enables on the wire.
//
// Usage:
//
//	vninspect [flags] [token ...]
//
// Each positional token is parsed the way a version advertisement would be,
// so "h3-29", "T051", "46" and "ff00001d" all work.
package main

import (
	"flag"
	"log/slog"
	"os"

	quicversion "github.com/OkutaniDaichi0106/goquicversion"
)

func main() {
	var (
		configPath    = flag.String("config", "", "TOML version policy file; empty enables every supported version")
		list          = flag.String("list", "", "comma-separated version list to resolve against the policy")
		greaseCount   = flag.Int("grease", 0, "number of greased version labels to draw")
		deterministic = flag.Bool("deterministic", false, "draw the fixed greased label instead of random ones")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	gate, err := loadPolicy(*configPath)
	if err != nil {
		slog.Error("failed to load version policy", "error", err)
		os.Exit(1)
	}

	enabled := quicversion.CurrentSupportedVersions(gate)
	slog.Info("version policy",
		"enabled", quicversion.VersionVectorToString(enabled, ",", 16),
		"alpn", quicversion.ALPNs(enabled),
	)

	if *list != "" {
		offered := quicversion.ParseVersions(*list)
		accepted := quicversion.FilterSupportedVersions(offered, gate)
		slog.Info("resolved version list",
			"offered", quicversion.VersionVectorToString(offered, ",", 16),
			"accepted", quicversion.VersionVectorToString(accepted, ",", 16),
		)
	}

	failed := false
	for _, token := range flag.Args() {
		version := quicversion.ParseVersion(token)
		if !version.IsKnown() {
			slog.Warn("unresolved version token", "token", token)
			failed = true
			continue
		}
		inspect(token, version, gate)
	}

	if *greaseCount > 0 {
		source := &quicversion.GreaseSource{Deterministic: *deterministic}
		for i := 0; i < *greaseCount; i++ {
			slog.Info("greased version label", "label", source.Label().String())
		}
	}

	if failed {
		os.Exit(1)
	}
}

func inspect(token string, version quicversion.Version, gate quicversion.VersionGate) {
	slog.Info("version",
		"token", token,
		"version", version.String(),
		"handshake", version.Handshake.String(),
		"transport", version.Transport.String(),
		"label", version.Label().String(),
		"alpn", version.ALPN(),
		"enabled", quicversion.VersionIsEnabled(version, gate),
		"http3", version.UsesHTTP3(),
		"header_protection", version.HasHeaderProtection(),
		"retry_integrity", version.HasRetryIntegrityTag(),
		"google_altsvc", version.SupportsGoogleAltSvcFormat(),
	)
}
