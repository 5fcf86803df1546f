package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rfc6265/cookiejar"
	"github.com/rfc6265/cookiejar/internal/psl"
)

// logrusAdapter satisfies cookiejar.Logger, letting the jar trace its
// ingestion/retrieval decisions through the CLI's own logger.
type logrusAdapter struct{ *logrus.Logger }

func (l logrusAdapter) Debugf(format string, args ...any) { l.Logger.Debugf(format, args...) }

func newRootCmd() *cobra.Command {
	v := viper.New()
	log := logrus.New()

	root := &cobra.Command{
		Use:   "cookiejarctl",
		Short: "Drive an RFC 6265 cookie jar from the command line",
	}

	flags := root.PersistentFlags()
	flags.String("state", "", "path to a JSON jar file (see 'serialize'/'load')")
	flags.Bool("reject-public-suffixes", true, "reject a Domain attribute naming a public suffix")
	flags.Bool("loose-mode", false, "relax RFC 6265 strictness (non-token values, bare key pairs)")
	flags.Bool("allow-special-use-domain", false, "allow special-use domains (.local, .onion, ...)")
	flags.String("prefix-security", "silent", "__Secure-/__Host- enforcement: silent, strict, or unsafe-disabled")
	flags.String("suffix-list", "xnet", "public suffix list to validate Domain attributes against: xnet or bundled")
	flags.Int("max-cookies-per-domain", 50, "cap on cookies held for a single domain (0 = unlimited)")
	flags.Int("max-cookies-total", 3000, "cap on cookies held by the jar (0 = unlimited)")
	flags.Int("max-bytes-per-cookie", 4096, "reject a cookie whose key+value exceeds this many bytes")
	flags.Bool("verbose", false, "trace jar ingestion/retrieval decisions")
	_ = v.BindPFlags(flags)

	v.SetEnvPrefix("COOKIEJARCTL")
	v.AutomaticEnv()

	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if v.GetBool("verbose") {
			log.SetLevel(logrus.DebugLevel)
		}
	}

	root.AddCommand(
		newSetCmd(v, log),
		newGetCmd(v, log),
		newSerializeCmd(v, log),
		newLoadCmd(v, log),
		newCloneCmd(v, log),
	)
	return root
}

// buildJar constructs a Jar from viper-sourced flags/env. When the --state
// file exists, the Jar is instead the one DeserializeJar rebuilds from that
// file: its configuration comes from the file, and the flag-derived settings
// above (capacity limits, suffix list, logger, prefix security, ...) are not
// applied to it.
func buildJar(v *viper.Viper, log *logrus.Logger) (*cookiejar.Jar, error) {
	jar := cookiejar.NewJar(nil)
	jar.AllowAllDomains = !v.GetBool("reject-public-suffixes")
	jar.LooseMode = v.GetBool("loose-mode")
	jar.AllowSpecialUseDomain = v.GetBool("allow-special-use-domain")
	jar.MaxCookiesPerDomain = v.GetInt("max-cookies-per-domain")
	jar.MaxCookiesTotal = v.GetInt("max-cookies-total")
	jar.MaxBytesPerCookie = v.GetInt("max-bytes-per-cookie")
	jar.Logger = logrusAdapter{log}

	switch v.GetString("suffix-list") {
	case "bundled":
		jar.PublicSuffixList = psl.New()
	default:
		jar.PublicSuffixList = cookiejar.XNetSuffixList{}
	}

	switch v.GetString("prefix-security") {
	case "strict":
		jar.PrefixSecurity = cookiejar.PrefixSecurityStrict
	case "unsafe-disabled":
		jar.PrefixSecurity = cookiejar.PrefixSecurityUnsafeDisabled
	default:
		jar.PrefixSecurity = cookiejar.PrefixSecuritySilent
	}

	state := v.GetString("state")
	if state == "" {
		return jar, nil
	}
	data, err := os.ReadFile(state)
	if err != nil {
		if os.IsNotExist(err) {
			return jar, nil
		}
		return nil, err
	}
	return cookiejar.DeserializeJar(data, nil)
}
