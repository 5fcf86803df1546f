package main

import (
	"bufio"
	"fmt"
	"net/url"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rfc6265/cookiejar"
)

func newSetCmd(v *viper.Viper, log *logrus.Logger) *cobra.Command {
	var cookies []string
	cmd := &cobra.Command{
		Use:   "set <url>",
		Short: "Apply one or more Set-Cookie lines to the jar for a URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := url.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid url %q: %w", args[0], err)
			}
			jar, err := buildJar(v, log)
			if err != nil {
				return err
			}

			raws := cookies
			if len(raws) == 0 {
				raws, err = readLines(os.Stdin)
				if err != nil {
					return err
				}
			}
			for _, raw := range raws {
				if _, err := jar.SetCookie(raw, u, cookiejar.SetCookieOptions{}); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "rejected %q: %v\n", raw, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "stored %q\n", raw)
			}
			return persistJar(v, jar)
		},
	}
	cmd.Flags().StringArrayVarP(&cookies, "cookie", "c", nil, "a Set-Cookie value (repeatable); stdin is read if omitted")
	return cmd
}

func readLines(r *os.File) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := sc.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}

// persistJar writes jar back to --state, if one was configured, so a
// sequence of CLI invocations shares state across process runs.
func persistJar(v *viper.Viper, jar *cookiejar.Jar) error {
	state := v.GetString("state")
	if state == "" {
		return nil
	}
	data, err := jar.Serialize()
	if err != nil {
		return err
	}
	return os.WriteFile(state, data, 0o644)
}
