package main

import (
	"fmt"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/rfc6265/cookiejar"
)

func newGetCmd(v *viper.Viper, log *logrus.Logger) *cobra.Command {
	var concurrent bool
	var showExpiry bool
	cmd := &cobra.Command{
		Use:   "get <url>...",
		Short: "Print the Cookie header the jar would send for one or more URLs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jar, err := buildJar(v, log)
			if err != nil {
				return err
			}

			urls := make([]*url.URL, len(args))
			for i, raw := range args {
				u, err := url.Parse(raw)
				if err != nil {
					return fmt.Errorf("invalid url %q: %w", raw, err)
				}
				urls[i] = u
			}

			results := make([]string, len(urls))
			if concurrent {
				var g errgroup.Group
				for i, u := range urls {
					i, u := i, u
					g.Go(func() error {
						s, err := jar.GetCookieString(u, cookiejar.GetCookiesOptions{})
						if err != nil {
							return err
						}
						results[i] = s
						return nil
					})
				}
				if err := g.Wait(); err != nil {
					return err
				}
			} else {
				for i, u := range urls {
					s, err := jar.GetCookieString(u, cookiejar.GetCookiesOptions{})
					if err != nil {
						return err
					}
					results[i] = s
				}
			}

			for i, u := range urls {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", u, results[i])
				if showExpiry {
					matched, err := jar.GetCookies(u, cookiejar.GetCookiesOptions{})
					if err != nil {
						return err
					}
					now := time.Now()
					for _, c := range matched {
						fmt.Fprintf(cmd.OutOrStdout(), "  %s expires %s\n", c.Key, c.ExpiryDate(now).Format(time.RFC3339))
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&concurrent, "concurrent", false, "fan the GetCookies calls out across an errgroup")
	cmd.Flags().BoolVar(&showExpiry, "show-expiry", false, "also print each matched cookie's expiry date")
	return cmd
}
