package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rfc6265/cookiejar"
)

func newSerializeCmd(v *viper.Viper, log *logrus.Logger) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "serialize",
		Short: "Write the jar's current state as JSON (to --out, or stdout)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jar, err := buildJar(v, log)
			if err != nil {
				return err
			}
			data, err := jar.Serialize()
			if err != nil {
				return err
			}
			if out == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			return os.WriteFile(out, data, 0o644)
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "file to write the serialized jar to (default: stdout)")
	return cmd
}

func newLoadCmd(v *viper.Viper, log *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load <file>",
		Short: "Load a jar from a JSON file produced by 'serialize' and print its cookies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			jar, err := cookiejar.DeserializeJar(data, nil)
			if err != nil {
				return err
			}
			for _, c := range jar.AllCookies() {
				fmt.Fprintln(cmd.OutOrStdout(), c.String())
			}
			return nil
		},
	}
	return cmd
}
