package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newCloneCmd(v *viper.Viper, log *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clone",
		Short: "Deep-copy the jar and report cookie counts for original and clone",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jar, err := buildJar(v, log)
			if err != nil {
				return err
			}
			clone := jar.Clone()
			fmt.Fprintf(cmd.OutOrStdout(), "original: %d cookie(s)\nclone:    %d cookie(s)\n",
				len(jar.AllCookies()), len(clone.AllCookies()))
			return nil
		},
	}
	return cmd
}
