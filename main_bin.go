//go:build !js

package main

import (
	"os"

	"github.com/apex/log"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var (
		cfg     Config
		keyHex  string
		verbose bool
		silent  bool
	)

	rootCmd := &cobra.Command{
		Use:           "hwdec",
		Short:         "Decrypt and encrypt Huawei ONT config files and $2 values",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(keyHex, verbose, silent)
			if err != nil {
				return err
			}
			c.setupLogging(cmd.ErrOrStderr())
			cfg = *c
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&keyHex, "key", "", "value key (hex), defaults to $"+keyEnv+" or the firmware key")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&silent, "silent", "s", false, "suppress log and error messages")

	rootCmd.AddCommand(
		newDecryptCmd(&cfg),
		newEncryptCmd(&cfg),
		newXmlCmd(&cfg),
	)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Error("failed")
		os.Exit(1)
	}
}
