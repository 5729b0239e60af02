//go:build !js

package main

import (
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/scratchmex/huawei-decode/internal/xmlcfg"
)

func newXmlCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "xml",
		Short: "Work with the encrypted config xml",
	}
	cmd.AddCommand(
		newXmlDecodeCmd(),
		newXmlEncodeCmd(),
		newXmlValuesCmd(cfg),
	)
	return cmd
}

func newXmlDecodeCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "decode FILE",
		Short: "Decrypt a config container into plain xml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args[0])
			if err != nil {
				return err
			}
			log.Info("decoding...")
			out, err := xmlcfg.Decode(data)
			if err != nil {
				return errors.Wrapf(err, "failed to decode %s", args[0])
			}
			return writeOutput(cmd, output, out)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func newXmlEncodeCmd() *cobra.Command {
	var output, name string

	cmd := &cobra.Command{
		Use:   "encode FILE",
		Short: "Encrypt plain xml into a config container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args[0])
			if err != nil {
				return err
			}
			log.Info("encoding...")
			out, err := xmlcfg.Encode(data, name)
			if err != nil {
				return errors.Wrapf(err, "failed to encode %s", args[0])
			}
			return writeOutput(cmd, output, out)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&name, "name", xmlcfg.DefaultName, "file name stored in the header")
	return cmd
}

func newXmlValuesCmd(cfg *Config) *cobra.Command {
	var (
		output    string
		container bool
	)

	cmd := &cobra.Command{
		Use:   "values FILE",
		Short: "Decrypt every $2...$ attribute of a config xml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args[0])
			if err != nil {
				return err
			}
			if container {
				if data, err = xmlcfg.Decode(data); err != nil {
					return errors.Wrapf(err, "failed to decode %s", args[0])
				}
			}

			out, stats, err := xmlcfg.DecryptValues(data, cfg.Key)
			if err != nil {
				return errors.Wrapf(err, "failed to process %s", args[0])
			}
			for _, f := range stats.Failures {
				log.WithError(f.Err).WithField("attr", f.Attr).Debug(f.Path)
			}
			log.WithFields(log.Fields{
				"values":    stats.Values,
				"decrypted": stats.Decrypted,
				"failed":    len(stats.Failures),
			}).Info("decoded values")

			return writeOutput(cmd, output, out)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "decoded.xml", "output file, - for stdout")
	cmd.Flags().BoolVar(&container, "container", false, "FILE is an encrypted container")
	return cmd
}

func readInput(path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read file %s", path)
	}
	return data, nil
}

func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	log.Infof("written to %s", path)
	return nil
}
