//go:build !js

package main

import (
	"bufio"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"html"
	"strings"

	"github.com/apex/log"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/scratchmex/huawei-decode/internal/value"
)

var errStdinUnavailable = errors.New("stdin is not available, provide the cipher as an argument or run in an interactive terminal")

func newDecryptCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "decrypt [CIPHER]",
		Short: "Decrypt a $2...$ value",
		Long: `Decrypt a $2...$ value taken from the config xml. Html entities are accepted.
Without CIPHER the value is read from an interactive prompt.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in string
			if len(args) == 1 {
				in = args[0]
			} else {
				var err error
				if in, err = promptCipher(cmd); err != nil {
					return err
				}
			}

			log.Debugf("decrypting %d chars", len(in))
			out, err := value.Decrypt(in, cfg.Key)
			if err != nil {
				return errors.Wrap(err, "failed to decrypt the cipher")
			}
			if out == "" {
				log.Warn("value decrypted to an empty string")
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

// promptCipher reads one line from the command's input. When that input is a file it
// must be an interactive terminal.
func promptCipher(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(interface{ Fd() uintptr }); ok {
		fd := f.Fd()
		if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
			return "", errStdinUnavailable
		}
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Enter the encrypted cipher: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return "", errors.Wrap(err, "read cipher")
	}
	return strings.TrimSpace(line), nil
}

func newEncryptCmd(cfg *Config) *cobra.Command {
	var (
		ivHex  string
		escape bool
	)

	cmd := &cobra.Command{
		Use:   "encrypt PLAINTEXT",
		Short: "Encrypt PLAINTEXT into a $2...$ value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var iv []byte
			var err error
			if ivHex != "" {
				if iv, err = hex.DecodeString(strings.ReplaceAll(ivHex, " ", "")); err != nil {
					return errors.Wrap(err, "failed to decode iv hex string")
				}
			} else if iv, err = value.NewIV(rand.Reader); err != nil {
				return err
			}
			log.Debugf("using iv: %x", iv)

			out, err := value.Encrypt(args[0], cfg.Key, iv)
			if err != nil {
				return errors.Wrap(err, "failed to encrypt")
			}
			if escape {
				out = html.EscapeString(out)
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&ivHex, "iv", "", "IV (hex string), random when empty")
	cmd.Flags().BoolVar(&escape, "escape", false, "html escape the result for embedding in xml")
	return cmd
}
