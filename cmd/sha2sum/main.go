// Command sha2sum computes and verifies SHA-256 and SHA-512 digests of files
// or standard input, and exposes the HMAC and PBKDF2 constructions built on
// the same engines.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	verbose       bool
	algorithmName string
)

var rootCmd = &cobra.Command{
	Use:   "sha2sum [file ...]",
	Short: "Compute and verify SHA-256/SHA-512 digests, HMAC tags and PBKDF2 keys",
	Long: `sha2sum computes SHA-256 and SHA-512 digests of files or standard input
and prints them in the conventional "<digest>  <name>" form. Subcommands
verify digest manifests, compute HMAC tags and derive keys from passwords.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logrus.SetOutput(cmd.ErrOrStderr())
		logrus.SetLevel(logrus.WarnLevel)
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
	RunE: runDigest,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&algorithmName, "algorithm", "a", "sha256", "hash algorithm (sha256 or sha512)")
	rootCmd.AddCommand(checkCmd, hmacCmd, kdfCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "sha2sum: %v\n", err)
		os.Exit(1)
	}
}
