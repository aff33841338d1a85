package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/TACITVS/SHA2-Golang/hmac"
	"github.com/TACITVS/SHA2-Golang/pbkdf2"
)

var (
	kdfSalt       string
	kdfIterations int
	kdfLength     int
	kdfPassword   string
)

var kdfCmd = &cobra.Command{
	Use:   "kdf",
	Short: "Derive a key from a password with PBKDF2",
	Args:  cobra.NoArgs,
	RunE:  runKDF,
}

func init() {
	kdfCmd.Flags().StringVarP(&kdfSalt, "salt", "s", "", "salt as a literal string")
	kdfCmd.Flags().IntVarP(&kdfIterations, "iterations", "i", 600000, "iteration count")
	kdfCmd.Flags().IntVarP(&kdfLength, "length", "l", 32, "derived key length in bytes")
	kdfCmd.Flags().StringVar(&kdfPassword, "password", "", "password (prompted without echo when omitted)")
}

func promptPassword(cmd *cobra.Command) ([]byte, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("standard input is not a terminal; pass --password")
	}
	fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}
	return password, nil
}

func runKDF(cmd *cobra.Command, args []string) error {
	alg, err := algorithmByName(algorithmName)
	if err != nil {
		return err
	}
	password := []byte(kdfPassword)
	if kdfPassword == "" {
		password, err = promptPassword(cmd)
		if err != nil {
			return err
		}
	}

	start := time.Now()
	key, err := pbkdf2.Key(hmac.New(alg), password, []byte(kdfSalt), kdfIterations, kdfLength)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"algorithm":  alg.Name(),
		"iterations": kdfIterations,
		"length":     kdfLength,
		"elapsed":    time.Since(start),
	}).Debug("derived key")

	fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(key))
	return nil
}
