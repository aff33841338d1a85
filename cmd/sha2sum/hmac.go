package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/TACITVS/SHA2-Golang/hmac"
)

var (
	hmacKey     string
	hmacKeyFile string
)

var hmacCmd = &cobra.Command{
	Use:   "hmac [file ...]",
	Short: "Compute HMAC tags of files or standard input",
	Args:  cobra.ArbitraryArgs,
	RunE:  runHMAC,
}

func init() {
	hmacCmd.Flags().StringVarP(&hmacKey, "key", "k", "", "MAC key as a literal string")
	hmacCmd.Flags().StringVar(&hmacKeyFile, "key-file", "", "read the MAC key from a file")
	hmacCmd.MarkFlagsMutuallyExclusive("key", "key-file")
}

func macKey() ([]byte, error) {
	if hmacKeyFile != "" {
		key, err := os.ReadFile(hmacKeyFile)
		if err != nil {
			return nil, fmt.Errorf("read key file: %w", err)
		}
		return key, nil
	}
	if hmacKey == "" {
		return nil, fmt.Errorf("an HMAC key is required (--key or --key-file)")
	}
	return []byte(hmacKey), nil
}

func runHMAC(cmd *cobra.Command, args []string) error {
	alg, err := algorithmByName(algorithmName)
	if err != nil {
		return err
	}
	key, err := macKey()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, path := range args {
		data, name, err := readInput(cmd.InOrStdin(), path)
		if err != nil {
			return err
		}
		tag := hex.EncodeToString(hmac.Sum(alg, key, data))
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", tag, name)
	}
	return nil
}
