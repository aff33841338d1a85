package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/TACITVS/SHA2-Golang/sha2"
)

func algorithmByName(name string) (*sha2.Algorithm, error) {
	switch name {
	case "sha256":
		return sha2.SHA256, nil
	case "sha512":
		return sha2.SHA512, nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q (want sha256 or sha512)", name)
	}
}

// readInput loads one positional argument, with "-" meaning standard input.
func readInput(stdin io.Reader, path string) (data []byte, name string, err error) {
	if path == "-" {
		data, err = io.ReadAll(stdin)
		name = "-"
	} else {
		data, err = os.ReadFile(path)
		name = path
	}
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", name, err)
	}
	return data, name, nil
}

func digestInput(alg *sha2.Algorithm, stdin io.Reader, path string) (sum, name string, err error) {
	start := time.Now()
	data, name, err := readInput(stdin, path)
	if err != nil {
		return "", "", err
	}
	sum = hex.EncodeToString(alg.Sum(data))
	logrus.WithFields(logrus.Fields{
		"algorithm": alg.Name(),
		"input":     name,
		"bytes":     len(data),
		"elapsed":   time.Since(start),
	}).Debug("hashed input")
	return sum, name, nil
}

func runDigest(cmd *cobra.Command, args []string) error {
	alg, err := algorithmByName(algorithmName)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, path := range args {
		sum, name, err := digestInput(alg, cmd.InOrStdin(), path)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", sum, name)
	}
	return nil
}
