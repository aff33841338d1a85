package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// manifest is the YAML document the check command consumes.
type manifest struct {
	Algorithm string          `yaml:"algorithm"`
	Files     []manifestEntry `yaml:"files"`
}

type manifestEntry struct {
	Path   string `yaml:"path"`
	Digest string `yaml:"digest"`
}

var checkCmd = &cobra.Command{
	Use:   "check <manifest.yaml>",
	Short: "Verify files against a YAML digest manifest",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func loadManifest(path string) (*manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if m.Algorithm == "" {
		m.Algorithm = "sha256"
	}
	if len(m.Files) == 0 {
		return nil, fmt.Errorf("manifest %s lists no files", path)
	}
	return &m, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	m, err := loadManifest(args[0])
	if err != nil {
		return err
	}
	alg, err := algorithmByName(m.Algorithm)
	if err != nil {
		return err
	}

	failed := 0
	for _, entry := range m.Files {
		sum, name, err := digestInput(alg, cmd.InOrStdin(), entry.Path)
		if err != nil {
			return err
		}
		if strings.EqualFold(sum, entry.Digest) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: OK\n", name)
			continue
		}
		failed++
		fmt.Fprintf(cmd.OutOrStdout(), "%s: FAILED\n", name)
		logrus.WithFields(logrus.Fields{
			"file": name,
			"want": entry.Digest,
			"got":  sum,
		}).Debug("digest mismatch")
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files did not match", failed, len(m.Files))
	}
	return nil
}
