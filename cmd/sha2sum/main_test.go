package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/TACITVS/SHA2-Golang/hexdigest"
	"github.com/TACITVS/SHA2-Golang/pbkdf2"
)

// resetCommandState returns every flag in the tree to its default so one
// execution cannot leak values or Changed bits into the next.
func resetCommandState(cmd *cobra.Command) {
	for _, set := range []*pflag.FlagSet{cmd.Flags(), cmd.PersistentFlags()} {
		set.VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
	for _, sub := range cmd.Commands() {
		resetCommandState(sub)
	}
}

func executeCommand(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()
	resetCommandState(rootCmd)
	t.Cleanup(func() { resetCommandState(rootCmd) })

	if stdin == nil {
		stdin = strings.NewReader("")
	}
	out := new(bytes.Buffer)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(out)
	rootCmd.SetErr(io.Discard)
	// A nil slice would make cobra fall back to os.Args.
	rootCmd.SetArgs(append([]string{}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDigestFiles(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "first.txt", "hello world\n")
	second := writeFile(t, dir, "second.txt", "second file")

	out, err := executeCommand(t, nil, first, second)
	require.NoError(t, err)
	require.Equal(t,
		fmt.Sprintf("%s  %s\n%s  %s\n",
			hexdigest.SHA256("hello world\n"), first,
			hexdigest.SHA256("second file"), second),
		out)

	out, err = executeCommand(t, nil, "--algorithm", "sha512", first)
	require.NoError(t, err)
	require.Equal(t, fmt.Sprintf("%s  %s\n", hexdigest.SHA512("hello world\n"), first), out)
}

func TestDigestStdin(t *testing.T) {
	out, err := executeCommand(t, strings.NewReader("piped input"))
	require.NoError(t, err)
	require.Equal(t, fmt.Sprintf("%s  -\n", hexdigest.SHA256("piped input")), out)
}

func TestDigestMissingFile(t *testing.T) {
	_, err := executeCommand(t, nil, filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	require.ErrorContains(t, err, "absent.txt")
}

func TestUnknownAlgorithm(t *testing.T) {
	_, err := executeCommand(t, nil, "-a", "sha384", "-")
	require.ErrorContains(t, err, "unknown algorithm")
}

func TestCheckManifest(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "first.txt", "alpha")
	second := writeFile(t, dir, "second.txt", "beta")

	good := writeFile(t, dir, "good.yaml", fmt.Sprintf(
		"algorithm: sha256\nfiles:\n  - path: %s\n    digest: %s\n  - path: %s\n    digest: %s\n",
		first, hexdigest.SHA256("alpha"), second, hexdigest.SHA256("beta")))
	out, err := executeCommand(t, nil, "check", good)
	require.NoError(t, err)
	require.Equal(t, fmt.Sprintf("%s: OK\n%s: OK\n", first, second), out)

	bad := writeFile(t, dir, "bad.yaml", fmt.Sprintf(
		"files:\n  - path: %s\n    digest: %s\n  - path: %s\n    digest: %s\n",
		first, hexdigest.SHA256("alpha"), second, hexdigest.SHA256("tampered")))
	out, err = executeCommand(t, nil, "check", bad)
	require.ErrorContains(t, err, "1 of 2 files did not match")
	require.Contains(t, out, fmt.Sprintf("%s: OK\n", first))
	require.Contains(t, out, fmt.Sprintf("%s: FAILED\n", second))
}

func TestCheckManifestSHA512(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "data.bin", "five one two")

	// Uppercase digests in a manifest still verify.
	manifest := writeFile(t, dir, "manifest.yaml", fmt.Sprintf(
		"algorithm: sha512\nfiles:\n  - path: %s\n    digest: %s\n",
		file, strings.ToUpper(hexdigest.SHA512("five one two"))))
	out, err := executeCommand(t, nil, "check", manifest)
	require.NoError(t, err)
	require.Equal(t, fmt.Sprintf("%s: OK\n", file), out)
}

func TestCheckManifestErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := executeCommand(t, nil, "check", filepath.Join(dir, "absent.yaml"))
	require.ErrorContains(t, err, "read manifest")

	empty := writeFile(t, dir, "empty.yaml", "algorithm: sha256\n")
	_, err = executeCommand(t, nil, "check", empty)
	require.ErrorContains(t, err, "lists no files")

	garbled := writeFile(t, dir, "garbled.yaml", "files: [unclosed\n")
	_, err = executeCommand(t, nil, "check", garbled)
	require.ErrorContains(t, err, "parse manifest")
}

func TestHMACCommand(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "signed.txt", "sign me")

	out, err := executeCommand(t, nil, "hmac", "--key", "secret", file)
	require.NoError(t, err)
	require.Equal(t, fmt.Sprintf("%s  %s\n", hexdigest.HMACSHA256("secret", "sign me"), file), out)

	keyFile := writeFile(t, dir, "key.bin", "secret")
	out, err = executeCommand(t, nil, "hmac", "--key-file", keyFile, "-a", "sha512", file)
	require.NoError(t, err)
	require.Equal(t, fmt.Sprintf("%s  %s\n", hexdigest.HMACSHA512("secret", "sign me"), file), out)

	out, err = executeCommand(t, strings.NewReader("sign me"), "hmac", "-k", "secret")
	require.NoError(t, err)
	require.Equal(t, fmt.Sprintf("%s  -\n", hexdigest.HMACSHA256("secret", "sign me")), out)

	_, err = executeCommand(t, nil, "hmac", file)
	require.ErrorContains(t, err, "key is required")
}

func TestKDFCommand(t *testing.T) {
	want, err := hexdigest.PBKDF2SHA256("hunter2", "salty", 2, 20)
	require.NoError(t, err)

	out, err := executeCommand(t, nil, "kdf", "--password", "hunter2", "-s", "salty", "-i", "2", "-l", "20")
	require.NoError(t, err)
	require.Equal(t, want+"\n", out)

	want, err = hexdigest.PBKDF2SHA512("hunter2", "salty", 3, 64)
	require.NoError(t, err)
	out, err = executeCommand(t, nil, "kdf", "-a", "sha512", "--password", "hunter2", "-s", "salty", "-i", "3", "-l", "64")
	require.NoError(t, err)
	require.Equal(t, want+"\n", out)

	_, err = executeCommand(t, nil, "kdf", "--password", "hunter2", "-i", "0")
	require.ErrorIs(t, err, pbkdf2.ErrInvalidIterations)
}
