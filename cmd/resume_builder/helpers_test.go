package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag to its default; cobra keeps values between
// executions of the same command tree.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// cli runs commands against one temporary file store.
type cli struct {
	t     *testing.T
	store string
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	t.Setenv("RESUME_STORE", "")
	t.Setenv("RESUME_JWT_SECRET", "")
	return &cli{t: t, store: t.TempDir()}
}

// runWithInput executes args with stdin and returns combined output.
func (c *cli) runWithInput(stdin string, args ...string) (string, error) {
	c.t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--store", c.store}, args...))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func (c *cli) run(args ...string) (string, error) {
	c.t.Helper()
	return c.runWithInput("", args...)
}

func (c *cli) mustRun(args ...string) string {
	c.t.Helper()
	out, err := c.run(args...)
	require.NoError(c.t, err, out)
	return out
}

// addedID extracts the id from "Added <kind> <id>".
func addedID(t *testing.T, out string) string {
	t.Helper()
	fields := strings.Fields(out)
	require.Len(t, fields, 3, out)
	return fields[2]
}
