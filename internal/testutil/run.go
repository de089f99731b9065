package testutil

import (
	"bytes"
	"os"
	"testing"

	"github.com/brudil/launchgen/internal/cli"
	"github.com/brudil/launchgen/internal/ide"
)

// Result captures the output of a command execution.
type Result struct {
	Stdout string
	Stderr string
	Err    error
}

// RunCommand executes a launchgen CLI command against the given host.
func RunCommand(t *testing.T, host ide.Host, args ...string) Result {
	t.Helper()

	// Build context from the fixture host
	ctx, err := cli.LoadContextForHost(host)
	if err != nil {
		t.Fatalf("LoadContextForHost(%s) failed: %v", host.Dir, err)
	}

	// Set override so commands use our context
	cli.SetContextOverride(ctx)
	defer cli.ClearContextOverride()

	// Capture os.Stdout (commands write to it directly)
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	// Capture os.Stderr
	oldStderr := os.Stderr
	rErr, wErr, _ := os.Pipe()
	os.Stderr = wErr

	cmd := cli.NewRootCmd("test")
	cmd.SetArgs(args)

	runErr := cmd.Execute()

	// Restore and read captured output
	w.Close()
	os.Stdout = oldStdout
	var stdout bytes.Buffer
	stdout.ReadFrom(r)

	wErr.Close()
	os.Stderr = oldStderr
	var stderr bytes.Buffer
	stderr.ReadFrom(rErr)

	return Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
		Err:    runErr,
	}
}
