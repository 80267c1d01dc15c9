// Package testutil provides the shared harness for integration tests that
// drive a whole patch through the app.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atheler/klang-sub000/internal/app"
	"github.com/atheler/klang-sub000/internal/engine"
	"github.com/atheler/klang-sub000/internal/hcl"
	"github.com/atheler/klang-sub000/internal/patch"
	"github.com/atheler/klang-sub000/internal/registry"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	App       *app.App
	Built     *patch.Built
	Engine    *engine.Engine
	LogOutput string
	Err       error
}

// RunPatchTest provides a standardized harness for running a patch end to
// end: it writes patchHCL to a temp file, starts the app with debug
// logging, builds the rack, and runs cfg.Ticks ticks. Startup panics and
// build errors land in the result instead of failing the test, so error
// paths are assertable.
func RunPatchTest(t *testing.T, patchHCL string, cfg app.Config, modules ...registry.Module) *HarnessResult {
	t.Helper()
	return RunPatchTestWithContext(context.Background(), t, patchHCL, cfg, modules...)
}

// RunPatchTestWithContext is RunPatchTest with a caller-provided context.
func RunPatchTestWithContext(ctx context.Context, t *testing.T, patchHCL string, cfg app.Config, modules ...registry.Module) *HarnessResult {
	t.Helper()

	patchPath := filepath.Join(t.TempDir(), "patch.hcl")
	require.NoError(t, os.WriteFile(patchPath, []byte(patchHCL), 0o644))

	cfg.PatchPath = patchPath
	cfg.LogLevel = "debug"
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}

	logBuffer := &SafeBuffer{}
	result := &HarnessResult{}

	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		testApp = app.NewApp(logBuffer, &cfg, hcl.NewLoader(), modules...)
	}()

	if panicErr != nil {
		result.LogOutput = logBuffer.String()
		result.Err = fmt.Errorf("application startup panicked | %v", panicErr)
		return result
	}
	result.App = testApp

	built, eng, err := testApp.BuildPatch(ctx)
	if err != nil {
		result.LogOutput = logBuffer.String()
		result.Err = err
		return result
	}
	result.Built = built
	result.Engine = eng

	if cfg.Ticks > 0 {
		result.Err = eng.Run(ctx, cfg.Ticks)
	}
	result.LogOutput = logBuffer.String()

	if os.Getenv("KLANG_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), result.LogOutput)
	}

	return result
}
