package app

import (
	"bytes"
	"context"
	"os"
	"sync"
	"testing"

	"github.com/specialistvlad/ramodel/internal/config"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// StaticLoader is a config.Loader that returns a prepared study.
type StaticLoader struct {
	Study *config.Study
	Err   error
}

// Load implements config.Loader.
func (l *StaticLoader) Load(_ context.Context, _ ...string) (*config.Study, error) {
	return l.Study, l.Err
}

// SetupAppTest creates a new app instance for system testing. It returns the
// app, the report output and the log output.
func SetupAppTest(t *testing.T, cfg *Config, study *config.Study) (*App, *SafeBuffer, *SafeBuffer) {
	t.Helper()

	outBuffer := &SafeBuffer{}
	logBuffer := &SafeBuffer{}
	if cfg.StudyPath == "" {
		cfg.StudyPath = "static"
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = OutputText
	}
	cfg.LogLevel = "debug"
	testApp := NewApp(outBuffer, logBuffer, cfg, &StaticLoader{Study: study})

	t.Cleanup(func() {
		if os.Getenv("RAMODEL_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, outBuffer, logBuffer
}
