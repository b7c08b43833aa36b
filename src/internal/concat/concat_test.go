package concat

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/maksimkurb/hosts-concat/src/internal/config"
	"github.com/maksimkurb/hosts-concat/src/internal/errors"
	"github.com/maksimkurb/hosts-concat/src/internal/hooks"
)

// recorder keeps the events of a run in firing order.
type recorder struct {
	events []string
	errors []error
}

func (r *recorder) hooks() *hooks.Hooks {
	return hooks.New().
		OnStart(func(*config.Config) { r.events = append(r.events, "start") }).
		OnError(func(err error) {
			r.events = append(r.events, "error")
			r.errors = append(r.errors, err)
		}).
		OnFinish(func(*config.Config) { r.events = append(r.events, "finish") })
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	return string(content)
}

// loadDefaults writes an empty config file into dir so that the default
// relative paths resolve inside it.
func loadDefaults(t *testing.T, dir string) *config.Config {
	t.Helper()
	configPath := filepath.Join(dir, "hosts-concat.toml")
	writeFile(t, configPath, "")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func TestRun_EndToEnd(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "hosts", "a.txt"), "127.0.0.1 ads.example.com\n# comment\nlocalhost")
	writeFile(t, filepath.Join(tmpDir, "hosts", "b.txt"), "0.0.0.0 tracker.example.org")
	writeFile(t, filepath.Join(tmpDir, "allow.txt"), "ads.example.com")
	cfg := loadDefaults(t, tmpDir)

	rec := &recorder{}
	report := Run(cfg, rec.hooks())

	if got := readFile(t, filepath.Join(tmpDir, "build", "hosts.txt")); got != "127.0.0.1\ttracker.example.org\n" {
		t.Errorf("Unexpected output: %q", got)
	}
	if !reflect.DeepEqual(rec.events, []string{"start", "finish"}) {
		t.Errorf("Unexpected events: %v", rec.events)
	}

	expected := Report{Files: 2, Size: 72, Entries: 2, Excluded: 1, Written: 1, Saved: true}
	if !reflect.DeepEqual(report, expected) {
		t.Errorf("Run() report = %+v, want %+v", report, expected)
	}
}

func TestRun_LaterFilesWin(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "hosts", "01.txt"), "ads.example.com\nkeep.org")
	writeFile(t, filepath.Join(tmpDir, "hosts", "02.txt"), "ads-example.com")
	writeFile(t, filepath.Join(tmpDir, "allow.txt"), "")
	cfg := loadDefaults(t, tmpDir)

	Run(cfg, nil)

	expected := "127.0.0.1\tads-example.com\n127.0.0.1\tkeep.org\n"
	if got := readFile(t, filepath.Join(tmpDir, "build", "hosts.txt")); got != expected {
		t.Errorf("Unexpected output: %q, want %q", got, expected)
	}
}

func TestRun_EmptyDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.Mkdir(filepath.Join(tmpDir, "hosts"), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	writeFile(t, filepath.Join(tmpDir, "hosts", "readme.md"), "not.matched.com")
	writeFile(t, filepath.Join(tmpDir, "allow.txt"), "")
	cfg := loadDefaults(t, tmpDir)

	rec := &recorder{}
	report := Run(cfg, rec.hooks())

	if got := readFile(t, filepath.Join(tmpDir, "build", "hosts.txt")); got != "" {
		t.Errorf("Expected empty output, got %q", got)
	}
	if !reflect.DeepEqual(rec.events, []string{"start", "finish"}) {
		t.Errorf("Unexpected events: %v", rec.events)
	}
	if report.Files != 0 || !report.Saved {
		t.Errorf("Unexpected report: %+v", report)
	}
}

func TestRun_MissingAllowList(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "hosts", "a.txt"), "0.0.0.0 ads.example.com")
	cfg := loadDefaults(t, tmpDir)

	rec := &recorder{}
	Run(cfg, rec.hooks())

	if !reflect.DeepEqual(rec.events, []string{"start", "error", "finish"}) {
		t.Fatalf("Unexpected events: %v", rec.events)
	}
	if code := errors.CodeOf(rec.errors[0]); code != errors.ErrCodeAllowList {
		t.Errorf("Expected %s, got %s", errors.ErrCodeAllowList, code)
	}
	if got := readFile(t, filepath.Join(tmpDir, "build", "hosts.txt")); got != "127.0.0.1\tads.example.com\n" {
		t.Errorf("Unexpected output: %q", got)
	}
}

func TestRun_DisabledAllowList(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "in", "a.txt"), "ads.example.com")

	cfg, err := config.New(config.Overrides{
		"scanFrom":   filepath.Join(tmpDir, "in"),
		"saveTo":     filepath.Join(tmpDir, "out.txt"),
		"allowHosts": "",
		"hostIp":     "0.0.0.0",
		"lineSpace":  " ",
		"lineBreak":  "\r\n",
	})
	if err != nil {
		t.Fatalf("Failed to create config: %v", err)
	}

	rec := &recorder{}
	Run(cfg, rec.hooks())

	if len(rec.errors) != 0 {
		t.Errorf("Unexpected errors: %v", rec.errors)
	}
	if got := readFile(t, filepath.Join(tmpDir, "out.txt")); got != "0.0.0.0 ads.example.com\r\n" {
		t.Errorf("Unexpected output: %q", got)
	}
}

func TestRun_BuildTransformsInOrder(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "hosts", "a.txt"), "a.com")
	writeFile(t, filepath.Join(tmpDir, "allow.txt"), "")
	cfg := loadDefaults(t, tmpDir)

	calls := 0
	h := hooks.New().
		OnBuild(func(text string, _ *config.Config) string {
			calls++
			return "# first\n" + text
		}).
		OnBuild(func(text string, _ *config.Config) string {
			calls++
			return "# second\n" + text
		})
	Run(cfg, h)

	expected := "# second\n# first\n127.0.0.1\ta.com\n"
	if got := readFile(t, filepath.Join(tmpDir, "build", "hosts.txt")); got != expected {
		t.Errorf("Unexpected output: %q, want %q", got, expected)
	}
	if calls != 2 {
		t.Errorf("Expected each transform to run once, got %d calls", calls)
	}
}

func TestRun_MissingScanDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "allow.txt"), "")
	cfg := loadDefaults(t, tmpDir)

	rec := &recorder{}
	report := Run(cfg, rec.hooks())

	if !reflect.DeepEqual(rec.events, []string{"start", "error", "finish"}) {
		t.Fatalf("Unexpected events: %v", rec.events)
	}
	if code := errors.CodeOf(rec.errors[0]); code != errors.ErrCodeScan {
		t.Errorf("Expected %s, got %s", errors.ErrCodeScan, code)
	}
	if report.Files != 0 {
		t.Errorf("Expected no files, got %d", report.Files)
	}
	if got := readFile(t, filepath.Join(tmpDir, "build", "hosts.txt")); got != "" {
		t.Errorf("Expected empty output, got %q", got)
	}
}

func TestRun_UnreadableFile(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "hosts", "a.txt"), "a.com")
	// A dangling symlink matches the pattern but cannot be opened.
	if err := os.Symlink(filepath.Join(tmpDir, "nowhere"), filepath.Join(tmpDir, "hosts", "b.txt")); err != nil {
		t.Skipf("Symlinks are not supported: %v", err)
	}
	writeFile(t, filepath.Join(tmpDir, "allow.txt"), "")
	cfg := loadDefaults(t, tmpDir)

	rec := &recorder{}
	report := Run(cfg, rec.hooks())

	if !reflect.DeepEqual(rec.events, []string{"start", "error", "finish"}) {
		t.Fatalf("Unexpected events: %v", rec.events)
	}
	if code := errors.CodeOf(rec.errors[0]); code != errors.ErrCodeRead {
		t.Errorf("Expected %s, got %s", errors.ErrCodeRead, code)
	}
	if report.Files != 2 || report.FailedFiles != 1 || report.Written != 1 {
		t.Errorf("Unexpected report: %+v", report)
	}
}

func TestRun_UnwritableOutput(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "hosts", "a.txt"), "a.com")
	writeFile(t, filepath.Join(tmpDir, "allow.txt"), "")
	// "build" is a file, so build/hosts.txt cannot be created.
	writeFile(t, filepath.Join(tmpDir, "build"), "")
	cfg := loadDefaults(t, tmpDir)

	rec := &recorder{}
	report := Run(cfg, rec.hooks())

	if !reflect.DeepEqual(rec.events, []string{"start", "error"}) {
		t.Fatalf("Unexpected events: %v", rec.events)
	}
	if code := errors.CodeOf(rec.errors[0]); code != errors.ErrCodeWrite {
		t.Errorf("Expected %s, got %s", errors.ErrCodeWrite, code)
	}
	if report.Saved || report.Unchanged {
		t.Errorf("Unexpected report: %+v", report)
	}
}

func TestRun_SkipUnchanged(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "hosts", "a.txt"), "a.com")
	writeFile(t, filepath.Join(tmpDir, "allow.txt"), "")
	cfg := loadDefaults(t, tmpDir)
	cfg.SkipUnchanged = true

	first := Run(cfg, nil)
	if !first.Saved || first.Unchanged {
		t.Errorf("Expected first run to save, got %+v", first)
	}

	rec := &recorder{}
	second := Run(cfg, rec.hooks())
	if second.Saved || !second.Unchanged {
		t.Errorf("Expected second run to skip the write, got %+v", second)
	}
	if !reflect.DeepEqual(rec.events, []string{"start", "finish"}) {
		t.Errorf("Unexpected events: %v", rec.events)
	}
}

func TestCheck(t *testing.T) {
	tmpDir := t.TempDir()
	longLabel := strings.Repeat("a", 64) + ".com"
	writeFile(t, filepath.Join(tmpDir, "hosts", "a.txt"), "good.example.com\n"+longLabel+"\nallowed.com")
	writeFile(t, filepath.Join(tmpDir, "allow.txt"), "allowed.com")
	cfg := loadDefaults(t, tmpDir)

	rec := &recorder{}
	report := Check(cfg, rec.hooks())

	if len(rec.events) != 0 {
		t.Errorf("Unexpected events: %v", rec.events)
	}
	if _, err := os.Stat(filepath.Join(tmpDir, "build")); !os.IsNotExist(err) {
		t.Errorf("Expected output directory not to be created, got err=%v", err)
	}
	if report.Entries != 3 || report.Excluded != 1 || report.Written != 2 || report.Saved {
		t.Errorf("Unexpected report: %+v", report)
	}
	if !reflect.DeepEqual(report.InvalidNames, []string{longLabel}) {
		t.Errorf("Expected %s to be reported as invalid, got %v", longLabel, report.InvalidNames)
	}
}
