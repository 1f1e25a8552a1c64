package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("got %+v, want %+v", cfg, Default())
	}
	if cfg.MaxCaptureBytes != DefaultMaxCapture {
		t.Fatalf("MaxCaptureBytes = %d, want %d", cfg.MaxCaptureBytes, DefaultMaxCapture)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.toml", `
ignore_text = true
check_stdout = true
trace_prefix = ">> "
max_capture_bytes = 4096
temp_dir = "/var/tmp"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Config{
		IgnoreText:      true,
		CheckStdout:     true,
		TracePrefix:     ">> ",
		MaxCaptureBytes: 4096,
		TempDir:         "/var/tmp",
	}
	if cfg != want {
		t.Fatalf("got %+v, want %+v", cfg, want)
	}
}

func TestLoadYAML(t *testing.T) {
	for _, name := range []string{"config.yaml", "config.YML"} {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), name, "check_stdout: true\ntrace_prefix: \"++ \"\n")
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if !cfg.CheckStdout || cfg.TracePrefix != "++ " || cfg.IgnoreText {
				t.Fatalf("unexpected config %+v", cfg)
			}
			if cfg.MaxCaptureBytes != DefaultMaxCapture {
				t.Fatalf("MaxCaptureBytes = %d, want default", cfg.MaxCaptureBytes)
			}
		})
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		file string
		body string
		want error
	}{
		{"negativeCap", "config.toml", "max_capture_bytes = -1\n", ErrInvalidMaxCapture},
		{"relativeTemp", "config.toml", "temp_dir = \"tmp\"\n", ErrRelativeTempDir},
		{"badTOML", "config.toml", "ignore_text = \n", nil},
		{"badYAML", "config.yaml", "ignore_text: [\n", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeFile(t, t.TempDir(), tc.file, tc.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestLoadUnreadable(t *testing.T) {
	// A directory cannot be read as a file.
	if _, err := Load(t.TempDir()); err == nil {
		t.Fatal("expected error reading a directory")
	}
}

func TestPath(t *testing.T) {
	env := func(m map[string]string) func(string) (string, bool) {
		return func(k string) (string, bool) {
			v, ok := m[k]
			return v, ok
		}
	}

	cases := []struct {
		name     string
		explicit string
		env      map[string]string
		want     string
	}{
		{"explicit", "/etc/cc.toml", map[string]string{EnvPath: "/x.toml"}, "/etc/cc.toml"},
		{"env", "", map[string]string{EnvPath: "/x.yaml", "HOME": "/home/u"}, "/x.yaml"},
		{"xdg", "", map[string]string{"XDG_CONFIG_HOME": "/cfg", "HOME": "/home/u"}, filepath.Join("/cfg", "cronclearer", "config.toml")},
		{"home", "", map[string]string{"HOME": "/home/u"}, filepath.Join("/home/u", ".config", "cronclearer", "config.toml")},
		{"nothing", "", nil, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Path(tc.explicit, env(tc.env)); got != tc.want {
				t.Fatalf("Path = %q, want %q", got, tc.want)
			}
		})
	}
}
