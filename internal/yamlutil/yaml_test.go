package yamlutil_test

// Notes:
// - Marshal error branch: not tested because yaml.Marshal only fails with
//   unmarshalable types (channels, functions), which never appear in config.
// - TestInputSizeLimit mutates the package-level MaxInputSize and does not
//   run in parallel.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"strings"
	"testing"

	"github.com/lysachain/logokit/internal/yamlutil"
)

type testPaths struct {
	Root string `yaml:"root"`
	HTML string `yaml:"html"`
}

type testConfig struct {
	Paths testPaths `yaml:"paths"`
	Class string    `yaml:"class"`
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Strict decoding rejects unknown fields
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		data      []byte
		dest      any
		wantErr   error
		wantErrIn string
		check     func(t *testing.T, v any)
	}{
		{
			name: "valid nested YAML",
			data: []byte("paths:\n  root: site\n  html: index.html\nclass: main-logo-svg\n"),
			dest: &testConfig{},
			check: func(t *testing.T, v any) {
				cfg := v.(*testConfig)
				if cfg.Paths.Root != "site" {
					t.Errorf("Paths.Root = %q, want %q", cfg.Paths.Root, "site")
				}
				if cfg.Paths.HTML != "index.html" {
					t.Errorf("Paths.HTML = %q, want %q", cfg.Paths.HTML, "index.html")
				}
				if cfg.Class != "main-logo-svg" {
					t.Errorf("Class = %q, want %q", cfg.Class, "main-logo-svg")
				}
			},
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &testConfig{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "empty data",
			data:    []byte{},
			dest:    &testConfig{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("class: x"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
		{
			name:      "unknown field rejected",
			data:      []byte("class: x\nunknown: y\n"),
			dest:      &testConfig{},
			wantErrIn: "yamlutil:",
		},
		{
			name:      "invalid syntax",
			data:      []byte("class: [unclosed"),
			dest:      &testConfig{},
			wantErrIn: "yamlutil:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.UnmarshalStrict(tt.data, tt.dest)

			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("UnmarshalStrict() error = %v, want %v", err, tt.wantErr)
				}
			case tt.wantErrIn != "":
				if err == nil || !strings.Contains(err.Error(), tt.wantErrIn) {
					t.Fatalf("UnmarshalStrict() error = %v, want containing %q", err, tt.wantErrIn)
				}
			default:
				if err != nil {
					t.Fatalf("UnmarshalStrict() unexpected error: %v", err)
				}
				if tt.check != nil {
					tt.check(t, tt.dest)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestMarshal - Encodes structs as YAML that decodes back strictly
// ---------------------------------------------------------------------------

func TestMarshal(t *testing.T) {
	t.Parallel()

	original := testConfig{
		Paths: testPaths{Root: ".", HTML: "index.html"},
		Class: "main-logo-svg",
	}

	data, err := yamlutil.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	out := string(data)
	for _, want := range []string{"paths:", "root:", "html: index.html", "class: main-logo-svg"} {
		if !strings.Contains(out, want) {
			t.Errorf("Marshal() output missing %q:\n%s", want, out)
		}
	}

	var decoded testConfig
	if err := yamlutil.UnmarshalStrict(data, &decoded); err != nil {
		t.Fatalf("UnmarshalStrict(Marshal()) error = %v", err)
	}
	if decoded != original {
		t.Errorf("decoded = %+v, want %+v", decoded, original)
	}
}

// ---------------------------------------------------------------------------
// TestInputSizeLimit - Oversized input rejected before parsing
// ---------------------------------------------------------------------------

func TestInputSizeLimit(t *testing.T) {
	original := yamlutil.MaxInputSize
	yamlutil.MaxInputSize = 16
	defer func() { yamlutil.MaxInputSize = original }()

	err := yamlutil.UnmarshalStrict([]byte("class: "+strings.Repeat("x", 32)), &testConfig{})
	if !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("error = %v, want ErrInputTooLarge", err)
	}
}
