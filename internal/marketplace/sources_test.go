package marketplace

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSources(t *testing.T) {
	tests := map[string]struct {
		content     string
		writeFile   bool
		wantPrimary string
		wantCount   int
		wantErr     bool
	}{
		"missing file uses defaults": {
			writeFile:   false,
			wantPrimary: DefaultSource,
			wantCount:   1,
		},
		"configured sources": {
			writeFile: true,
			content: `sources = [
  "https://github.com/acme/skills",
  "https://github.com/anthropics/skills",
]
`,
			wantPrimary: "https://github.com/acme/skills",
			wantCount:   2,
		},
		"empty list falls back to defaults": {
			writeFile:   true,
			content:     "sources = []\n",
			wantPrimary: DefaultSource,
			wantCount:   1,
		},
		"malformed toml": {
			writeFile: true,
			content:   "sources = [unterminated\n",
			wantErr:   true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "sources.toml")
			if tt.writeFile {
				if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
					t.Fatalf("failed to write sources file: %v", err)
				}
			}

			sources, err := LoadSources(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadSources() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(sources.Sources) != tt.wantCount {
				t.Errorf("len(Sources) = %d, want %d", len(sources.Sources), tt.wantCount)
			}
			if got := sources.Primary(); got != tt.wantPrimary {
				t.Errorf("Primary() = %q, want %q", got, tt.wantPrimary)
			}
		})
	}
}

func TestSources_PrimaryWhenEmpty(t *testing.T) {
	var sources Sources
	if got := sources.Primary(); got != DefaultSource {
		t.Errorf("Primary() = %q, want %q", got, DefaultSource)
	}
}
