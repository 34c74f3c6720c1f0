package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-md2html/internal/yamlutil"
)

type testMeta struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		check   func(t *testing.T, v any)
	}{
		{
			name: "valid YAML",
			data: []byte("title: Field Notes\nauthor: Ann"),
			dest: &testMeta{},
			check: func(t *testing.T, v any) {
				meta := v.(*testMeta)
				if meta.Title != "Field Notes" {
					t.Errorf("Title = %q, want %q", meta.Title, "Field Notes")
				}
				if meta.Author != "Ann" {
					t.Errorf("Author = %q, want %q", meta.Author, "Ann")
				}
			},
		},
		{
			name: "unknown fields tolerated",
			data: []byte("title: Kept\nextra: ignored"),
			dest: &testMeta{},
			check: func(t *testing.T, v any) {
				meta := v.(*testMeta)
				if meta.Title != "Kept" {
					t.Errorf("Title = %q, want %q", meta.Title, "Kept")
				}
			},
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &testMeta{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "empty data",
			data:    []byte{},
			dest:    &testMeta{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("title: test"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.Unmarshal(tt.data, tt.dest)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Unmarshal() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if tt.check != nil {
				tt.check(t, tt.dest)
			}
		})
	}
}

func TestUnmarshal_InvalidYAML(t *testing.T) {
	t.Parallel()

	err := yamlutil.Unmarshal([]byte("title: [unclosed"), &testMeta{})
	if err == nil {
		t.Fatal("Unmarshal() error = nil, want parse error")
	}
	if !strings.Contains(err.Error(), "yamlutil:") {
		t.Errorf("Unmarshal() error = %q, want yamlutil prefix", err)
	}
}

func TestUnmarshal_InputTooLarge(t *testing.T) {
	t.Parallel()

	data := []byte("title: " + strings.Repeat("a", yamlutil.MaxInputSize))
	err := yamlutil.Unmarshal(data, &testMeta{})
	if !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("Unmarshal() error = %v, want ErrInputTooLarge", err)
	}
}
