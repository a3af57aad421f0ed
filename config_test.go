package cilisp

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeConfig(t *testing.T) {
	tests := []struct {
		input string
		want  *Config
	}{
		{
			input: "",
			want:  DefaultConfig(),
		},
		{
			input: "seed: 42\ncolor: never\n",
			want: &Config{
				Prompt:     "> ",
				ReadPrompt: "read :: ",
				Color:      "never",
				Seed:       42,
			},
		},
		{
			input: "prompt: 'cilisp> '\nread_prompt: '? '\nmax_nodes: 100\necho_read: true\nhistory: /tmp/h\n",
			want: &Config{
				Prompt:     "cilisp> ",
				ReadPrompt: "? ",
				Color:      "auto",
				MaxNodes:   100,
				EchoRead:   true,
				History:    "/tmp/h",
			},
		},
	}
	for _, test := range tests {
		got, err := DecodeConfig(strings.NewReader(test.input))
		if err != nil {
			t.Errorf("%q: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("%q: (-want +got)\n%s", test.input, diff)
		}
	}
}

func TestDecodeConfigErrors(t *testing.T) {
	tests := []string{
		"color: purple\n",
		"max_nodes: -1\n",
		"seed: [1, 2]\n",
	}
	for _, input := range tests {
		if _, err := DecodeConfig(strings.NewReader(input)); err == nil {
			t.Errorf("want error for %q", input)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	dir, err := ioutil.TempDir("", "cilisp")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	fn := filepath.Join(dir, "cilisp.yaml")
	if err := ioutil.WriteFile(fn, []byte("seed: 7\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(fn)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != 7 || cfg.Prompt != "> " {
		t.Errorf("unexpected config %+v", cfg)
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("want error for missing file")
	}
}
