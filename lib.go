package cilisp

import (
	"fmt"
	"io/ioutil"
	"path"
	"sort"
	"strings"

	"github.com/rakyll/statik/fs"

	_ "github.com/mattn/cilisp/statik"
)

//go:generate statik -src=lib -f

const exampleExt = ".cilisp"

// Examples returns the bundled example programs keyed by name.
func Examples() (map[string]string, error) {
	statikFS, err := fs.New()
	if err != nil {
		return nil, err
	}
	dir, err := statikFS.Open("/")
	if err != nil {
		return nil, err
	}
	defer dir.Close()

	fis, err := dir.Readdir(-1)
	if err != nil {
		return nil, err
	}
	examples := make(map[string]string)
	for _, fi := range fis {
		if fi.IsDir() || path.Ext(fi.Name()) != exampleExt {
			continue
		}
		f, err := statikFS.Open(path.Join("/", fi.Name()))
		if err != nil {
			return nil, err
		}
		b, err := ioutil.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		examples[strings.TrimSuffix(fi.Name(), exampleExt)] = string(b)
	}
	return examples, nil
}

// ExampleNames returns the sorted names of the bundled examples.
func ExampleNames() ([]string, error) {
	examples, err := Examples()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(examples))
	for name := range examples {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// RunExample runs the bundled example called name.
func (e *Env) RunExample(name string) error {
	examples, err := Examples()
	if err != nil {
		return err
	}
	src, ok := examples[name]
	if !ok {
		return fmt.Errorf("unknown example: %s", name)
	}
	return e.RunString(src)
}
