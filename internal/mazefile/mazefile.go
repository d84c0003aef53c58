// Package mazefile reads maze sets from disk.
//
// Two formats are understood, chosen by file extension:
//
//	.yaml, .yml        a document of the form {mazes: [{name, rows}]}
//	.txt, .maze, none  plain text, one maze per block of lines;
//	                   blocks are separated by empty lines
package mazefile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyFile is returned when a file holds no maze.
	ErrEmptyFile = errors.New("mazefile: no maze found")
	// ErrUnknownFormat is returned for an unsupported file extension.
	ErrUnknownFormat = errors.New("mazefile: unknown format")
)

// Maze is one named maze as a sequence of text rows.
type Maze struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

type document struct {
	Mazes []Maze `yaml:"mazes"`
}

// Load reads and parses the file at path.
func Load(path string) ([]Maze, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mazefile: read %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse decodes data according to the extension of name. Mazes without a
// name are called "<base>#<index>".
func Parse(name string, data []byte) ([]Maze, error) {
	var (
		mazes []Maze
		err   error
	)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		mazes, err = parseYAML(data)
	case ".txt", ".maze", "":
		mazes = parseText(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(name))
	}
	if err != nil {
		return nil, fmt.Errorf("mazefile: decode %s: %w", name, err)
	}
	if len(mazes) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrEmptyFile, name)
	}

	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	for i := range mazes {
		if mazes[i].Name == "" {
			mazes[i].Name = fmt.Sprintf("%s#%d", base, i)
		}
	}
	return mazes, nil
}

func parseYAML(data []byte) ([]Maze, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.Mazes, nil
}

func parseText(data []byte) []Maze {
	var (
		mazes []Maze
		rows  []string
	)
	flush := func() {
		if len(rows) > 0 {
			mazes = append(mazes, Maze{Rows: rows})
			rows = nil
		}
	}
	for _, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimSuffix(line, []byte("\r"))
		if len(line) == 0 {
			flush()
			continue
		}
		rows = append(rows, string(line))
	}
	flush()
	return mazes
}
