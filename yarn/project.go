// Package yarn is a small narrative runtime: a project of dialogue nodes loaded
// from YAML files, and a runner that walks one conversation at a time.
package yarn

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Line is a single line of dialogue. If is an optional expression; the line is
// skipped when it evaluates to false.
type Line struct {
	Speaker string `yaml:"speaker"`
	Text    string `yaml:"text"`
	If      string `yaml:"if"`
}

// Option is a player choice shown after the last line of a node.
type Option struct {
	Text string `yaml:"text"`
	If   string `yaml:"if"`
	Jump string `yaml:"jump"`
}

// Assignment sets a variable to the result of an expression when its node is entered.
type Assignment struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

type Node struct {
	Title   string       `yaml:"title"`
	Set     []Assignment `yaml:"set"`
	Lines   []Line       `yaml:"lines"`
	Options []Option     `yaml:"options"`
	Jump    string       `yaml:"jump"`
}

type projectFile struct {
	Variables map[string]any `yaml:"variables"`
	Nodes     []Node         `yaml:"nodes"`
}

var (
	ErrNodeNotFound = errors.New("yarn: node not found")
	ErrNoNodes      = errors.New("yarn: project has no nodes")
	ErrReservedName = errors.New("yarn: variable name is reserved")
)

// Project is an immutable set of nodes plus the default values of the
// variables they reference.
type Project struct {
	nodes    map[string]*Node
	defaults map[string]any
}

// NewProject validates nodes and builds a project from them.
func NewProject(defaults map[string]any, nodes ...Node) (*Project, error) {
	if len(nodes) == 0 {
		return nil, ErrNoNodes
	}

	p := &Project{
		nodes:    make(map[string]*Node, len(nodes)),
		defaults: make(map[string]any, len(defaults)),
	}
	for k, v := range defaults {
		if k == seenVar {
			return nil, fmt.Errorf("yarn: variable %q: %w", k, ErrReservedName)
		}
		p.defaults[k] = v
	}

	for i := range nodes {
		n := nodes[i]
		if n.Title == "" {
			return nil, fmt.Errorf("yarn: node %d has no title", i)
		}
		if _, dup := p.nodes[n.Title]; dup {
			return nil, fmt.Errorf("yarn: duplicate node %q", n.Title)
		}
		for _, a := range n.Set {
			if a.Name == seenVar {
				return nil, fmt.Errorf("yarn: node %q sets %q: %w", n.Title, a.Name, ErrReservedName)
			}
		}
		p.nodes[n.Title] = &n
	}

	// Jumps are resolved up front so a runner never walks into a missing node.
	for _, n := range p.nodes {
		if n.Jump != "" && p.nodes[n.Jump] == nil {
			return nil, fmt.Errorf("yarn: node %q jumps to %q: %w", n.Title, n.Jump, ErrNodeNotFound)
		}
		for _, o := range n.Options {
			if o.Jump != "" && p.nodes[o.Jump] == nil {
				return nil, fmt.Errorf("yarn: option %q in %q jumps to %q: %w", o.Text, n.Title, o.Jump, ErrNodeNotFound)
			}
		}
	}

	return p, nil
}

// LoadProject reads every *.yaml / *.yml file in dir and merges them into one project.
func LoadProject(fsys fs.FS, dir string) (*Project, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("yarn: read dir %s: %w", dir, err)
	}

	var nodes []Node
	defaults := make(map[string]any)
	for _, entry := range entries {
		if entry.IsDir() || !IsProjectFile(entry.Name()) {
			continue
		}
		filename := path.Join(dir, entry.Name())
		data, err := fs.ReadFile(fsys, filename)
		if err != nil {
			return nil, fmt.Errorf("yarn: load %s: %w", filename, err)
		}

		var pf projectFile
		if err := yaml.Unmarshal(data, &pf); err != nil {
			return nil, fmt.Errorf("yarn: unmarshal %s: %w", filename, err)
		}
		for k, v := range pf.Variables {
			if prev, ok := defaults[k]; ok && prev != v {
				return nil, fmt.Errorf("yarn: variable %q declared twice with different defaults", k)
			}
			defaults[k] = v
		}
		nodes = append(nodes, pf.Nodes...)
	}

	p, err := NewProject(defaults, nodes...)
	if err != nil {
		return nil, fmt.Errorf("yarn: load project %s: %w", dir, err)
	}
	return p, nil
}

// Node looks up a node by title.
func (p *Project) Node(title string) (*Node, bool) {
	n, ok := p.nodes[title]
	return n, ok
}

// NodeNames returns the node titles in sorted order.
func (p *Project) NodeNames() []string {
	names := make([]string, 0, len(p.nodes))
	for name := range p.nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewRunner creates a dialogue runner seeded with the project's default variables.
func (p *Project) NewRunner() *Runner {
	r := &Runner{
		project: p,
		vars:    make(map[string]any, len(p.defaults)),
		visited: make(map[string]int),
	}
	for k, v := range p.defaults {
		r.vars[k] = v
	}
	return r
}

// IsProjectFile reports whether a file name looks like a narrative project file.
func IsProjectFile(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
