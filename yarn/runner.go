package yarn

import (
	"context"
	"errors"
	"fmt"

	"github.com/d5/tengo/v2"
)

var (
	ErrRunnerBusy    = errors.New("yarn: runner is already running a dialogue")
	ErrNotRunning    = errors.New("yarn: runner is not running")
	ErrAwaitOption   = errors.New("yarn: runner is waiting for an option")
	ErrNoSuchOption  = errors.New("yarn: no such option")
	ErrNotBoolean    = errors.New("yarn: condition is not boolean")
	ErrProjectLocked = errors.New("yarn: project cannot change while running")
	ErrJumpCycle     = errors.New("yarn: jump cycle without lines or options")
)

// seenVar exposes visit counts to expressions, e.g. `seen.Guide > 0`.
const seenVar = "seen"

// Runner walks one conversation at a time through a project. It is not safe
// for concurrent use; the game loop owns it.
type Runner struct {
	project *Project
	vars    map[string]any
	visited map[string]int

	node    *Node
	line    int
	options []Option
	running bool

	// OnComplete is called once per finished dialogue with the title of the
	// node it ended on.
	OnComplete func(node string)
}

// Project returns the project the runner reads nodes from.
func (r *Runner) Project() *Project {
	return r.project
}

// SetProject swaps the project, keeping variables and visit counts.
func (r *Runner) SetProject(p *Project) error {
	if r.running {
		return ErrProjectLocked
	}
	for k, v := range p.defaults {
		if _, ok := r.vars[k]; !ok {
			r.vars[k] = v
		}
	}
	r.project = p
	return nil
}

func (r *Runner) IsRunning() bool {
	return r.running
}

// CurrentNode returns the title of the node being run, or "" when idle.
func (r *Runner) CurrentNode() string {
	if !r.running || r.node == nil {
		return ""
	}
	return r.node.Title
}

// Start begins a dialogue at the named node.
func (r *Runner) Start(title string) error {
	if r.running {
		return ErrRunnerBusy
	}
	if _, ok := r.project.Node(title); !ok {
		return fmt.Errorf("start %q: %w", title, ErrNodeNotFound)
	}
	r.running = true
	return r.enter(title)
}

// Current returns the line on screen. When the node's lines are exhausted and
// options are pending, ok is false and options holds the visible choices.
func (r *Runner) Current() (line Line, options []Option, ok bool) {
	if !r.running {
		return Line{}, nil, false
	}
	if r.options != nil {
		return Line{}, r.options, false
	}
	return r.node.Lines[r.line], nil, true
}

// Advance moves past the current line.
func (r *Runner) Advance() error {
	if !r.running {
		return ErrNotRunning
	}
	if r.options != nil {
		return ErrAwaitOption
	}
	next, err := r.nextVisibleLine(r.line + 1)
	if err != nil {
		return err
	}
	if next >= 0 {
		r.showLine(next)
		return nil
	}
	return r.leaveNode()
}

// Select picks one of the options returned by Current.
func (r *Runner) Select(i int) error {
	if !r.running {
		return ErrNotRunning
	}
	if r.options == nil || i < 0 || i >= len(r.options) {
		return fmt.Errorf("select %d: %w", i, ErrNoSuchOption)
	}
	jump := r.options[i].Jump
	r.options = nil
	if jump == "" {
		r.complete()
		return nil
	}
	return r.enter(jump)
}

// Variables returns a copy of the variable storage.
func (r *Runner) Variables() map[string]any {
	out := make(map[string]any, len(r.vars))
	for k, v := range r.vars {
		out[k] = v
	}
	return out
}

// SetVariable overwrites a stored variable.
func (r *Runner) SetVariable(name string, value any) {
	r.vars[name] = value
}

// Visited returns how many times a node has been entered.
func (r *Runner) Visited(title string) int {
	return r.visited[title]
}

// VisitCounts returns a copy of all visit counts.
func (r *Runner) VisitCounts() map[string]int {
	out := make(map[string]int, len(r.visited))
	for k, v := range r.visited {
		out[k] = v
	}
	return out
}

// SetVisitCount restores a visit count, typically from save data.
func (r *Runner) SetVisitCount(title string, n int) {
	r.visited[title] = n
}

func (r *Runner) enter(title string) error {
	// A chain of nodes with nothing to show can loop; visiting more nodes than
	// the project holds without stopping means it does.
	for hops := 0; ; hops++ {
		if hops > len(r.project.nodes) {
			r.complete()
			return fmt.Errorf("enter %q: %w", title, ErrJumpCycle)
		}
		node, ok := r.project.Node(title)
		if !ok {
			r.complete()
			return fmt.Errorf("enter %q: %w", title, ErrNodeNotFound)
		}
		r.node = node
		r.options = nil
		r.visited[title]++

		for _, a := range node.Set {
			v, err := r.eval(a.Value)
			if err != nil {
				r.complete()
				return fmt.Errorf("node %q set %s: %w", title, a.Name, err)
			}
			r.vars[a.Name] = v
		}

		first, err := r.nextVisibleLine(0)
		if err != nil {
			return err
		}
		if first >= 0 {
			r.showLine(first)
			return nil
		}

		// Nothing to say here: fall through to options or the jump target.
		if err := r.collectOptions(); err != nil {
			return err
		}
		if r.options != nil {
			return nil
		}
		if node.Jump == "" {
			r.complete()
			return nil
		}
		title = node.Jump
	}
}

func (r *Runner) leaveNode() error {
	if err := r.collectOptions(); err != nil {
		return err
	}
	if r.options != nil {
		return nil
	}
	if r.node.Jump == "" {
		r.complete()
		return nil
	}
	return r.enter(r.node.Jump)
}

func (r *Runner) showLine(i int) {
	r.line = i
}

func (r *Runner) nextVisibleLine(from int) (int, error) {
	for i := from; i < len(r.node.Lines); i++ {
		ok, err := r.condition(r.node.Lines[i].If)
		if err != nil {
			err = fmt.Errorf("node %q line %d: %w", r.node.Title, i, err)
			r.complete()
			return -1, err
		}
		if ok {
			return i, nil
		}
	}
	return -1, nil
}

func (r *Runner) collectOptions() error {
	var visible []Option
	for _, o := range r.node.Options {
		ok, err := r.condition(o.If)
		if err != nil {
			err = fmt.Errorf("node %q option %q: %w", r.node.Title, o.Text, err)
			r.complete()
			return err
		}
		if ok {
			visible = append(visible, o)
		}
	}
	r.options = visible
	return nil
}

func (r *Runner) complete() {
	title := ""
	if r.node != nil {
		title = r.node.Title
	}
	r.running = false
	r.node = nil
	r.options = nil
	r.line = 0
	if r.OnComplete != nil {
		r.OnComplete(title)
	}
}

func (r *Runner) condition(expr string) (bool, error) {
	if expr == "" {
		return true, nil
	}
	v, err := r.eval(expr)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%q evaluated to %T: %w", expr, v, ErrNotBoolean)
	}
	return b, nil
}

func (r *Runner) eval(expr string) (any, error) {
	params := make(map[string]any, len(r.vars)+1)
	for k, v := range r.vars {
		params[k] = v
	}
	seen := make(map[string]any, len(r.project.nodes))
	for title := range r.project.nodes {
		seen[title] = r.visited[title]
	}
	params[seenVar] = seen

	v, err := tengo.Eval(context.Background(), expr, params)
	if err != nil {
		return nil, fmt.Errorf("eval %q: %w", expr, err)
	}
	return v, nil
}
