package systems

import (
	"log"

	"github.com/automoto/orbwalk/yarn"
	"github.com/yohamta/donburi"
)

// ChangeNotifier reports whether watched files changed since the last poll,
// and the last error it hit while watching.
type ChangeNotifier interface {
	Changed() bool
	Err() error
}

// NewProjectReloadSystem returns a system that reloads the narrative project
// whenever notifier reports a change. A project that fails to load is logged
// and the current one stays in place.
func NewProjectReloadSystem(notifier ChangeNotifier, load func() (*yarn.Project, error)) func(w donburi.World) {
	return func(w donburi.World) {
		if notifier == nil {
			return
		}
		if err := notifier.Err(); err != nil {
			log.Printf("Warning: Dialogue watcher: %v", err)
		}
		if !notifier.Changed() {
			return
		}
		p, err := load()
		if err != nil {
			log.Printf("Warning: Could not reload dialogue project: %v", err)
			return
		}
		InstallDialogueProject(w, p)
	}
}
