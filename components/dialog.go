package components

import (
	"github.com/automoto/orbwalk/yarn"
	"github.com/yohamta/donburi"
)

// EntityRef is a weak handle to an entity. The referent may be removed at any
// time; Resolve reports whether it still exists.
type EntityRef struct {
	entity donburi.Entity
	set    bool
}

func Ref(e donburi.Entity) EntityRef {
	return EntityRef{entity: e, set: true}
}

// Entity returns the stored entity id without checking that it is alive.
func (r EntityRef) Entity() (donburi.Entity, bool) {
	return r.entity, r.set
}

func (r EntityRef) IsSet() bool {
	return r.set
}

// Resolve returns the entry for the referenced entity, or false when the
// handle is empty or the entity has been removed.
func (r EntityRef) Resolve(w donburi.World) (*donburi.Entry, bool) {
	if !r.set || !w.Valid(r.entity) {
		return nil, false
	}
	return w.Entry(r.entity), true
}

// DialogTargetData is the entity currently being talked to. Writes are not
// validated; readers must handle a target that no longer resolves.
type DialogTargetData struct {
	Target EntityRef
}

func (d *DialogTargetData) Get() (donburi.Entity, bool) {
	return d.Target.Entity()
}

func (d *DialogTargetData) Set(e donburi.Entity) {
	d.Target = Ref(e)
}

func (d *DialogTargetData) Clear() {
	d.Target = EntityRef{}
}

var DialogTarget = donburi.NewComponentType[DialogTargetData]()

// YarnNodeData tags an entity with the narrative node it starts when talked to.
type YarnNodeData struct {
	Node string
}

var YarnNode = donburi.NewComponentType[YarnNodeData]()

// DialogueRunnerData owns the single live dialogue runner.
type DialogueRunnerData struct {
	Runner *yarn.Runner
}

var DialogueRunner = donburi.NewComponentType[DialogueRunnerData]()

// DialogueProjectData holds the loaded narrative project. Version increases
// every time a project is installed; Seen is the last version the runner
// lifecycle has handled, so Added reports a project that just became available.
type DialogueProjectData struct {
	Project *yarn.Project
	Version int
	Seen    int
}

// Install replaces the project and marks it as newly added.
func (d *DialogueProjectData) Install(p *yarn.Project) {
	d.Project = p
	d.Version++
}

func (d *DialogueProjectData) Added() bool {
	return d.Project != nil && d.Version != d.Seen
}

func (d *DialogueProjectData) MarkSeen() {
	d.Seen = d.Version
}

var DialogueProject = donburi.NewComponentType[DialogueProjectData]()
