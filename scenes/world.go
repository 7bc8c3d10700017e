package scenes

import (
	"image/color"
	"log"
	"path/filepath"
	"sync"

	"github.com/automoto/orbwalk/assets"
	cfg "github.com/automoto/orbwalk/config"
	"github.com/automoto/orbwalk/input"
	"github.com/automoto/orbwalk/render"
	"github.com/automoto/orbwalk/systems"
	"github.com/automoto/orbwalk/systems/factory"
	"github.com/automoto/orbwalk/ui"
	"github.com/automoto/orbwalk/yarn"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	layerWorld ecs.LayerID = iota
	layerDebug
	layerHUD
)

// WorldScene is the walkable level: the player explores, collects orbs and
// talks to NPCs.
type WorldScene struct {
	ecs        *ecs.ECS
	dialogueUI *ui.DialogueUI
	watcher    *yarn.Watcher
	once       sync.Once
}

func NewWorldScene() *WorldScene {
	return &WorldScene{}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	runner, _ := systems.DialogueRunner(ws.ecs.World)
	ws.dialogueUI.UpdateFrom(runner)
	ws.dialogueUI.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
	ws.dialogueUI.Draw(screen)
}

// Close stops the project watcher, if any.
func (ws *WorldScene) Close() error {
	if ws.watcher == nil {
		return nil
	}
	return ws.watcher.Close()
}

func (ws *WorldScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Raw input first; everything below reads it.
	ecs.AddSystem(input.Update)

	ecs.AddSystem(world(systems.UpdatePlayer))
	ecs.AddSystem(world(systems.UpdateObjects))
	ecs.AddSystem(world(systems.SpawnOrbs))
	ecs.AddSystem(world(systems.CollectOrbs))
	ecs.AddSystem(world(systems.UpdateDialogueAdvance))
	ecs.AddSystem(world(systems.UpdateDialogInteraction))
	if reload := ws.reloadSystem(); reload != nil {
		ecs.AddSystem(world(reload))
	}

	// Dialog phase, then the camera follows its new focus.
	ecs.AddSystem(world(systems.UpdateDialogPhase))
	ecs.AddSystem(world(systems.UpdateCamera))

	ecs.AddRenderer(layerWorld, render.DrawWorld)
	ecs.AddRenderer(layerDebug, render.DrawSensors)
	ecs.AddRenderer(layerHUD, render.DrawHUD)

	ws.ecs = ecs
	ws.dialogueUI = ui.NewDialogueUI()

	layout := assets.MustLoadLevel()
	factory.CreateFromLayout(ecs.World, layout)
	systems.GetOrCreateInputState(ecs.World)
	systems.GetOrCreateDialogState(ecs.World)

	project, err := assets.LoadDialogueProject()
	if err != nil {
		// Without a project there is nothing to talk about, but the level is
		// still walkable.
		log.Printf("Warning: Could not load dialogue project: %v", err)
		return
	}
	systems.InstallDialogueProject(ecs.World, project)
}

// reloadSystem watches the on-disk dialogue directory when watching is
// enabled and a directory on disk is in use.
func (ws *WorldScene) reloadSystem() func(donburi.World) {
	if !cfg.Dialog.WatchProject || cfg.Debug.ProjectDir == "" {
		return nil
	}
	dir, err := filepath.Abs(cfg.Debug.ProjectDir)
	if err != nil {
		log.Printf("Warning: Could not resolve dialogue directory: %v", err)
		return nil
	}
	watcher, err := yarn.NewWatcher(dir)
	if err != nil {
		log.Printf("Warning: Could not watch dialogue directory: %v", err)
		return nil
	}
	ws.watcher = watcher
	log.Printf("Watching %s for dialogue changes", dir)
	return systems.NewProjectReloadSystem(watcher, assets.LoadDialogueProject)
}

// world adapts a gameplay system to the ECS system signature.
func world(system func(donburi.World)) ecs.System {
	return func(e *ecs.ECS) {
		system(e.World)
	}
}
