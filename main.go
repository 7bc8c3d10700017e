package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/orbwalk/config"
	"github.com/automoto/orbwalk/fonts"
	"github.com/automoto/orbwalk/scenes"
	"github.com/automoto/orbwalk/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	fonts.LoadDefaults()

	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.ShowSensors, "sensors", config.Debug.ShowSensors, "Draw sensor volumes")
	flag.StringVar(&config.Debug.ProjectDir, "dialogue", config.Debug.ProjectDir, "Load dialogue from this directory instead of the embedded files")
	flag.BoolVar(&config.Dialog.WatchProject, "watch", config.Dialog.WatchProject, "Reload dialogue when files in -dialogue change")
	flag.Parse()

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Orbwalk")
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence; without it progress simply isn't saved
	if err := systems.InitPersistence("orbwalk"); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	world := scenes.NewWorldScene()
	defer world.Close()

	if err := ebiten.RunGame(NewGame(world)); err != nil {
		log.Fatal(err)
	}
}
