package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/automoto/orbwalk/config"
	"github.com/automoto/orbwalk/leveldata"
	"github.com/automoto/orbwalk/yarn"
)

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed all:dialogue
	dialogueFS embed.FS
)

// MustLoadLevel loads the configured level and panics if it is malformed;
// a broken level is a build problem, not a runtime one.
func MustLoadLevel() *leveldata.Layout {
	layout, err := leveldata.Load(levelFS, config.Level.File, config.Level.UnitsPerTile)
	if err != nil {
		panic(err)
	}
	return layout
}

// DialogueSource returns the filesystem and directory the narrative project is
// read from. A debug directory on disk takes precedence over the embedded files
// so the project can be edited and reloaded while the game runs.
func DialogueSource() (fs.FS, string) {
	if config.Debug.ProjectDir != "" {
		return os.DirFS(config.Debug.ProjectDir), "."
	}
	return dialogueFS, config.Dialog.ProjectDir
}

// LoadDialogueProject loads the narrative project from DialogueSource.
func LoadDialogueProject() (*yarn.Project, error) {
	fsys, dir := DialogueSource()
	p, err := yarn.LoadProject(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	return p, nil
}
