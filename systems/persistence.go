package systems

import (
	"encoding/json"
	"log"
	"math"

	cfg "github.com/automoto/orbwalk/config"
	"github.com/automoto/orbwalk/yarn"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
)

// SavedDialogue is the dialogue progress stored on disk.
type SavedDialogue struct {
	Variables map[string]any `json:"variables"`
	Visited   map[string]int `json:"visited"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for save storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadDialogueProgress loads dialogue progress from disk. It returns nil
// without an error when persistence is off or nothing has been saved.
func LoadDialogueProgress() (*SavedDialogue, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(cfg.Dialog.SaveKey)
	if err != nil {
		log.Printf("Warning: Could not load dialogue progress: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var saved SavedDialogue
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Printf("Warning: Could not parse saved dialogue progress: %v", err)
		return nil, err
	}
	saved.Variables = normalizeNumbers(saved.Variables)

	return &saved, nil
}

// SaveDialogueProgress writes the runner's variables and visit counts to disk.
func SaveDialogueProgress(r *yarn.Runner) error {
	if !gdataInitialized || gdataManager == nil || r == nil {
		return nil
	}

	data, err := json.Marshal(CaptureDialogueProgress(r))
	if err != nil {
		log.Printf("Warning: Could not serialize dialogue progress: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(cfg.Dialog.SaveKey, data); err != nil {
		log.Printf("Warning: Could not save dialogue progress: %v", err)
		return err
	}
	return nil
}

// CaptureDialogueProgress snapshots what SaveDialogueProgress stores.
func CaptureDialogueProgress(r *yarn.Runner) *SavedDialogue {
	return &SavedDialogue{
		Variables: r.Variables(),
		Visited:   r.VisitCounts(),
	}
}

// ApplyDialogueProgress restores saved variables and visit counts into r.
func ApplyDialogueProgress(r *yarn.Runner, saved *SavedDialogue) {
	if saved == nil {
		return
	}
	for k, v := range saved.Variables {
		r.SetVariable(k, v)
	}
	for node, n := range saved.Visited {
		r.SetVisitCount(node, n)
	}
}

// SaveDialogueProgressOnComplete saves once per frame in which a dialogue finished.
func SaveDialogueProgressOnComplete(w donburi.World) {
	if len(dialogueCompletions(w)) == 0 {
		return
	}
	if r, ok := DialogueRunner(w); ok {
		SaveDialogueProgress(r)
	}
}

// normalizeNumbers turns whole JSON numbers back into ints so restored
// variables compare the same way as the project's YAML defaults.
func normalizeNumbers(vars map[string]any) map[string]any {
	for k, v := range vars {
		if f, ok := v.(float64); ok && f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			vars[k] = int(f)
		}
	}
	return vars
}
