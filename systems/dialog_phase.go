package systems

import "github.com/yohamta/donburi"

// UpdateDialogPhase runs the Dialog stage of the frame. The order is fixed:
//
//  1. spawn the dialogue runner if the project just became available
//  2. deliver completion events published earlier in the frame
//  3. unfreeze input and clear the dialog target for each completion
//  4. save dialogue progress if anything completed
//  5. retarget the camera focus
//
// Systems that read the freeze flag later in the frame see the result.
func UpdateDialogPhase(w donburi.World) {
	SpawnDialogueRunner(w)
	deliverDialogueEvents(w)
	UnfreezeAfterDialog(w)
	SaveDialogueProgressOnComplete(w)
	SetCameraFocus(w)
	endDialogBatch(w)
}
