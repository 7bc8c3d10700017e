package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// DialogueCompleteData is published when a dialogue runner finishes.
type DialogueCompleteData struct {
	Node string // node the dialogue ended on
}

var DialogueCompleteEvent = events.NewEventType[DialogueCompleteData]()

// DialogueCompletionsData is the batch of completions delivered this frame.
// Every reader in the Dialog phase sees the whole batch; it is emptied when
// the phase ends.
type DialogueCompletionsData struct {
	Pending []DialogueCompleteData
}

var DialogueCompletions = donburi.NewComponentType[DialogueCompletionsData]()
