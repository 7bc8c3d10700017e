// Package ui builds the on-screen dialogue box.
package ui

import (
	"bytes"
	"fmt"

	cfg "github.com/automoto/orbwalk/config"
	"github.com/automoto/orbwalk/yarn"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// DialogueUI holds the ebitenui interface for the dialogue box
type DialogueUI struct {
	UI *ebitenui.UI

	speakerLabel *widget.Label
	lineLabel    *widget.Label
	optionLabels []*widget.Label

	// Fonts (stored as interface for ebitenui compatibility)
	speakerFace text.Face
	normalFace  text.Face

	visible bool
}

// NewDialogueUI creates the dialogue box, hidden until a dialogue runs.
func NewDialogueUI() *DialogueUI {
	dui := &DialogueUI{}
	dui.loadFonts()
	dui.buildUI()
	return dui
}

func (dui *DialogueUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	dui.speakerFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
	dui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   11,
	}
}

func (dui *DialogueUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	box := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.BlackOverlay)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(3),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.C.Width-16, 90),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	dui.speakerLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &dui.speakerFace, &widget.LabelColor{
			Idle: cfg.Yellow,
		}),
	)
	box.AddChild(dui.speakerLabel)

	dui.lineLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &dui.normalFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	)
	box.AddChild(dui.lineLabel)

	for i := 0; i < cfg.Dialog.MaxOptions; i++ {
		label := widget.NewLabel(
			widget.LabelOpts.Text("", &dui.normalFace, &widget.LabelColor{
				Idle: cfg.LightBlue,
			}),
		)
		dui.optionLabels = append(dui.optionLabels, label)
		box.AddChild(label)
	}

	rootContainer.AddChild(box)

	dui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// UpdateFrom refreshes the labels from the runner's current line or options.
func (dui *DialogueUI) UpdateFrom(r *yarn.Runner) {
	dui.visible = r != nil && r.IsRunning()
	if !dui.visible {
		return
	}

	line, options, ok := r.Current()
	dui.speakerLabel.Label = ""
	dui.lineLabel.Label = ""
	for _, label := range dui.optionLabels {
		label.Label = ""
	}

	if ok {
		dui.speakerLabel.Label = line.Speaker
		dui.lineLabel.Label = line.Text
		return
	}
	for i, o := range options {
		if i >= len(dui.optionLabels) {
			break
		}
		dui.optionLabels[i].Label = fmt.Sprintf("%d. %s", i+1, o.Text)
	}
}

func (dui *DialogueUI) Update() {
	dui.UI.Update()
}

// Draw renders the box while a dialogue runs.
func (dui *DialogueUI) Draw(screen *ebiten.Image) {
	if dui.visible {
		dui.UI.Draw(screen)
	}
}
