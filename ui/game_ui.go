package ui

import (
	"bytes"
	"image/color"

	"github.com/rgroves/fcc-chi-click-a-cat/hud"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// GameUI holds the ebitenui interface for the play screen: the score
// readout, the countdown readout, a centered banner, and the start
// button. The labels are registered under string ids so the hud
// components can bind to them; GameUI is the hud.Document the game runs
// against.
type GameUI struct {
	UI *ebitenui.UI

	// OnStart fires when the start button is clicked.
	OnStart func()

	elements map[string]hud.Element

	scoreLabel  *widget.Label
	timeLabel   *widget.Label
	bannerLabel *widget.Label
	startButton *widget.Button

	normalFace text.Face
	bannerFace text.Face
}

// labelElement adapts one ebitenui label to the hud.Element contract.
type labelElement struct {
	label *widget.Label
}

func (e *labelElement) SetText(s string) { e.label.Label = s }
func (e *labelElement) Text() string     { return e.label.Label }

// NewGameUI builds the play-screen UI. onStart may be nil.
func NewGameUI(onStart func()) *GameUI {
	gui := &GameUI{
		OnStart:  onStart,
		elements: map[string]hud.Element{},
	}

	gui.loadFonts()
	gui.buildUI()

	return gui
}

func (gui *GameUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	gui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
	gui.bannerFace = &text.GoTextFace{
		Source: fontSource,
		Size:   20,
	}
}

func (gui *GameUI) buildUI() {
	// Root container with AnchorLayout covering the screen; transparent
	// so the garden stays visible underneath.
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	rootContainer.AddChild(gui.buildScoreCorner())
	rootContainer.AddChild(gui.buildTimeCorner())
	rootContainer.AddChild(gui.buildCenterColumn())

	gui.UI = &ebitenui.UI{
		Container: rootContainer,
	}

	gui.elements["score"] = &labelElement{label: gui.scoreLabel}
	gui.elements["time"] = &labelElement{label: gui.timeLabel}
	gui.elements["banner"] = &labelElement{label: gui.bannerLabel}
}

func (gui *GameUI) buildScoreCorner() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{0, 0, 0, 140})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(6)),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	gui.scoreLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &gui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	container.AddChild(gui.scoreLabel)
	return container
}

func (gui *GameUI) buildTimeCorner() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{0, 0, 0, 140})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(6)),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	gui.timeLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &gui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	container.AddChild(gui.timeLabel)
	return container
}

func (gui *GameUI) buildCenterColumn() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	gui.bannerLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &gui.bannerFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	container.AddChild(gui.bannerLabel)

	gui.startButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 32)),
		widget.ButtonOpts.Image(gui.buttonImage()),
		widget.ButtonOpts.Text("Start", &gui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{200, 255, 200, 255},
			Pressed:  color.RGBA{150, 200, 150, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if gui.OnStart != nil {
				gui.OnStart()
			}
		}),
	)
	container.AddChild(gui.startButton)

	return container
}

func (gui *GameUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 100, 60, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 130, 80, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 80, 40, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// ElementByID implements hud.Document over the registered labels.
func (gui *GameUI) ElementByID(id string) (hud.Element, bool) {
	el, ok := gui.elements[id]
	return el, ok
}

// SetStartButton relabels the start button and toggles whether it
// accepts clicks; it is disabled while a session is running.
func (gui *GameUI) SetStartButton(label string, enabled bool) {
	gui.startButton.Text().Label = label
	gui.startButton.GetWidget().Disabled = !enabled
}

// Update advances the widget tree's input handling.
func (gui *GameUI) Update() {
	gui.UI.Update()
}

// Draw renders the widget tree on top of the garden.
func (gui *GameUI) Draw(screen *ebiten.Image) {
	gui.UI.Draw(screen)
}
