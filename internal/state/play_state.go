// internal/state/play_state.go
package state

import (
	"fmt"
	"go-color-circles/internal/app"
	"go-color-circles/internal/config"
	"go-color-circles/internal/event"
	"go-color-circles/internal/input"
	"go-color-circles/internal/ui"
	"go-color-circles/internal/utils"
	"go-color-circles/pkg/render"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	_ State    = (*PlayState)(nil)
	_ Layouter = (*PlayState)(nil)
)

// PlayState — экран с игровым полем
type PlayState struct {
	sm         *StateMachine
	board      *app.Board
	dispatcher *event.Dispatcher
	tracker    *input.PointerTracker
	pointer    input.PointerSource
	fonts      *render.Fonts

	// Экран не очищается каждый кадр: перерисовываем только по запросу поля.
	dirty bool
}

func NewPlayState(sm *StateMachine, fonts *render.Fonts) *PlayState {
	width, height := sm.Size()
	if width == 0 || height == 0 {
		width, height = config.ScreenWidth, config.ScreenHeight
	}

	dispatcher := event.NewDispatcher()
	p := &PlayState{
		sm:         sm,
		board:      app.NewBoard(width, height, app.DefaultOptions(), utils.NewPRNGService(0), dispatcher),
		dispatcher: dispatcher,
		tracker:    input.NewPointerTracker(),
		pointer:    ui.NewEbitenPointer(),
		fonts:      fonts,
		dirty:      true,
	}

	dispatcher.Subscribe(event.RedrawRequested, event.ListenerFunc(func(event.Event) {
		p.dirty = true
	}))
	logger := &logListener{}
	dispatcher.Subscribe(event.CircleScored, logger)
	dispatcher.Subscribe(event.BoardCleared, logger)
	dispatcher.Subscribe(event.BoardReset, logger)

	return p
}

func (p *PlayState) Enter() {
	p.tracker.Sync(p.pointer)
	p.resetBoard()
}

func (p *PlayState) Layout(width, height int) {
	w, h := p.board.Size()
	if float64(width) == w && float64(height) == h {
		return
	}
	p.board.Layout(width, height)
	p.dirty = true
}

func (p *PlayState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.sm.SetState(NewMenuState(p.sm, p.fonts))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		p.resetBoard()
		return
	}

	for _, ev := range p.tracker.Poll(p.pointer) {
		p.board.HandlePointer(ev)
	}
}

func (p *PlayState) resetBoard() {
	if err := p.board.Reset(); err != nil {
		log.Printf("board reset: %v", err)
	}
	p.dirty = true
}

func (p *PlayState) Draw(screen *ebiten.Image) {
	if !p.dirty {
		return
	}
	p.dirty = false

	p.board.Draw(render.NewScreenCanvas(screen, p.fonts.Title))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Circles: %d  Target: %d  [R] restart  [Esc] menu", len(p.board.Circles()), p.board.TargetIndex()))
}

func (p *PlayState) Exit() {
	p.tracker.Reset()
}

// logListener пишет в лог заметные события поля.
type logListener struct{}

func (l *logListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.CircleScored:
		if data, ok := e.Data.(event.CircleData); ok {
			log.Printf("circle %d scored at (%.0f, %.0f)", data.Index, data.X, data.Y)
		}
	case event.BoardCleared:
		log.Println("board cleared, game over")
	case event.BoardReset:
		if data, ok := e.Data.(event.ResetData); ok {
			log.Printf("board reset: %d/%d circles placed", data.Placed, data.Requested)
		}
	}
}
