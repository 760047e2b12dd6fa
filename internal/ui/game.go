package ui

import (
	"errors"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/drag"
	"github.com/hailam/chessboard/internal/storage"
)

// Options configures a Game.
type Options struct {
	Board           *board.Board
	SquareSize      int
	ShowCoordinates bool
	Mute            bool

	// Storage may be nil, in which case nothing is persisted.
	Storage     *storage.Storage
	Preferences *storage.Preferences

	Logger logr.Logger
}

// Game implements ebiten.Game interface.
type Game struct {
	board *board.Board
	drag  *drag.Controller

	showCoordinates bool
	corrupt         error

	storage *storage.Storage
	prefs   *storage.Preferences

	renderer *Renderer
	input    *InputHandler
	feedback *FeedbackManager

	log logr.Logger
}

// NewGame creates the viewer for opts.Board.
func NewGame(opts Options) (*Game, error) {
	if opts.Board == nil {
		return nil, errors.New("ui: nil board")
	}
	geometry := drag.Geometry{CellSize: opts.SquareSize}
	if geometry.CellSize <= 0 {
		return nil, fmt.Errorf("ui: square size %d", opts.SquareSize)
	}

	fonts, err := LoadFonts(opts.SquareSize)
	if err != nil {
		return nil, err
	}
	sprites := NewSpriteCache(geometry.PieceSize(), opts.Logger)
	sprites.Preload()

	var audio *AudioManager
	if !opts.Mute {
		audio = NewAudioManager()
	}

	prefs := opts.Preferences
	if prefs == nil {
		prefs = storage.DefaultPreferences()
	}

	g := &Game{
		board:           opts.Board,
		drag:            drag.NewController(opts.Board, geometry, opts.Logger.WithName("drag")),
		showCoordinates: opts.ShowCoordinates,
		storage:         opts.Storage,
		prefs:           prefs,
		renderer:        NewRenderer(geometry, sprites, fonts),
		input:           NewInputHandler(),
		feedback:        NewFeedbackManager(NewToastManager(fonts.Toast, geometry.BoardSize()), audio),
		log:             opts.Logger,
	}
	g.checkBoard()
	g.checkFirstLaunch()
	return g, nil
}

// WindowSize returns the window size the game is laid out for.
func (g *Game) WindowSize() (int, int) {
	size := g.renderer.Geometry().BoardSize()
	return size, size
}

// checkFirstLaunch greets first-time users with the key bindings.
func (g *Game) checkFirstLaunch() {
	if g.storage == nil {
		return
	}
	isFirst, err := g.storage.IsFirstLaunch()
	if err != nil {
		g.log.Error(err, "cannot check first launch")
		return
	}
	if !isFirst {
		return
	}
	g.feedback.Info("Drag pieces to move. F flips, R resets, C clears, Esc quits")
	if err := g.storage.MarkFirstLaunchComplete(); err != nil {
		g.log.Error(err, "cannot mark first launch complete")
	}
}

// savePreferences persists the orientation and label setting.
func (g *Game) savePreferences() {
	if g.storage == nil {
		return
	}
	g.prefs.Flipped = g.board.Flipped()
	g.prefs.ShowCoordinates = g.showCoordinates
	if err := g.storage.SavePreferences(g.prefs); err != nil {
		g.log.Error(err, "cannot save preferences")
	}
}

// checkBoard revalidates the board and reports a newly corrupt state.
func (g *Game) checkBoard() {
	err := g.board.Validate()
	if err != nil && g.corrupt == nil {
		g.log.Error(err, "board is not valid")
		g.feedback.OnCorrupt(err)
	}
	g.corrupt = err
}

// Update handles input once per tick.
func (g *Game) Update() error {
	g.input.Update()
	g.feedback.Update()

	if quit := g.handleKeys(); quit {
		return ebiten.Termination
	}
	g.handleBoardInput()
	return nil
}

// handleKeys applies the keyboard bindings. It reports whether to quit.
func (g *Game) handleKeys() bool {
	switch {
	case IsKeyJustPressed(ebiten.KeyEscape):
		return true

	case IsKeyJustPressed(ebiten.KeyF):
		g.drag.Cancel()
		g.board.Flip()
		g.log.V(1).Info("board flipped", "flipped", g.board.Flipped(), "state", g.board.State().String())
		g.feedback.OnFlipped()
		g.savePreferences()

	case IsKeyJustPressed(ebiten.KeyR):
		g.drag.Cancel()
		g.board.Reset(g.board.Flipped())
		g.feedback.Info("Board reset")

	case IsKeyJustPressed(ebiten.KeyC):
		g.drag.Cancel()
		g.board.Clear()
		g.feedback.Info("Board cleared")

	case IsKeyJustPressed(ebiten.KeyD):
		g.log.Info("board dump", "placement", g.board.Placement(), "board", g.board.Dump(true))

	case IsKeyJustPressed(ebiten.KeyL):
		g.showCoordinates = !g.showCoordinates
		g.savePreferences()

	default:
		return false
	}
	g.checkBoard()
	return false
}

// handleBoardInput processes mouse interactions with the board.
func (g *Game) handleBoardInput() {
	mx, my := g.input.MousePosition()

	if g.input.IsLeftJustPressed() {
		if g.corrupt == nil {
			g.drag.Select(mx, my)
		}
		return
	}
	if !g.drag.HasSelected() {
		return
	}
	if g.input.IsLeftPressed() {
		g.drag.MovePointer(mx, my)
		return
	}
	if g.input.IsLeftJustReleased() {
		g.handleDrop(mx, my)
	}
}

// handleDrop releases the dragged piece at (mx, my).
func (g *Game) handleDrop(mx, my int) {
	sel, _ := g.drag.Selected()
	g.drag.MovePointer(mx, my)

	err := g.drag.Drop(mx, my)
	switch {
	case err == nil:
		g.feedback.OnMoved()
		g.checkBoard()
	case errors.Is(err, drag.ErrNotMoved), errors.Is(err, drag.ErrNoSelection):
	default:
		var target *board.Cell
		if c, ok := g.renderer.Geometry().CellAt(mx, my); ok {
			target = &c
		}
		g.feedback.OnRejectedDrop(err, sel.Cell, target)
	}
}

// Draw renders the board.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.renderer.Theme().Background)
	g.renderer.DrawBoard(screen)
	if g.showCoordinates {
		g.renderer.DrawCoordinates(screen, g.board.Flipped())
	}

	sel, dragging := g.drag.Selected()
	if dragging {
		g.renderer.HighlightCell(screen, sel.Cell)
	}

	// A corrupt board has no single piece per cell to draw.
	if g.corrupt == nil {
		var skip *board.Cell
		if dragging {
			skip = &sel.Cell
		}
		g.renderer.DrawPieces(screen, g.board, skip, g.feedback.Animations())
		if dragging {
			g.renderer.DrawSelection(screen, sel)
		}
	}

	g.feedback.Draw(screen, g.renderer.Geometry())
}

// Layout returns the game's screen dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}
