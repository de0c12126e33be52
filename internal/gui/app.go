package gui

import (
	"fmt"
	"log"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/gravwell/internal/config"
	"github.com/san-kum/gravwell/internal/dynamo"
	"github.com/san-kum/gravwell/internal/loop"
	"github.com/san-kum/gravwell/internal/render"
	"github.com/san-kum/gravwell/internal/render/opengl"
	"github.com/san-kum/gravwell/internal/texture"
)

// Theme Colors
var (
	ColPanel   = rl.NewColor(10, 10, 10, 190)
	ColAccent  = rl.NewColor(120, 150, 255, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(170, 170, 170, 255)
	ColTextDim = rl.NewColor(90, 90, 90, 255)
)

const fontPath = "/usr/share/fonts/liberation/LiberationMono-Regular.ttf"

type App struct {
	Session  *loop.Session
	Renderer *render.Renderer
	GL       *opengl.Context
	Font     rl.Font

	ShowHUD bool
	quit    bool
	ownFont bool

	message    string
	messageTTL float32
}

func initWindow(width, height uint32) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(int32(width), int32(height), "gravwell")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

// loadFont loads Liberation Mono when it is installed, else raylib's
// built-in font. The bool reports whether the font must be unloaded.
func loadFont() (rl.Font, bool) {
	if _, err := os.Stat(fontPath); err != nil {
		return rl.GetFontDefault(), false
	}
	font := rl.LoadFontEx(fontPath, 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font, true
}

// Run opens a window sized to the configured canvas and blocks until it is
// closed.
func Run(cfg *config.Config) error {
	initWindow(cfg.Canvas.Width, cfg.Canvas.Height)
	defer rl.CloseWindow()

	app, err := NewApp(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	app.RunLoop()
	return nil
}

// NewApp builds the session and the GL renderer. The window, and with it the
// GL context, must already exist.
func NewApp(cfg *config.Config) (*App, error) {
	sess, err := cfg.NewSession()
	if err != nil {
		return nil, err
	}

	w, h := cfg.Canvas.Width, cfg.Canvas.Height
	ctx, err := opengl.New(int(w), int(h))
	if err != nil {
		return nil, err
	}
	log.Printf("gui: GL %s", ctx.Version())

	ctx.Begin()
	r, err := render.Initialize(ctx, w, h)
	ctx.End()
	if err != nil {
		ctx.Cleanup()
		return nil, fmt.Errorf("gui: %w", err)
	}

	loadWellTexture(ctx, r, cfg.Render)
	r.SetSelectionTint(dynamo.ColorFromUint32(cfg.Render.SelectionTint))
	sess.Sim.SetRenderer(r)

	font, ownFont := loadFont()
	return &App{
		Session:  sess,
		Renderer: r,
		GL:       ctx,
		Font:     font,
		ShowHUD:  true,
		ownFont:  ownFont,
	}, nil
}

// loadWellTexture uploads the configured image, or the built-in spiral when
// none is set. A file that fails to load leaves the placeholder in use.
func loadWellTexture(ctx *opengl.Context, r *render.Renderer, cfg config.RenderConfig) {
	img := texture.DefaultSpiral()
	if cfg.WellTexture != "" {
		loaded, err := texture.Load(cfg.WellTexture, cfg.MaxTextureSize)
		if err != nil {
			log.Printf("gui: well texture: %v", err)
			return
		}
		img = loaded
	}

	ctx.Begin()
	defer ctx.End()
	if err := r.AddTexture(cfg.TextureName, img); err != nil {
		log.Printf("gui: well texture %q: %v", cfg.TextureName, err)
		return
	}
	r.SetWellTexture(cfg.TextureName)
}

func (a *App) RunLoop() {
	for !a.quit && !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	a.handleInput()

	dt := rl.GetFrameTime()
	a.Session.Frame(float64(dt) * 1000)
	if a.messageTTL > 0 {
		a.messageTTL -= dt
	}
}

// Draw renders the simulation through the GL renderer, then the HUD through
// raylib on top of it. The renderer clears the frame itself.
func (a *App) Draw() {
	rl.BeginDrawing()

	a.GL.Begin()
	a.Session.Sim.Render()
	a.GL.End()

	if a.ShowHUD {
		a.DrawHUD()
	}

	rl.EndDrawing()
}

func (a *App) flash(msg string) {
	a.message = msg
	a.messageTTL = 2
}

func (a *App) Close() {
	a.Session.Sim.Backend().Cleanup()
	a.GL.Cleanup()
	if a.ownFont {
		rl.UnloadFont(a.Font)
	}
}
