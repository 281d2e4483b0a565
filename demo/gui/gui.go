package gui

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
	"texbillboard/camera"
	"texbillboard/demo/config"
)

type Gui struct {
	title    string
	cfg      *config.Config
	log      *zap.Logger
	window   *glfw.Window
	camera   *camera.Orbit
	renderer *Renderer
}

// NewGui opens the window and creates the scene. glfw must be initialised
// on the locked main thread before calling it.
func NewGui(cfg *config.Config, log *zap.Logger) (*Gui, error) {
	ui := &Gui{
		title:  cfg.WindowConfig.Title,
		cfg:    cfg,
		log:    log,
		camera: camera.NewOrbit(),
	}
	if err := ui.CreateWindow(); err != nil {
		return nil, err
	}
	ui.renderer = NewRenderer(log, cfg, ui.camera)
	w, h := ui.window.GetFramebufferSize()
	if err := ui.renderer.Init(w, h); err != nil {
		ui.renderer.Close()
		ui.window.Destroy()
		return nil, fmt.Errorf("init scene: %w", err)
	}
	ui.registerEvent()
	return ui, nil
}

func (ui *Gui) shutdown(w *glfw.Window) {
	ui.log.Info("ui shutdown", zap.String("title", ui.title))
}

// Run redraws continuously until the window is closed.
func (ui *Gui) Run() {
	for !ui.window.ShouldClose() {
		ui.renderer.Paint()
		// Maintenance
		ui.window.SwapBuffers()
		glfw.PollEvents()
	}
	ui.renderer.Close()
	ui.window.Destroy()
}

func InitGui() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)
	return nil
}

func (ui *Gui) CreateWindow() error {
	w, h := ui.getWH()
	window, err := glfw.CreateWindow(w, h, ui.title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)
	// Initialize Glow
	if err = gl.Init(); err != nil {
		window.Destroy()
		return fmt.Errorf("init gl: %w", err)
	}
	version := gl.GoStr(gl.GetString(gl.VERSION))
	ui.log.Info("OpenGL version", zap.String("version", version))
	ui.window = window
	//注册关闭事件
	window.SetCloseCallback(ui.shutdown)
	return nil
}

// getWH fits the configured size on the primary monitor.
func (ui *Gui) getWH() (width, height int) {
	width, height = ui.cfg.WindowConfig.Width, ui.cfg.WindowConfig.Height
	if m := glfw.GetPrimaryMonitor(); m != nil {
		mode := m.GetVideoMode()
		width = min(width, mode.Width-80)
		height = min(height, mode.Height-80)
	}
	return width, height
}
