package config

import (
	"flag"
	"fmt"
	"io"
	"os"

	"texbillboard/common"
)

const (
	MinPlaneSize     = 1
	MaxPlaneSize     = 200
	DefaultPlaneSize = 30
)

type Config struct {
	WindowConfig *WindowConfig
	PropsConfig  *PropsConfig
	LogConfig    *common.LogOptions
}

func NewConfig() *Config {
	c := &Config{
		WindowConfig: &WindowConfig{},
		PropsConfig:  &PropsConfig{},
		LogConfig:    &common.LogOptions{},
	}
	c.Reset()
	return c
}

func (cfg *Config) Reset() {
	cfg.WindowConfig.Reset()
	cfg.PropsConfig.Reset()
	*cfg.LogConfig = common.LogOptions{
		Level:      "info",
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 7,
	}
}

type WindowConfig struct {
	Title            string
	Width            int
	Height           int
	FloorTexture     string
	BillboardTexture string
	ShowHud          bool
}

func (cfg *WindowConfig) Reset() {
	cfg.Title = "Texture Billboard"
	cfg.Width = 1600
	cfg.Height = 1200
	cfg.FloorTexture = ""
	cfg.BillboardTexture = ""
	cfg.ShowHud = true
}

// PropsConfig holds the values of the parameter panel.
type PropsConfig struct {
	FilterMode    FilterMode
	Anisotropic   bool
	PlaneSize     int
	DepthTest     bool
	ZAxisRotation bool
}

func (cfg *PropsConfig) Reset() {
	cfg.FilterMode = FILTER_LINEAR_MIPMAP_LINEAR
	cfg.Anisotropic = true
	cfg.PlaneSize = DefaultPlaneSize
	cfg.DepthTest = true
	cfg.ZAxisRotation = false
}

func (cfg *PropsConfig) SetPlaneSize(size int) {
	cfg.PlaneSize = common.Clamp(size, MinPlaneSize, MaxPlaneSize)
}

// Parse fills a default config from command line arguments.
func Parse(name string, args []string) (*Config, error) {
	return parseWithOutput(name, args, os.Stderr)
}

func parseWithOutput(name string, args []string, out io.Writer) (*Config, error) {
	cfg := NewConfig()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	w, p, l := cfg.WindowConfig, cfg.PropsConfig, cfg.LogConfig

	fs.StringVar(&w.Title, "title", w.Title, "window title")
	fs.IntVar(&w.Width, "width", w.Width, "window width")
	fs.IntVar(&w.Height, "height", w.Height, "window height")
	fs.StringVar(&w.FloorTexture, "floor-texture", w.FloorTexture, "floor image, a checkerboard when empty")
	fs.StringVar(&w.BillboardTexture, "billboard-texture", w.BillboardTexture, "billboard image, a drawn flower when empty")
	fs.BoolVar(&w.ShowHud, "hud", w.ShowHud, "show the parameter overlay")

	fs.Var(&p.FilterMode, "filter", "floor texture filtering mode")
	fs.BoolVar(&p.Anisotropic, "anisotropic", p.Anisotropic, "anisotropic texture filtering")
	fs.IntVar(&p.PlaneSize, "plane-size", p.PlaneSize, fmt.Sprintf("floor size [%d,%d]", MinPlaneSize, MaxPlaneSize))
	fs.BoolVar(&p.DepthTest, "depth-test", p.DepthTest, "enable depth test")
	fs.BoolVar(&p.ZAxisRotation, "z-rotation", p.ZAxisRotation, "allow the camera to roll")

	fs.StringVar(&l.Level, "log-level", l.Level, "debug, info, warn or error")
	fs.StringVar(&l.File, "log-file", l.File, "rotated JSON log file, none when empty")
	fs.IntVar(&l.MaxSizeMB, "log-max-size", l.MaxSizeMB, "log file size in MB before rotation")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if w.Width <= 0 || w.Height <= 0 {
		return nil, fmt.Errorf("window size %dx%d must be positive", w.Width, w.Height)
	}
	if p.PlaneSize < MinPlaneSize || p.PlaneSize > MaxPlaneSize {
		return nil, fmt.Errorf("plane size %d out of range [%d,%d]", p.PlaneSize, MinPlaneSize, MaxPlaneSize)
	}
	return cfg, nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// Lines describes the panel values, one per overlay row.
func (cfg *PropsConfig) Lines() []string {
	return []string{
		fmt.Sprintf("Floor filtering [F]: %v", cfg.FilterMode),
		fmt.Sprintf("Anisotropic filtering [A]: %v", onOff(cfg.Anisotropic)),
		fmt.Sprintf("Plane size [ [ ] ]: %d", cfg.PlaneSize),
		fmt.Sprintf("Depth test [T]: %v", onOff(cfg.DepthTest)),
		fmt.Sprintf("Z axis rotation [Z]: %v", onOff(cfg.ZAxisRotation)),
	}
}
