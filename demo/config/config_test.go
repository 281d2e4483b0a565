package config

import (
	"io"
	"testing"
)

func assertTrue(t *testing.T, value bool, msg string) {
	t.Helper()
	if !value {
		t.Error(msg)
	}
}

func TestDefaults(t *testing.T) {
	cfg := NewConfig()
	p := cfg.PropsConfig
	assertTrue(t, p.FilterMode == FILTER_LINEAR_MIPMAP_LINEAR, "default filter")
	assertTrue(t, p.Anisotropic && p.DepthTest && !p.ZAxisRotation, "default toggles")
	assertTrue(t, p.PlaneSize == DefaultPlaneSize, "default plane size")
	assertTrue(t, cfg.LogConfig.Level == "info", "default log level")

	p.PlaneSize = 3
	p.ZAxisRotation = true
	cfg.Reset()
	assertTrue(t, p.PlaneSize == DefaultPlaneSize && !p.ZAxisRotation, "reset restores defaults")
}

func TestFilterMode(t *testing.T) {
	assertTrue(t, len(FilterModeDescs()) == int(NUM_FILTER_MODES), "every mode has a description")
	for i, d := range FilterModeDescs() {
		var m FilterMode
		assertTrue(t, m.Set(d) == nil, "description parses")
		assertTrue(t, m == FilterMode(i), "description maps back to its mode")
		assertTrue(t, m.String() == d, "string is the description")
	}
	descs := FilterModeDescs()
	descs[FILTER_NEAREST] = "overwritten"
	assertTrue(t, FILTER_NEAREST.String() == DESC_FILTER_NEAREST, "descriptions cannot be changed through the returned slice")

	var m FilterMode
	assertTrue(t, m.Set("BILINEAR") != nil, "unknown mode fails")
	assertTrue(t, FilterMode(42).String() == "FilterMode(42)", "out of range string")

	assertTrue(t, FILTER_LINEAR_MIPMAP_LINEAR.Next(1) == FILTER_NEAREST, "next wraps")
	assertTrue(t, FILTER_NEAREST.Next(-1) == FILTER_LINEAR_MIPMAP_LINEAR, "previous wraps")
}

func TestSetPlaneSize(t *testing.T) {
	p := &PropsConfig{}
	p.SetPlaneSize(0)
	assertTrue(t, p.PlaneSize == MinPlaneSize, "clamped to min")
	p.SetPlaneSize(500)
	assertTrue(t, p.PlaneSize == MaxPlaneSize, "clamped to max")
	p.SetPlaneSize(42)
	assertTrue(t, p.PlaneSize == 42, "in range")
}

func TestParse(t *testing.T) {
	cfg, err := Parse("viewer", []string{
		"-filter", "NEAREST",
		"-plane-size", "12",
		"-z-rotation",
		"-depth-test=false",
		"-log-level", "debug",
		"-width", "800",
	})
	assertTrue(t, err == nil, "valid flags parse")
	p := cfg.PropsConfig
	assertTrue(t, p.FilterMode == FILTER_NEAREST, "filter flag")
	assertTrue(t, p.PlaneSize == 12, "plane size flag")
	assertTrue(t, p.ZAxisRotation && !p.DepthTest, "toggle flags")
	assertTrue(t, cfg.LogConfig.Level == "debug", "log level flag")
	assertTrue(t, cfg.WindowConfig.Width == 800 && cfg.WindowConfig.Height == 1200, "window flags")
}

func TestParseErrors(t *testing.T) {
	cases := [][]string{
		{"-filter", "CUBIC"},
		{"-plane-size", "0"},
		{"-plane-size", "201"},
		{"-width", "-1"},
		{"-nope"},
	}
	for _, args := range cases {
		_, err := parseQuiet(args)
		assertTrue(t, err != nil, "expected an error")
	}
}

func parseQuiet(args []string) (*Config, error) {
	return parseWithOutput("viewer", args, io.Discard)
}

func TestLines(t *testing.T) {
	p := &PropsConfig{}
	p.Reset()
	lines := p.Lines()
	assertTrue(t, len(lines) == 5, "one line per panel value")
	assertTrue(t, lines[0] == "Floor filtering [F]: LINEAR_MIPMAP_LINEAR", "filter line")
	assertTrue(t, lines[2] == "Plane size [ [ ] ]: 30", "plane size line")
	assertTrue(t, lines[4] == "Z axis rotation [Z]: off", "z rotation line")
}
