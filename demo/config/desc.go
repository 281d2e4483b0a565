package config

import (
	"fmt"

	"texbillboard/common"
)

// FilterMode is the floor texture min/mag filter.
type FilterMode int

const (
	FILTER_NEAREST FilterMode = iota
	FILTER_LINEAR
	FILTER_NEAREST_MIPMAP_NEAREST
	FILTER_NEAREST_MIPMAP_LINEAR
	FILTER_LINEAR_MIPMAP_NEAREST
	FILTER_LINEAR_MIPMAP_LINEAR
	NUM_FILTER_MODES

	DESC_FILTER_NEAREST                = "NEAREST"
	DESC_FILTER_LINEAR                 = "LINEAR"
	DESC_FILTER_NEAREST_MIPMAP_NEAREST = "NEAREST_MIPMAP_NEAREST"
	DESC_FILTER_NEAREST_MIPMAP_LINEAR  = "NEAREST_MIPMAP_LINEAR"
	DESC_FILTER_LINEAR_MIPMAP_NEAREST  = "LINEAR_MIPMAP_NEAREST"
	DESC_FILTER_LINEAR_MIPMAP_LINEAR   = "LINEAR_MIPMAP_LINEAR"
)

var filterModeDesc = [NUM_FILTER_MODES]string{
	FILTER_NEAREST:                DESC_FILTER_NEAREST,
	FILTER_LINEAR:                 DESC_FILTER_LINEAR,
	FILTER_NEAREST_MIPMAP_NEAREST: DESC_FILTER_NEAREST_MIPMAP_NEAREST,
	FILTER_NEAREST_MIPMAP_LINEAR:  DESC_FILTER_NEAREST_MIPMAP_LINEAR,
	FILTER_LINEAR_MIPMAP_NEAREST:  DESC_FILTER_LINEAR_MIPMAP_NEAREST,
	FILTER_LINEAR_MIPMAP_LINEAR:   DESC_FILTER_LINEAR_MIPMAP_LINEAR,
}

func init() {
	for i, d := range filterModeDesc {
		common.AssertTrue(d != "", "filter mode %d has no description", i)
	}
}

func FilterModeDescs() []string {
	return append([]string(nil), filterModeDesc[:]...)
}

func (m FilterMode) String() string {
	if m < 0 || m >= NUM_FILTER_MODES {
		return fmt.Sprintf("FilterMode(%d)", int(m))
	}
	return filterModeDesc[m]
}

// Set implements flag.Value.
func (m *FilterMode) Set(s string) error {
	for i, v := range filterModeDesc {
		if v == s {
			*m = FilterMode(i)
			return nil
		}
	}
	return fmt.Errorf("unknown filter mode %q", s)
}

// Next cycles through the modes, wrapping around.
func (m FilterMode) Next(step int) FilterMode {
	n := (int(m) + step) % int(NUM_FILTER_MODES)
	if n < 0 {
		n += int(NUM_FILTER_MODES)
	}
	return FilterMode(n)
}
