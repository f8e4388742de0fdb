// Package animator drives the periodic brightness oscillation used to render
// the status icon, caching rendered frames by quantized brightness.
package animator

import (
	"math"
	"time"
)

const (
	// TickInterval is the cadence at which the controller advances the animation.
	TickInterval = 50 * time.Millisecond
	// CycleSlow is the flash cycle used while updates are available.
	CycleSlow = 3 * time.Second
	// CycleFast is the flash cycle used while a check is running.
	CycleFast = 800 * time.Millisecond

	// minBrightness is the floor of the fade; the icon oscillates between
	// this and full brightness.
	minBrightness = 0.5
	// quantizeScale bounds the icon cache: three decimal places of
	// brightness give at most ~1000 distinct keys.
	quantizeScale = 1000
)

// State is the animation state advanced on every tick.
type State struct {
	Phase      float64 // seconds into the current cycle, in [0, Cycle)
	Cycle      float64 // cycle duration in seconds
	Brightness float64 // in [minBrightness, 1.0]
}

// Animator owns the animation state and the rendered-icon cache. It is not
// safe for concurrent use: the controller mutates it from its single event
// loop only.
type Animator struct {
	base  *Icon
	state State
	cache map[float64]*Icon
}

// New constructs an animator over the given base icon.
func New(base *Icon) *Animator {
	return &Animator{
		base:  base,
		state: State{Cycle: CycleSlow.Seconds(), Brightness: 1.0},
		cache: make(map[float64]*Icon),
	}
}

// Base returns the unmodified base icon.
func (a *Animator) Base() *Icon {
	return a.base
}

// State returns a copy of the current animation state.
func (a *Animator) State() State {
	return a.state
}

// SetCycle switches the flash cycle duration.
func (a *Animator) SetCycle(cycle time.Duration) {
	if cycle > 0 {
		a.state.Cycle = cycle.Seconds()
	}
}

// Reset rewinds the animation to the start of a cycle at full brightness.
func (a *Animator) Reset() {
	a.state.Phase = 0
	a.state.Brightness = 1.0
}

// Advance moves the animation forward by dt, wrapping the phase modulo the
// cycle duration and recomputing brightness. The oscillation starts a cycle at
// full brightness, fades smoothly to the floor, and returns; there is never an
// abrupt jump.
func (a *Animator) Advance(dt time.Duration) {
	a.state.Phase = math.Mod(a.state.Phase+dt.Seconds(), a.state.Cycle)
	sine := math.Sin(2*math.Pi*a.state.Phase/a.state.Cycle + math.Pi/2)
	a.state.Brightness = minBrightness + (1.0-minBrightness)*(sine+1)/2
}

// Render returns the icon for the given brightness. Full brightness returns
// the base icon without allocation; dimmer values are quantized, rendered once,
// and served from the cache afterwards.
func (a *Animator) Render(brightness float64) *Icon {
	if brightness >= 1.0 {
		return a.base
	}
	key := quantize(brightness)
	if key >= 1.0 {
		return a.base
	}
	if icon, ok := a.cache[key]; ok {
		return icon
	}
	icon := a.base.withBrightness(key)
	a.cache[key] = icon
	return icon
}

// CacheLen reports the number of cached rendered icons.
func (a *Animator) CacheLen() int {
	return len(a.cache)
}

// ClearCache drops all cached rendered icons. Called on shutdown.
func (a *Animator) ClearCache() {
	a.cache = make(map[float64]*Icon)
}

func quantize(brightness float64) float64 {
	return math.Round(brightness*quantizeScale) / quantizeScale
}
