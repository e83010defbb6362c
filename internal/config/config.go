package config

import "fmt"

const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "Neural Network"

	// Topology
	MaxFanOut = 5

	// Motion
	Amplitude   = 45
	SpeedBase   = 0.0007
	SpeedJitter = 0.0005

	// Drawing
	NodeRadius  = 3.5
	GlowRadius  = 15
	EdgeWidth   = 1.2
	OffsetSpeed = 0.002
	StaggerStep = 0.1
)

// Fan-out policies.
const (
	FanOutOrdered = "ordered"
	FanOutRandom  = "random"
)

// Edge color policies.
const (
	EdgeGradient = "gradient"
	EdgeAnimated = "animated"
)

// Color is a hex RGB color plus straight alpha in [0,1].
type Color struct {
	Hex   string  `toml:"hex" yaml:"hex" validate:"required,hexcolor"`
	Alpha float64 `toml:"alpha" yaml:"alpha" validate:"gte=0,lte=1"`
}

// Padding is expressed as a fraction of the viewport on each axis.
type Padding struct {
	Horizontal float64 `toml:"horizontal" yaml:"horizontal" validate:"gte=0,lt=0.5"`
	Vertical   float64 `toml:"vertical" yaml:"vertical" validate:"gte=0,lt=0.5"`
}

type Palette struct {
	NodeFill      Color `toml:"node_fill" yaml:"node_fill"`
	NodeGlow      Color `toml:"node_glow" yaml:"node_glow"`
	GradientStart Color `toml:"gradient_start" yaml:"gradient_start"`
	GradientEnd   Color `toml:"gradient_end" yaml:"gradient_end"`
	MixFrom       Color `toml:"mix_from" yaml:"mix_from"`
	MixTo         Color `toml:"mix_to" yaml:"mix_to"`
}

type Window struct {
	Width      int    `toml:"width" yaml:"width" validate:"gt=0"`
	Height     int    `toml:"height" yaml:"height" validate:"gt=0"`
	Title      string `toml:"title" yaml:"title"`
	Fullscreen bool   `toml:"fullscreen" yaml:"fullscreen"`
}

// Config holds every tunable of the visualization. The zero value is not
// usable; start from Preset or Default.
type Config struct {
	Layers    []int   `toml:"layers" yaml:"layers" validate:"min=2,dive,gt=0"`
	Padding   Padding `toml:"padding" yaml:"padding"`
	FanOut    string  `toml:"fan_out" yaml:"fan_out" validate:"oneof=ordered random"`
	MaxFanOut int     `toml:"max_fan_out" yaml:"max_fan_out" validate:"gt=0"`
	EdgeColor string  `toml:"edge_color" yaml:"edge_color" validate:"oneof=gradient animated"`

	Amplitude   float64 `toml:"amplitude" yaml:"amplitude" validate:"gte=0"`
	SpeedBase   float64 `toml:"speed_base" yaml:"speed_base" validate:"gte=0"`
	SpeedJitter float64 `toml:"speed_jitter" yaml:"speed_jitter" validate:"gte=0"`

	NodeRadius  float64 `toml:"node_radius" yaml:"node_radius" validate:"gt=0"`
	GlowRadius  float64 `toml:"glow_radius" yaml:"glow_radius" validate:"gte=0"`
	EdgeWidth   float64 `toml:"edge_width" yaml:"edge_width" validate:"gt=0"`
	OffsetSpeed float64 `toml:"offset_speed" yaml:"offset_speed" validate:"gte=0"`
	StaggerStep float64 `toml:"stagger_step" yaml:"stagger_step" validate:"gte=0"`

	Palette Palette `toml:"palette" yaml:"palette"`
	Window  Window  `toml:"window" yaml:"window"`

	// Seed for layout randomness; 0 picks one from the clock.
	Seed int64 `toml:"seed" yaml:"seed"`
}

// Preset names.
const (
	PresetClassic = "classic"
	PresetDrift   = "drift"
)

var presets = map[string]func() Config{
	PresetClassic: classic,
	PresetDrift:   drift,
}

// Default returns the classic preset.
func Default() Config { return classic() }

// Preset returns a fresh copy of the named preset.
func Preset(name string) (Config, error) {
	fn, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return fn(), nil
}

// PresetNames lists presets in a stable order.
func PresetNames() []string {
	return []string{PresetClassic, PresetDrift}
}

func base() Config {
	return Config{
		MaxFanOut:   MaxFanOut,
		Amplitude:   Amplitude,
		SpeedBase:   SpeedBase,
		SpeedJitter: SpeedJitter,
		NodeRadius:  NodeRadius,
		GlowRadius:  GlowRadius,
		EdgeWidth:   EdgeWidth,
		OffsetSpeed: OffsetSpeed,
		StaggerStep: StaggerStep,
		Palette: Palette{
			NodeFill:      Color{Hex: "#a78bfa", Alpha: 1},
			NodeGlow:      Color{Hex: "#8b5cf6", Alpha: 1},
			GradientStart: Color{Hex: "#8b5cf6", Alpha: 0.4}, // rgba(139, 92, 246)
			GradientEnd:   Color{Hex: "#22d3ee", Alpha: 0.4}, // rgba(34, 211, 238)
			MixFrom:       Color{Hex: "#8b5cf6", Alpha: 1},
			MixTo:         Color{Hex: "#22d3ee", Alpha: 1},
		},
		Window: Window{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  WindowTitle,
		},
	}
}

func classic() Config {
	c := base()
	c.Layers = []int{5, 10, 8, 5}
	c.Padding = Padding{Horizontal: 0.05, Vertical: 0.05}
	c.FanOut = FanOutOrdered
	c.EdgeColor = EdgeGradient
	return c
}

func drift() Config {
	c := base()
	c.Layers = []int{6, 9, 9, 6}
	c.Padding = Padding{Horizontal: 0.05, Vertical: 0.01}
	c.FanOut = FanOutRandom
	c.EdgeColor = EdgeAnimated
	return c
}

// NodeCount is the total number of nodes the layer sequence produces.
func (c Config) NodeCount() int {
	n := 0
	for _, size := range c.Layers {
		n += size
	}
	return n
}
