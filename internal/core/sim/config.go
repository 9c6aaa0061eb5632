package sim

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable of the simulation core. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	// SpeedMetersPerSecond is the robot's walking speed.
	SpeedMetersPerSecond float64 `json:"speed_meters_per_second" yaml:"speed_meters_per_second"`
	// RotationStepDegrees is the fixed heading change per rotate intent.
	RotationStepDegrees float64 `json:"rotation_step_degrees" yaml:"rotation_step_degrees"`
	// IntentQueueCapacity bounds the input queue; oldest intents are dropped
	// beyond it.
	IntentQueueCapacity int `json:"intent_queue_capacity" yaml:"intent_queue_capacity"`
	// TickRate is the target simulation frequency in Hz for headless runs.
	TickRate int `json:"tick_rate" yaml:"tick_rate"`

	Entities []EntityConfig `json:"entities" yaml:"entities"`
}

// EntityConfig describes one scene entity and its default placement.
type EntityConfig struct {
	Name           string  `json:"name" yaml:"name"`
	Kind           string  `json:"kind" yaml:"kind"`
	Role           string  `json:"role,omitempty" yaml:"role,omitempty"`
	Color          string  `json:"color,omitempty" yaml:"color,omitempty"`
	Size           Vec3    `json:"size,omitempty" yaml:"size,omitempty"`
	Position       Vec3    `json:"position" yaml:"position"`
	HeadingDegrees float64 `json:"heading_degrees,omitempty" yaml:"heading_degrees,omitempty"`
}

// DefaultConfig returns the demo scene: one robot on the start pad, a finish
// pad ahead of it, and a block in between.
func DefaultConfig() Config {
	return Config{
		SpeedMetersPerSecond: 0.1,
		RotationStepDegrees:  15,
		IntentQueueCapacity:  256,
		TickRate:             60,
		Entities: []EntityConfig{
			{Name: "robot", Kind: "robot", Position: Vec3{}},
			{Name: "start-pad", Kind: "pad", Role: "start", Color: "green", Position: Vec3{}},
			{Name: "finish-pad", Kind: "pad", Role: "finish", Color: "red", Position: Vec3{Z: 1.0}},
			{Name: "block", Kind: "block", Size: Vec3{X: 0.1, Y: 0.1, Z: 0.1}, Position: Vec3{Z: 0.5}},
		},
	}
}

// LoadYAML loads config from a YAML reader.
func LoadYAML(r io.Reader) (Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&c); err != nil {
		return Config{}, fmt.Errorf("sim: decode yaml config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadJSON loads config from a JSON reader.
func LoadJSON(r io.Reader) (Config, error) {
	var c Config
	dec := json.NewDecoder(r)
	if err := dec.Decode(&c); err != nil {
		return Config{}, fmt.Errorf("sim: decode json config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the tunables and the scene roster. The scene needs exactly
// one robot, one start pad, one finish pad, and at least one block.
func (c Config) Validate() error {
	if c.SpeedMetersPerSecond <= 0 {
		return fmt.Errorf("sim: speed must be positive, got %v", c.SpeedMetersPerSecond)
	}
	if c.RotationStepDegrees <= 0 || c.RotationStepDegrees >= 360 {
		return fmt.Errorf("sim: rotation step must be in (0, 360), got %v", c.RotationStepDegrees)
	}
	if c.IntentQueueCapacity <= 0 {
		return fmt.Errorf("sim: intent queue capacity must be positive, got %d", c.IntentQueueCapacity)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("sim: tick rate must be positive, got %d", c.TickRate)
	}

	var robots, starts, finishes, blocks int
	names := make(map[string]struct{}, len(c.Entities))
	for i, ec := range c.Entities {
		if ec.Name == "" {
			return fmt.Errorf("sim: entity %d has no name", i)
		}
		if _, dup := names[ec.Name]; dup {
			return fmt.Errorf("sim: duplicate entity name %q", ec.Name)
		}
		names[ec.Name] = struct{}{}

		switch ec.Kind {
		case "robot":
			robots++
		case "pad":
			switch ec.Role {
			case "start":
				starts++
			case "finish":
				finishes++
			default:
				return fmt.Errorf("sim: pad %q needs role start or finish, got %q", ec.Name, ec.Role)
			}
		case "block":
			blocks++
		default:
			return fmt.Errorf("sim: entity %q has unknown kind %q", ec.Name, ec.Kind)
		}
	}
	if robots != 1 {
		return fmt.Errorf("sim: scene needs exactly one robot, got %d", robots)
	}
	if starts != 1 || finishes != 1 {
		return fmt.Errorf("sim: scene needs one start pad and one finish pad, got %d/%d", starts, finishes)
	}
	if blocks < 1 {
		return fmt.Errorf("sim: scene needs at least one block")
	}
	return nil
}

// RotationStepRadians converts the configured step to radians.
func (c Config) RotationStepRadians() float64 {
	return c.RotationStepDegrees * math.Pi / 180
}

// entity builds the runtime Entity record for one config entry.
func (ec EntityConfig) entity() Entity {
	e := Entity{
		ID:   NameID(ec.Name),
		Name: ec.Name,
		DefaultPose: Pose{
			Position: ec.Position,
			Heading:  NormalizeHeading(ec.HeadingDegrees * math.Pi / 180),
		},
	}
	switch ec.Kind {
	case "robot":
		e.Kind = KindRobot
	case "pad":
		e.Kind = KindPad
		role := PadStart
		if ec.Role == "finish" {
			role = PadFinish
		}
		e.Pad = PadVariant{Role: role, Color: ec.Color}
	case "block":
		e.Kind = KindBlock
		e.Block = BlockVariant{Size: ec.Size}
	}
	return e
}
