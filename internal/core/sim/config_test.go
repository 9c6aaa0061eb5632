package sim

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestLoadYAML(t *testing.T) {
	const doc = `
speed_meters_per_second: 0.25
rotation_step_degrees: 30
intent_queue_capacity: 64
tick_rate: 30
entities:
  - name: robot
    kind: robot
  - name: start-pad
    kind: pad
    role: start
    color: green
  - name: finish-pad
    kind: pad
    role: finish
    color: red
    position: {x: 0, y: 0, z: 2}
  - name: block
    kind: block
    size: {x: 0.2, y: 0.2, z: 0.2}
    position: {z: 1}
    heading_degrees: 90
`
	cfg, err := LoadYAML(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, 0.25, cfg.SpeedMetersPerSecond)
	require.Equal(t, 30, cfg.TickRate)
	require.Len(t, cfg.Entities, 4)
	require.Equal(t, 2.0, cfg.Entities[2].Position.Z)
}

func TestLoadJSON(t *testing.T) {
	const doc = `{
  "speed_meters_per_second": 0.1,
  "rotation_step_degrees": 15,
  "intent_queue_capacity": 16,
  "tick_rate": 60,
  "entities": [
    {"name": "robot", "kind": "robot"},
    {"name": "start-pad", "kind": "pad", "role": "start"},
    {"name": "finish-pad", "kind": "pad", "role": "finish"},
    {"name": "block", "kind": "block"}
  ]
}`
	cfg, err := LoadJSON(strings.NewReader(doc))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
}

func TestValidateRejectsBrokenScenes(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero speed", func(c *Config) { c.SpeedMetersPerSecond = 0 }},
		{"negative rotation", func(c *Config) { c.RotationStepDegrees = -5 }},
		{"rotation full turn", func(c *Config) { c.RotationStepDegrees = 360 }},
		{"zero queue capacity", func(c *Config) { c.IntentQueueCapacity = 0 }},
		{"zero tick rate", func(c *Config) { c.TickRate = 0 }},
		{"no robot", func(c *Config) { c.Entities = c.Entities[1:] }},
		{"two robots", func(c *Config) {
			c.Entities = append(c.Entities, EntityConfig{Name: "robot2", Kind: "robot"})
		}},
		{"duplicate names", func(c *Config) {
			c.Entities = append(c.Entities, EntityConfig{Name: "block", Kind: "block"})
		}},
		{"pad without role", func(c *Config) { c.Entities[1].Role = "" }},
		{"unknown kind", func(c *Config) { c.Entities[3].Kind = "teapot" }},
		{"unnamed entity", func(c *Config) { c.Entities[0].Name = "" }},
		{"no block", func(c *Config) { c.Entities = c.Entities[:3] }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestEntityIDsStableAcrossConfigs(t *testing.T) {
	a, err := NewWorld(DefaultConfig(), nil, nil, nil)
	require.NoError(t, err)
	b, err := NewWorld(DefaultConfig(), nil, nil, nil)
	require.NoError(t, err)
	require.Equal(t, a.Robot(), b.Robot())
}
