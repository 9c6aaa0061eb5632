package sim

import "github.com/cespare/xxhash/v2"

// EntityID is a stable identifier for a simulated entity. IDs are derived
// from entity names so they survive anchor resets and restarts.
type EntityID uint64

// NameID derives the EntityID for a given entity name.
func NameID(name string) EntityID {
	return EntityID(xxhash.Sum64String(name))
}

// EntityKind tags what an entity is; behavior dispatches on the tag rather
// than on per-kind types.
type EntityKind uint8

const (
	KindRobot EntityKind = iota
	KindPad
	KindBlock
)

func (k EntityKind) String() string {
	switch k {
	case KindRobot:
		return "robot"
	case KindPad:
		return "pad"
	case KindBlock:
		return "block"
	default:
		return "unknown"
	}
}

// PadRole distinguishes the two pads the robot interacts with.
type PadRole uint8

const (
	PadNone PadRole = iota
	PadStart
	PadFinish
)

// PadVariant carries pad-only fields.
type PadVariant struct {
	Role  PadRole
	Color string
}

// BlockVariant carries block-only fields.
type BlockVariant struct {
	Size Vec3
}

// Entity is a single record for every prop in the scene. Kind selects which
// variant payload is meaningful; the others stay zero.
type Entity struct {
	ID   EntityID
	Name string
	Kind EntityKind

	Pad   PadVariant
	Block BlockVariant

	// DefaultPose is the pose restored on anchor reset.
	DefaultPose Pose
}
