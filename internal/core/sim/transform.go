package sim

// TransformSink receives authoritative pose updates. The rendering host
// implements it and applies the transform on its next draw.
type TransformSink interface {
	SetTransform(id EntityID, pose Pose)
}

// TransformSinkFunc adapts a function to the TransformSink interface.
type TransformSinkFunc func(id EntityID, pose Pose)

func (f TransformSinkFunc) SetTransform(id EntityID, pose Pose) { f(id, pose) }

// TransformStore owns the authoritative pose of every entity. Only the
// simulation tick writes to it, so it carries no lock; the sink is notified
// synchronously on every write.
type TransformStore struct {
	poses map[EntityID]Pose
	sink  TransformSink
}

// NewTransformStore creates an empty store. A nil sink disables
// notifications.
func NewTransformStore(sink TransformSink) *TransformStore {
	return &TransformStore{
		poses: make(map[EntityID]Pose),
		sink:  sink,
	}
}

// Get returns the pose for id and whether the id is known.
func (s *TransformStore) Get(id EntityID) (Pose, bool) {
	p, ok := s.poses[id]
	return p, ok
}

// Set stores the pose for id, normalizing the heading, and notifies the sink.
func (s *TransformStore) Set(id EntityID, pose Pose) {
	pose.Heading = NormalizeHeading(pose.Heading)
	s.poses[id] = pose
	if s.sink != nil {
		s.sink.SetTransform(id, pose)
	}
}

// Len returns the number of tracked entities.
func (s *TransformStore) Len() int {
	return len(s.poses)
}
