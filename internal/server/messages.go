package server

import "github.com/padbot/padbot/internal/core/sim"

// Wire messages exchanged with UI clients. Inbound frames carry one intent;
// outbound frames carry the full session status.

type intentMessage struct {
	Intent string `json:"intent"`
}

type statusMessage struct {
	Type    string                 `json:"type"`
	State   string                 `json:"state"`
	Walking bool                   `json:"walking"`
	Poses   map[string]poseMessage `json:"poses,omitempty"`
}

type errorMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

type poseMessage struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Z       float64 `json:"z"`
	Heading float64 `json:"heading"`
}

func statusFrame(st sim.Status) statusMessage {
	msg := statusMessage{
		Type:    "status",
		State:   st.Game.String(),
		Walking: st.Walking,
		Poses:   make(map[string]poseMessage, len(st.Poses)),
	}
	for name, p := range st.Poses {
		msg.Poses[name] = poseMessage{
			X:       p.Position.X,
			Y:       p.Position.Y,
			Z:       p.Position.Z,
			Heading: p.Heading,
		}
	}
	return msg
}

func errorFrame(err error) errorMessage {
	return errorMessage{Type: "error", Error: err.Error()}
}
