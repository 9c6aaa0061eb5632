package sim

// GameState tracks the session: Start → Walking → {BlockHit, Finished}.
// The terminal states hold until an anchor reset.
type GameState uint8

const (
	GameStart GameState = iota
	GameWalking
	GameBlockHit
	GameFinished
)

func (g GameState) String() string {
	switch g {
	case GameStart:
		return "start"
	case GameWalking:
		return "walking"
	case GameBlockHit:
		return "block_hit"
	case GameFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state blocks further motion until reset.
func (g GameState) Terminal() bool {
	return g == GameBlockHit || g == GameFinished
}

// MotionState is the robot's locomotion toggle.
type MotionState uint8

const (
	MotionStopped MotionState = iota
	MotionWalking
)

func (m MotionState) String() string {
	switch m {
	case MotionStopped:
		return "stopped"
	case MotionWalking:
		return "walking"
	default:
		return "unknown"
	}
}

// Notice names a state change the caller must publish after applying a
// transition. Transitions never notify anyone themselves.
type Notice uint8

const (
	NoticeGameState Notice = iota
	NoticeMotionState
	NoticePoses
)

// toggleMove flips the motion state. Entering Walking from the start state
// also moves the game state forward; leaving Walking never does.
func toggleMove(ms MotionState, gs GameState) (MotionState, GameState, []Notice) {
	notices := []Notice{NoticeMotionState}
	if ms == MotionWalking {
		return MotionStopped, gs, notices
	}
	if gs == GameStart {
		return MotionWalking, GameWalking, append(notices, NoticeGameState)
	}
	return MotionWalking, gs, notices
}

// resetStates returns the post-reset states. Terminal states are cleared.
func resetStates() (MotionState, GameState, []Notice) {
	return MotionStopped, GameStart, []Notice{NoticeMotionState, NoticeGameState, NoticePoses}
}
