package config

// StateID identifies a character action for animation and logic.
type StateID int

const (
	StateNone StateID = -1

	Idle StateID = iota - 1
	Walk
	Jump
	Attack1
	Attack2
	Attack3
	Dead
)

// States lists every character action in manifest order.
var States = []StateID{Idle, Walk, Jump, Attack1, Attack2, Attack3, Dead}

// StateToFileName maps an action to its frame directory name.
var StateToFileName = map[StateID]string{
	Idle:    "idle",
	Walk:    "walk",
	Jump:    "jump",
	Attack1: "attack1",
	Attack2: "attack2",
	Attack3: "attack3",
	Dead:    "dead",
}

func (s StateID) String() string {
	if name, ok := StateToFileName[s]; ok {
		return name
	}
	return "none"
}

// ParseState returns the action whose directory name is name.
func ParseState(name string) (StateID, bool) {
	for state, fileName := range StateToFileName {
		if fileName == name {
			return state, true
		}
	}
	return StateNone, false
}

// AttackState returns the action played for an attack type (1, 2 or 3).
func AttackState(attackType int) StateID {
	switch attackType {
	case 1:
		return Attack1
	case 2:
		return Attack2
	case 3:
		return Attack3
	}
	return StateNone
}
