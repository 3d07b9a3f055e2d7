package component

// UnitKind is a unit type
type UnitKind string

const (
	Infantry UnitKind = "INFANTRY"
	Archer   UnitKind = "ARCHER"
	Cavalry  UnitKind = "CAVALRY"
)

// TeamID identifies a side. Only TeamPlayer and TeamEnemy exist.
type TeamID int

const (
	TeamPlayer TeamID = 0
	TeamEnemy  TeamID = 1
)

// Opponent returns the other side.
func (t TeamID) Opponent() TeamID {
	return 1 - t
}

func (t TeamID) String() string {
	if t == TeamPlayer {
		return "player"
	}
	return "enemy"
}

// UnitStats are the static stats of a unit
type UnitStats struct {
	Kind      UnitKind
	MaxHealth int
	Attack    int
	Defense   int
	Movement  int
	Range     int
}

// UnitState is the mutable per-turn state of a unit.
// Health may drop to zero or below; such a unit is destroyed even if its components remain.
type UnitState struct {
	Health       int
	MovementLeft int
	HasActed     bool
}

// Alive reports whether the unit still counts as present on the board.
func (s *UnitState) Alive() bool {
	return s.Health > 0
}

// Team is the side a unit belongs to
type Team struct {
	ID TeamID
}
