package component

// Marker components carry no data; presence is the whole message.

// Selected marks the tile whose unit is currently selected.
type Selected struct{}

// Hovering marks the tile under the cursor.
type Hovering struct{}

// InMovementRange marks tiles the selected unit can move to.
type InMovementRange struct{}

// InAttackRange marks tiles holding an enemy the selected unit can attack.
type InAttackRange struct{}
