package model

import "math"

// Room is one cell of the fixed 3x3 grid. Rooms are built once per session
// and never mutated afterwards.
type Room struct {
	Id          int
	Width       float64
	Height      float64
	Obstacles   []Rect
	Doors       map[Direction]Rect
	Connections map[Direction]int
}

// Hand-authored obstacle layouts per room id. Positions keep every door
// approach clear.
var layouts = [RoomCount][]Rect{
	{{X: 200, Y: 200, W: 200, H: 50}, {X: 600, Y: 400, W: 200, H: 50}},
	{{X: 300, Y: 200, W: 400, H: 50}, {X: 100, Y: 500, W: 200, H: 50}, {X: 700, Y: 500, W: 200, H: 50}},
	{{X: 200, Y: 400, W: 200, H: 50}, {X: 600, Y: 200, W: 200, H: 50}},
	{{X: 300, Y: 100, W: 50, H: 200}, {X: 700, Y: 500, W: 50, H: 200}},
	{{X: 412, Y: 284, W: 200, H: 200}},
	{{X: 300, Y: 500, W: 50, H: 200}, {X: 700, Y: 100, W: 50, H: 200}},
	{{X: 400, Y: 200, W: 200, H: 50}, {X: 200, Y: 500, W: 200, H: 50}},
	{{X: 200, Y: 300, W: 200, H: 50}, {X: 600, Y: 300, W: 200, H: 50}},
	{{X: 300, Y: 200, W: 200, H: 50}, {X: 500, Y: 500, W: 200, H: 50}},
}

// NewRooms builds the 3x3 grid. A door exists for exactly the directions
// that have a neighboring room, so the connectivity graph comes out
// symmetric by construction.
func NewRooms() []*Room {
	rooms := make([]*Room, 0, RoomCount)
	for id := 0; id < RoomCount; id++ {
		rooms = append(rooms, newRoom(id))
	}
	return rooms
}

func newRoom(id int) *Room {
	r := &Room{
		Id:          id,
		Width:       RoomWidth,
		Height:      RoomHeight,
		Obstacles:   layouts[id],
		Doors:       make(map[Direction]Rect),
		Connections: make(map[Direction]int),
	}

	row := id / GridSize
	col := id % GridSize

	if row > 0 {
		r.Connections[Up] = id - GridSize
		r.Doors[Up] = Rect{
			X: r.Width/2 - DoorWidth/2,
			Y: 0,
			W: DoorWidth, H: DoorHeight,
		}
	}
	if row < GridSize-1 {
		r.Connections[Down] = id + GridSize
		r.Doors[Down] = Rect{
			X: r.Width/2 - DoorWidth/2,
			Y: r.Height - DoorHeight,
			W: DoorWidth, H: DoorHeight,
		}
	}
	if col > 0 {
		r.Connections[Left] = id - 1
		r.Doors[Left] = Rect{
			X: 0,
			Y: r.Height/2 - DoorHeight/2,
			W: DoorWidth, H: DoorHeight,
		}
	}
	if col < GridSize-1 {
		r.Connections[Right] = id + 1
		r.Doors[Right] = Rect{
			X: r.Width - DoorWidth,
			Y: r.Height/2 - DoorHeight/2,
			W: DoorWidth, H: DoorHeight,
		}
	}
	return r
}

// Collides reports whether the rectangle leaves the room bounds or overlaps
// any static obstacle.
func (r *Room) Collides(rect Rect) bool {
	if rect.X < 0 || rect.X+rect.W > r.Width || rect.Y < 0 || rect.Y+rect.H > r.Height {
		return true
	}
	for _, o := range r.Obstacles {
		if rect.Overlaps(o) {
			return true
		}
	}
	return false
}

// DoorAt returns the direction of the door whose center lies within
// DoorMargin + max(w,h)/2 of the rectangle's center. Directions are checked
// in the fixed Directions order so the first match is deterministic.
func (r *Room) DoorAt(rect Rect) (Direction, bool) {
	cx, cy := rect.Center()
	for _, dir := range Directions {
		door, ok := r.Doors[dir]
		if !ok {
			continue
		}
		dx, dy := door.Center()
		dist := math.Hypot(cx-dx, cy-dy)
		if dist < DoorMargin+math.Max(door.W, door.H)/2 {
			return dir, true
		}
	}
	return None, false
}

// Neighbor looks up the room on the other side of a door.
func (r *Room) Neighbor(d Direction) (int, bool) {
	id, ok := r.Connections[d]
	return id, ok
}
