package model

// Wire schema for the relay. Every message is one flat JSON object with a
// type discriminator; unknown types are no-ops on the receiving side, which
// keeps the protocol forward compatible.

const (
	MsgPlayerJoined      = "playerJoined"
	MsgPlayerInfo        = "playerInfo"
	MsgPlayerMove        = "playerMove"
	MsgPlayerLeft        = "playerLeft"
	MsgArtifactCollected = "artifactCollected"
	MsgWolfPosition      = "wolfPosition"
)

type Message struct {
	Type        string  `json:"type"`
	PlayerId    string  `json:"playerId,omitempty"`
	Name        string  `json:"name,omitempty"`
	Color       string  `json:"color,omitempty"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Room        int     `json:"room"`
	IsParalyzed bool    `json:"isParalyzed"`
}

func PlayerJoined(p *Player) Message {
	return Message{
		Type:     MsgPlayerJoined,
		PlayerId: p.Id,
		Name:     p.Name,
		Color:    p.Color,
		X:        p.X,
		Y:        p.Y,
		Room:     p.Room,
	}
}

func PlayerInfo(p *Player) Message {
	return Message{
		Type:     MsgPlayerInfo,
		PlayerId: p.Id,
		Name:     p.Name,
		Color:    p.Color,
		X:        p.X,
		Y:        p.Y,
		Room:     p.Room,
	}
}

func PlayerMove(p *Player) Message {
	return Message{
		Type:     MsgPlayerMove,
		PlayerId: p.Id,
		X:        p.X,
		Y:        p.Y,
		Room:     p.Room,
	}
}

func PlayerLeft(id string) Message {
	return Message{Type: MsgPlayerLeft, PlayerId: id}
}

func ArtifactCollected(id string) Message {
	return Message{Type: MsgArtifactCollected, PlayerId: id}
}

func WolfPosition(w *Wolf) Message {
	return Message{
		Type:        MsgWolfPosition,
		X:           w.X,
		Y:           w.Y,
		Room:        w.Room,
		IsParalyzed: w.Paralyzed,
	}
}
