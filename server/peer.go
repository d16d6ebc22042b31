package server

import (
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

const peerSendBuffer = 32

type Peer struct {
	conn *websocket.Conn
	send chan []byte
}

func newPeer(conn *websocket.Conn) *Peer {
	return &Peer{conn: conn, send: make(chan []byte, peerSendBuffer)}
}

func (p *Peer) RemoteAddr() string {
	return p.conn.RemoteAddr().String()
}

// loopRead pushes every raw frame to the relay loop. Returns when the
// connection dies.
func (p *Peer) loopRead(s *RelayServer) {
	for {
		_, payload, err := p.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Debugf("peer %s read: %v", p.RemoteAddr(), err)
			}
			return
		}
		s.frames <- frame{from: p, payload: payload}
	}
}

// loopWrite drains the send queue onto the socket. The relay loop closes
// the queue on unregister, which ends this loop and the connection.
func (p *Peer) loopWrite() {
	defer p.conn.Close()
	for payload := range p.send {
		if err := p.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}
