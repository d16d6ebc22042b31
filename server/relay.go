package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

// RelayServer is a star-topology broadcast relay: every frame received from
// one peer is forwarded verbatim to every other connected peer. It performs
// no validation, storage or ordering, and never echoes a frame back to its
// sender.
type RelayServer struct {
	Upgrader *websocket.Upgrader

	register   chan *Peer
	unregister chan *Peer
	frames     chan frame
}

type frame struct {
	from    *Peer
	payload []byte
}

func NewRelayServer() *RelayServer {
	return &RelayServer{
		Upgrader: &websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		register:   make(chan *Peer),
		unregister: make(chan *Peer),
		frames:     make(chan frame),
	}
}

// Loop owns the peer set. All membership changes and fan-outs funnel
// through here, so no lock is needed anywhere in the relay.
func (s *RelayServer) Loop() {
	log.Printf("RelayServer.Loop starting")
	peers := make(map[*Peer]struct{})
	for {
		select {
		case p := <-s.register:
			peers[p] = struct{}{}
			log.Infof("peer connected from %s, %d online", p.RemoteAddr(), len(peers))
		case p := <-s.unregister:
			if _, ok := peers[p]; ok {
				delete(peers, p)
				close(p.send)
			}
			log.Infof("peer disconnected from %s, %d online", p.RemoteAddr(), len(peers))
		case f := <-s.frames:
			for p := range peers {
				if p == f.from {
					continue
				}
				select {
				case p.send <- f.payload:
				default:
					// Slow consumer; drop the frame rather than stall
					// the fan-out.
					log.Warnf("peer %s not keeping up, frame dropped", p.RemoteAddr())
				}
			}
		}
	}
}

// HandleWS upgrades the connection and pumps frames until the peer goes
// away.
func (s *RelayServer) HandleWS() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := s.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Warnf("websocket upgrade failed: %v", err)
			return
		}

		p := newPeer(conn)
		s.register <- p
		go p.loopWrite()
		p.loopRead(s)
		s.unregister <- p
	}
}
