package netplay

import (
	"encoding/json"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/wolfchase/model"
)

// Network is the client end of the relay connection. Dial never fails hard:
// if the relay is unreachable the network comes up in local mode, where
// Send is a no-op and Poll never delivers, and the game runs single player.
type Network struct {
	LocalId string

	conn     *websocket.Conn
	inbound  chan model.Message
	outbound chan model.Message
	quit     chan struct{}
	local    atomic.Bool
	once     sync.Once
}

// Dial connects to the relay and starts the read and write loops. The
// player identity is generated here and lives for one session; a restart
// dials again and gets a fresh one.
func Dial(cfg Config) *Network {
	n := &Network{
		LocalId:  uuid.NewString(),
		inbound:  make(chan model.Message, 64),
		outbound: make(chan model.Message, 64),
		quit:     make(chan struct{}),
	}

	dialer := websocket.Dialer{HandshakeTimeout: cfg.DialTimeout}
	conn, _, err := dialer.Dial(cfg.RelayURL, nil)
	if err != nil {
		log.Warnf("relay %s unreachable, switching to local mode: %v", cfg.RelayURL, err)
		n.local.Store(true)
		return n
	}
	n.conn = conn
	log.Infof("connected to relay %s as %s", cfg.RelayURL, n.LocalId)

	go n.loopRead()
	go n.loopWrite()
	return n
}

func (n *Network) LocalMode() bool {
	return n.local.Load()
}

// Send queues a message for broadcast. A full queue drops the message; the
// protocol tolerates loss, so blocking the tick would be worse.
func (n *Network) Send(m model.Message) {
	if n.local.Load() {
		return
	}
	select {
	case <-n.quit:
	case n.outbound <- m:
	default:
		log.Warnf("outbound queue full, dropping %s", m.Type)
	}
}

// Poll returns the next inbound message without blocking.
func (n *Network) Poll() (model.Message, bool) {
	select {
	case m := <-n.inbound:
		return m, true
	default:
		return model.Message{}, false
	}
}

// Leave announces departure and tears the connection down. Safe to call
// more than once.
func (n *Network) Leave() {
	if n.local.Load() {
		return
	}
	n.Send(model.PlayerLeft(n.LocalId))
	n.once.Do(func() { close(n.quit) })
}

func (n *Network) loopRead() {
	for {
		_, payload, err := n.conn.ReadMessage()
		if err != nil {
			select {
			case <-n.quit:
			default:
				log.Warnf("relay read failed, switching to local mode: %v", err)
				n.local.Store(true)
			}
			return
		}
		var m model.Message
		if err := json.Unmarshal(payload, &m); err != nil || m.Type == "" {
			// Malformed frames are dropped, not fatal.
			continue
		}
		select {
		case n.inbound <- m:
		default:
			log.Warnf("inbound queue full, dropping %s", m.Type)
		}
	}
}

func (n *Network) loopWrite() {
	defer n.conn.Close()
	for {
		select {
		case m := <-n.outbound:
			if err := n.conn.WriteJSON(m); err != nil {
				log.Warnf("relay write failed, switching to local mode: %v", err)
				n.local.Store(true)
				return
			}
		case <-n.quit:
			// Flush whatever is already queued, then close.
			for {
				select {
				case m := <-n.outbound:
					if err := n.conn.WriteJSON(m); err != nil {
						return
					}
				default:
					return
				}
			}
		}
	}
}
