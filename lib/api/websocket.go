package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(req *http.Request) bool {
		return true
	},
}

type wsClient struct {
	conn *websocket.Conn
	send chan []byte
}

// @Summary	Open websocket for realtime status information
// @Description	Sends the current status on connect, then every status change and stats every 2 seconds.
// @Router		/api/ws [get]
// @Param		Upgrade	header	string	true	"websocket"
// @Tags		base
// @Success	101
func (a *Api) handleWebsocket(w http.ResponseWriter, req *http.Request) {
	ws, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		http.Error(w, fmt.Sprintf("couldn't make websocket: %s", err), 400)
		return
	}
	client := &wsClient{conn: ws, send: make(chan []byte, 64)}

	for _, ev := range a.board.Snapshot() {
		packet, err := json.Marshal(ev)
		if err != nil {
			continue
		}
		client.send <- packet
	}
	a.addClient(client)

	go a.websocketWriter(client)

	for {
		_, msg, err := ws.ReadMessage()
		if err != nil {
			a.removeClient(client)
			break
		}
		a.log.Debug(fmt.Sprintf("Received: %s", msg))
	}
}

func (a *Api) addClient(c *wsClient) {
	a.wsMutex.Lock()
	defer a.wsMutex.Unlock()
	a.wsClients[c] = true
	a.Stats.SetWsClients(len(a.wsClients))
}

func (a *Api) removeClient(c *wsClient) {
	a.wsMutex.Lock()
	defer a.wsMutex.Unlock()
	if a.wsClients[c] {
		delete(a.wsClients, c)
		close(c.send)
	}
	a.Stats.SetWsClients(len(a.wsClients))
}

// broadcast never blocks; slow clients miss packets.
func (a *Api) broadcast(packet []byte) {
	a.wsMutex.Lock()
	defer a.wsMutex.Unlock()
	for c := range a.wsClients {
		select {
		case c.send <- packet:
		default:
		}
	}
}

func (a *Api) websocketWriter(c *wsClient) {
	pingTicker := time.NewTicker(2 * time.Second)
	defer func() {
		pingTicker.Stop()
		err := c.conn.Close()
		if err != nil {
			a.log.Debug("could not close websocket", "err", err)
			return
		}
	}()
	timeout := 10 * time.Second
	for {
		var packet []byte
		select {
		case p, ok := <-c.send:
			if !ok {
				return
			}
			packet = p
		case <-pingTicker.C:
			a.Stats.Update()
			p, err := json.Marshal(a.Stats)
			if err != nil {
				return
			}
			packet = p
		}

		err := c.conn.SetWriteDeadline(time.Now().Add(timeout))
		if err != nil {
			a.log.Warn("could not set write deadline", "err", err)
			return
		}
		if err := c.conn.WriteMessage(websocket.TextMessage, packet); err != nil {
			return
		}
	}
}
