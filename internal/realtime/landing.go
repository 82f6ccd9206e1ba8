package realtime

import "github.com/gofiber/websocket/v2"

// LandingHub - Broadcast perubahan site config ke semua landing page yang terhubung
type LandingHub struct {
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte
	Clients    map[*websocket.Conn]bool
}

var Landing = LandingHub{
	Register:   make(chan *websocket.Conn),
	Unregister: make(chan *websocket.Conn),
	Broadcast:  make(chan []byte),
	Clients:    make(map[*websocket.Conn]bool),
}

func RunLandingBroadcaster() {
	for {
		select {
		case c := <-Landing.Register:
			Landing.Clients[c] = true
		case c := <-Landing.Unregister:
			delete(Landing.Clients, c)
			c.Close()
		case msg := <-Landing.Broadcast:
			for c := range Landing.Clients {
				c.WriteMessage(websocket.TextMessage, msg)
			}
		}
	}
}
