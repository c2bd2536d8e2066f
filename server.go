package main

import (
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"azelviz/config"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // local visualization tool, no origin policy
	},
}

// AngleUpdate is the message clients send to steer the angles remotely.
// Missing fields leave the corresponding angle unchanged.
type AngleUpdate struct {
	TargetAz *float64 `json:"targetAz"`
	TargetEl *float64 `json:"targetEl"`
	AxisAz   *float64 `json:"axisAz"`
	AxisEl   *float64 `json:"axisEl"`
}

// geometryServer streams FrameGeometry to websocket clients at a fixed
// interval and accepts angle updates back. The sensor state is the only
// mutable value and is guarded by mu; the geometry core itself is pure
// and shared freely across connections.
type geometryServer struct {
	settings config.Settings
	metrics  *Metrics

	mu    sync.Mutex
	state *SensorState

	clientsMu sync.RWMutex
	clients   map[*websocket.Conn]*sync.Mutex
}

func newGeometryServer(settings config.Settings) *geometryServer {
	return &geometryServer{
		settings: settings,
		metrics:  NewMetrics(),
		state:    NewSensorState(settings.Angles),
		clients:  make(map[*websocket.Conn]*sync.Mutex),
	}
}

// runServer serves geometry frames over websocket until the process is
// stopped. Headless: no window is opened.
func runServer(settings config.Settings) {
	server := newGeometryServer(settings)

	go server.broadcastLoop()

	mux := http.NewServeMux()
	mux.HandleFunc("/", server.serveIndex)
	mux.HandleFunc("/ws", server.handleWebSocket)
	mux.Handle("/metrics", server.metrics.Handler())

	addr := fmt.Sprintf(":%d", settings.Server.Port)
	fmt.Printf("Geometry server listening on http://localhost%s\n", addr)
	log.Fatal(http.ListenAndServe(addr, mux))
}

func (s *geometryServer) serveIndex(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintln(w, "azelviz geometry server")
	fmt.Fprintln(w, "  /ws       websocket frame stream (send {\"targetAz\": ...} to steer)")
	fmt.Fprintln(w, "  /metrics  Prometheus metrics")
}

func (s *geometryServer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}
	defer conn.Close()

	connMutex := &sync.Mutex{}
	s.clientsMu.Lock()
	s.clients[conn] = connMutex
	s.clientsMu.Unlock()
	s.metrics.ClientsConnected.Inc()
	defer func() {
		s.clientsMu.Lock()
		delete(s.clients, conn)
		s.clientsMu.Unlock()
		s.metrics.ClientsConnected.Dec()
	}()

	// Send a first frame immediately so clients can draw without waiting
	// for the next tick.
	s.sendFrame(conn, connMutex, s.buildFrame())

	for {
		var update AngleUpdate
		if err := conn.ReadJSON(&update); err != nil {
			log.Println("WebSocket read error:", err)
			break
		}
		s.applyUpdate(update)
	}
}

func (s *geometryServer) applyUpdate(update AngleUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	targetAz, targetEl := s.state.TargetAz, s.state.TargetEl
	axisAz, axisEl := s.state.AxisAz, s.state.AxisEl
	if update.TargetAz != nil {
		targetAz = *update.TargetAz
	}
	if update.TargetEl != nil {
		targetEl = *update.TargetEl
	}
	if update.AxisAz != nil {
		axisAz = *update.AxisAz
	}
	if update.AxisEl != nil {
		axisEl = *update.AxisEl
	}
	s.state.Set(targetAz, targetEl, axisAz, axisEl)
}

func (s *geometryServer) buildFrame() FrameGeometry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return BuildFrame(s.state, s.settings)
}

func (s *geometryServer) broadcastLoop() {
	interval := time.Duration(s.settings.Server.UpdateIntervalMs) * time.Millisecond
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		frame := s.buildFrame()
		s.metrics.AngleJ.Set(frame.AngleVecDeg)

		s.clientsMu.RLock()
		conns := make(map[*websocket.Conn]*sync.Mutex, len(s.clients))
		for conn, mu := range s.clients {
			conns[conn] = mu
		}
		s.clientsMu.RUnlock()

		for conn, mu := range conns {
			s.sendFrame(conn, mu, frame)
		}
		if len(conns) > 0 {
			s.metrics.FramesBroadcast.Inc()
		}
	}
}

func (s *geometryServer) sendFrame(conn *websocket.Conn, connMutex *sync.Mutex, frame FrameGeometry) {
	connMutex.Lock()
	defer connMutex.Unlock()
	if err := conn.WriteJSON(frame); err != nil {
		log.Println("WebSocket write error:", err)
	}
}
