package main

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"log"
	"math"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	cellSize     = 40
	headerHeight = 80 // Taller header for multi-session stats
	screenWidth  = 800
	screenHeight = 720
	baseURL      = "http://localhost:8080"
	pulsePeriod  = 900 * time.Millisecond // Goal cell pulse cycle
)

// ScreenType represents different screens in the app
type ScreenType int

const (
	ScreenWelcome ScreenType = iota
	ScreenLot
)

// Cursor colors for different sessions
var cursorColors = []color.RGBA{
	{255, 100, 100, 255}, // Red
	{100, 100, 255, 255}, // Blue
	{100, 255, 100, 255}, // Green
	{255, 255, 100, 255}, // Yellow
	{255, 100, 255, 255}, // Magenta
	{100, 255, 255, 255}, // Cyan
	{255, 165, 0, 255},   // Orange
	{128, 0, 128, 255},   // Purple
	{255, 192, 203, 255}, // Pink
}

// Cell mirrors the lot cell flags from the server
type Cell struct {
	Occupied    bool `json:"occupied"`
	Highlighted bool `json:"highlighted,omitempty"`
	Reserved    bool `json:"reserved,omitempty"`
	Goal        bool `json:"goal,omitempty"`
}

// Position represents row,col coordinates
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// LotState represents the state from the parking lot server
type LotState struct {
	Grid               [][]Cell `json:"grid"`
	Rows               int      `json:"rows"`
	Cols               int      `json:"cols"`
	VehicleEntrance    Position `json:"vehicle_entrance"`
	PedestrianEntrance Position `json:"pedestrian_entrance"`
	ReservationHeld    bool     `json:"reservation_held"`
	ReservedSpot       Position `json:"reserved_spot"`
	Message            string   `json:"message"`
	ConfigName         string   `json:"config_name"`
	TotalActions       int      `json:"total_actions"`
}

// WSMessage represents WebSocket message wrapper
type WSMessage struct {
	SessionID string    `json:"session_id"`
	LotState  *LotState `json:"lot_state,omitempty"`
	Event     string    `json:"event,omitempty"`
}

// SessionData holds data for a single session
type SessionData struct {
	sessionID  string
	state      *LotState
	wsConn     *websocket.Conn
	lastUpdate time.Time
	cursor     Position // spot currently under the selection cursor
}

// SessionListItem represents a session from the server
type SessionListItem struct {
	ID         string    `json:"id"`
	ConfigName string    `json:"config_name"`
	CreatedAt  string    `json:"created_at"`
	LotState   *LotState `json:"lot_state,omitempty"`
}

// ConfigListItem represents a lot configuration
type ConfigListItem struct {
	ConfigID    string `json:"config_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// App represents the desktop lot viewer
type App struct {
	sessions         []*SessionData
	activeSession    int // index of currently active session
	stateMutex       sync.RWMutex
	currentScreen    ScreenType
	welcomeScreen    *WelcomeScreen
	selectedSessions map[string]bool // session IDs selected to view
}

// WelcomeScreen manages the welcome screen state
type WelcomeScreen struct {
	availableSessions []SessionListItem
	availableConfigs  []ConfigListItem
	cursorPos         int
	loading           bool
	errorMsg          string
	newSessionConfig  string // selected config for new session
}

// NewApp creates a new viewer instance with initial sessions
func NewApp(sessionIDs []string) *App {
	a := &App{
		sessions:         make([]*SessionData, 0),
		activeSession:    0,
		currentScreen:    ScreenWelcome,
		selectedSessions: make(map[string]bool),
		welcomeScreen: &WelcomeScreen{
			availableSessions: make([]SessionListItem, 0),
			availableConfigs:  make([]ConfigListItem, 0),
			cursorPos:         0,
		},
	}

	// If session IDs provided, skip welcome screen and go straight to the lot
	if len(sessionIDs) > 0 {
		for _, sid := range sessionIDs {
			a.addSession(sid)
		}
		a.currentScreen = ScreenLot
	} else {
		// Load available sessions and configs for welcome screen
		a.loadWelcomeData()
	}

	return a
}

// addSession adds a new session to the viewer with optional config
func (a *App) addSession(sessionID string) {
	session := &SessionData{
		sessionID:  sessionID,
		lastUpdate: time.Now(),
	}

	// If no session ID provided, create one with same config as first session
	if sessionID == "" {
		configName := ""
		if len(a.sessions) > 0 && a.sessions[0].state != nil {
			configName = a.sessions[0].state.ConfigName
		}
		if err := a.createSessionWithConfig(session, configName); err != nil {
			log.Printf("Failed to create session: %v", err)
			return
		}
	}

	a.sessions = append(a.sessions, session)

	// Connect to WebSocket
	if err := a.connectWebSocket(session); err != nil {
		log.Printf("Failed to connect WebSocket for %s: %v (falling back to polling)", session.sessionID, err)
	} else {
		// Start WebSocket listener
		go a.listenWebSocket(session)
	}

	// Initial state fetch
	a.fetchLotState(session)
}

// createSessionWithConfig creates a new lot session with specific config
func (a *App) createSessionWithConfig(session *SessionData, configID string) error {
	url := fmt.Sprintf("%s/api/sessions", baseURL)

	payload := "{}"
	if configID != "" {
		payload = fmt.Sprintf(`{"config_id":"%s"}`, configID)
	}

	resp, err := http.Post(url, "application/json", strings.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("failed to parse session response: %v (body: %s)", err, string(body))
	}

	session.sessionID = result.ID
	log.Printf("Created new session: %s (config: %s)", session.sessionID, configID)
	return nil
}

// connectWebSocket establishes WebSocket connection
func (a *App) connectWebSocket(session *SessionData) error {
	if session.sessionID == "" {
		return fmt.Errorf("no session ID set")
	}

	wsURL := url.URL{Scheme: "ws", Host: "localhost:8080", Path: "/ws"}
	q := wsURL.Query()
	q.Set("session", session.sessionID)
	wsURL.RawQuery = q.Encode()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL.String(), nil)
	if err != nil {
		return err
	}

	session.wsConn = conn
	log.Printf("WebSocket connected for session %s", session.sessionID)
	return nil
}

// listenWebSocket listens for WebSocket updates
func (a *App) listenWebSocket(session *SessionData) {
	defer func() {
		if session.wsConn != nil {
			session.wsConn.Close()
		}
	}()

	for {
		_, message, err := session.wsConn.ReadMessage()
		if err != nil {
			log.Printf("WebSocket read error for %s: %v", session.sessionID, err)
			return
		}

		// WebSocket sends wrapped message
		var wsMsg WSMessage
		if err := json.Unmarshal(message, &wsMsg); err != nil {
			log.Printf("WebSocket JSON parse error: %v", err)
			continue
		}

		if wsMsg.LotState == nil {
			continue
		}

		a.stateMutex.Lock()
		session.state = wsMsg.LotState
		session.lastUpdate = time.Now()
		a.clampCursor(session)
		a.stateMutex.Unlock()
	}
}

// fetchLotState gets the current lot state from the server
func (a *App) fetchLotState(session *SessionData) error {
	if session.sessionID == "" {
		return fmt.Errorf("no session ID set")
	}

	url := fmt.Sprintf("%s/api/sessions/%s/state", baseURL, session.sessionID)
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var state LotState
	if err := json.Unmarshal(body, &state); err != nil {
		return fmt.Errorf("failed to parse JSON: %v (body: %s)", err, string(body))
	}

	a.stateMutex.Lock()
	session.state = &state
	session.lastUpdate = time.Now()
	a.clampCursor(session)
	a.stateMutex.Unlock()

	return nil
}

// clampCursor keeps the selection cursor inside the grid. Caller holds the lock.
func (a *App) clampCursor(session *SessionData) {
	if session.state == nil {
		return
	}
	if session.cursor.Row >= session.state.Rows {
		session.cursor.Row = session.state.Rows - 1
	}
	if session.cursor.Col >= session.state.Cols {
		session.cursor.Col = session.state.Cols - 1
	}
	if session.cursor.Row < 0 {
		session.cursor.Row = 0
	}
	if session.cursor.Col < 0 {
		session.cursor.Col = 0
	}
}

// loadWelcomeData fetches available sessions and configs from server
func (a *App) loadWelcomeData() {
	a.welcomeScreen.loading = true
	a.welcomeScreen.errorMsg = ""

	// Fetch available sessions
	resp, err := http.Get(fmt.Sprintf("%s/api/sessions", baseURL))
	if err != nil {
		a.welcomeScreen.errorMsg = fmt.Sprintf("Error loading sessions: %v", err)
		a.welcomeScreen.loading = false
		return
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	var sessionsResp struct {
		Sessions []SessionListItem `json:"sessions"`
	}
	if err := json.Unmarshal(body, &sessionsResp); err == nil {
		a.welcomeScreen.availableSessions = sessionsResp.Sessions
	}

	// Fetch available configs (returned as a plain array)
	resp, err = http.Get(fmt.Sprintf("%s/api/configs", baseURL))
	if err != nil {
		a.welcomeScreen.errorMsg = fmt.Sprintf("Error loading configs: %v", err)
		a.welcomeScreen.loading = false
		return
	}
	defer resp.Body.Close()

	body, _ = io.ReadAll(resp.Body)
	var configs []ConfigListItem
	if err := json.Unmarshal(body, &configs); err == nil {
		a.welcomeScreen.availableConfigs = configs
	}

	a.welcomeScreen.loading = false
}

// createNewSessionFromWelcome creates a new session with selected config
func (a *App) createNewSessionFromWelcome() error {
	configID := a.welcomeScreen.newSessionConfig
	url := fmt.Sprintf("%s/api/sessions", baseURL)

	payload := "{}"
	if configID != "" {
		payload = fmt.Sprintf(`{"config_id":"%s"}`, configID)
	}

	resp, err := http.Post(url, "application/json", strings.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("failed to parse session response: %v", err)
	}

	// Add to selected sessions
	a.selectedSessions[result.ID] = true
	log.Printf("Created new session: %s (config: %s)", result.ID, configID)

	// Reload session list
	a.loadWelcomeData()
	return nil
}

// startWithSelectedSessions transitions to the lot screen with selected sessions
func (a *App) startWithSelectedSessions() {
	if len(a.selectedSessions) == 0 {
		a.welcomeScreen.errorMsg = "Please select at least one session"
		return
	}

	// Create sessions for each selected ID
	for sessionID := range a.selectedSessions {
		a.addSession(sessionID)
	}

	// Switch to lot screen
	a.currentScreen = ScreenLot
}

// sendAction posts a lot operation for the active session
func (a *App) sendAction(action string) error {
	if len(a.sessions) == 0 {
		return fmt.Errorf("no sessions available")
	}

	session := a.sessions[a.activeSession]
	if session.sessionID == "" {
		return fmt.Errorf("no session ID set")
	}

	var url string
	var payload string

	switch action {
	case "reserve":
		url = fmt.Sprintf("%s/api/sessions/%s/reserve", baseURL, session.sessionID)
		payload = fmt.Sprintf(`{"row":%d,"col":%d}`, session.cursor.Row, session.cursor.Col)
	case "navigate_reserved":
		url = fmt.Sprintf("%s/api/sessions/%s/navigate/reserved", baseURL, session.sessionID)
		payload = "{}"
	case "navigate_nearest":
		url = fmt.Sprintf("%s/api/sessions/%s/navigate/nearest", baseURL, session.sessionID)
		payload = "{}"
	case "reset":
		url = fmt.Sprintf("%s/api/sessions/%s/reset", baseURL, session.sessionID)
		payload = "{}"
	default:
		return fmt.Errorf("unknown action: %s", action)
	}

	resp, err := http.Post(url, "application/json", strings.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return a.fetchLotState(session)
}

// Update updates viewer logic
func (a *App) Update() error {
	switch a.currentScreen {
	case ScreenWelcome:
		return a.updateWelcomeScreen()
	case ScreenLot:
		return a.updateLotScreen()
	}
	return nil
}

// updateWelcomeScreen handles welcome screen input
func (a *App) updateWelcomeScreen() error {
	ws := a.welcomeScreen

	// Refresh data with F5
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		a.loadWelcomeData()
	}

	// Navigate with arrow keys
	totalItems := len(ws.availableSessions)
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		ws.cursorPos++
		if ws.cursorPos >= totalItems {
			ws.cursorPos = totalItems - 1
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		ws.cursorPos--
		if ws.cursorPos < 0 {
			ws.cursorPos = 0
		}
	}

	// Toggle selection with Space
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if ws.cursorPos < len(ws.availableSessions) {
			sessionID := ws.availableSessions[ws.cursorPos].ID
			a.selectedSessions[sessionID] = !a.selectedSessions[sessionID]
			if !a.selectedSessions[sessionID] {
				delete(a.selectedSessions, sessionID)
			}
		}
	}

	// Cycle through configs with Tab
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if len(ws.availableConfigs) > 0 {
			// Find current config index
			currentIdx := -1
			for i, cfg := range ws.availableConfigs {
				if cfg.ConfigID == ws.newSessionConfig {
					currentIdx = i
					break
				}
			}
			// Move to next
			currentIdx++
			if currentIdx >= len(ws.availableConfigs) {
				ws.newSessionConfig = "" // No config (default)
			} else {
				ws.newSessionConfig = ws.availableConfigs[currentIdx].ConfigID
			}
		}
	}

	// Create new session with N
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		if err := a.createNewSessionFromWelcome(); err != nil {
			ws.errorMsg = fmt.Sprintf("Failed to create session: %v", err)
		}
	}

	// Start viewing with Enter
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		a.startWithSelectedSessions()
	}

	// Back to lot screen with Escape (if sessions exist)
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && len(a.sessions) > 0 {
		a.currentScreen = ScreenLot
	}

	return nil
}

// updateLotScreen handles lot screen input
func (a *App) updateLotScreen() error {
	if len(a.sessions) == 0 {
		return nil
	}

	// Poll all sessions if WebSocket is not connected
	for _, session := range a.sessions {
		if session.wsConn == nil {
			if session.state == nil || time.Since(session.lastUpdate) > 500*time.Millisecond {
				if err := a.fetchLotState(session); err != nil {
					log.Printf("Error fetching state for %s: %v", session.sessionID, err)
				}
			}
		}
	}

	// Session switching with number keys (1-9)
	for i := ebiten.Key1; i <= ebiten.Key9; i++ {
		if inpututil.IsKeyJustPressed(i) {
			sessionIdx := int(i - ebiten.Key1)
			if sessionIdx < len(a.sessions) {
				a.activeSession = sessionIdx
				log.Printf("Switched to session %d: %s", sessionIdx+1, a.sessions[sessionIdx].sessionID)
			}
		}
	}

	// Add new session with N key
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		if len(a.sessions) < 9 {
			a.addSession("")
			log.Printf("Added new session (total: %d)", len(a.sessions))
		}
	}

	// Move the spot selection cursor for the active session
	session := a.sessions[a.activeSession]
	a.stateMutex.Lock()
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		session.cursor.Row--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		session.cursor.Row++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) {
		session.cursor.Col--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
		session.cursor.Col++
	}
	a.clampCursor(session)
	a.stateMutex.Unlock()

	// Lot operations
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.sendAction("reserve")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		a.sendAction("navigate_reserved")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		a.sendAction("navigate_nearest")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		a.sendAction("reset")
	}

	// Return to welcome screen with Escape
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.currentScreen = ScreenWelcome
		a.loadWelcomeData()
	}

	return nil
}

// Draw renders the viewer
func (a *App) Draw(screen *ebiten.Image) {
	switch a.currentScreen {
	case ScreenWelcome:
		a.drawWelcomeScreen(screen)
	case ScreenLot:
		a.drawLotScreen(screen)
	}
}

// drawWelcomeScreen renders the welcome/session selection screen
func (a *App) drawWelcomeScreen(screen *ebiten.Image) {
	ws := a.welcomeScreen

	// Clear screen
	screen.Fill(color.RGBA{20, 20, 30, 255})

	y := 20
	ebitenutil.DebugPrintAt(screen, "=== PARKING LOT NAVIGATOR - SESSION SELECT ===", 180, y)
	y += 30

	if ws.loading {
		ebitenutil.DebugPrintAt(screen, "Loading sessions...", 20, y)
		return
	}

	if ws.errorMsg != "" {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("ERROR: %s", ws.errorMsg), 20, y)
		y += 20
	}

	// Session list
	ebitenutil.DebugPrintAt(screen, "Available Sessions:", 20, y)
	y += 20

	if len(ws.availableSessions) == 0 {
		ebitenutil.DebugPrintAt(screen, "  No sessions found. Press N to create one.", 20, y)
		y += 20
	} else {
		for i, session := range ws.availableSessions {
			cursor := "  "
			if i == ws.cursorPos {
				cursor = "> "
			}

			checkbox := "[ ]"
			if a.selectedSessions[session.ID] {
				checkbox = "[X]"
			}

			status := ""
			if session.LotState != nil {
				if session.LotState.ReservationHeld {
					status = fmt.Sprintf(" RESERVED (%d,%d)",
						session.LotState.ReservedSpot.Row, session.LotState.ReservedSpot.Col)
				}
			}

			line := fmt.Sprintf("%s%s %s | %s%s",
				cursor, checkbox, session.ID, session.ConfigName, status)

			ebitenutil.DebugPrintAt(screen, line, 20, y)
			y += 15
		}
	}

	y += 20
	ebitenutil.DebugPrintAt(screen, "─────────────────────────────────────────", 20, y)
	y += 20

	// New session creation
	ebitenutil.DebugPrintAt(screen, "Create New Session:", 20, y)
	y += 20

	configDisplay := "default"
	if ws.newSessionConfig != "" {
		configDisplay = ws.newSessionConfig
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("  Selected Config: %s", configDisplay), 20, y)
	y += 15

	ebitenutil.DebugPrintAt(screen, "  Available Configs:", 20, y)
	y += 15
	for _, cfg := range ws.availableConfigs {
		marker := "  "
		if cfg.ConfigID == ws.newSessionConfig {
			marker = "→ "
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("    %s%s - %s", marker, cfg.ConfigID, cfg.Description), 20, y)
		y += 15
	}

	y += 20
	ebitenutil.DebugPrintAt(screen, "─────────────────────────────────────────", 20, y)
	y += 20

	// Selected sessions summary
	selectedCount := len(a.selectedSessions)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Selected: %d session(s)", selectedCount), 20, y)
	y += 20

	// Controls
	y += 10
	ebitenutil.DebugPrintAt(screen, "CONTROLS:", 20, y)
	y += 20
	ebitenutil.DebugPrintAt(screen, "  ↑/↓      - Navigate sessions", 20, y)
	y += 15
	ebitenutil.DebugPrintAt(screen, "  SPACE    - Toggle session selection", 20, y)
	y += 15
	ebitenutil.DebugPrintAt(screen, "  TAB      - Cycle config for new session", 20, y)
	y += 15
	ebitenutil.DebugPrintAt(screen, "  N        - Create new session with selected config", 20, y)
	y += 15
	ebitenutil.DebugPrintAt(screen, "  ENTER    - View selected sessions", 20, y)
	y += 15
	ebitenutil.DebugPrintAt(screen, "  F5       - Refresh session list", 20, y)
	y += 15
	if len(a.sessions) > 0 {
		ebitenutil.DebugPrintAt(screen, "  ESC      - Back to lot", 20, y)
	}
}

// drawLotScreen renders the lot grid for the active session
func (a *App) drawLotScreen(screen *ebiten.Image) {
	a.stateMutex.RLock()
	defer a.stateMutex.RUnlock()

	if len(a.sessions) == 0 {
		ebitenutil.DebugPrint(screen, "No sessions available. Press ESC to go to session select.")
		return
	}

	session := a.sessions[a.activeSession]
	if session.state == nil {
		ebitenutil.DebugPrint(screen, "Loading...")
		return
	}
	state := session.state

	// Draw header with all session stats
	a.drawSessionStats(screen)

	// Pulse factor for the goal cell, 0..1
	pulse := math.Abs(math.Sin(2 * math.Pi * float64(time.Now().UnixMilli()%pulsePeriod.Milliseconds()) / float64(pulsePeriod.Milliseconds())))

	gridOffsetY := headerHeight
	for r, row := range state.Grid {
		for c, cell := range row {
			cellColor := getCellColor(cell)
			if cell.Goal {
				// Pulse between the goal green and white
				cellColor = lerpColor(cellColor, color.RGBA{255, 255, 255, 255}, pulse*0.5)
			}
			ebitenutil.DrawRect(screen,
				float64(c*cellSize),
				float64(r*cellSize+gridOffsetY),
				cellSize-1, cellSize-1, cellColor)

			// Entrance markers
			if r == state.VehicleEntrance.Row && c == state.VehicleEntrance.Col {
				ebitenutil.DebugPrintAt(screen, "E", c*cellSize+16, r*cellSize+gridOffsetY+12)
			}
			if r == state.PedestrianEntrance.Row && c == state.PedestrianEntrance.Col {
				ebitenutil.DebugPrintAt(screen, "P", c*cellSize+16, r*cellSize+gridOffsetY+12)
			}
		}
	}

	// Draw the selection cursor for the active session
	cursorColor := cursorColors[a.activeSession%len(cursorColors)]
	ebitenutil.DrawRect(screen,
		float64(session.cursor.Col*cellSize)+2,
		float64(session.cursor.Row*cellSize+gridOffsetY)+2,
		cellSize-5, 3, cursorColor)
	ebitenutil.DrawRect(screen,
		float64(session.cursor.Col*cellSize)+2,
		float64((session.cursor.Row+1)*cellSize+gridOffsetY)-6,
		cellSize-5, 3, cursorColor)

	// Server message line
	if state.Message != "" {
		ebitenutil.DebugPrintAt(screen, state.Message, 10, screenHeight-40)
	}

	// Footer controls
	ebitenutil.DebugPrintAt(screen, "1-9: Switch | N: New | Arrows: Cursor | R: Reserve | V: Route Reserved | F: Route Nearest | X: Reset | ESC: Menu", 10, screenHeight-20)
}

// drawSessionStats draws stats for all sessions in header
func (a *App) drawSessionStats(screen *ebiten.Image) {
	headerY := 5
	for idx, session := range a.sessions {
		if session.state == nil {
			continue
		}

		y := headerY + (idx * 15)
		cursorColor := cursorColors[idx%len(cursorColors)]

		// Draw color indicator
		ebitenutil.DrawRect(screen, 5, float64(y), 10, 10, cursorColor)

		// Session info
		activeMarker := ""
		if idx == a.activeSession {
			activeMarker = ">>>"
		}

		connStatus := "POLL"
		if session.wsConn != nil {
			connStatus = "WS"
		}

		free := countFreeSpots(session.state)

		info := fmt.Sprintf("%s [%d] %s [%s] FREE:%d/%d ACT:%d",
			activeMarker,
			idx+1,
			session.sessionID,
			connStatus,
			free,
			session.state.Rows*session.state.Cols,
			session.state.TotalActions)

		if session.state.ReservationHeld {
			info += fmt.Sprintf(" RESERVED (%d,%d)",
				session.state.ReservedSpot.Row, session.state.ReservedSpot.Col)
		}

		ebitenutil.DebugPrintAt(screen, info, 20, y)
	}
}

// Layout returns the viewer screen size
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// getCellColor returns the color for a lot cell by its flags
func getCellColor(cell Cell) color.Color {
	switch {
	case cell.Goal:
		return color.RGBA{0, 200, 0, 255} // Green for the navigation goal
	case cell.Reserved:
		return color.RGBA{60, 120, 255, 255} // Blue for the reserved spot
	case cell.Highlighted:
		return color.RGBA{230, 210, 60, 255} // Yellow for the computed path
	case cell.Occupied:
		return color.RGBA{70, 70, 80, 255} // Dark gray for parked cars
	default:
		return color.RGBA{160, 160, 160, 255} // Light gray for free asphalt
	}
}

// lerpColor blends two colors by t in [0,1]
func lerpColor(a, b color.Color, t float64) color.Color {
	ar, ag, ab, _ := a.RGBA()
	br, bg, bb, _ := b.RGBA()
	mix := func(x, y uint32) uint8 {
		return uint8((float64(x>>8)*(1-t) + float64(y>>8)*t))
	}
	return color.RGBA{mix(ar, br), mix(ag, bg), mix(ab, bb), 255}
}

func countFreeSpots(state *LotState) int {
	free := 0
	for _, row := range state.Grid {
		for _, cell := range row {
			if !cell.Occupied {
				free++
			}
		}
	}
	return free
}

func main() {
	// Accept multiple session IDs as arguments
	sessionIDs := []string{}
	if len(os.Args) > 1 {
		sessionIDs = os.Args[1:]
	}

	app := NewApp(sessionIDs)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Parking Lot Navigator - Desktop Viewer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
