package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type Cell struct {
	Occupied    bool `json:"occupied"`
	Highlighted bool `json:"highlighted,omitempty"`
	Reserved    bool `json:"reserved,omitempty"`
	Goal        bool `json:"goal,omitempty"`
}

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

type SessionResponse struct {
	ID         string    `json:"id"`
	ConfigName string    `json:"config_name"`
	LotState   *LotState `json:"lot_state"`
}

type ReserveResponse struct {
	Success  bool      `json:"success"`
	Outcome  string    `json:"outcome"`
	Spot     Position  `json:"spot"`
	LotState *LotState `json:"lot_state"`
	Message  string    `json:"message"`
}

type NavigateResponse struct {
	Success    bool       `json:"success"`
	Outcome    string     `json:"outcome"`
	LotState   *LotState  `json:"lot_state"`
	Message    string     `json:"message"`
	Path       []Position `json:"path,omitempty"`
	PathLength int        `json:"path_length"`
	Goal       *Position  `json:"goal,omitempty"`
}

type ResetResponse struct {
	Message string    `json:"message"`
	State   *LotState `json:"state"`
}

type Client struct {
	baseURL   string
	sessionID string
	client    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) CreateSession(configID string) (*LotState, error) {
	var reqBody []byte
	var err error

	if configID != "" {
		reqBody, err = json.Marshal(map[string]string{"config_id": configID})
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
	}

	resp, err := c.client.Post(c.baseURL+"/api/sessions", "application/json", bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("create session failed: %s - %s", resp.Status, string(body))
	}

	var session SessionResponse
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("parse session response: %w", err)
	}

	c.sessionID = session.ID
	return session.LotState, nil
}

func (c *Client) GetState() (*LotState, error) {
	url := fmt.Sprintf("%s/api/sessions/%s/state", c.baseURL, c.sessionID)
	resp, err := c.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("get state: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("get state failed: %s - %s", resp.Status, string(body))
	}

	var state LotState
	if err := json.NewDecoder(resp.Body).Decode(&state); err != nil {
		return nil, fmt.Errorf("parse state: %w", err)
	}

	return &state, nil
}

func (c *Client) Reserve(spot Position) (*ReserveResponse, error) {
	body, err := json.Marshal(spot)
	if err != nil {
		return nil, fmt.Errorf("marshal reserve: %w", err)
	}

	url := fmt.Sprintf("%s/api/sessions/%s/reserve", c.baseURL, c.sessionID)
	resp, err := c.client.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("reserve: %w", err)
	}
	defer resp.Body.Close()

	// invalid_coordinate comes back as 400 with the same result body, so
	// decode regardless of status.
	var reserveResp ReserveResponse
	if err := json.NewDecoder(resp.Body).Decode(&reserveResp); err != nil {
		return nil, fmt.Errorf("parse reserve response: %w", err)
	}

	return &reserveResp, nil
}

func (c *Client) NavigateReserved() (*NavigateResponse, error) {
	return c.navigate("reserved")
}

func (c *Client) NavigateNearest() (*NavigateResponse, error) {
	return c.navigate("nearest")
}

func (c *Client) navigate(mode string) (*NavigateResponse, error) {
	url := fmt.Sprintf("%s/api/sessions/%s/navigate/%s", c.baseURL, c.sessionID, mode)
	resp, err := c.client.Post(url, "application/json", nil)
	if err != nil {
		return nil, fmt.Errorf("navigate %s: %w", mode, err)
	}
	defer resp.Body.Close()

	var navResp NavigateResponse
	if err := json.NewDecoder(resp.Body).Decode(&navResp); err != nil {
		return nil, fmt.Errorf("parse navigate response: %w", err)
	}

	return &navResp, nil
}

func (c *Client) Reset() (*LotState, error) {
	url := fmt.Sprintf("%s/api/sessions/%s/reset", c.baseURL, c.sessionID)
	resp, err := c.client.Post(url, "application/json", nil)
	if err != nil {
		return nil, fmt.Errorf("reset: %w", err)
	}
	defer resp.Body.Close()

	var resetResp ResetResponse
	if err := json.NewDecoder(resp.Body).Decode(&resetResp); err != nil {
		return nil, fmt.Errorf("parse reset response: %w", err)
	}

	return resetResp.State, nil
}

func main() {
	serverURL := flag.String("url", "http://localhost:8080", "Lot server URL")
	configID := flag.String("config", "", "Lot configuration ID (classic, weekday_rush, showroom)")
	continueSession := flag.String("continue", "", "Reuse an existing session by ID")
	rounds := flag.Int("rounds", 1, "Number of sweep rounds (lot resets between rounds)")
	maxSpots := flag.Int("max-spots", 0, "Maximum reservation attempts per round (0 = whole lot)")
	verbose := flag.Bool("v", false, "Verbose output")
	delayMs := flag.Int("delay", 0, "Delay between requests in milliseconds (0 = no delay)")
	flag.Parse()

	log.Printf("Connecting to lot server at %s", *serverURL)
	client := NewClient(*serverURL)

	var state *LotState
	var err error

	// Check for saved session ID
	sessionFile := ".session"
	savedSessionID := ""

	if *continueSession != "" {
		savedSessionID = *continueSession
	} else {
		if data, err := os.ReadFile(sessionFile); err == nil {
			savedSessionID = string(bytes.TrimSpace(data))
		}
	}

	if savedSessionID != "" {
		client.sessionID = savedSessionID
		log.Printf("🔄 Resuming session: %s", client.sessionID)
		state, err = client.GetState()
		if err != nil {
			log.Printf("⚠️  Failed to resume session (may be expired): %v", err)
			log.Printf("Creating new session...")
			savedSessionID = ""
		} else {
			log.Printf("Session resumed - Lot: %dx%d, Config: %s, Free spots: %d",
				state.Rows, state.Cols, state.ConfigName, countFreeSpots(state))
		}
	}

	if savedSessionID == "" {
		state, err = client.CreateSession(*configID)
		if err != nil {
			log.Fatalf("Failed to create session: %v", err)
		}
		log.Printf("✨ Session created: %s", client.sessionID)
		log.Printf("Lot: %dx%d, Config: %s, Free spots: %d",
			state.Rows, state.Cols, state.ConfigName, countFreeSpots(state))

		if err := os.WriteFile(sessionFile, []byte(client.sessionID), 0644); err != nil {
			log.Printf("Warning: Failed to save session ID: %v", err)
		}
	}

	// Reset the lot at the start of each run
	log.Printf("🔄 Resetting lot...")
	state, err = client.Reset()
	if err != nil {
		log.Fatalf("Failed to reset lot: %v", err)
	}

	strategy := NewSweepStrategy(state)

	totalReserved := 0
	totalRouted := 0

	for round := 1; round <= *rounds; round++ {
		if round > 1 {
			state, err = client.Reset()
			if err != nil {
				log.Printf("Failed to reset: %v", err)
				break
			}
			strategy.Reset(state)
		}

		log.Printf("\n=== 🅿️  Round %d/%d ===", round, *rounds)

		reserved := 0
		unavailable := 0
		mismatches := 0
		attempts := 0

		for {
			if *maxSpots > 0 && attempts >= *maxSpots {
				break
			}

			spot, ok := strategy.NextSpot()
			if !ok {
				break
			}
			attempts++

			res, err := client.Reserve(spot)
			if err != nil {
				log.Printf("Reserve (%d,%d) failed: %v", spot.Row, spot.Col, err)
				continue
			}

			switch res.Outcome {
			case "reserved":
				reserved++
				nav, err := client.NavigateReserved()
				if err != nil {
					log.Printf("Navigate to (%d,%d) failed: %v", spot.Row, spot.Col, err)
					continue
				}
				switch nav.Outcome {
				case "ok":
					totalRouted++
					want := manhattan(state.VehicleEntrance, spot)
					if want == 0 {
						want = 1 // reserving the entrance cell itself yields [goal]
					}
					if nav.PathLength != want {
						mismatches++
						log.Printf("⚠️  Route to (%d,%d) has length %d, expected %d",
							spot.Row, spot.Col, nav.PathLength, want)
					} else if *verbose {
						log.Printf("✓ Reserved (%d,%d), route length %d",
							spot.Row, spot.Col, nav.PathLength)
					}
				default:
					log.Printf("⚠️  Route to reserved (%d,%d): %s", spot.Row, spot.Col, nav.Outcome)
				}
			case "spot_unavailable":
				unavailable++
				strategy.MarkOccupied(spot)
				if *verbose {
					log.Printf("✗ Spot (%d,%d) unavailable", spot.Row, spot.Col)
				}
			default:
				log.Printf("⚠️  Reserve (%d,%d): unexpected outcome %q (%s)",
					spot.Row, spot.Col, res.Outcome, res.Message)
			}

			if *delayMs > 0 {
				time.Sleep(time.Duration(*delayMs) * time.Millisecond)
			}
		}

		totalReserved += reserved

		// One pedestrian-side search to close out the round
		nav, err := client.NavigateNearest()
		if err != nil {
			log.Printf("Nearest-spot search failed: %v", err)
		} else if nav.Outcome == "ok" && nav.Goal != nil {
			log.Printf("Nearest free spot from pedestrian entrance: (%d,%d), %d steps",
				nav.Goal.Row, nav.Goal.Col, nav.PathLength)
		} else {
			log.Printf("Nearest-spot search: %s", nav.Outcome)
		}

		log.Printf("Round %d: Attempts=%d, Reserved=%d, Unavailable=%d, Route mismatches=%d",
			round, attempts, reserved, unavailable, mismatches)
	}

	log.Printf("\nDone - Reserved %d spots, verified %d routes across %d rounds",
		totalReserved, totalRouted, *rounds)
	log.Printf("Session: %s", client.sessionID)

	if totalReserved == 0 {
		log.Printf("❌ No spot could be reserved")
		os.Exit(1)
	}
	os.Exit(0)
}

func countFreeSpots(state *LotState) int {
	count := 0
	for _, row := range state.Grid {
		for _, cell := range row {
			if !cell.Occupied {
				count++
			}
		}
	}
	return count
}

func manhattan(a, b Position) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}
