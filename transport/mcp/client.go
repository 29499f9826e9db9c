package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/wricardo/parking-lot-navigator/lot/engine"
	"github.com/wricardo/parking-lot-navigator/lot/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Parking Lot Navigator",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Parking Lot Navigator - MCP Interface

This is a thin client that proxies all requests to the REST API server.

LOT MODEL:
A rectangular grid of parking cells. X marks an occupied cell, . a free one.
E is the vehicle entrance, P the pedestrian entrance. Vehicles can drive past
occupied cells; a spot must be free to park on it.

AVAILABLE TOOLS:
- lot_state: Get current lot state with a grid rendering
- reserve_spot: Reserve a specific spot by row/col - requires intent explanation
- navigate_to_reserved: Compute the route from the vehicle entrance to the reserved spot
- navigate_to_nearest_spot: Find the free spot closest to the pedestrian entrance and route to it
- reset_lot: Redraw the lot from its configuration
- action_history: View past reservations and navigations
- create_session: Create new lot session
- get_session: Get session details
- list_sessions: List all active sessions
- list_configs: List available configurations
- lot_instructions: Get comprehensive lot rules and coordinate conventions
- describe_cell: Get detailed info about a specific grid cell (occupied, reserved, on the route)

NOTE: The 'intent' parameter on reserve_spot serves as rubber duck debugging - explain your reasoning!`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new lot session with optional config selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_name": map[string]interface{}{
					"type":        "string",
					"description": "Name of the config to use (optional)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active lot sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to retrieve",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Lot operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "lot_state",
		Description: "Get the current lot state",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleLotState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reserve_spot",
		Description: "Reserve the parking spot at the given row and column",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"row": map[string]interface{}{
					"type":        "integer",
					"description": "Row of the spot to reserve (0-based)",
				},
				"col": map[string]interface{}{
					"type":        "integer",
					"description": "Column of the spot to reserve (0-based)",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this reservation (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"session_id", "row", "col"},
		},
	}, c.handleReserveSpot)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "navigate_to_reserved",
		Description: "Compute the driving route from the vehicle entrance to the reserved spot",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleNavigateToReserved)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "navigate_to_nearest_spot",
		Description: "Find the free spot closest to the pedestrian entrance and route to it from the vehicle entrance",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleNavigateToNearest)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_lot",
		Description: "Redraw the lot from its configuration",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleReset)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "action_history",
		Description: "Get reservation and navigation history for a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Items per page",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleActionHistory)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available lot configurations",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "lot_instructions",
		Description: "Get comprehensive lot rules and coordinate conventions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleLotInstructions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "describe_cell",
		Description: "Get detailed information about a specific cell in the lot grid: whether it is occupied, reserved, the navigation goal, or on the highlighted route.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"row": map[string]interface{}{
					"type":        "integer",
					"description": "Row of the cell to describe (0-based)",
				},
				"col": map[string]interface{}{
					"type":        "integer",
					"description": "Column of the cell to describe (0-based)",
				},
			},
			Required: []string{"session_id", "row", "col"},
		},
	}, c.handleDescribeCell)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	configName, _ := args["config_name"].(string)

	body := map[string]string{}
	if configName != "" {
		body["config_name"] = configName
	}

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nConfig: %s\n", session.ID, session.ConfigName)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall("GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		result += fmt.Sprintf("- %s (Config: %s, Created: %s)\n",
			s.ID, s.ConfigName, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSessionInfo(&session)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleLotState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state engine.LotState
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatLotState(&state)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleReserveSpot(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	row := int(args["row"].(float64))
	col := int(args["col"].(float64))
	intent, _ := args["intent"].(string)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	body := map[string]interface{}{
		"row": row,
		"col": col,
	}

	var result service.ReserveResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/reserve", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatReserveResult(&result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleNavigateToReserved(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var result service.NavigateResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/navigate/reserved", sessionID), nil, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatNavigateResult(&result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleNavigateToNearest(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var result service.NavigateResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/navigate/nearest", sessionID), nil, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatNavigateResult(&result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var response struct {
		Message string           `json:"message"`
		State   *engine.LotState `json:"state"`
	}

	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/reset", sessionID), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("%s\n\n%s", response.Message, formatLotState(response.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleActionHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	params := "?"
	if page, ok := args["page"].(float64); ok {
		params += fmt.Sprintf("page=%d&", int(page))
	}
	if limit, ok := args["limit"].(float64); ok {
		params += fmt.Sprintf("limit=%d&", int(limit))
	}

	var history service.HistoryResponse
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/history%s", sessionID, params), nil, &history)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	// Also fetch current segment from live state
	var session service.SessionInfo
	if err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session); err != nil {
		// If fetching session fails, still return the history
		result := formatHistory(&history)
		return mcp.NewToolResultText(result), nil
	}

	result := formatHistory(&history)
	result += "\n" + formatCurrentSegment(session.LotState)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	err := c.apiCall("GET", "/api/configs", nil, &configs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Configurations:\n\n"
	for _, config := range configs {
		result += fmt.Sprintf("• %s\n  %s\n  Lot: %dx%d, Occupancy: %.0f%%\n\n",
			config.Name, config.Description, config.Rows, config.Cols, config.OccupancyProbability*100)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleLotInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `Parking Lot Navigator - Complete Instructions

LOT MODEL:
A rectangular grid of parking cells, addressed as (row, col) with (0,0) in
the top-left corner. Row grows downward, column grows rightward.

GRID LEGEND:
• E - Vehicle entrance (where routes start)
• P - Pedestrian entrance (nearest-spot searches start here)
• X - Occupied spot (cannot be reserved or parked on)
• R - Your reserved spot
• G - Navigation goal (the spot the current route leads to)
• * - Cell on the most recently computed route
• . - Free spot

MOVEMENT MODEL:
• Routes move one cell at a time: up, down, left, or right. No diagonals.
• Vehicles DRIVE PAST occupied cells freely - occupancy only matters for the
  destination. A spot must be free to park on it or reserve it.
• Route lengths are therefore exactly the Manhattan distance between the
  entrance and the goal on any lot.

RESERVATIONS:
• At most one spot is reserved at a time. Reserving a new spot releases the
  previous one.
• Reserving an occupied or out-of-bounds cell fails and leaves everything
  unchanged, including any reservation you already hold.
• Re-reserving the spot you already hold succeeds and changes nothing.

NAVIGATION:
• navigate_to_reserved routes from the vehicle entrance E to your reserved
  spot. It fails with no_reservation if you hold none.
• navigate_to_nearest_spot first finds the free spot with the fewest grid
  steps from the pedestrian entrance P, then routes to it from E. A lot with
  no free spot reports lot_full.
• Successful navigation highlights the route (*) and marks the goal (G).
  Each new navigation replaces the previous highlight.

OUTCOME CODES:
• reserved - reservation succeeded
• spot_unavailable - target spot is occupied or already reserved
• invalid_coordinate - target is outside the grid
• ok - navigation succeeded
• no_reservation - navigation requested without a reservation
• no_path - no route exists to the goal
• lot_full - every spot in the lot is occupied

SESSION MANAGEMENT:
- Multiple lot sessions can run simultaneously
- Each session has unique 4-character ID
- Sessions maintain independent state and configuration
- Use session-specific tools for multi-lot management

TYPICAL FLOW:
1. create_session (optionally pick a config)
2. lot_state to inspect the grid
3. Either reserve_spot then navigate_to_reserved, or just
   navigate_to_nearest_spot
4. describe_cell to double-check any cell you are unsure about
5. reset_lot to redraw the lot and start over`

	return mcp.NewToolResultText(instructions), nil
}

func (c *Client) handleDescribeCell(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	row := int(args["row"].(float64))
	col := int(args["col"].(float64))

	// Get the current lot state to access the grid
	var state engine.LotState
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	// Check bounds
	if row < 0 || row >= state.Rows || col < 0 || col >= state.Cols {
		return mcp.NewToolResultError(fmt.Sprintf("Coordinates (%d, %d) are out of bounds. Lot is %dx%d (rows 0-%d, cols 0-%d)",
			row, col, state.Rows, state.Cols, state.Rows-1, state.Cols-1)), nil
	}

	cell := state.Grid[row][col]

	var cellChar string
	var cellType string
	var description string

	switch {
	case cell.Goal:
		cellChar = "G"
		cellType = "Goal"
		description = "Navigation goal - the spot the current route leads to"
	case cell.Reserved:
		cellChar = "R"
		cellType = "Reserved"
		description = "Your reserved spot"
	case cell.Highlighted:
		cellChar = "*"
		cellType = "Route"
		description = "Cell on the most recently computed route"
	case cell.Occupied:
		cellChar = "X"
		cellType = "Occupied"
		description = "Occupied spot - cannot be reserved, but routes may drive past it"
	default:
		cellChar = "."
		cellType = "Free"
		description = "Free spot - available for reservation or parking"
	}

	var entrance string
	if (engine.Position{Row: row, Col: col}) == state.VehicleEntrance {
		entrance = "This cell is the vehicle entrance (E) - driving routes start here.\n"
	}
	if (engine.Position{Row: row, Col: col}) == state.PedestrianEntrance {
		entrance += "This cell is the pedestrian entrance (P) - nearest-spot searches start here.\n"
	}

	result := fmt.Sprintf(`Cell at position (%d, %d):
Character: %s
Type: %s
Occupied: %v
Reservable: %v
Description: %s
%s`,
		row, col,
		cellChar,
		cellType,
		cell.Occupied,
		!cell.Occupied && !cell.Reserved,
		description,
		entrance)

	return mcp.NewToolResultText(result), nil
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nConfig: %s\nCreated: %s\n\n%s",
		session.ID, session.ConfigName,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatLotState(session.LotState))
}

func formatLotState(state *engine.LotState) string {
	if state == nil {
		return "No lot state available"
	}

	var result strings.Builder

	// Header (include cumulative total actions)
	free := engine.CountFreeSpots(state.Grid)
	result.WriteString(fmt.Sprintf("Lot: %dx%d | Free spots: %d | Actions: %d\n",
		state.Rows, state.Cols, free, state.TotalActions))

	if state.ReservationHeld {
		result.WriteString(fmt.Sprintf("Reserved: (%d,%d)\n",
			state.ReservedSpot.Row, state.ReservedSpot.Col))
	} else {
		result.WriteString("Reserved: none\n")
	}
	result.WriteString("\n")

	// Grid
	for _, line := range engine.RenderLot(state) {
		result.WriteString(line)
		result.WriteString("\n")
	}

	if state.Message != "" {
		result.WriteString(fmt.Sprintf("\nMessage: %s", state.Message))
	}

	return result.String()
}

func formatReserveResult(result *service.ReserveResult) string {
	response := ""
	if result.Success {
		response = "✓ Reservation successful\n"
	} else {
		response = fmt.Sprintf("✗ Reservation failed (%s)\n", result.Outcome)
	}

	response += fmt.Sprintf("Spot: (%d,%d)\n", result.Spot.Row, result.Spot.Col)

	if len(result.Events) > 0 {
		response += "Events:\n"
		for _, event := range result.Events {
			response += fmt.Sprintf("- %s: %s\n", event.Type, event.Message)
		}
	}

	response += "\n" + formatLotState(result.LotState)
	return response
}

func formatNavigateResult(result *service.NavigateResult) string {
	response := ""
	if result.Success {
		response = "✓ Route found\n"
		if result.Goal != nil {
			response += fmt.Sprintf("Goal: (%d,%d) in %d steps\n",
				result.Goal.Row, result.Goal.Col, result.PathLength)
		}
		if len(result.Path) > 0 {
			steps := make([]string, 0, len(result.Path))
			for _, p := range result.Path {
				steps = append(steps, fmt.Sprintf("(%d,%d)", p.Row, p.Col))
			}
			response += "Route: " + strings.Join(steps, " -> ") + "\n"
		}
	} else {
		response = fmt.Sprintf("✗ Navigation failed (%s)\n", result.Outcome)
	}

	if len(result.Events) > 0 {
		response += "Events:\n"
		for _, event := range result.Events {
			response += fmt.Sprintf("- %s: %s\n", event.Type, event.Message)
		}
	}

	response += "\n" + formatLotState(result.LotState)
	return response
}

func formatHistory(history *service.HistoryResponse) string {
	result := fmt.Sprintf("Action History (Page %d/%d) — Total (cumulative): %d\n\n",
		history.Page, history.TotalPages, history.TotalActions)

	for i, action := range history.Actions {
		num := (history.Page-1)*history.PageSize + i + 1
		status := "✓"
		if !action.Success {
			status = "✗"
		}
		target := ""
		if action.Target != nil {
			target = fmt.Sprintf(" (%d,%d)", action.Target.Row, action.Target.Col)
		}
		result += fmt.Sprintf("%d. %s%s %s [%s]\n",
			num, action.Action, target, status, action.Outcome)
	}

	return result
}

func formatCurrentSegment(state *engine.LotState) string {
	if state == nil {
		return "Current Segment: unavailable"
	}
	actions := state.CurrentActions
	total := state.CurrentActionsCount
	header := fmt.Sprintf("Current Action Segment — Actions: %d\n\n", total)
	if len(actions) == 0 {
		return header + "(no actions in current segment)"
	}
	var b strings.Builder
	b.WriteString(header)
	for i, action := range actions {
		status := "✓"
		if !action.Success {
			status = "✗"
		}
		target := ""
		if action.Target != nil {
			target = fmt.Sprintf(" (%d,%d)", action.Target.Row, action.Target.Col)
		}
		b.WriteString(fmt.Sprintf("%d. %s%s %s [%s]\n", i+1, action.Action, target, status, action.Outcome))
	}
	return b.String()
}
