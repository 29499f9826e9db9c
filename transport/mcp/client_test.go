package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/wricardo/parking-lot-navigator/lot/engine"
	"github.com/wricardo/parking-lot-navigator/lot/service"
)

func testLotState() *engine.LotState {
	config := engine.DefaultLotConfig()
	config.Layout = []string{
		"..........",
		".X.X......",
		"..........",
		"..........",
	}
	return engine.InitLotStateFromConfig(config)
}

func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL)

	if client == nil {
		t.Fatal("Expected client to be created")
	}

	if client.baseURL != baseURL {
		t.Errorf("Expected baseURL %s, got %s", baseURL, client.baseURL)
	}

	if client.httpClient == nil {
		t.Error("Expected HTTP client to be initialized")
	}

	if client.mcpServer == nil {
		t.Error("Expected MCP server to be initialized")
	}
}

func TestClient_apiCall(t *testing.T) {
	// Create a test server that returns a known response
	expectedResponse := map[string]interface{}{
		"id":               "test-session",
		"reservation_held": false,
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(expectedResponse)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	var response map[string]interface{}
	err := client.apiCall("GET", "/api", nil, &response)
	if err != nil {
		t.Fatalf("apiCall failed: %v", err)
	}

	// Check that we got the expected response
	if response["id"] != expectedResponse["id"] {
		t.Errorf("Expected id %v, got %v", expectedResponse["id"], response["id"])
	}
}

func TestClient_apiCall_Error(t *testing.T) {
	client := NewClient("http://invalid-url-that-does-not-exist:9999")

	err := client.apiCall("GET", "/api", nil, nil)
	if err == nil {
		t.Error("Expected error for invalid URL")
	}
}

func TestClient_apiCall_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Internal Server Error"))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.apiCall("GET", "/api", nil, nil)
	if err == nil {
		t.Error("Expected error for HTTP 500 response")
	}

	if !strings.Contains(err.Error(), "API error") {
		t.Errorf("Expected 'API error' in error message, got: %v", err)
	}
}

func TestClient_createSession(t *testing.T) {
	// Mock server that responds to session creation
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/api/sessions" {
			t.Errorf("Expected POST /api/sessions, got %s %s", r.Method, r.URL.Path)
		}

		resp := service.SessionInfo{
			ID:         "test-session-123",
			ConfigName: "classic",
			LotState:   testLotState(),
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	// Test create session without config
	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "create_session",
			Arguments: map[string]interface{}{},
		},
	}

	result, err := client.handleCreateSession(ctx, request)
	if err != nil {
		t.Fatalf("createSession failed: %v", err)
	}

	if result == nil {
		t.Fatal("Expected result, got nil")
	}

	// Check that the result contains the session ID
	resultStr, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}

	if !strings.Contains(resultStr.Text, "test-session-123") {
		t.Errorf("Expected session ID in result, got: %s", resultStr.Text)
	}
}

func TestFormatLotState(t *testing.T) {
	state := testLotState()
	state.TrySetReserved(engine.Position{Row: 2, Col: 7})
	state.Message = "Spot (2,7) reserved"

	result := formatLotState(state)

	// Check that all important fields are included
	expectedFields := []string{
		"Lot: 4x10",
		"Free spots: 38",
		"Reserved: (2,7)",
		"Spot (2,7) reserved",
	}

	for _, field := range expectedFields {
		if !strings.Contains(result, field) {
			t.Errorf("Expected field '%s' in formatted output, got: %s", field, result)
		}
	}
}

func TestFormatLotState_GridRendering(t *testing.T) {
	state := testLotState()

	result := formatLotState(state)

	// Entrances overlay the grid rendering
	if !strings.Contains(result, "E") {
		t.Errorf("Expected vehicle entrance 'E' in rendering, got: %s", result)
	}
	if !strings.Contains(result, "P") {
		t.Errorf("Expected pedestrian entrance 'P' in rendering, got: %s", result)
	}
	if !strings.Contains(result, ".X.X......") {
		t.Errorf("Expected occupied row in rendering, got: %s", result)
	}
}

func TestFormatReserveResult(t *testing.T) {
	state := testLotState()
	state.TrySetReserved(engine.Position{Row: 2, Col: 7})

	reserveResult := &service.ReserveResult{
		Success:  true,
		Outcome:  service.OutcomeReserved,
		Spot:     engine.Position{Row: 2, Col: 7},
		LotState: state,
		Message:  "Spot (2,7) reserved",
	}

	result := formatReserveResult(reserveResult)

	expectedFields := []string{
		"✓ Reservation successful",
		"Spot: (2,7)",
		"Reserved: (2,7)",
	}

	for _, field := range expectedFields {
		if !strings.Contains(result, field) {
			t.Errorf("Expected field '%s' in formatted output, got: %s", field, result)
		}
	}
}

func TestFormatReserveResult_Failed(t *testing.T) {
	reserveResult := &service.ReserveResult{
		Success:  false,
		Outcome:  service.OutcomeSpotUnavailable,
		Spot:     engine.Position{Row: 1, Col: 1},
		LotState: testLotState(),
		Message:  "That spot is taken",
	}

	result := formatReserveResult(reserveResult)

	if !strings.Contains(result, "✗ Reservation failed (spot_unavailable)") {
		t.Errorf("Expected failure line in result, got: %s", result)
	}
}

func TestFormatNavigateResult(t *testing.T) {
	goal := engine.Position{Row: 0, Col: 2}
	navResult := &service.NavigateResult{
		Success:    true,
		Outcome:    service.OutcomeOK,
		LotState:   testLotState(),
		Path:       []engine.Position{{Row: 0, Col: 1}, {Row: 0, Col: 2}},
		PathLength: 2,
		Goal:       &goal,
	}

	result := formatNavigateResult(navResult)

	expectedFields := []string{
		"✓ Route found",
		"Goal: (0,2) in 2 steps",
		"Route: (0,1) -> (0,2)",
	}

	for _, field := range expectedFields {
		if !strings.Contains(result, field) {
			t.Errorf("Expected field '%s' in formatted output, got: %s", field, result)
		}
	}
}

func TestFormatNavigateResult_LotFull(t *testing.T) {
	navResult := &service.NavigateResult{
		Success:  false,
		Outcome:  service.OutcomeLotFull,
		LotState: testLotState(),
		Message:  "Lot is full",
	}

	result := formatNavigateResult(navResult)

	if !strings.Contains(result, "✗ Navigation failed (lot_full)") {
		t.Errorf("Expected failure line in result, got: %s", result)
	}
}

func TestClient_handleLotInstructions(t *testing.T) {
	client := NewClient("http://localhost:8080")
	ctx := context.Background()

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "lot_instructions",
			Arguments: map[string]interface{}{},
		},
	}

	result, err := client.handleLotInstructions(ctx, request)
	if err != nil {
		t.Fatalf("handleLotInstructions failed: %v", err)
	}

	if result == nil {
		t.Fatal("Expected result, got nil")
	}

	// Check that the result contains the lot rules
	resultStr, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}

	expectedContent := []string{
		"Parking Lot Navigator - Complete Instructions",
		"LOT MODEL:",
		"GRID LEGEND:",
		"MOVEMENT MODEL:",
		"RESERVATIONS:",
		"NAVIGATION:",
		"OUTCOME CODES:",
		"SESSION MANAGEMENT:",
		"TYPICAL FLOW:",
	}

	for _, content := range expectedContent {
		if !strings.Contains(resultStr.Text, content) {
			t.Errorf("Expected '%s' in instructions, got: %s", content, resultStr.Text)
		}
	}
}

func TestClient_Integration(t *testing.T) {
	// Integration test that verifies the client can be created and initialized without errors
	client := NewClient("http://localhost:8080")

	if client == nil {
		t.Fatal("Failed to create client")
	}

	// Test that the MCP server has been properly configured with tools
	if client.mcpServer == nil {
		t.Fatal("MCP server not initialized")
	}

	if client.baseURL == "" {
		t.Error("Base URL not set")
	}

	if client.httpClient == nil {
		t.Error("HTTP client not initialized")
	}
}
