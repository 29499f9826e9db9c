// Package mcp provides Model Context Protocol server implementation for the Parking Lot Navigator.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for lot operations
//   - Session-aware command execution
//   - Stdio and HTTP transport modes
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - lot_state: Get current lot state with grid visualization
//   - reserve_spot: Reserve a specific parking spot
//   - navigate_to_reserved: Route from the vehicle entrance to the reserved spot
//   - navigate_to_nearest_spot: Find and route to the nearest free spot
//   - reset_lot: Redraw the lot from its configuration
//   - action_history: Retrieve action history with pagination
//   - create_session: Create new lot session with config selection
//   - get_session: Get specific session details
//   - list_sessions: List all active sessions
//   - list_configs: List available lot configurations
//   - lot_instructions: Get lot rules and coordinate conventions
//   - describe_cell: Inspect a single grid cell
//
// Transport Modes:
//
// The server supports two transport modes:
//   - Stdio: Direct stdio communication for local MCP clients
//   - HTTP: HTTP endpoint for remote MCP integration
//
// Architecture:
//
// The Client is a thin proxy: every tool call is translated into a REST API
// request against the running server, and the JSON response is formatted
// into text for the agent. This keeps the MCP surface stateless and lets it
// run in a separate process from the lot service.
//
// Usage:
//
//	// Stdio mode
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
//
//	// HTTP mode
//	httpServer := server.NewStreamableHTTPServer(client.GetMCPServer())
//	http.Handle("/mcp", httpServer)
//
// AI Integration:
//
// The MCP interface enables AI agents to:
//   - Reserve spots and request routes autonomously
//   - Inspect lot state cell by cell
//   - Manage multiple lot sessions
//   - Review past reservations and navigations
package mcp
