// Package api provides HTTP REST API handlers for the Parking Lot Navigator.
//
// The api package implements:
//   - RESTful endpoints for lot operations
//   - Session management endpoints
//   - Configuration listing, retrieval and creation
//   - WebSocket upgrade handling
//   - Static file serving
//
// Endpoints:
//
// Lot Operations:
//   - GET /api/sessions/{id}/state - Get current lot state
//   - POST /api/sessions/{id}/reserve - Reserve a spot {row, col}
//   - POST /api/sessions/{id}/navigate/reserved - Route from the vehicle entrance to the reserved spot
//   - POST /api/sessions/{id}/navigate/nearest - Route to the nearest free spot from the pedestrian entrance
//   - POST /api/sessions/{id}/reset - Clear highlights, reservation and goal
//   - GET /api/sessions/{id}/history - Get action history with pagination
//
// Session Management:
//   - POST /api/sessions - Create new session (optional {"config_id": "..."})
//   - GET /api/sessions - List all sessions (sort, order, limit query params)
//   - GET /api/sessions/unified - Aggregated multi-session view
//   - GET /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Delete session
//
// Configuration:
//   - GET /api/configs - List available configurations
//   - GET /api/configs/{name} - Get a configuration by id
//   - POST /api/configs - Save a new configuration
//
// Request/Response Format:
//
// All endpoints accept and return JSON. Expected lot answers such as a taken
// spot, a full lot or a missing reservation come back as HTTP 200 with
// success=false and an outcome code:
//
//	{
//	  "success": false,
//	  "outcome": "spot_unavailable",
//	  "lot_state": { ... },
//	  "message": "That spot is taken."
//	}
//
// Outcome codes: ok, reserved, spot_unavailable, invalid_coordinate,
// no_path, lot_full, no_reservation. The one exception is
// invalid_coordinate on reserve, which is a malformed request and returns
// HTTP 400 with the same result body.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//	server := api.NewServer(parkingService, hub)
//	http.ListenAndServe(":8080", server)
//
// Error Handling:
//
// Infrastructure errors (unknown session, unreadable config) are returned
// as JSON with appropriate HTTP status codes:
//
//	{
//	  "error": "error message"
//	}
package api
