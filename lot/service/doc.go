// Package service provides the business logic layer for the Parking Lot Navigator.
//
// The service package implements:
//   - Multi-session lot management
//   - Configuration management and loading
//   - Reservation and navigation processing
//   - Session lifecycle management
//   - Action history tracking
//
// Core Interfaces:
//
// ParkingService is the main service interface providing high-level lot operations.
// SessionManager handles session creation, retrieval, and lifecycle.
// ConfigManager manages lot configuration loading and validation.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP) and
// the lot engine, providing session isolation, configuration management, and
// business logic orchestration. Each session maintains its own lot engine
// instance with independent state. A service-level mutex serializes all grid
// access, so concurrent transport calls never race on a session's lot state.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr := config.NewManager("configs")
//	parkingService := service.NewParkingService(sessionMgr, configMgr)
//
//	// Create a new session
//	sessionInfo, err := parkingService.CreateSession(ctx, "classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Reserve a spot and route to it
//	_, err = parkingService.Reserve(ctx, sessionInfo.ID, 2, 7)
//	result, err := parkingService.NavigateToReserved(ctx, sessionInfo.ID)
//
// Outcome Codes:
//
// Expected user-facing failures (an occupied spot, a full lot, a missing
// reservation) are reported through the Outcome field of the result types
// with Success set to false. Errors are reserved for infrastructure problems
// such as an unknown session or a config that cannot be loaded.
package service
