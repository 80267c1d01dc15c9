package block

import "errors"

// Sentinel errors returned by connection and port lookup operations.
// Callers are expected to match them with errors.Is after unwrapping.
var (
	// ErrIncompatibleConnection is returned when the port kinds cannot be
	// paired, for example a value output feeding a message input.
	ErrIncompatibleConnection = errors.New("incompatible port kinds")

	// ErrAlreadyConnected is returned when the destination already has a
	// source. Inputs accept exactly one incoming connection.
	ErrAlreadyConnected = errors.New("input already connected")

	// ErrNotConnected is returned by Disconnect when no connection exists
	// between the two ports.
	ErrNotConnected = errors.New("ports not connected")

	// ErrNoPort is returned by port accessors when a block has no port
	// matching the request.
	ErrNoPort = errors.New("no such port")
)
