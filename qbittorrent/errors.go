package qbittorrent

import (
	"errors"
	"fmt"
)

// Common errors returned by the qBittorrent client.
var (
	// ErrInvalidMagnet is returned when a torrent carries no usable magnet link.
	ErrInvalidMagnet = errors.New("invalid magnet link")

	// ErrConnectionFailed is returned when connection to qBittorrent fails.
	ErrConnectionFailed = errors.New("connection to qBittorrent failed")
)

// AddError contains information about a failed add operation
type AddError struct {
	Name string
	Hash string
	Err  error
}

// Error implements the error interface
func (e AddError) Error() string {
	return fmt.Sprintf("failed to add torrent %s (hash: %s): %v", e.Name, e.Hash, e.Err)
}

func (e AddError) Unwrap() error { return e.Err }
