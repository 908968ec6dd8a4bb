package torrentapi

import (
	"context"
)

// API defines the operations of a torrentapi session
type API interface {
	// Authenticate acquires a fresh token
	Authenticate(ctx context.Context) error

	// List lists the latest torrents
	List(ctx context.Context, params *Parameters) ([]Torrent, error)

	// Search searches torrents by name
	Search(ctx context.Context, query string, params *Parameters) ([]Torrent, error)

	// SearchByIMDB searches torrents by IMDB id
	SearchByIMDB(ctx context.Context, id string, params *Parameters) ([]Torrent, error)

	// SearchByTVDB searches torrents by TVDB id
	SearchByTVDB(ctx context.Context, id string, params *Parameters) ([]Torrent, error)

	// SearchByTMDB searches torrents by TMDB id
	SearchByTMDB(ctx context.Context, id string, params *Parameters) ([]Torrent, error)
}

var _ API = (*Client)(nil)
