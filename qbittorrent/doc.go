// Package qbittorrent hands torrents found through the torrent API over to a
// qBittorrent instance.
//
// This package wraps the autobrr/go-qbittorrent library. Torrents are added
// by magnet link; those whose info hash is already known to qBittorrent are
// skipped.
//
// # Usage
//
//	client, err := qbittorrent.NewClient(ctx, url, username, password, logger,
//	    qbittorrent.WithCategory("tv"),
//	    qbittorrent.WithConcurrency(4),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := client.AddTorrents(ctx, torrents)
//	for _, failure := range result.Failed {
//	    logger.Warn().Err(failure).Msg("add failed")
//	}
package qbittorrent
