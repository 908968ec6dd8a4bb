package torrentapi_test

import (
	"context"
	"fmt"
	"os"

	"github.com/s0up4200/torrentapi/config"
	"github.com/s0up4200/torrentapi/filter"
	"github.com/s0up4200/torrentapi/qbittorrent"
	"github.com/s0up4200/torrentapi/torrentapi"
)

func Example() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	logger := config.NewLogger(cfg.Logging, os.Stderr)

	client, err := torrentapi.NewClient(cfg.API.AppID, logger, cfg.API.Options()...)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create client")
	}

	params, err := torrentapi.NewParametersBuilder().
		Limit(torrentapi.Limit100).
		SortBy(torrentapi.SortSeeders).
		Format(torrentapi.FormatJSONExtended).
		Categories(torrentapi.CategoryTVHDEpisodes, torrentapi.CategoryTVUHDEpisodes).
		Build()
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid parameters")
	}

	ctx := context.Background()
	torrents, err := client.SearchByIMDB(ctx, "tt2861424", params)
	if apiErr, ok := torrentapi.AsAPIError(err); ok && apiErr.IsNoResults() {
		logger.Info().Msg("Nothing found")
		return
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("Search failed")
	}

	wanted, err := filter.Apply(`Seeders > 10 and Size < GB(4)`, torrents)
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid filter")
	}

	if !cfg.QBittorrent.Enabled {
		for _, t := range wanted {
			if _, err := t.Export(os.TempDir()); err != nil {
				logger.Warn().Err(err).Msg("Export failed")
			}
		}
		return
	}

	qbit, err := qbittorrent.NewClient(ctx, cfg.QBittorrent.URL, cfg.QBittorrent.Username, cfg.QBittorrent.Password,
		logger, cfg.QBittorrent.Options()...)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to qBittorrent")
	}

	result, err := qbit.AddTorrents(ctx, wanted)
	if err != nil {
		logger.Fatal().Err(err).Msg("Add interrupted")
	}
	logger.Info().
		Int("added", len(result.Added)).
		Int("skipped", len(result.Skipped)).
		Int("failed", len(result.Failed)).
		Msg("Handed torrents to qBittorrent")
}
