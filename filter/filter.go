// Package filter selects torrents from a result set with expr expressions.
//
// Expressions see the torrent as plain variables (Title, Category, Seeders,
// Leechers, Size, PubDate, IMDB, Season, ...) plus helpers such as
// inCategory, icontains, daysAgo and GB:
//
//	Seeders > 10 and Size < GB(4) and inCategory("TV HD Episodes", "TV UHD Episodes")
package filter

import (
	"context"
	"strings"

	"github.com/s0up4200/torrentapi/torrentapi"
)

var defaultCompiler = NewExprCompiler(WithCache(100))

// CompileFilter compiles an expression with the shared caching compiler
func CompileFilter(expression string) (CompiledFilter, error) {
	return defaultCompiler.Compile(expression)
}

// Apply returns the torrents matching expression, in their original order.
// An empty expression matches everything.
func Apply(expression string, torrents []torrentapi.Torrent) ([]torrentapi.Torrent, error) {
	if strings.TrimSpace(expression) == "" {
		return torrents, nil
	}

	filter, err := CompileFilter(expression)
	if err != nil {
		return nil, err
	}
	return evaluateSequential(filter, torrents), nil
}

// EvaluateFilters compiles and evaluates several named expressions concurrently
func EvaluateFilters(ctx context.Context, filters map[string]string, torrents []torrentapi.Torrent) (map[string][]torrentapi.Torrent, error) {
	m, err := NewManagerWithPresets(filters)
	if err != nil {
		return nil, err
	}
	defer m.Close(ctx)

	return m.EvaluateAll(ctx, torrents)
}
