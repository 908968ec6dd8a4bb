package filter

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/torrentapi/torrentapi"
)

func ptr[T any](v T) *T { return &v }

func testTorrent() torrentapi.Torrent {
	return torrentapi.Torrent{
		Title:    "Rick.and.Morty.S04E01.1080p.WEBRip.x264-BTX",
		Category: torrentapi.CategoryTVHDEpisodes,
		Download: "magnet:?xt=urn:btih:ABCDEF&dn=Rick",
		Seeders:  ptr[int64](154),
		Leechers: ptr[int64](12),
		Size:     ptr[int64](1 << 30),
		PubDate:  time.Now().Add(-48 * time.Hour).UTC().Format("2006-01-02 15:04:05 -0700"),
		Ranked:   ptr[int64](1),
		EpisodeInfo: &torrentapi.EpisodeInfo{
			IMDB:       ptr("tt2861424"),
			TVDB:       ptr("275274"),
			SeasonNo:   ptr("4"),
			EpisodeNo:  ptr("1"),
			RawAirDate: ptr("2019-11-10"),
		},
	}
}

func generateTestTorrents(n int) []torrentapi.Torrent {
	torrents := make([]torrentapi.Torrent, n)
	for i := range n {
		category := torrentapi.CategoryTVEpisodes
		if i%3 == 0 {
			category = torrentapi.CategoryTVUHDEpisodes
		}
		torrents[i] = torrentapi.Torrent{
			Filename: fmt.Sprintf("release.%04d", i),
			Category: category,
			Download: fmt.Sprintf("magnet:?xt=urn:btih:%040x", i),
			Seeders:  ptr(int64(i % 50)),
		}
	}
	return torrents
}

func TestCompileFilter(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{
			name:       "valid expression",
			expression: `Seeders > 10`,
		},
		{
			name:        "empty expression",
			expression:  "  ",
			wantErr:     true,
			errContains: "empty expression",
		},
		{
			name:       "invalid syntax",
			expression: `icontains(Title, "unclosed`,
			wantErr:    true,
		},
		{
			name:       "unknown variable",
			expression: `Year > 2020`,
			wantErr:    true,
		},
		{
			name:       "not boolean",
			expression: `Seeders + 1`,
			wantErr:    true,
		},
		{
			name:       "complex expression",
			expression: `inCategory("TV HD Episodes") and Seeders >= 10 and Size < GB(4) and PubDate > daysAgo(7)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := CompileFilter(tt.expression)

			if tt.wantErr {
				require.Error(t, err)
				var compErr *CompilationError
				assert.ErrorAs(t, err, &compErr)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, filter)
		})
	}
}

func TestFilterEvaluation(t *testing.T) {
	torrent := testTorrent()

	tests := []struct {
		name       string
		expression string
		expected   bool
	}{
		{"seeders", `Seeders > 100`, true},
		{"leechers", `Leechers < 10`, false},
		{"size", `Size >= GB(1) and Size < MB(2000)`, true},
		{"category", `Category == "TV HD Episodes"`, true},
		{"in category", `inCategory("tv uhd episodes", "TV HD Episodes")`, true},
		{"not in category", `inCategory("Movies/x264")`, false},
		{"title contains", `icontains(Title, "WEBRIP")`, true},
		{"title contains operator", `Title contains "WEBRip"`, true},
		{"title ends with", `iendsWith(Title, "-btx")`, true},
		{"title regex", `Title matches "S04E\\d+"`, true},
		{"ranked", `Ranked`, true},
		{"published recently", `PubDate > daysAgo(7)`, true},
		{"published long ago", `PubDate < daysAgo(7)`, false},
		{"imdb", `IMDB == "tt2861424"`, true},
		{"season and episode", `Season == 4 and Episode == 1`, true},
		{"air date", `AirDate < parseDate("2020-01-01")`, true},
		{"episode info", `hasEpisodeInfo()`, true},
		{"info hash", `InfoHash == "abcdef"`, true},
		{"struct access", `Torrent.Download startsWith "magnet:"`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := CompileFilter(tt.expression)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, filter.Evaluate(torrent), "expression %q", tt.expression)
		})
	}
}

func TestFilterMissingFieldsAreZero(t *testing.T) {
	compact := torrentapi.Torrent{
		Filename: "compact",
		Category: torrentapi.CategoryMusicFLAC,
		Download: "magnet:?xt=urn:btih:1",
	}

	filter, err := CompileFilter(`Seeders == 0 and IMDB == "" and not hasEpisodeInfo() and not Ranked`)
	require.NoError(t, err)
	assert.True(t, filter.Evaluate(compact))
}

func TestCustomFunctions(t *testing.T) {
	compiler := NewExprCompiler(WithCustomFunctions(map[string]any{
		"isPopular": func(seeders int) bool { return seeders > 100 },
	}))

	filter, err := compiler.Compile(`isPopular(Seeders)`)
	require.NoError(t, err)
	assert.True(t, filter.Evaluate(testTorrent()))
}

func TestApply(t *testing.T) {
	torrents := generateTestTorrents(30)

	all, err := Apply("", torrents)
	require.NoError(t, err)
	assert.Len(t, all, 30)

	uhd, err := Apply(`Category == "TV UHD Episodes"`, torrents)
	require.NoError(t, err)
	assert.Len(t, uhd, 10)
	assert.Equal(t, "release.0000", uhd[0].Name())
	assert.Equal(t, "release.0003", uhd[1].Name())

	_, err = Apply(`Seeders >`, torrents)
	assert.Error(t, err)
}

func TestConcurrentEvaluation(t *testing.T) {
	torrents := generateTestTorrents(1000)

	filter, err := CompileFilter(`inCategory("TV UHD Episodes") and Seeders > 20`)
	require.NoError(t, err)

	evaluator := NewConcurrentEvaluator(WithWorkers(4), WithBatchSize(50))
	defer evaluator.Stop(context.Background())

	matches, err := evaluator.Evaluate(context.Background(), filter, torrents)
	require.NoError(t, err)

	expected := evaluateSequential(filter, torrents)
	assert.Equal(t, expected, matches, "concurrent evaluation keeps order")
	assert.NotEmpty(t, matches)
}

func TestConcurrentEvaluationCancelled(t *testing.T) {
	torrents := generateTestTorrents(1000)
	filter, err := CompileFilter(`Seeders > 0`)
	require.NoError(t, err)

	evaluator := NewConcurrentEvaluator(WithWorkers(2), WithBatchSize(10))
	defer evaluator.Stop(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = evaluator.Evaluate(ctx, filter, torrents)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBatchEvaluation(t *testing.T) {
	torrents := generateTestTorrents(60)

	filters := map[string]string{
		"uhd":     `Category == "TV UHD Episodes"`,
		"popular": `Seeders >= 40`,
		"none":    `Seeders > 1000`,
	}

	results, err := EvaluateFilters(context.Background(), filters, torrents)
	require.NoError(t, err)

	require.Len(t, results, len(filters))
	assert.Len(t, results["uhd"], 20)
	assert.Len(t, results["popular"], 10)
	assert.Empty(t, results["none"])
}

func TestFilterManager(t *testing.T) {
	ctx := context.Background()
	manager, err := NewManagerWithPresets(map[string]string{
		"uhd":     `Category == "TV UHD Episodes"`,
		"popular": `Seeders > 40`,
	})
	require.NoError(t, err)
	defer manager.Close(ctx)

	assert.Equal(t, []string{"popular", "uhd"}, manager.ListFilters())

	filter, exists := manager.GetFilter("uhd")
	require.True(t, exists)
	assert.Equal(t, `Category == "TV UHD Episodes"`, filter.Expression())

	torrents := generateTestTorrents(100)
	matches, err := manager.EvaluateFilter(ctx, "uhd", torrents)
	require.NoError(t, err)
	assert.Len(t, matches, 34)

	selected, err := manager.EvaluateSelected(ctx, []string{"popular"}, torrents)
	require.NoError(t, err)
	assert.Len(t, selected, 1)
	assert.Len(t, selected["popular"], 18)

	_, err = manager.EvaluateSelected(ctx, []string{"missing"}, torrents)
	assert.ErrorIs(t, err, ErrFilterNotFound)

	require.NoError(t, manager.RegisterFilter("ranked", `Ranked`))
	assert.Len(t, manager.ListFilters(), 3)

	manager.UnregisterFilter("uhd")
	_, exists = manager.GetFilter("uhd")
	assert.False(t, exists)

	_, err = manager.EvaluateFilter(ctx, "uhd", torrents)
	assert.ErrorIs(t, err, ErrFilterNotFound)
}

func TestManagerRejectsInvalidPresets(t *testing.T) {
	manager, err := NewManagerWithPresets(map[string]string{
		"good": `Seeders > 1`,
		"bad":  `Seeders >`,
	})
	require.Error(t, err)
	assert.Nil(t, manager)
	assert.Contains(t, err.Error(), "bad")
}

func TestCacheEffectiveness(t *testing.T) {
	compiler := NewExprCompiler(WithCache(2))

	first, err := compiler.Compile(`Seeders > 1`)
	require.NoError(t, err)
	second, err := compiler.Compile(`Seeders > 1`)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, compiler.Size())

	_, err = compiler.Compile(`Seeders > 2`)
	require.NoError(t, err)
	_, err = compiler.Compile(`Seeders > 3`)
	require.NoError(t, err)
	assert.Equal(t, 2, compiler.Size(), "oldest entry evicted")

	compiler.Clear()
	assert.Equal(t, 0, compiler.Size())
}

func TestWorkerPoolStopped(t *testing.T) {
	pool := NewWorkerPool(1)
	require.NoError(t, pool.Stop(context.Background()))
	assert.ErrorIs(t, pool.Submit(func() {}), ErrPoolStopped)
	assert.NoError(t, pool.Stop(context.Background()))
}
