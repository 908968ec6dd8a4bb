package filter

import (
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/torrentapi/torrentapi"
)

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	extra      map[string]any
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache[CompiledFilter](size)
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.customFuncs, funcs)
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) CachingCompiler {
	c := &exprCompiler{
		customFuncs: make(map[string]any),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// exprCompiler implements Compiler for expr-based filters
type exprCompiler struct {
	customFuncs map[string]any
	cache       *lruCache[CompiledFilter]
}

// Compile compiles an expression into an executable filter. Expressions are
// type checked against the torrent environment, so unknown names fail here.
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	// Check cache if enabled
	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	env := createRuntimeEnvironment(torrentapi.Torrent{})
	maps.Copy(env, c.customFuncs)

	program, err := expr.Compile(expression,
		expr.Env(env),
		expr.AsBool(), // Ensure boolean result
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	filter := &exprFilter{
		expression: expression,
		program:    program,
		extra:      c.customFuncs,
	}

	if c.cache != nil {
		c.cache.Put(expression, filter)
	}

	return filter, nil
}

// Clear removes all cached filters
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Size()
	}
	return 0
}

// Evaluate evaluates the filter against a torrent. A torrent the program
// fails on does not match.
func (f *exprFilter) Evaluate(torrent torrentapi.Torrent) bool {
	ok, err := f.Match(torrent)
	return err == nil && ok
}

// Match evaluates the filter against a torrent and reports runtime failures
func (f *exprFilter) Match(torrent torrentapi.Torrent) (bool, error) {
	env := createRuntimeEnvironment(torrent)
	maps.Copy(env, f.extra)

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{
			Expression:  f.expression,
			TorrentName: torrent.Name(),
			Err:         err,
		}
	}

	// Result is guaranteed to be bool due to AsBool() option during compilation
	return result.(bool), nil
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// IsThreadSafe indicates that expr filters are thread-safe
func (f *exprFilter) IsThreadSafe() bool {
	return true
}

// addHelperFunctions adds the torrent independent helpers to env
func addHelperFunctions(env map[string]any) {
	// Date helpers
	env["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	env["hoursAgo"] = func(hours int) time.Time {
		return time.Now().Add(-time.Duration(hours) * time.Hour)
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	env["parseDate"] = func(dateStr string) time.Time {
		t, _ := time.Parse("2006-01-02", dateStr)
		return t
	}
	// Case insensitive string helpers. contains, startsWith and endsWith
	// are expr operators and cannot be redefined.
	env["icontains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["istartsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["iendsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	// Size helpers
	env["MB"] = func(n int) int { return n << 20 }
	env["GB"] = func(n int) int { return n << 30 }
	// Current time
	env["now"] = time.Now
}

// createRuntimeEnvironment creates the runtime environment for filter evaluation
func createRuntimeEnvironment(torrent torrentapi.Torrent) map[string]any {
	env := make(map[string]any, 48)

	addHelperFunctions(env)

	env["Torrent"] = torrent

	// Direct torrent properties for convenience. Values the API left out
	// are zero.
	env["Title"] = torrent.Name()
	env["Filename"] = torrent.Filename
	env["Category"] = torrent.Category.String()
	env["Download"] = torrent.Download
	env["InfoHash"] = torrent.InfoHash()
	env["Seeders"] = intValue(torrent.Seeders)
	env["Leechers"] = intValue(torrent.Leechers)
	env["Size"] = intValue(torrent.Size)
	env["Ranked"] = torrent.IsRanked()

	pubDate, _ := torrent.PublishedAt()
	env["PubDate"] = pubDate

	// Episode properties
	ep := torrent.EpisodeInfo
	if ep == nil {
		ep = &torrentapi.EpisodeInfo{}
	}
	env["IMDB"] = stringValue(ep.IMDB)
	env["TVDB"] = stringValue(ep.TVDB)
	env["TMDB"] = stringValue(ep.TMDB)
	env["TVRage"] = stringValue(ep.TVRage)
	env["Season"] = atoi(ep.SeasonNo)
	env["Episode"] = atoi(ep.EpisodeNo)
	env["EpisodeTitle"] = stringValue(ep.Title)
	airDate, _ := ep.AirDate()
	env["AirDate"] = airDate

	env["inCategory"] = createInCategoryFunc(torrent.Category)
	env["hasEpisodeInfo"] = func() bool { return torrent.EpisodeInfo != nil }

	return env
}

func createInCategoryFunc(category torrentapi.Category) func(...string) bool {
	name := strings.ToLower(category.String())
	return func(names ...string) bool {
		return slices.ContainsFunc(names, func(n string) bool {
			return strings.ToLower(n) == name
		})
	}
}

func intValue(p *int64) int {
	if p == nil {
		return 0
	}
	return int(*p)
}

func stringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func atoi(p *string) int {
	if p == nil {
		return 0
	}
	n, _ := strconv.Atoi(*p)
	return n
}
