package fun

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"regexp"
	"strings"
)

//go:embed resources/*.txt
var resourcesFS embed.FS

// Pool names shipped with the bot.
const (
	PoolBuildIdeas = "build_ideas"
	PoolKill       = "kill"
	PoolPvP        = "pvp"
	PoolFacts      = "facts"
)

// Placeholders understood by templates. Any other {token} is rejected at
// load time.
const (
	PlaceholderMember  = "member"
	PlaceholderMember1 = "member1"
	PlaceholderMember2 = "member2"
)

var (
	ErrEmptyPool          = errors.New("pool has no entries")
	ErrUnknownPlaceholder = errors.New("unknown placeholder")
	ErrIndexOutOfRange    = errors.New("index out of range")
)

var (
	allowedPlaceholders = map[string]bool{
		PlaceholderMember:  true,
		PlaceholderMember1: true,
		PlaceholderMember2: true,
	}
	placeholderPattern = regexp.MustCompile(`\{([a-zA-Z0-9_]+)\}`)
)

// Source is the randomness a pool draws from. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Random draws from the shared generator and is safe for concurrent use
var Random Source = globalSource{}

// Pool is an immutable list of response templates.
type Pool struct {
	name    string
	entries []string
}

// NewPool validates entries and builds a pool.
func NewPool(name string, entries []string) (*Pool, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyPool)
	}
	for i, e := range entries {
		for _, m := range placeholderPattern.FindAllStringSubmatch(e, -1) {
			if !allowedPlaceholders[m[1]] {
				return nil, fmt.Errorf("%s line %d: %w {%s}", name, i+1, ErrUnknownPlaceholder, m[1])
			}
		}
	}
	return &Pool{name: name, entries: append([]string(nil), entries...)}, nil
}

// ParsePool reads one template per line, skipping blank lines and # comments.
func ParsePool(name string, text string) (*Pool, error) {
	var entries []string
	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read pool %s: %w", name, err)
	}
	return NewPool(name, entries)
}

func (p *Pool) Name() string { return p.name }

func (p *Pool) Len() int { return len(p.entries) }

// At returns the entry at index i.
func (p *Pool) At(i int) (string, error) {
	if i < 0 || i >= len(p.entries) {
		return "", fmt.Errorf("%s: %w: %d not in [0, %d)", p.name, ErrIndexOutOfRange, i, len(p.entries))
	}
	return p.entries[i], nil
}

// Pick returns a random entry and its index.
func (p *Pool) Pick(src Source) (string, int) {
	i := src.IntN(len(p.entries))
	return p.entries[i], i
}

// Render picks a random entry and fills in its placeholders from vars.
// Placeholders without a value are replaced with an empty string.
func (p *Pool) Render(src Source, vars map[string]string) string {
	entry, _ := p.Pick(src)
	return Substitute(entry, vars)
}

// Substitute replaces the known placeholders in template. Values are
// inserted literally and never re-scanned.
func Substitute(template string, vars map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(template, func(tok string) string {
		name := tok[1 : len(tok)-1]
		if !allowedPlaceholders[name] {
			return tok
		}
		return vars[name]
	})
}

// Pools holds every template pool the fun commands use.
type Pools struct {
	BuildIdeas *Pool
	Kill       *Pool
	PvP        *Pool
	Facts      *Pool
}

// LoadPools reads the pools from fsys, falling back to the embedded
// resources when fsys is nil.
func LoadPools(fsys fs.FS) (*Pools, error) {
	if fsys == nil {
		sub, err := fs.Sub(resourcesFS, "resources")
		if err != nil {
			return nil, fmt.Errorf("failed to open embedded resources: %w", err)
		}
		fsys = sub
	}

	load := func(name string) (*Pool, error) {
		data, err := fs.ReadFile(fsys, name+".txt")
		if err != nil {
			return nil, fmt.Errorf("failed to read pool %s: %w", name, err)
		}
		return ParsePool(name, string(data))
	}

	var (
		pools Pools
		err   error
	)
	if pools.BuildIdeas, err = load(PoolBuildIdeas); err != nil {
		return nil, err
	}
	if pools.Kill, err = load(PoolKill); err != nil {
		return nil, err
	}
	if pools.PvP, err = load(PoolPvP); err != nil {
		return nil, err
	}
	if pools.Facts, err = load(PoolFacts); err != nil {
		return nil, err
	}
	return &pools, nil
}
