package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localesFS embed.FS

// FallbackLocale is used for keys a locale does not translate
const FallbackLocale = "en-US"

// Catalog holds the translated message formats of every shipped locale
type Catalog struct {
	tags     []language.Tag
	messages map[language.Tag]map[string]string
	matcher  language.Matcher
	fallback language.Tag

	mu      sync.RWMutex
	matched map[string]language.Tag
}

// LoadCatalog reads every locales/<code>.yaml file from fsys. A nil fsys
// loads the embedded catalogs.
func LoadCatalog(fsys fs.FS) (*Catalog, error) {
	if fsys == nil {
		sub, err := fs.Sub(localesFS, "locales")
		if err != nil {
			return nil, fmt.Errorf("failed to open embedded locales: %w", err)
		}
		fsys = sub
	}

	files, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to list locales: %w", err)
	}
	sort.Strings(files)

	c := &Catalog{
		messages: make(map[language.Tag]map[string]string),
		matched:  make(map[string]language.Tag),
		fallback: language.MustParse(FallbackLocale),
	}

	// fallback first so the matcher prefers it on ties
	sort.SliceStable(files, func(i, j int) bool {
		return strings.TrimSuffix(files[i], ".yaml") == FallbackLocale &&
			strings.TrimSuffix(files[j], ".yaml") != FallbackLocale
	})

	for _, name := range files {
		code := strings.TrimSuffix(path.Base(name), ".yaml")
		tag, err := language.Parse(code)
		if err != nil {
			return nil, fmt.Errorf("invalid locale file name %s: %w", name, err)
		}

		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		var msgs map[string]string
		if err := yaml.Unmarshal(data, &msgs); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}

		c.tags = append(c.tags, tag)
		c.messages[tag] = msgs
	}

	if _, ok := c.messages[c.fallback]; !ok {
		return nil, fmt.Errorf("fallback locale %s is missing", FallbackLocale)
	}
	c.matcher = language.NewMatcher(c.tags)

	reference := c.Keys(c.fallback)
	for _, tag := range c.tags {
		if missing := len(reference) - countKnown(c.messages[tag], reference); missing > 0 {
			log.WithFields(log.Fields{
				"locale":  tag.String(),
				"missing": missing,
			}).Warn("Catalog is missing translations, falling back to " + FallbackLocale)
		}
	}
	return c, nil
}

func countKnown(msgs map[string]string, keys []string) int {
	n := 0
	for _, k := range keys {
		if _, ok := msgs[k]; ok {
			n++
		}
	}
	return n
}

// Locales returns the tags that have a catalog
func (c *Catalog) Locales() []language.Tag {
	return append([]language.Tag(nil), c.tags...)
}

// Keys returns the message keys of a locale, sorted
func (c *Catalog) Keys(tag language.Tag) []string {
	keys := make([]string, 0, len(c.messages[tag]))
	for k := range c.messages[tag] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (c *Catalog) match(locale string) language.Tag {
	c.mu.RLock()
	tag, ok := c.matched[locale]
	c.mu.RUnlock()
	if ok {
		return tag
	}

	_, idx, conf := c.matcher.Match(Tag(locale))
	tag = c.fallback
	if conf != language.No {
		tag = c.tags[idx]
	}

	c.mu.Lock()
	c.matched[locale] = tag
	c.mu.Unlock()
	return tag
}

// Localizer renders messages for one guild: text in its locale, numbers in
// its regional format.
type Localizer struct {
	catalog  *Catalog
	tag      language.Tag
	printer  *message.Printer
	regional string
}

// Localizer returns a localizer for the given locale and regional format
func (c *Catalog) Localizer(locale, regional string) *Localizer {
	if regional == "" {
		regional = locale
	}
	return &Localizer{
		catalog:  c,
		tag:      c.match(locale),
		printer:  message.NewPrinter(Tag(regional)),
		regional: regional,
	}
}

// With returns a localizer of the same catalog for another locale
func (l *Localizer) With(locale, regional string) *Localizer {
	return l.catalog.Localizer(locale, regional)
}

// Locale returns the catalog locale messages are taken from
func (l *Localizer) Locale() language.Tag {
	return l.tag
}

// Regional returns the locale numbers are formatted with
func (l *Localizer) Regional() string {
	return l.regional
}

// T formats the message for key. Missing keys fall back to the fallback
// locale and finally to the key itself.
func (l *Localizer) T(key string, args ...any) string {
	format, ok := l.catalog.messages[l.tag][key]
	if !ok {
		format, ok = l.catalog.messages[l.catalog.fallback][key]
	}
	if !ok {
		log.WithField("key", key).Warn("Missing translation")
		return key
	}
	if len(args) == 0 {
		return format
	}
	return l.printer.Sprintf(format, args...)
}

// Lookup returns the message for key without formatting it or logging a
// missing translation
func (l *Localizer) Lookup(key string) (string, bool) {
	if msg, ok := l.catalog.messages[l.tag][key]; ok {
		return msg, true
	}
	msg, ok := l.catalog.messages[l.catalog.fallback][key]
	return msg, ok
}

// Number formats n in the regional format
func (l *Localizer) Number(n int64) string {
	return l.printer.Sprintf("%d", n)
}
