package i18n

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"sort"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/indico/fieldkit/internal/errors"
)

//go:embed catalogs/*.yaml
var builtin embed.FS

// DefaultLanguage is served when nothing better matches.
var DefaultLanguage = language.English

// Catalog holds message tables for several languages.
type Catalog struct {
	mu       sync.RWMutex
	messages map[language.Tag]map[string]string
	matcher  language.Matcher
	fallback language.Tag
	logger   *slog.Logger
	logMiss  bool
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger used for load and missing-message reports.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMissingTranslationsLogging logs every lookup without a translation at debug level.
func WithMissingTranslationsLogging(on bool) Option {
	return func(c *Catalog) {
		c.logMiss = on
	}
}

// WithFallback sets the language served when no loaded language matches.
func WithFallback(tag language.Tag) Option {
	return func(c *Catalog) {
		c.fallback = tag
	}
}

// NewCatalog creates an empty catalog.
func NewCatalog(opts ...Option) *Catalog {
	c := &Catalog{
		messages: make(map[language.Tag]map[string]string),
		fallback: DefaultLanguage,
		logger:   discardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.rebuildMatcher()
	return c
}

// Default returns a catalog preloaded with the built-in translations.
func Default(opts ...Option) (*Catalog, error) {
	c := NewCatalog(opts...)
	if err := c.LoadFS(builtin, "catalogs/*.yaml"); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadYAML merges the catalog document read from r. Later loads override
// earlier messages for the same language and key.
func (c *Catalog) LoadYAML(r io.Reader) error {
	var doc map[string]map[string]string
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil
		}
		return errors.New("F101").Wrap(err)
	}

	parsed := make(map[language.Tag]map[string]string, len(doc))
	for lang, msgs := range doc {
		tag, err := language.Parse(lang)
		if err != nil {
			return errors.New("F102").WithDetail(fmt.Sprintf("%q", lang)).Wrap(err)
		}
		parsed[tag] = msgs
	}

	c.mu.Lock()
	for tag, msgs := range parsed {
		dst := c.messages[tag]
		if dst == nil {
			dst = make(map[string]string, len(msgs))
			c.messages[tag] = dst
		}
		for k, v := range msgs {
			dst[k] = v
		}
	}
	c.rebuildMatcherLocked()
	c.mu.Unlock()

	c.logger.Debug("catalog loaded", "languages", len(parsed))
	return nil
}

// LoadFile merges a catalog file from disk.
func (c *Catalog) LoadFile(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return errors.New("F100").WithDetail(name).Wrap(err)
	}
	defer f.Close()
	if err := c.LoadYAML(f); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// LoadFS merges every catalog in fsys matching pattern, in lexical order.
func (c *Catalog) LoadFS(fsys fs.FS, pattern string) error {
	names, err := fs.Glob(fsys, pattern)
	if err != nil {
		return errors.New("F100").Wrap(err)
	}
	sort.Strings(names)
	for _, name := range names {
		f, err := fsys.Open(name)
		if err != nil {
			return errors.New("F100").WithDetail(name).Wrap(err)
		}
		err = c.LoadYAML(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", path.Base(name), err)
		}
	}
	return nil
}

// Languages returns the loaded language tags, sorted.
func (c *Catalog) Languages() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.messages))
	for tag := range c.messages {
		out = append(out, tag.String())
	}
	sort.Strings(out)
	return out
}

// Match returns the loaded language that best serves the requested tags,
// given as BCP 47 strings or Accept-Language values.
func (c *Catalog) Match(requested ...string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.match(requested...).String()
}

// Translator returns a translator bound to the best match for requested.
func (c *Catalog) Translator(requested ...string) Translator {
	c.mu.RLock()
	defer c.mu.RUnlock()

	tag := c.match(requested...)
	return &boundTranslator{
		lang:     tag.String(),
		messages: c.messages[tag],
		logger:   c.logger,
		logMiss:  c.logMiss,
	}
}

func (c *Catalog) match(requested ...string) language.Tag {
	var wanted []language.Tag
	for _, r := range requested {
		tags, _, err := language.ParseAcceptLanguage(r)
		if err != nil {
			continue
		}
		wanted = append(wanted, tags...)
	}
	if len(wanted) == 0 || len(c.messages) == 0 {
		return c.fallback
	}

	_, idx, conf := c.matcher.Match(wanted...)
	if conf == language.No {
		return c.fallback
	}
	return c.supported()[idx]
}

func (c *Catalog) rebuildMatcher() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rebuildMatcherLocked()
}

func (c *Catalog) rebuildMatcherLocked() {
	c.matcher = language.NewMatcher(c.supported())
}

// supported lists the fallback first so the matcher defaults to it.
func (c *Catalog) supported() []language.Tag {
	tags := []language.Tag{c.fallback}
	others := make([]language.Tag, 0, len(c.messages))
	for tag := range c.messages {
		if tag != c.fallback {
			others = append(others, tag)
		}
	}
	sort.Slice(others, func(i, j int) bool { return others[i].String() < others[j].String() })
	return append(tags, others...)
}
