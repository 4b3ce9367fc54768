package service

import (
	"context"
	"fmt"
	"sync"

	"dario.cat/mergo"
	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-portfolio/internal/adapter"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/models"
)

type clientContentService struct {
	adapter adapter.ServerAdapter
	session ClientSessionService

	mu       sync.RWMutex
	sections map[string]models.Section

	logger *logger.Logger
}

func NewClientContentService(serverAdapter adapter.ServerAdapter, session ClientSessionService, logger *logger.Logger) ClientContentService {
	return &clientContentService{
		adapter:  serverAdapter,
		session:  session,
		sections: make(map[string]models.Section),
		logger:   logger,
	}
}

func (c *clientContentService) Defaults(name string) models.Section {
	return models.Section{Name: name, Data: models.DefaultSectionData(name)}
}

func (c *clientContentService) Current(name string) models.Section {
	c.mu.RLock()
	section, ok := c.sections[name]
	c.mu.RUnlock()

	if !ok {
		return c.Defaults(name)
	}
	section.Data = copySectionData(section.Data)
	return section
}

func (c *clientContentService) Load(ctx context.Context, name string) (models.Section, error) {
	fetched, err := c.adapter.GetSection(ctx, name)
	if ctx.Err() != nil {
		// the view that asked for it is gone
		return c.Current(name), ctx.Err()
	}
	if err != nil {
		c.logger.Warn().Err(err).Str("section", name).Msg("section fetch failed, keeping defaults")
		return c.Current(name), mapAdapterError(err)
	}

	if len(fetched.Data) == 0 {
		// never written on the server: keep what we show, remember the version
		fetched.Data = c.Current(name).Data
	}

	c.mu.Lock()
	c.sections[name] = models.Section{Name: name, Data: copySectionData(fetched.Data), Version: fetched.Version}
	c.mu.Unlock()

	return fetched, nil
}

func (c *clientContentService) LoadAll(ctx context.Context, names ...string) (models.ContentSnapshot, error) {
	result := models.ContentSnapshot{
		Sections: make(map[string]models.Section, len(names)),
		Failed:   make(map[string]error),
	}

	var (
		mu sync.Mutex
		g  errgroup.Group
	)

	if email := c.session.Current().Email; email != "" {
		g.Go(func() error {
			isAdmin, err := c.adapter.CheckRole(ctx, email)
			if err != nil {
				c.logger.Warn().Err(err).Msg("role check failed")
				return nil
			}
			mu.Lock()
			result.IsAdmin = isAdmin && c.session.IsAdmin()
			mu.Unlock()
			return nil
		})
	}

	for _, name := range names {
		g.Go(func() error {
			section, err := c.Load(ctx, name)
			mu.Lock()
			defer mu.Unlock()
			result.Sections[name] = section
			if err != nil {
				result.Failed[name] = err
			}
			return nil
		})
	}

	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return result, err
	}
	return result, nil
}

func (c *clientContentService) Save(ctx context.Context, name string, edits models.SectionData) (models.Section, error) {
	if !c.session.IsAdmin() {
		return models.Section{}, ErrNotAuthenticated
	}
	if !models.IsKnownSection(name) {
		return models.Section{}, ErrUnknownSection
	}

	c.mu.RLock()
	base, loaded := c.sections[name]
	c.mu.RUnlock()
	if !loaded {
		return models.Section{}, ErrSectionNotLoaded
	}

	merged := copySectionData(base.Data)
	if err := mergo.Merge(&merged, copySectionData(edits), mergo.WithOverride, mergo.WithOverwriteWithEmptyValue); err != nil {
		return models.Section{}, fmt.Errorf("merge edits into %q: %w", name, err)
	}

	version, err := c.adapter.PutSection(ctx, c.session.Token(), models.Section{
		Name:    name,
		Data:    merged,
		Version: base.Version,
	})
	if err != nil {
		c.logger.Warn().Err(err).Str("section", name).Msg("section save failed")
		return models.Section{}, mapAdapterError(err)
	}

	saved := models.Section{Name: name, Data: merged, Version: version}

	c.mu.Lock()
	c.sections[name] = models.Section{Name: name, Data: copySectionData(merged), Version: version}
	c.mu.Unlock()

	return saved, nil
}

// copySectionData deep-copies the nested maps and slices of a payload so
// edits never alias the last known content.
func copySectionData(data models.SectionData) models.SectionData {
	if data == nil {
		return models.SectionData{}
	}
	out := make(models.SectionData, len(data))
	for k, v := range data {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch value := v.(type) {
	case map[string]any:
		return map[string]any(copySectionData(value))
	case models.SectionData:
		return copySectionData(value)
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = copyValue(item)
		}
		return out
	case []map[string]any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = copyValue(item)
		}
		return out
	default:
		return v
	}
}
