package resolver

// Cache memoises the per-type lookups presentation code repeats while
// rendering a list of types. It is emptied whenever the store changes.
type Cache struct {
	resolver *Resolver
	defaults map[string]cachedDefault
	explicit map[string]bool
}

type cachedDefault struct {
	app string
	ok  bool
}

// NewCache wraps r and subscribes to its store's mutations
func NewCache(r *Resolver) *Cache {
	c := &Cache{resolver: r}
	c.Invalidate()
	r.store.Subscribe(c.Invalidate)
	return c
}

// Resolver returns the wrapped resolver
func (c *Cache) Resolver() *Resolver {
	return c.resolver
}

// DefaultApp is Resolver.DefaultApp with fallback, memoised
func (c *Cache) DefaultApp(contentType string) (string, bool) {
	if d, ok := c.defaults[contentType]; ok {
		return d.app, d.ok
	}
	app, ok := c.resolver.DefaultApp(contentType, true)
	c.defaults[contentType] = cachedDefault{app: app, ok: ok}
	return app, ok
}

// HasDefault is Resolver.HasDefault, memoised
func (c *Cache) HasDefault(contentType string) bool {
	if v, ok := c.explicit[contentType]; ok {
		return v
	}
	v := c.resolver.HasDefault(contentType)
	c.explicit[contentType] = v
	return v
}

// Invalidate drops every memoised answer
func (c *Cache) Invalidate() {
	c.defaults = make(map[string]cachedDefault)
	c.explicit = make(map[string]bool)
}

// Refresh is called by presentation code after it changed state outside the
// store's notification path
func (c *Cache) Refresh() {
	c.resolver.logger.Debug().Msg("Refreshing resolver cache")
	c.Invalidate()
}

// Len reports how many types have a memoised default
func (c *Cache) Len() int {
	return len(c.defaults)
}
