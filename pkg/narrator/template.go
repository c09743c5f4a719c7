package narrator

// Template is one candidate phrasing for one event type. Weight biases
// selection among same-type templates; Tags are free-form labels
// carried into the decision trace for analytics and filtering.
type Template struct {
	ID     string
	Event  EventType
	Weight float64
	Tags   []string
	Render func(Context) string
}

// templatesFor returns the registered pool for an event type, falling
// back to the guaranteed default pool when nothing is registered. A
// missing registration is handled here, never surfaced as an error, so
// narration cannot fail a turn for that reason.
func templatesFor(t EventType) []Template {
	if pool, ok := registry[t]; ok && len(pool) > 0 {
		return pool
	}
	return defaultTemplates
}

// RegisteredTypes returns every event type with a registered pool.
// Used by the static-data validator.
func RegisteredTypes() []EventType {
	types := make([]EventType, 0, len(registry))
	for _, t := range EventTypes {
		if _, ok := registry[t]; ok {
			types = append(types, t)
		}
	}
	return types
}

// TemplatesOf exposes a registered pool for validation. The returned
// slice is the registry's backing data and must not be mutated.
func TemplatesOf(t EventType) []Template {
	return templatesFor(t)
}

// DefaultTemplates exposes the fallback pool for validation.
func DefaultTemplates() []Template {
	return defaultTemplates
}
