package dto

import "github.com/goliatone/go-dto/pkg/activity"

// WithActivityHooks attaches activity hooks notified on container lifecycle
// events. Hooks are cloned and nil entries dropped to preserve immutability.
func WithActivityHooks(hooks activity.Hooks) Option {
	normalized := cloneActivityHooks(hooks)
	return func(cfg *containerConfig) {
		cfg.activityHooks = normalized
	}
}

// ActivityHooks returns a cloned slice of the hooks configured on the
// container. The returned slice can be safely mutated by the caller.
func (d *Dto) ActivityHooks() activity.Hooks {
	if d == nil {
		return nil
	}
	return cloneActivityHooks(d.cfg.activityHooks)
}

func cloneActivityHooks(hooks activity.Hooks) activity.Hooks {
	if len(hooks) == 0 {
		return nil
	}
	normalized := make([]activity.ActivityHook, 0, len(hooks))
	for _, hook := range hooks {
		if hook == nil {
			continue
		}
		normalized = append(normalized, hook)
	}
	if len(normalized) == 0 {
		return nil
	}
	return activity.Hooks(normalized)
}
