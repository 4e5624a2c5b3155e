package logging

import (
	"context"
	"errors"
	"log/slog"
	"slices"
)

// fanout sends each record to every destination that accepts its level:
// the console and the rolling JSON file.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	return slices.ContainsFunc(f, func(h slog.Handler) bool { return h.Enabled(ctx, level) })
}

//nolint:gocritic // slog.Handler passes records by value
func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error

	for _, h := range f {
		if h.Enabled(ctx, r.Level) {
			if err := h.Handle(ctx, r.Clone()); err != nil {
				errs = append(errs, err)
			}
		}
	}

	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}

	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}

	return out
}

// redactor applies a ReplaceAttr function in front of a handler that has no
// ReplaceAttr option of its own, such as the charm console logger.
type redactor struct {
	next    slog.Handler
	replace func(groups []string, a slog.Attr) slog.Attr
	groups  []string
}

func newRedactor(next slog.Handler, replace func([]string, slog.Attr) slog.Attr) slog.Handler {
	if replace == nil {
		return next
	}

	return &redactor{next: next, replace: replace}
}

func (h *redactor) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

//nolint:gocritic // slog.Handler passes records by value
func (h *redactor) Handle(ctx context.Context, r slog.Record) error {
	out := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		out.AddAttrs(h.scrub(h.groups, a))
		return true
	})

	return h.next.Handle(ctx, out)
}

func (h *redactor) WithAttrs(attrs []slog.Attr) slog.Handler {
	scrubbed := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		scrubbed[i] = h.scrub(h.groups, a)
	}

	return &redactor{next: h.next.WithAttrs(scrubbed), replace: h.replace, groups: h.groups}
}

func (h *redactor) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	return &redactor{
		next:    h.next.WithGroup(name),
		replace: h.replace,
		groups:  append(slices.Clip(h.groups), name),
	}
}

func (h *redactor) scrub(groups []string, a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() != slog.KindGroup {
		return h.replace(groups, a)
	}

	inner := append(slices.Clip(groups), a.Key)
	members := a.Value.Group()
	scrubbed := make([]slog.Attr, len(members))

	for i, m := range members {
		scrubbed[i] = h.scrub(inner, m)
	}

	return slog.Attr{Key: a.Key, Value: slog.GroupValue(scrubbed...)}
}
