// Package oracle fetches the two generated text artifacts: the prompt shown
// after connecting to a soul, and the shared ritual. Fetches never fail; any
// problem with the generator resolves to a fixed fallback artifact.
package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/kaptinlin/jsonrepair"
	"go.uber.org/zap"

	"github.com/san-kum/aura24/internal/models"
)

const DefaultTimeout = 20 * time.Second

type Oracle struct {
	src     Source
	timeout time.Duration
	log     *zap.Logger
}

type Option func(*Oracle)

func WithTimeout(d time.Duration) Option {
	return func(o *Oracle) {
		if d > 0 {
			o.timeout = d
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(o *Oracle) {
		if l != nil {
			o.log = l
		}
	}
}

func New(src Source, opts ...Option) *Oracle {
	if src == nil {
		src = FallbackSource{}
	}
	o := &Oracle{src: src, timeout: DefaultTimeout, log: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *Oracle) SourceName() string { return o.src.Name() }

// FetchOraclePrompt always returns a usable prompt.
func (o *Oracle) FetchOraclePrompt(ctx context.Context) models.OraclePrompt {
	var p models.OraclePrompt
	if err := o.fetch(ctx, OracleRequest, &p); err != nil {
		o.fallback(OracleRequest, err)
		return models.FallbackOracle
	}
	return p
}

// FetchRitual always returns a usable ritual.
func (o *Oracle) FetchRitual(ctx context.Context) models.Ritual {
	var r models.Ritual
	if err := o.fetch(ctx, RitualRequest, &r); err != nil {
		o.fallback(RitualRequest, err)
		return models.FallbackRitual
	}
	return r
}

func (o *Oracle) fetch(ctx context.Context, req Request, v any) error {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	start := time.Now()
	raw, err := o.src.Generate(ctx, req)
	if err != nil {
		return err
	}
	if err := decode(raw, v); err != nil {
		return err
	}
	if err := requireFields(v, req.Fields); err != nil {
		return err
	}
	o.log.Debug("generated artifact",
		zap.String("kind", string(req.Kind)),
		zap.String("source", o.src.Name()),
		zap.Duration("took", time.Since(start)))
	return nil
}

func (o *Oracle) fallback(req Request, err error) {
	o.log.Warn("generator failed, using fallback",
		zap.String("kind", string(req.Kind)),
		zap.String("source", o.src.Name()),
		zap.Error(err))
}

// decode unmarshals the first JSON object in raw, repairing it when the
// generator returned something almost-JSON.
func decode(raw string, v any) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ErrEmptyResponse
	}
	if err := json.Unmarshal([]byte(raw), v); err == nil {
		return nil
	}

	body := raw
	if obj := extractObject(raw); obj != "" {
		body = obj
	}
	fixed, err := jsonrepair.JSONRepair(body)
	if err != nil {
		return fmt.Errorf("repair response: %w", err)
	}
	if err := json.Unmarshal([]byte(fixed), v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// extractObject returns the first balanced {...} in s, or "" if there is none.
func extractObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start == -1 {
		return ""
	}
	inString, escape, depth := false, false, 0
	for i := start; i < len(s); i++ {
		ch := s[i]
		if inString {
			switch {
			case escape:
				escape = false
			case ch == '\\':
				escape = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return s[start:]
}

func requireFields(v any, fields []string) error {
	var values map[string]string
	switch a := v.(type) {
	case *models.OraclePrompt:
		values = map[string]string{"phrase": a.Phrase}
	case *models.Ritual:
		values = map[string]string{"title": a.Title, "instructions": a.Instructions}
	default:
		return nil
	}
	for _, f := range fields {
		if strings.TrimSpace(values[f]) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f)
		}
	}
	return nil
}
