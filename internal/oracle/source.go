package oracle

import (
	"context"
	"errors"
)

var (
	// ErrUnavailable is returned by sources that cannot reach a generator.
	ErrUnavailable = errors.New("oracle: generator unavailable")

	// ErrEmptyResponse means the generator answered with no text.
	ErrEmptyResponse = errors.New("oracle: empty response")

	// ErrMissingField means a decoded artifact lacks a required field.
	ErrMissingField = errors.New("oracle: required field missing")
)

type Kind string

const (
	KindOracle Kind = "oracle"
	KindRitual Kind = "ritual"
)

// Request is a fixed instruction plus the string fields the answer must carry.
type Request struct {
	Kind        Kind
	Instruction string
	Fields      []string
}

var (
	OracleRequest = Request{
		Kind:        KindOracle,
		Instruction: "Generate a short, poetic, deeply philosophical question or prompt for two strangers standing near each other on Valentine's day. Max 15 words.",
		Fields:      []string{"phrase"},
	}

	RitualRequest = Request{
		Kind:        KindRitual,
		Instruction: "Create a 7-minute 'Parallel Universe' ritual for two strangers. It should be experiential and focus on presence, not sharing digital data. Examples: silence, walking rhythm, looking at clouds.",
		Fields:      []string{"title", "instructions"},
	}
)

// Source produces raw JSON text for a request.
type Source interface {
	Generate(ctx context.Context, req Request) (string, error)
	Name() string
}

// FallbackSource never reaches anything, so every fetch resolves to the fixed
// fallback artifacts.
type FallbackSource struct{}

func (FallbackSource) Generate(ctx context.Context, req Request) (string, error) {
	return "", ErrUnavailable
}

func (FallbackSource) Name() string { return "fallback" }

// StaticSource answers every request kind with a canned body.
type StaticSource struct {
	Responses map[Kind]string
	Err       error
}

func (s StaticSource) Generate(ctx context.Context, req Request) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	body, ok := s.Responses[req.Kind]
	if !ok {
		return "", ErrEmptyResponse
	}
	return body, nil
}

func (StaticSource) Name() string { return "static" }
