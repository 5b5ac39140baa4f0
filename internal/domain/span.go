package domain

import (
	"context"
	"time"
)

type Span struct {
	Name    string    `json:"name"`
	startTs time.Time `json:"-"`
	Elapsed *int64    `json:"elapsedMs"`
}

type profileKey struct{}

// Profile is an ordered list of timed spans over one tracking run
type Profile struct {
	Spans   []*Span `json:"spans"`
	startTs time.Time
	TotalMs *int64 `json:"totalMs"`
}

func NewProfile() (newProfile *Profile, endNewProfile func()) {
	newProfile = &Profile{
		Spans:   []*Span{},
		startTs: time.Now(),
	}
	return newProfile, newProfile.End
}

func (p *Profile) End() {
	if len(p.Spans) > 0 {
		p.Spans[len(p.Spans)-1].End()
	}
	t := time.Since(p.startTs).Milliseconds()
	if p.TotalMs == nil {
		p.TotalMs = &t
	}
}

func (s *Span) End() {
	if s.Elapsed == nil {
		t := time.Since(s.startTs).Milliseconds()
		s.Elapsed = &t
	}
}

// StartNewSpan ends the last span and begins a new one
// not thread safe
func (p *Profile) StartNewSpan(name string) (newSpan *Span, endSpan func()) {
	newSpan = &Span{
		Name:    name,
		startTs: time.Now(),
	}
	if len(p.Spans) > 0 {
		p.Spans[len(p.Spans)-1].End()
	}
	p.Spans = append(p.Spans, newSpan)
	return newSpan, newSpan.End
}

func ContextWithProfile(ctx context.Context, profile *Profile) context.Context {
	return context.WithValue(ctx, profileKey{}, profile)
}

// GetProfile returns the profile stored in ctx, or a fresh one if the
// caller did not attach any
func GetProfile(ctx context.Context) (profile *Profile, endProfile func()) {
	if p, ok := ctx.Value(profileKey{}).(*Profile); ok && p != nil {
		return p, p.End
	}
	return NewProfile()
}
