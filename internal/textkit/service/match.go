package service

import (
	"context"
	"strings"

	tkerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/utils/patternx"
)

// PatternSpec names the pattern of a request. Name selects a built-in
// pattern and takes precedence over Source.
type PatternSpec struct {
	Source  string
	Name    string
	Options []string
	Engine  string
}

// MatchRequest represents a match request
type MatchRequest struct {
	Pattern     PatternSpec
	Text        string
	Anchored    bool
	Transparent bool
	Strict      bool
}

// MatchResult represents the outcome of a match request
type MatchResult struct {
	Status  string
	Matched bool
	Ranges  []patternx.MatchRange
	Matches []string
}

// ReplaceRequest represents a substitution request. With Occurrences set
// every match is replaced by Template taken literally; otherwise Template
// is expanded per match and Bounds limits the replaced region.
type ReplaceRequest struct {
	Pattern     PatternSpec
	Text        string
	Template    string
	Bounds      *patternx.MatchRange
	Anchored    bool
	Transparent bool
	Occurrences bool
	Strict      bool
}

// ReplaceResult represents the outcome of a replace request
type ReplaceResult struct {
	Text    string
	Changed bool
}

// PatternInfo describes a built-in pattern
type PatternInfo struct {
	Name   string
	Source string
}

// Pattern builds the pattern described by spec with the service engine,
// timeout and cache
func (s *Service) Pattern(spec PatternSpec) (patternx.Pattern, error) {
	var p patternx.Pattern
	switch {
	case spec.Name != "":
		builtin, ok := patternx.Lookup(spec.Name)
		if !ok {
			return p, tkerror.Newf("unknown pattern %q", spec.Name).
				WithCode(tkerror.CodeUnknownPattern).
				WithOperation("service.Pattern").
				WithDetail("known", strings.Join(patternx.Names(), ","))
		}
		p = builtin
	case spec.Source != "":
		p = patternx.New(spec.Source)
	default:
		return p, tkerror.New("pattern is required").
			WithCode(tkerror.CodeInvalidInput).
			WithOperation("service.Pattern")
	}

	opts, unknown := patternx.ParseCompileOptions(spec.Options...)
	if len(unknown) > 0 {
		return p, tkerror.Newf("unknown compile options: %s", strings.Join(unknown, ", ")).
			WithCode(tkerror.CodeInvalidInput).
			WithOperation("service.Pattern")
	}

	engine := s.cfg.Engine
	if spec.Engine != "" {
		var ok bool
		if engine, ok = patternx.ParseEngine(spec.Engine); !ok {
			return p, tkerror.Newf("unknown engine %q", spec.Engine).
				WithCode(tkerror.CodeInvalidInput).
				WithOperation("service.Pattern")
		}
	} else if spec.Name != "" && engine == patternx.EngineLinear {
		// built-ins rely on lookaround
		engine = patternx.EngineAuto
	}

	return p.WithOptions(opts).
		WithEngine(engine).
		WithTimeout(s.cfg.Timeout).
		WithCache(s.cache), nil
}

func matchOptions(anchored, transparent bool) patternx.MatchOptions {
	var opts patternx.MatchOptions
	if anchored {
		opts |= patternx.Anchored
	}
	if transparent {
		opts |= patternx.WithTransparentBounds
	}
	return opts
}

// Match finds all matches of the request pattern. Compile failures and
// timeouts yield an empty result unless the request or the service is
// strict.
func (s *Service) Match(ctx context.Context, req *MatchRequest) (*MatchResult, error) {
	if err := begin(ctx, "service.Match"); err != nil {
		return nil, err
	}
	p, err := s.Pattern(req.Pattern)
	if err != nil {
		return nil, err
	}

	timer := s.logger.WithContext(ctx).StartTimer("service.Match").WithField("pattern", p.Source())
	res := p.Evaluate(req.Text, matchOptions(req.Anchored, req.Transparent))
	if res.Err != nil && (s.cfg.Strict || req.Strict) {
		timer.StopWithError(res.Err)
		return nil, res.Err
	}
	timer.WithField("status", res.Status.String()).
		WithField("matches", len(res.Ranges)).
		Stop()

	return &MatchResult{
		Status:  res.Status.String(),
		Matched: res.Matched(),
		Ranges:  res.Ranges,
		Matches: res.Strings(req.Text),
	}, nil
}

// Replace substitutes matches of the request pattern
func (s *Service) Replace(ctx context.Context, req *ReplaceRequest) (*ReplaceResult, error) {
	if err := begin(ctx, "service.Replace"); err != nil {
		return nil, err
	}
	p, err := s.Pattern(req.Pattern)
	if err != nil {
		return nil, err
	}
	strict := s.cfg.Strict || req.Strict
	timer := s.logger.WithContext(ctx).StartTimer("service.Replace").WithField("pattern", p.Source())

	var out string
	switch {
	case req.Occurrences && strict:
		if err := p.Validate(); err != nil {
			timer.StopWithError(err)
			return nil, err
		}
		out = p.ReplaceOccurrences(req.Text, req.Template)
	case req.Occurrences:
		out = p.ReplaceOccurrences(req.Text, req.Template)
	case strict:
		out, err = p.ReplaceMatchesStrict(req.Text, matchOptions(req.Anchored, req.Transparent), req.Bounds, req.Template)
		if err != nil {
			timer.StopWithError(err)
			return nil, err
		}
	default:
		out = p.ReplaceMatches(req.Text, matchOptions(req.Anchored, req.Transparent), req.Bounds, req.Template)
	}

	changed := out != req.Text
	timer.WithField("changed", changed).Stop()
	return &ReplaceResult{Text: out, Changed: changed}, nil
}

// Patterns lists the built-in patterns in name order
func (s *Service) Patterns(ctx context.Context) ([]PatternInfo, error) {
	if err := begin(ctx, "service.Patterns"); err != nil {
		return nil, err
	}
	names := patternx.Names()
	infos := make([]PatternInfo, len(names))
	for i, name := range names {
		infos[i] = PatternInfo{Name: name, Source: patternx.MustLookup(name).Source()}
	}
	return infos, nil
}
