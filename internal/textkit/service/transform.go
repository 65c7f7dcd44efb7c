package service

import (
	"context"
	"sort"
	"strings"

	tkerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/utils/stringx"
)

// TransformRequest represents a string transform request. Length and Token
// are used by the padding, trimming and truncation transforms.
type TransformRequest struct {
	Op     string
	Text   string
	Length int
	Token  string
}

// TransformResult represents the outcome of a transform. Words is set by
// transforms that produce one value per word, Checks by the "check"
// transform.
type TransformResult struct {
	Text   string
	Words  []string
	Checks map[string]bool
}

type transformFunc func(req *TransformRequest) *TransformResult

func text(fn func(string) string) transformFunc {
	return func(req *TransformRequest) *TransformResult {
		return &TransformResult{Text: fn(req.Text)}
	}
}

func sized(fn func(string, int) string) transformFunc {
	return func(req *TransformRequest) *TransformResult {
		return &TransformResult{Text: fn(req.Text, req.Length)}
	}
}

// padded pads with a space when the request carries no token
func padded(fn func(string, int, ...string) string) transformFunc {
	return func(req *TransformRequest) *TransformResult {
		if req.Token == "" {
			return &TransformResult{Text: fn(req.Text, req.Length)}
		}
		return &TransformResult{Text: fn(req.Text, req.Length, req.Token)}
	}
}

func perWord(fn func(string) []string) transformFunc {
	return func(req *TransformRequest) *TransformResult {
		words := fn(req.Text)
		return &TransformResult{Text: strings.Join(words, ""), Words: words}
	}
}

// Checks evaluates every classification predicate on s
func Checks(s string) map[string]bool {
	return map[string]bool{
		"empty":               stringx.IsEmpty(s),
		"blank":               stringx.IsBlank(s),
		"alpha":               stringx.IsAlpha(s),
		"numeric":             stringx.IsNumeric(s),
		"alphanumeric":        stringx.IsAlphanumeric(s),
		"uppercased":          stringx.IsUppercased(s),
		"lowercased":          stringx.IsLowercased(s),
		"capitalized":         stringx.IsCapitalized(s),
		"decapitalized":       stringx.IsDecapitalized(s),
		"email":               stringx.IsEmail(s),
		"scientific-notation": stringx.IsScientificNotation(s),
	}
}

var transforms = map[string]transformFunc{
	"sanitize":            text(stringx.Sanitize),
	"sanitize-keep-space": text(stringx.SanitizeKeepingWhitespace),
	"split":               text(stringx.SplitWordsByCase),
	"pascal":              text(stringx.ToPascalCase),
	"camel":               text(stringx.ToCamelCase),
	"kebab":               text(stringx.ToKebabCase),
	"snake":               text(stringx.ToSnakeCase),
	"title":               text(stringx.ToTitleCase),
	"capitalize":          text(stringx.Capitalize),
	"decapitalize":        text(stringx.Decapitalize),
	"swap":                text(stringx.SwapCase),
	"reverse":             text(stringx.Reverse),
	"without-accents":     text(stringx.WithoutAccents),
	"latinize":            text(stringx.Latinize),
	"pad":                 padded(stringx.Pad),
	"pad-left":            padded(stringx.PadLeft),
	"pad-right":           padded(stringx.PadRight),
	"trim-left-keeping":   sized(stringx.TrimLeftKeeping),
	"trim-right-keeping":  sized(stringx.TrimRightKeeping),
	"trim-left-removing":  sized(stringx.TrimLeftRemoving),
	"trim-right-removing": sized(stringx.TrimRightRemoving),
	"truncate":            sized(stringx.Truncate),
	"first-characters":    perWord(stringx.FirstCharacterOfEachWord),
	"last-characters":     perWord(stringx.LastCharacterOfEachWord),
	"check": func(req *TransformRequest) *TransformResult {
		return &TransformResult{Text: req.Text, Checks: Checks(req.Text)}
	},
}

// TransformNames returns the supported transform names in sorted order
func TransformNames() []string {
	names := make([]string, 0, len(transforms))
	for name := range transforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Transform applies the named string transform
func (s *Service) Transform(ctx context.Context, req *TransformRequest) (*TransformResult, error) {
	if err := begin(ctx, "service.Transform"); err != nil {
		return nil, err
	}
	fn, ok := transforms[strings.ToLower(req.Op)]
	if !ok {
		return nil, tkerror.Newf("unknown transform %q", req.Op).
			WithCode(tkerror.CodeInvalidInput).
			WithOperation("service.Transform").
			WithDetail("known", strings.Join(TransformNames(), ","))
	}
	return fn(req), nil
}
