package server

import (
	"sort"
	"time"

	"github.com/msto63/textkit/foundation/utils/patternx"
	"github.com/msto63/textkit/internal/textkit/service"
	"github.com/msto63/textkit/pkg/core/health"
	"google.golang.org/protobuf/types/known/structpb"
)

// Messages travel as google.protobuf.Struct. Field names are snake_case.

func str(in *structpb.Struct, key string) string {
	return in.GetFields()[key].GetStringValue()
}

func boolean(in *structpb.Struct, key string) bool {
	return in.GetFields()[key].GetBoolValue()
}

func integer(in *structpb.Struct, key string) int {
	return int(in.GetFields()[key].GetNumberValue())
}

func stringList(in *structpb.Struct, key string) []string {
	values := in.GetFields()[key].GetListValue().GetValues()
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.GetStringValue()
	}
	return out
}

func list(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func rangeValue(r patternx.MatchRange) map[string]interface{} {
	return map[string]interface{}{"start": r.Start, "end": r.End}
}

func decodeRange(v *structpb.Value) patternx.MatchRange {
	f := v.GetStructValue().GetFields()
	return patternx.MatchRange{
		Start: int(f["start"].GetNumberValue()),
		End:   int(f["end"].GetNumberValue()),
	}
}

func patternFields(spec service.PatternSpec, m map[string]interface{}) {
	if spec.Source != "" {
		m["pattern"] = spec.Source
	}
	if spec.Name != "" {
		m["name"] = spec.Name
	}
	if len(spec.Options) > 0 {
		m["options"] = list(spec.Options)
	}
	if spec.Engine != "" {
		m["engine"] = spec.Engine
	}
}

func decodePattern(in *structpb.Struct) service.PatternSpec {
	return service.PatternSpec{
		Source:  str(in, "pattern"),
		Name:    str(in, "name"),
		Options: stringList(in, "options"),
		Engine:  str(in, "engine"),
	}
}

// EncodeMatchRequest converts req into its wire form
func EncodeMatchRequest(req *service.MatchRequest) (*structpb.Struct, error) {
	m := map[string]interface{}{
		"text":        req.Text,
		"anchored":    req.Anchored,
		"transparent": req.Transparent,
		"strict":      req.Strict,
	}
	patternFields(req.Pattern, m)
	return structpb.NewStruct(m)
}

// DecodeMatchRequest converts the wire form into a match request
func DecodeMatchRequest(in *structpb.Struct) *service.MatchRequest {
	return &service.MatchRequest{
		Pattern:     decodePattern(in),
		Text:        str(in, "text"),
		Anchored:    boolean(in, "anchored"),
		Transparent: boolean(in, "transparent"),
		Strict:      boolean(in, "strict"),
	}
}

// EncodeMatchResult converts res into its wire form
func EncodeMatchResult(res *service.MatchResult) (*structpb.Struct, error) {
	ranges := make([]interface{}, len(res.Ranges))
	for i, r := range res.Ranges {
		ranges[i] = rangeValue(r)
	}
	return structpb.NewStruct(map[string]interface{}{
		"status":  res.Status,
		"matched": res.Matched,
		"ranges":  ranges,
		"matches": list(res.Matches),
	})
}

// DecodeMatchResult converts the wire form into a match result
func DecodeMatchResult(in *structpb.Struct) *service.MatchResult {
	res := &service.MatchResult{
		Status:  str(in, "status"),
		Matched: boolean(in, "matched"),
		Matches: stringList(in, "matches"),
	}
	for _, v := range in.GetFields()["ranges"].GetListValue().GetValues() {
		res.Ranges = append(res.Ranges, decodeRange(v))
	}
	return res
}

// EncodeReplaceRequest converts req into its wire form
func EncodeReplaceRequest(req *service.ReplaceRequest) (*structpb.Struct, error) {
	m := map[string]interface{}{
		"text":        req.Text,
		"template":    req.Template,
		"anchored":    req.Anchored,
		"transparent": req.Transparent,
		"occurrences": req.Occurrences,
		"strict":      req.Strict,
	}
	if req.Bounds != nil {
		m["bounds"] = rangeValue(*req.Bounds)
	}
	patternFields(req.Pattern, m)
	return structpb.NewStruct(m)
}

// DecodeReplaceRequest converts the wire form into a replace request
func DecodeReplaceRequest(in *structpb.Struct) *service.ReplaceRequest {
	req := &service.ReplaceRequest{
		Pattern:     decodePattern(in),
		Text:        str(in, "text"),
		Template:    str(in, "template"),
		Anchored:    boolean(in, "anchored"),
		Transparent: boolean(in, "transparent"),
		Occurrences: boolean(in, "occurrences"),
		Strict:      boolean(in, "strict"),
	}
	if v, ok := in.GetFields()["bounds"]; ok {
		r := decodeRange(v)
		req.Bounds = &r
	}
	return req
}

// EncodeReplaceResult converts res into its wire form
func EncodeReplaceResult(res *service.ReplaceResult) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]interface{}{
		"text":    res.Text,
		"changed": res.Changed,
	})
}

// DecodeReplaceResult converts the wire form into a replace result
func DecodeReplaceResult(in *structpb.Struct) *service.ReplaceResult {
	return &service.ReplaceResult{Text: str(in, "text"), Changed: boolean(in, "changed")}
}

// EncodeTransformRequest converts req into its wire form
func EncodeTransformRequest(req *service.TransformRequest) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]interface{}{
		"op":     req.Op,
		"text":   req.Text,
		"length": req.Length,
		"token":  req.Token,
	})
}

// DecodeTransformRequest converts the wire form into a transform request
func DecodeTransformRequest(in *structpb.Struct) *service.TransformRequest {
	return &service.TransformRequest{
		Op:     str(in, "op"),
		Text:   str(in, "text"),
		Length: integer(in, "length"),
		Token:  str(in, "token"),
	}
}

// EncodeTransformResult converts res into its wire form
func EncodeTransformResult(res *service.TransformResult) (*structpb.Struct, error) {
	m := map[string]interface{}{"text": res.Text}
	if res.Words != nil {
		m["words"] = list(res.Words)
	}
	if res.Checks != nil {
		checks := make(map[string]interface{}, len(res.Checks))
		for k, v := range res.Checks {
			checks[k] = v
		}
		m["checks"] = checks
	}
	return structpb.NewStruct(m)
}

// DecodeTransformResult converts the wire form into a transform result
func DecodeTransformResult(in *structpb.Struct) *service.TransformResult {
	res := &service.TransformResult{Text: str(in, "text"), Words: stringList(in, "words")}
	if v, ok := in.GetFields()["checks"]; ok {
		res.Checks = make(map[string]bool)
		for k, b := range v.GetStructValue().GetFields() {
			res.Checks[k] = b.GetBoolValue()
		}
	}
	return res
}

// EncodePatterns converts the pattern list into its wire form
func EncodePatterns(infos []service.PatternInfo) (*structpb.Struct, error) {
	patterns := make([]interface{}, len(infos))
	for i, info := range infos {
		patterns[i] = map[string]interface{}{"name": info.Name, "source": info.Source}
	}
	return structpb.NewStruct(map[string]interface{}{"patterns": patterns})
}

// DecodePatterns converts the wire form into a pattern list
func DecodePatterns(in *structpb.Struct) []service.PatternInfo {
	values := in.GetFields()["patterns"].GetListValue().GetValues()
	infos := make([]service.PatternInfo, 0, len(values))
	for _, v := range values {
		s := v.GetStructValue()
		infos = append(infos, service.PatternInfo{Name: str(s, "name"), Source: str(s, "source")})
	}
	return infos
}

// EncodeReport converts a health report into its wire form
func EncodeReport(r *health.Report) (*structpb.Struct, error) {
	checks := make([]interface{}, len(r.Checks))
	for i, c := range r.Checks {
		check := map[string]interface{}{
			"name":        c.Name,
			"status":      string(c.Status),
			"message":     c.Message,
			"duration_ms": float64(c.Duration) / float64(time.Millisecond),
		}
		if len(c.Details) > 0 {
			details := make(map[string]interface{}, len(c.Details))
			for k, v := range c.Details {
				details[k] = detailValue(v)
			}
			check["details"] = details
		}
		checks[i] = check
	}
	return structpb.NewStruct(map[string]interface{}{
		"service":        r.Service,
		"version":        r.Version,
		"status":         string(r.Status),
		"uptime_seconds": r.Uptime.Seconds(),
		"checks":         checks,
	})
}

// detailValue narrows check details to types structpb accepts
func detailValue(v interface{}) interface{} {
	switch v := v.(type) {
	case int, int32, int64, uint, uint32, uint64, float32, float64, bool, string:
		return v
	case error:
		return v.Error()
	default:
		return nil
	}
}

// DecodeReport converts the wire form into a health report
func DecodeReport(in *structpb.Struct) *health.Report {
	r := &health.Report{
		Service: str(in, "service"),
		Version: str(in, "version"),
		Status:  health.Status(str(in, "status")),
		Uptime:  time.Duration(in.GetFields()["uptime_seconds"].GetNumberValue() * float64(time.Second)),
	}
	for _, v := range in.GetFields()["checks"].GetListValue().GetValues() {
		c := v.GetStructValue()
		result := health.CheckResult{
			Name:     str(c, "name"),
			Status:   health.Status(str(c, "status")),
			Message:  str(c, "message"),
			Duration: time.Duration(c.GetFields()["duration_ms"].GetNumberValue() * float64(time.Millisecond)),
		}
		if d, ok := c.GetFields()["details"]; ok {
			result.Details = d.GetStructValue().AsMap()
		}
		r.Checks = append(r.Checks, result)
	}
	sort.Slice(r.Checks, func(i, j int) bool { return r.Checks[i].Name < r.Checks[j].Name })
	return r
}
