package pagination

import (
	"net/url"
	"strings"
)

// Param is a single query parameter with one or more values.
type Param struct {
	Key    string
	Values []string
}

// Query is an ordered multi-valued query-parameter list. Unlike url.Values it
// preserves insertion order, so serialization is deterministic. Repeated keys
// in a parsed query string collapse into one Param at the position of the
// first occurrence, accumulating values in order.
type Query struct {
	params []Param
}

// ParseQuery parses a raw query string. It never fails: segments that cannot
// be percent-decoded are kept verbatim, and parameters with a blank value are
// dropped, matching the historical behaviour pagination links rely on.
func ParseQuery(raw string) Query {
	var q Query
	for _, segment := range strings.Split(raw, "&") {
		if segment == "" {
			continue
		}
		key, value, found := strings.Cut(segment, "=")
		if !found || value == "" {
			continue
		}
		q.Add(unescape(key), unescape(value))
	}
	return q
}

func unescape(s string) string {
	if decoded, err := url.QueryUnescape(s); err == nil {
		return decoded
	}
	return s
}

// Add appends a value for key, keeping the key's original position when it is
// already present.
func (q *Query) Add(key string, values ...string) {
	for i := range q.params {
		if q.params[i].Key == key {
			q.params[i].Values = append(q.params[i].Values, values...)
			return
		}
	}
	q.params = append(q.params, Param{Key: key, Values: values})
}

// Set replaces every value for key. Keys not yet present are appended at the
// end; existing keys keep their position.
func (q *Query) Set(key string, values ...string) {
	for i := range q.params {
		if q.params[i].Key == key {
			q.params[i].Values = append([]string(nil), values...)
			return
		}
	}
	q.params = append(q.params, Param{Key: key, Values: append([]string(nil), values...)})
}

// Get returns the first value for key, or the empty string when absent.
func (q Query) Get(key string) string {
	for _, param := range q.params {
		if param.Key == key && len(param.Values) > 0 {
			return param.Values[0]
		}
	}
	return ""
}

// Has reports whether key is present.
func (q Query) Has(key string) bool {
	for _, param := range q.params {
		if param.Key == key {
			return true
		}
	}
	return false
}

// Params returns the parameters in insertion order.
func (q Query) Params() []Param {
	return q.params
}

// Merge applies every parameter of other onto q with replace semantics: each
// key in other overwrites any existing values for that key, while keys not
// mentioned are preserved unchanged.
func (q *Query) Merge(other Query) {
	for _, param := range other.params {
		q.Set(param.Key, param.Values...)
	}
}

// Encode serializes the query with percent-encoding, repeating the key for
// multi-valued parameters. Output order follows insertion order.
func (q Query) Encode() string {
	var b strings.Builder
	for _, param := range q.params {
		for _, value := range param.Values {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(url.QueryEscape(param.Key))
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(value))
		}
	}
	return b.String()
}

// RebuildURL parses base, merges params over its existing query with replace
// semantics and reserializes. Unparsable input is treated as a bare path with
// no existing query; the function never fails.
func RebuildURL(base string, params Query) string {
	parsed, err := url.Parse(base)
	if err != nil {
		parsed = &url.URL{Path: base}
	}

	query := ParseQuery(parsed.RawQuery)
	query.Merge(params)
	parsed.RawQuery = query.Encode()

	return parsed.String()
}

// ReplaceParam rebuilds rawurl with a single query parameter replaced. It is
// the helper pagination templates use to derive one link per visible page.
func ReplaceParam(rawurl, name, value string) string {
	var params Query
	params.Set(name, value)
	return RebuildURL(rawurl, params)
}
