package encoding

import "strings"

// Param is a single query-string pair.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered list of query-string pairs. Order is preserved in the
// encoded output and duplicate keys are kept.
type Params []Param

// Add returns p with the pair appended.
func (p Params) Add(key, value string) Params {
	return append(p, Param{Key: key, Value: value})
}

// Encode is shorthand for BuildEncodedQueryString(p).
func (p Params) Encode() string {
	return BuildEncodedQueryString(p)
}

// BuildEncodedQueryString joins params as key=value pairs separated by '&'.
// Values are passed through URLEncode; keys are written as given.
func BuildEncodedQueryString(params Params) string {
	if len(params) == 0 {
		return ""
	}

	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(p.Key)
		b.WriteByte('=')
		b.WriteString(URLEncode(p.Value))
	}
	return b.String()
}
