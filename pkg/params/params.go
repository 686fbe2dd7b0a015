// Package params substitutes placeholder tokens with caller supplied values.
package params

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strconv"

	"github.com/leapstack-labs/sqlfmt/pkg/token"
)

// Params is a source of placeholder values: either a positional list or a
// keyed map. The zero value and a nil *Params resolve nothing.
type Params struct {
	list  []any
	named map[string]any
}

// Positional returns params indexed by position.
func Positional(values ...any) *Params {
	return &Params{list: values}
}

// Named returns params looked up by key. Numbered placeholders use the
// digits as the key, so {"0": "a", "1": "b"} serves ?0 and ?1.
func Named(values map[string]any) *Params {
	return &Params{named: values}
}

// From adapts a decoded value (JSON, YAML or koanf) into Params.
// Slices become positional params and maps become named params.
// Nil, and values of any other shape, yield nil.
func From(v any) *Params {
	switch v := v.(type) {
	case nil:
		return nil
	case *Params:
		return v
	case []any:
		return Positional(v...)
	case []string:
		list := make([]any, len(v))
		for i, s := range v {
			list[i] = s
		}
		return Positional(list...)
	case map[string]any:
		return Named(v)
	case map[string]string:
		named := make(map[string]any, len(v))
		for k, s := range v {
			named[k] = s
		}
		return Named(named)
	}

	// Maps keyed by non-strings, e.g. YAML's map[any]any or map[int]any.
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		named := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			named[fmt.Sprint(iter.Key().Interface())] = iter.Value().Interface()
		}
		return Named(named)
	case reflect.Slice, reflect.Array:
		list := make([]any, rv.Len())
		for i := range list {
			list[i] = rv.Index(i).Interface()
		}
		return Positional(list...)
	}
	return nil
}

// Len returns the number of values.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	if p.named != nil {
		return len(p.named)
	}
	return len(p.list)
}

// Keys returns the sorted keys of named params, or the indexes of positional ones.
func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}
	if p.named != nil {
		return slices.Sorted(maps.Keys(p.named))
	}
	keys := make([]string, len(p.list))
	for i := range p.list {
		keys[i] = strconv.Itoa(i)
	}
	return keys
}

// lookup returns the value stored under key.
func (p *Params) lookup(key string) (any, bool) {
	if p == nil {
		return nil, false
	}
	if p.named != nil {
		v, ok := p.named[key]
		return v, ok
	}
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 || i >= len(p.list) {
		return nil, false
	}
	return p.list[i], true
}

// Resolve returns a copy of tokens with placeholders replaced by their values.
//
// Keyed placeholders look up their key. Anonymous placeholders consume values
// in order through a cursor that advances on every anonymous placeholder,
// resolved or not. Placeholders without a value are left untouched.
func Resolve(tokens []token.Token, p *Params) []token.Token {
	out := slices.Clone(tokens)
	walk(out, p, func(i int, v any) {
		out[i].Text = Render(v)
	}, nil)
	return out
}

// Missing counts the placeholders in tokens that p has no value for.
func Missing(tokens []token.Token, p *Params) int {
	n := 0
	walk(tokens, p, nil, func(int) { n++ })
	return n
}

func walk(tokens []token.Token, p *Params, found func(int, any), missing func(int)) {
	cursor := 0
	for i, tok := range tokens {
		if tok.Category != token.Placeholder {
			continue
		}
		key := tok.Key
		if tok.Anonymous() {
			key = strconv.Itoa(cursor)
			cursor++
		}
		v, ok := p.lookup(key)
		switch {
		case ok && found != nil:
			found(i, v)
		case !ok && missing != nil:
			missing(i)
		}
	}
}

// Render returns the literal SQL text for a value. Values are inserted raw:
// strings are not quoted or escaped.
func Render(v any) string {
	switch v := v.(type) {
	case nil:
		return "NULL"
	case string:
		return v
	case bool:
		if v {
			return "TRUE"
		}
		return "FALSE"
	case int:
		return strconv.Itoa(v)
	case int8, int16, int32, int64:
		return strconv.FormatInt(reflect.ValueOf(v).Int(), 10)
	case uint, uint8, uint16, uint32, uint64:
		return strconv.FormatUint(reflect.ValueOf(v).Uint(), 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
