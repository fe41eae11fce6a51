package balldontlie

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrMalformedPayload is returned when a body cannot be parsed as JSON at all
var ErrMalformedPayload = errors.New("malformed upstream payload")

// Page is the common BallDontLie response wrapper: {"data": ..., "meta": {...}}
type Page struct {
	Data json.RawMessage `json:"data"`
	Meta json.RawMessage `json:"meta"`
}

type pageMeta struct {
	NextCursor FlexString `json:"next_cursor"`
}

// DecodePage parses the response wrapper. Only a body that is not a JSON object
// fails; missing data or meta fields are left empty.
func DecodePage(body []byte) (*Page, error) {
	var page Page
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return &page, nil
}

// NextCursor returns the opaque pagination cursor, or "" on the last page
func (p *Page) NextCursor() string {
	var meta pageMeta
	if err := json.Unmarshal(p.Meta, &meta); err != nil {
		return ""
	}
	return meta.NextCursor.String()
}

// HasData reports whether the page carries a non-null data member
func (p *Page) HasData() bool {
	trimmed := bytes.TrimSpace(p.Data)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// DecodeList decodes the data member as a list of T.
// Elements that do not decode as T are skipped; a data member that is not an
// array yields an empty, non-nil list.
func DecodeList[T any](p *Page) []T {
	out := make([]T, 0)
	if !p.HasData() {
		return out
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(p.Data, &raw); err != nil {
		return out
	}

	for _, item := range raw {
		var v T
		if err := json.Unmarshal(item, &v); err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

// DecodeObject decodes the data member as a single T.
// The bool result is false when the data member is absent, null or not an object.
func DecodeObject[T any](p *Page) (T, bool) {
	var v T
	if !p.HasData() {
		return v, false
	}
	if err := json.Unmarshal(p.Data, &v); err != nil {
		return v, false
	}
	return v, true
}

// FlexString accepts a JSON string, number or boolean. Null, objects and
// arrays decode to the empty string instead of failing.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*s = ""
		return nil
	}

	switch data[0] {
	case '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = FlexString(str)
	case 'n', '{', '[':
		*s = ""
	default:
		*s = FlexString(data)
	}
	return nil
}

// String returns the plain string value
func (s FlexString) String() string {
	return string(s)
}

// FlexInt accepts a JSON number or a numeric string. Anything else leaves it unset.
type FlexInt struct {
	Value int
	Valid bool
}

func (i *FlexInt) UnmarshalJSON(data []byte) error {
	*i = FlexInt{}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return nil
		}
		num = json.Number(str)
	}

	if v, err := num.Int64(); err == nil {
		*i = FlexInt{Value: int(v), Valid: true}
		return nil
	}
	if f, err := num.Float64(); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		*i = FlexInt{Value: int(f), Valid: true}
	}
	return nil
}

// Ptr returns a pointer to the value, or nil when unset
func (i FlexInt) Ptr() *int {
	if !i.Valid {
		return nil
	}
	v := i.Value
	return &v
}

// FlexBool accepts a JSON boolean or a "true"/"false" string
type FlexBool struct {
	Value bool
	Valid bool
}

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	*b = FlexBool{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var v bool
	if err := json.Unmarshal(data, &v); err == nil {
		*b = FlexBool{Value: v, Valid: true}
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if parsed, err := strconv.ParseBool(str); err == nil {
			*b = FlexBool{Value: parsed, Valid: true}
		}
	}
	return nil
}

// Ptr returns a pointer to the value, or nil when unset
func (b FlexBool) Ptr() *bool {
	if !b.Valid {
		return nil
	}
	v := b.Value
	return &v
}
