package booking

import (
	"context"
	"net/url"
	"strings"
)

// Mode selects which backend filter a lookup uses.
type Mode string

const (
	ModeCode  Mode = "code"
	ModePhone Mode = "phone"
)

// ParseMode accepts "code" or "phone". An empty string means ModeCode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeCode:
		return ModeCode, nil
	case ModePhone:
		return ModePhone, nil
	default:
		return "", ErrInvalidMode
	}
}

// Query is a lookup by exactly one of booking code or phone number.
type Query struct {
	mode  Mode
	value string
}

func ByCode(code string) Query   { return Query{mode: ModeCode, value: code} }
func ByPhone(phone string) Query { return Query{mode: ModePhone, value: phone} }

func (q Query) Mode() Mode    { return q.mode }
func (q Query) Value() string { return q.value }

// filter maps q to the backend's query string. It never sets both filters.
func (q Query) filter() (url.Values, error) {
	value := strings.TrimSpace(q.value)
	if value == "" {
		return nil, ErrEmptyInput
	}
	switch q.mode {
	case ModeCode:
		return url.Values{"code": {value}}, nil
	case ModePhone:
		return url.Values{"phone": {value}}, nil
	default:
		return nil, ErrInvalidMode
	}
}

// Looker performs booking lookups.
type Looker interface {
	Lookup(ctx context.Context, q Query) (*Result, error)
}

// LookupForm is the state of a booking search: the active mode, the typed
// value and the result on display.
type LookupForm struct {
	Mode   Mode
	Value  string
	Result *Result
}

func NewLookupForm() *LookupForm {
	return &LookupForm{Mode: ModeCode}
}

// SwitchMode changes the search mode. Changing to a different mode resets the
// form, clearing both the typed value and any displayed result.
func (f *LookupForm) SwitchMode(m Mode) {
	if m == f.Mode {
		return
	}
	f.Mode = m
	f.Value = ""
	f.Result = nil
}

func (f *LookupForm) SetValue(v string) {
	f.Value = v
}

// Query returns the lookup the form currently describes.
func (f *LookupForm) Query() Query {
	if f.Mode == ModePhone {
		return ByPhone(f.Value)
	}
	return ByCode(f.Value)
}

// Submit runs the lookup. The previous result is cleared first and stays
// cleared on every failure.
func (f *LookupForm) Submit(ctx context.Context, l Looker) error {
	f.Result = nil
	res, err := l.Lookup(ctx, f.Query())
	if err != nil {
		return err
	}
	f.Result = res
	return nil
}
