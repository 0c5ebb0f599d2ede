// Package search builds validated search parameters for the media API.
package search

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/YspCoder/pixabay/dto"
	"github.com/YspCoder/pixabay/validation"
)

const subject = "SearchParams"

// Params is an immutable, validated set of optional search criteria.
// Unset criteria are left to the API defaults.
type Params struct {
	query         *string
	lang          *Language
	imageType     *ImageType
	videoType     *VideoType
	orientation   *Orientation
	category      *Category
	minWidth      *int
	minHeight     *int
	colors        []Color
	editorsChoice *bool
	safeSearch    *bool
	order         *Order
	page          *int
	perPage       *int
}

// Option sets one criterion after validating it.
type Option func(*Params) error

// New returns Params with opts applied in order. The first invalid option
// aborts construction and its error is returned.
func New(opts ...Option) (*Params, error) {
	return (&Params{}).With(opts...)
}

// With returns a copy of p with opts applied. p itself is never modified.
func (p *Params) With(opts ...Option) (*Params, error) {
	next := p.clone()
	for _, opt := range opts {
		if err := opt(next); err != nil {
			return nil, err
		}
	}
	return next, nil
}

// FromMap builds Params from loosely named keys. Keys are matched case
// insensitively with underscores ignored, so "min_width", "MinWidth" and
// "width" all set the minimum width. Nil values are treated as not provided.
// Keys are processed in sorted order so that the reported error is stable.
func FromMap(raw map[string]interface{}) (*Params, error) {
	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	opts := make([]Option, 0, len(keys))
	for _, key := range keys {
		setter, ok := aliases[normalizeKey(key)]
		if !ok {
			return nil, &dto.Error{
				Kind:    dto.KindUnsupportedParameter,
				Param:   key,
				Message: "unsupported search parameter supplied: " + key,
			}
		}
		if raw[key] == nil {
			continue
		}
		opts = append(opts, setter(raw[key]))
	}
	return New(opts...)
}

func normalizeKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), "_", "")
}

var aliases = map[string]func(interface{}) Option{
	"q":             setQuery,
	"query":         setQuery,
	"lang":          setLang,
	"language":      setLang,
	"image":         setImageType,
	"imagetype":     setImageType,
	"video":         setVideoType,
	"videotype":     setVideoType,
	"orientation":   setOrientation,
	"category":      setCategory,
	"width":         setMinWidth,
	"minwidth":      setMinWidth,
	"height":        setMinHeight,
	"minheight":     setMinHeight,
	"color":         setColors,
	"colors":        setColors,
	"editorschoice": setEditorsChoice,
	"safesearch":    setSafeSearch,
	"order":         setOrder,
	"page":          setPage,
	"perpage":       setPerPage,
}

var (
	setQuery       = stringField("query", "string", func(p *Params, v string) { p.query = &v })
	setLang        = stringField("lang", setRule(languages), func(p *Params, v string) { l := Language(v); p.lang = &l })
	setImageType   = stringField("imageType", setRule(imageTypes), func(p *Params, v string) { t := ImageType(v); p.imageType = &t })
	setVideoType   = stringField("videoType", setRule(videoTypes), func(p *Params, v string) { t := VideoType(v); p.videoType = &t })
	setOrientation = stringField("orientation", setRule(orientations), func(p *Params, v string) { o := Orientation(v); p.orientation = &o })
	setCategory    = stringField("category", setRule(categories), func(p *Params, v string) { c := Category(v); p.category = &c })
	setOrder       = stringField("order", setRule(orders), func(p *Params, v string) { o := Order(v); p.order = &o })

	setMinWidth  = intField("minWidth", "nonNegativeInteger", func(p *Params, v int) { p.minWidth = &v })
	setMinHeight = intField("minHeight", "nonNegativeInteger", func(p *Params, v int) { p.minHeight = &v })
	setPage      = intField("page", "positiveInteger", func(p *Params, v int) { p.page = &v })
	setPerPage   = intField("perPage", "integer:3,200", func(p *Params, v int) { p.perPage = &v })

	setEditorsChoice = boolField("editorsChoice", func(p *Params, v bool) { p.editorsChoice = &v })
	setSafeSearch    = boolField("safeSearch", func(p *Params, v bool) { p.safeSearch = &v })
)

func setColors(value interface{}) Option {
	return func(p *Params) error {
		members := colorList(value)
		if err := validation.Assert(subject+".colors", members, "nonEmptyArray", setRule(colors)); err != nil {
			return err
		}
		list := make([]Color, len(members))
		for i, m := range members {
			list[i] = Color(stringValue(m))
		}
		p.colors = list
		return nil
	}
}

// colorList accepts a single color, a comma separated list, or a slice.
func colorList(value interface{}) []interface{} {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		parts := strings.Split(rv.String(), ",")
		members := make([]interface{}, len(parts))
		for i, part := range parts {
			members[i] = strings.TrimSpace(part)
		}
		return members
	case reflect.Slice, reflect.Array:
		members := make([]interface{}, rv.Len())
		for i := range members {
			members[i] = rv.Index(i).Interface()
		}
		return members
	default:
		return []interface{}{value}
	}
}

func stringField(name, rules string, commit func(*Params, string)) func(interface{}) Option {
	return func(value interface{}) Option {
		return func(p *Params) error {
			if err := validation.Assert(subject+"."+name, value, rules); err != nil {
				return err
			}
			commit(p, stringValue(value))
			return nil
		}
	}
}

func intField(name, rules string, commit func(*Params, int)) func(interface{}) Option {
	return func(value interface{}) Option {
		return func(p *Params) error {
			if err := validation.Assert(subject+"."+name, value, rules); err != nil {
				return err
			}
			commit(p, intValue(value))
			return nil
		}
	}
}

func boolField(name string, commit func(*Params, bool)) func(interface{}) Option {
	return func(value interface{}) Option {
		return func(p *Params) error {
			if err := validation.Assert(subject+"."+name, value, "boolean"); err != nil {
				return err
			}
			commit(p, reflect.Indirect(reflect.ValueOf(value)).Bool())
			return nil
		}
	}
}

func stringValue(value interface{}) string {
	rv := reflect.Indirect(reflect.ValueOf(value))
	if rv.Kind() == reflect.String {
		return rv.String()
	}
	return fmt.Sprint(value)
}

// intValue converts an integer of any width; callers validate first.
func intValue(value interface{}) int {
	rv := reflect.Indirect(reflect.ValueOf(value))
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(rv.Uint())
	default:
		return int(rv.Int())
	}
}

func (p *Params) clone() *Params {
	next := &Params{}
	if p != nil {
		*next = *p
		if p.colors != nil {
			next.colors = append([]Color(nil), p.colors...)
		}
	}
	return next
}
