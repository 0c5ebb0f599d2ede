package search

// WireForm is the query-string representation of Params. Nil fields were
// not provided and are left out of the request entirely.
type WireForm struct {
	Query         *string  `url:"q,omitempty"`
	Lang          *string  `url:"lang,omitempty"`
	ImageType     *string  `url:"imageType,omitempty"`
	VideoType     *string  `url:"video_type,omitempty"`
	Orientation   *string  `url:"orientation,omitempty"`
	Category      *string  `url:"category,omitempty"`
	MinWidth      *int     `url:"min_width,omitempty"`
	MinHeight     *int     `url:"min_height,omitempty"`
	Colors        []string `url:"colors,comma,omitempty"`
	EditorsChoice *bool    `url:"editors_choice,omitempty"`
	SafeSearch    *bool    `url:"safesearch,omitempty"`
	Order         *string  `url:"order,omitempty"`
	Page          *int     `url:"page,omitempty"`
	PerPage       *int     `url:"per_page,omitempty"`
}

// WireForm converts p into its wire representation.
func (p *Params) WireForm() WireForm {
	if p == nil {
		return WireForm{}
	}
	form := WireForm{
		Query:         copyPtr(p.query),
		Lang:          toString(p.lang),
		ImageType:     toString(p.imageType),
		VideoType:     toString(p.videoType),
		Orientation:   toString(p.orientation),
		Category:      toString(p.category),
		MinWidth:      copyPtr(p.minWidth),
		MinHeight:     copyPtr(p.minHeight),
		EditorsChoice: copyPtr(p.editorsChoice),
		SafeSearch:    copyPtr(p.safeSearch),
		Order:         toString(p.order),
		Page:          copyPtr(p.page),
		PerPage:       copyPtr(p.perPage),
	}
	if p.colors != nil {
		form.Colors = make([]string, len(p.colors))
		for i, c := range p.colors {
			form.Colors[i] = string(c)
		}
	}
	return form
}

// Map returns the set fields keyed by wire name. Booleans stay booleans;
// string encoding is left to the transport.
func (w WireForm) Map() map[string]interface{} {
	m := make(map[string]interface{})
	putString(m, "q", w.Query)
	putString(m, "lang", w.Lang)
	putString(m, "imageType", w.ImageType)
	putString(m, "video_type", w.VideoType)
	putString(m, "orientation", w.Orientation)
	putString(m, "category", w.Category)
	putInt(m, "min_width", w.MinWidth)
	putInt(m, "min_height", w.MinHeight)
	if w.Colors != nil {
		m["colors"] = append([]string(nil), w.Colors...)
	}
	if w.EditorsChoice != nil {
		m["editors_choice"] = *w.EditorsChoice
	}
	if w.SafeSearch != nil {
		m["safesearch"] = *w.SafeSearch
	}
	putString(m, "order", w.Order)
	putInt(m, "page", w.Page)
	putInt(m, "per_page", w.PerPage)
	return m
}

func toString[T ~string](v *T) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}

func copyPtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func putString(m map[string]interface{}, key string, v *string) {
	if v != nil {
		m[key] = *v
	}
}

func putInt(m map[string]interface{}, key string, v *int) {
	if v != nil {
		m[key] = *v
	}
}
