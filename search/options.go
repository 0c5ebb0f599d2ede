package search

// WithQuery sets the free-text search term. An empty term matches everything.
func WithQuery(q string) Option { return setQuery(q) }

// WithLang sets the language the query is written in.
func WithLang(lang Language) Option { return setLang(lang) }

// WithImageType filters image results by type.
func WithImageType(t ImageType) Option { return setImageType(t) }

// WithVideoType filters video results by type.
func WithVideoType(t VideoType) Option { return setVideoType(t) }

// WithOrientation filters by orientation.
func WithOrientation(o Orientation) Option { return setOrientation(o) }

// WithCategory filters by category.
func WithCategory(c Category) Option { return setCategory(c) }

// WithMinWidth sets the minimum width in pixels.
func WithMinWidth(px int) Option { return setMinWidth(px) }

// WithMinHeight sets the minimum height in pixels.
func WithMinHeight(px int) Option { return setMinHeight(px) }

// WithColors filters by one or more color properties.
func WithColors(colors ...Color) Option { return setColors(colors) }

// WithEditorsChoice restricts results to Editor's Choice media.
func WithEditorsChoice(only bool) Option { return setEditorsChoice(only) }

// WithSafeSearch restricts results to media suitable for all ages.
func WithSafeSearch(safe bool) Option { return setSafeSearch(safe) }

// WithOrder sets the result order.
func WithOrder(o Order) Option { return setOrder(o) }

// WithPage selects the result page, starting at 1.
func WithPage(page int) Option { return setPage(page) }

// WithPerPage sets the page size. Accepted values are 3 through 200.
func WithPerPage(n int) Option { return setPerPage(n) }

// Query returns the search term.
// The second result is false when unset.
func (p *Params) Query() (string, bool) { return deref(p.query) }

// Lang returns the language of the search term.
func (p *Params) Lang() (Language, bool) { return deref(p.lang) }

// ImageType returns the image type filter.
func (p *Params) ImageType() (ImageType, bool) { return deref(p.imageType) }

// VideoType returns the video type filter.
func (p *Params) VideoType() (VideoType, bool) { return deref(p.videoType) }

// Orientation returns the orientation filter.
func (p *Params) Orientation() (Orientation, bool) { return deref(p.orientation) }

// Category returns the category filter.
func (p *Params) Category() (Category, bool) { return deref(p.category) }

// MinWidth returns the minimum width in pixels.
func (p *Params) MinWidth() (int, bool) { return deref(p.minWidth) }

// MinHeight returns the minimum height in pixels.
func (p *Params) MinHeight() (int, bool) { return deref(p.minHeight) }

// Colors returns a copy of the color filter, or nil when unset.
func (p *Params) Colors() []Color {
	if p.colors == nil {
		return nil
	}
	return append([]Color(nil), p.colors...)
}

// EditorsChoice reports whether only Editor's Choice hits are requested.
func (p *Params) EditorsChoice() (bool, bool) { return deref(p.editorsChoice) }

// SafeSearch reports whether only hits suitable for all ages are requested.
func (p *Params) SafeSearch() (bool, bool) { return deref(p.safeSearch) }

// Order returns the result ordering.
func (p *Params) Order() (Order, bool) { return deref(p.order) }

// Page returns the requested page number.
func (p *Params) Page() (int, bool) { return deref(p.page) }

// PerPage returns the number of hits per page.
func (p *Params) PerPage() (int, bool) { return deref(p.perPage) }

func deref[T any](v *T) (T, bool) {
	if v == nil {
		var zero T
		return zero, false
	}
	return *v, true
}
