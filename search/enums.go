package search

import "strings"

// Language is the code of the language to search in.
type Language string

const (
	LangCS Language = "cs"
	LangDA Language = "da"
	LangDE Language = "de"
	LangEN Language = "en"
	LangES Language = "es"
	LangFR Language = "fr"
	LangID Language = "id"
	LangIT Language = "it"
	LangHU Language = "hu"
	LangNL Language = "nl"
	LangNO Language = "no"
	LangPL Language = "pl"
	LangPT Language = "pt"
	LangRO Language = "ro"
	LangSK Language = "sk"
	LangFI Language = "fi"
	LangSV Language = "sv"
	LangTR Language = "tr"
	LangVI Language = "vi"
	LangTH Language = "th"
	LangBG Language = "bg"
	LangRU Language = "ru"
	LangEL Language = "el"
	LangJA Language = "ja"
	LangKO Language = "ko"
	LangZH Language = "zh"
)

// ImageType filters image results.
type ImageType string

const (
	ImageTypeAll          ImageType = "all"
	ImageTypePhoto        ImageType = "photo"
	ImageTypeIllustration ImageType = "illustration"
)

// VideoType filters video results.
type VideoType string

const (
	VideoTypeAll       VideoType = "all"
	VideoTypeFilm      VideoType = "film"
	VideoTypeAnimation VideoType = "animation"
)

// Orientation filters by aspect.
type Orientation string

const (
	OrientationAll        Orientation = "all"
	OrientationHorizontal Orientation = "horizontal"
	OrientationVertical   Orientation = "vertical"
)

// Category filters by subject.
type Category string

const (
	CategoryFashion        Category = "fashion"
	CategoryNature         Category = "nature"
	CategoryBackgrounds    Category = "backgrounds"
	CategoryScience        Category = "science"
	CategoryEducation      Category = "education"
	CategoryPeople         Category = "people"
	CategoryFeelings       Category = "feelings"
	CategoryReligion       Category = "religion"
	CategoryHealth         Category = "health"
	CategoryPlaces         Category = "places"
	CategoryAnimals        Category = "animals"
	CategoryIndustry       Category = "industry"
	CategoryFood           Category = "food"
	CategoryComputer       Category = "computer"
	CategorySports         Category = "sports"
	CategoryTransportation Category = "transportation"
	CategoryTravel         Category = "travel"
	CategoryBuildings      Category = "buildings"
	CategoryBusiness       Category = "business"
	CategoryMusic          Category = "music"
)

// Color filters by color properties.
type Color string

const (
	ColorGrayscale   Color = "grayscale"
	ColorTransparent Color = "transparent"
	ColorRed         Color = "red"
	ColorOrange      Color = "orange"
	ColorYellow      Color = "yellow"
	ColorGreen       Color = "green"
	ColorTurquoise   Color = "turquoise"
	ColorBlue        Color = "blue"
	ColorLilac       Color = "lilac"
	ColorPink        Color = "pink"
	ColorWhite       Color = "white"
	ColorGray        Color = "gray"
	ColorBlack       Color = "black"
	ColorBrown       Color = "brown"
)

// Order sets the result ordering.
type Order string

const (
	OrderPopular Order = "popular"
	OrderLatest  Order = "latest"
)

var (
	languages    = []Language{LangCS, LangDA, LangDE, LangEN, LangES, LangFR, LangID, LangIT, LangHU, LangNL, LangNO, LangPL, LangPT, LangRO, LangSK, LangFI, LangSV, LangTR, LangVI, LangTH, LangBG, LangRU, LangEL, LangJA, LangKO, LangZH}
	imageTypes   = []ImageType{ImageTypeAll, ImageTypePhoto, ImageTypeIllustration}
	videoTypes   = []VideoType{VideoTypeAll, VideoTypeFilm, VideoTypeAnimation}
	orientations = []Orientation{OrientationAll, OrientationHorizontal, OrientationVertical}
	categories   = []Category{CategoryFashion, CategoryNature, CategoryBackgrounds, CategoryScience, CategoryEducation, CategoryPeople, CategoryFeelings, CategoryReligion, CategoryHealth, CategoryPlaces, CategoryAnimals, CategoryIndustry, CategoryFood, CategoryComputer, CategorySports, CategoryTransportation, CategoryTravel, CategoryBuildings, CategoryBusiness, CategoryMusic}
	colors       = []Color{ColorGrayscale, ColorTransparent, ColorRed, ColorOrange, ColorYellow, ColorGreen, ColorTurquoise, ColorBlue, ColorLilac, ColorPink, ColorWhite, ColorGray, ColorBlack, ColorBrown}
	orders       = []Order{OrderPopular, OrderLatest}
)

// setRule renders the allowed values as a "set:" rule.
func setRule[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return "set:" + strings.Join(parts, ",")
}
