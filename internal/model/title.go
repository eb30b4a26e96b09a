package model

import "time"

// OrganizationRole tags the way an organization is credited on a title
type OrganizationRole string

const (
	RoleProducer OrganizationRole = "Producer"
	RoleLicensor OrganizationRole = "Licensor"
	RoleStudio   OrganizationRole = "Studio"
)

// ThemeKind tells whether a theme song plays at the opening or the ending
type ThemeKind string

const (
	ThemeOpening ThemeKind = "Opening"
	ThemeEnding  ThemeKind = "Ending"
)

// CastRole is the importance of a character in a title
type CastRole string

const (
	CastMain       CastRole = "Main"
	CastSupporting CastRole = "Supporting"
)

// Title is the aggregate built from the metadata, characters and staff of one anime
type Title struct {
	ID      int     `json:"id" validate:"gte=0"`
	URL     *string `json:"url"`
	Picture *string `json:"picture"`

	Name         *string  `json:"name"`
	NameEnglish  *string  `json:"name_english"`
	NameJapanese *string  `json:"name_japanese"`
	Synonyms     []string `json:"synonyms" validate:"required"`

	Type     *string `json:"type"`
	Source   *string `json:"source"`
	Episodes *int    `json:"episodes" validate:"omitempty,gte=0"`
	Duration *string `json:"duration"`
	Rating   *string `json:"rating"`
	Status   *string `json:"status"`
	Airing   *bool   `json:"airing"`
	Season   *string `json:"season"`
	Year     *int    `json:"year" validate:"omitempty,gte=0"`

	AiredFrom *time.Time `json:"aired_from"`
	AiredTo   *time.Time `json:"aired_to"`

	Synopsis   *string `json:"synopsis"`
	Background *string `json:"background"`

	Stats Statistics `json:"stats"`

	Genres        []Genre        `json:"genres" validate:"required,dive"`
	Organizations []Organization `json:"organizations" validate:"required,dive"`
	Themes        []Theme        `json:"themes" validate:"required,dive"`
	Relations     []Relation     `json:"relations" validate:"required,dive"`
	Characters    []CastMember   `json:"characters" validate:"required,dive"`
	Staff         []StaffCredit  `json:"staff" validate:"required,dive"`
}

// Statistics holds the community metrics of a title, each one may be unknown
type Statistics struct {
	Score      *float64 `json:"score" validate:"omitempty,gte=0,lte=10"`
	ScoredBy   *int     `json:"scored_by" validate:"omitempty,gte=0"`
	Ranked     *int     `json:"ranked" validate:"omitempty,gte=0"`
	Popularity *int     `json:"popularity" validate:"omitempty,gte=0"`
	Members    *int     `json:"members" validate:"omitempty,gte=0"`
	Favorites  *int     `json:"favorites" validate:"omitempty,gte=0"`
}

type Genre struct {
	ID   int    `json:"id" validate:"gte=0"`
	Name string `json:"name"`
}

// Organization is a company credited on a title. The same company can appear once per role.
type Organization struct {
	ID   int              `json:"id" validate:"gte=0"`
	Name string           `json:"name"`
	Role OrganizationRole `json:"role" validate:"oneof=Producer Licensor Studio"`
}

type Theme struct {
	Kind ThemeKind `json:"kind" validate:"oneof=Opening Ending"`
	Text string    `json:"text"`
}

// Relation links to another anime (sequel, prequel, side story...)
type Relation struct {
	Relation string `json:"relation"`
	ID       int    `json:"id" validate:"gte=0"`
	Name     string `json:"name"`
}
