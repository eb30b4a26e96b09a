package model

// Raw payloads as returned by the Jikan v4 API, inside the "data" envelope.
// Optional scalars are pointers so that a missing or null field stays nil.

type RawTitle struct {
	MalID         int        `json:"mal_id"`
	URL           *string    `json:"url"`
	Images        *RawImages `json:"images"`
	Title         *string    `json:"title"`
	TitleEnglish  *string    `json:"title_english"`
	TitleJapanese *string    `json:"title_japanese"`
	TitleSynonyms []string   `json:"title_synonyms"`
	Type          *string    `json:"type"`
	Source        *string    `json:"source"`
	Episodes      *int       `json:"episodes"`
	Status        *string    `json:"status"`
	Airing        *bool      `json:"airing"`
	Aired         *RawAired  `json:"aired"`
	Duration      *string    `json:"duration"`
	Rating        *string    `json:"rating"`
	Score         *float64   `json:"score"`
	ScoredBy      *int       `json:"scored_by"`
	Rank          *int       `json:"rank"`
	Popularity    *int       `json:"popularity"`
	Members       *int       `json:"members"`
	Favorites     *int       `json:"favorites"`
	Synopsis      *string    `json:"synopsis"`
	Background    *string    `json:"background"`
	Season        *string    `json:"season"`
	Year          *int       `json:"year"`

	Genres    []RawEntity        `json:"genres"`
	Producers []RawEntity        `json:"producers"`
	Licensors []RawEntity        `json:"licensors"`
	Studios   []RawEntity        `json:"studios"`
	Theme     *RawTheme          `json:"theme"`
	Relations []RawRelationGroup `json:"relations"`
}

// RawEntity is the {mal_id, type, name, url} shape shared by genres, companies and relation entries
type RawEntity struct {
	MalID int    `json:"mal_id"`
	Type  string `json:"type"`
	Name  string `json:"name"`
	URL   string `json:"url"`
}

type RawImages struct {
	JPG  *RawImage `json:"jpg"`
	WebP *RawImage `json:"webp"`
}

type RawImage struct {
	ImageURL      *string `json:"image_url"`
	SmallImageURL *string `json:"small_image_url"`
	LargeImageURL *string `json:"large_image_url"`
}

type RawAired struct {
	From *string `json:"from"`
	To   *string `json:"to"`
}

type RawTheme struct {
	Openings []string `json:"openings"`
	Endings  []string `json:"endings"`
}

type RawRelationGroup struct {
	Relation string      `json:"relation"`
	Entry    []RawEntity `json:"entry"`
}

type RawPerson struct {
	MalID  int        `json:"mal_id"`
	URL    string     `json:"url"`
	Images *RawImages `json:"images"`
	Name   string     `json:"name"`
}

type RawCharacter struct {
	Character   RawPerson       `json:"character"`
	Role        string          `json:"role"`
	Favorites   *int            `json:"favorites"`
	VoiceActors []RawVoiceActor `json:"voice_actors"`
}

type RawVoiceActor struct {
	Person   RawPerson `json:"person"`
	Language string    `json:"language"`
}

type RawStaff struct {
	Person    RawPerson `json:"person"`
	Positions []string  `json:"positions"`
}

// RawSearchResult is one entry of an anime search
type RawSearchResult struct {
	MalID   int     `json:"mal_id"`
	Title   *string `json:"title"`
	Members *int    `json:"members"`
}
