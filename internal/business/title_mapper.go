package business

import (
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/Agurato/animeta/internal/infrastructure"
	"github.com/Agurato/animeta/internal/model"
)

// sameMediaType is the relation entry type kept when mapping related titles
const sameMediaType = "anime"

// MapTitle merges the three raw payloads of an anime into a Title
func MapTitle(raw model.RawTitle, characters []model.RawCharacter, staff []model.RawStaff) (*model.Title, error) {
	airedFrom, airedTo, err := mapAired(raw.Aired)
	if err != nil {
		return nil, err
	}
	cast, err := MapCharacters(characters)
	if err != nil {
		return nil, err
	}

	return &model.Title{
		ID:      raw.MalID,
		URL:     raw.URL,
		Picture: mainPicture(raw.Images),

		Name:         raw.Title,
		NameEnglish:  raw.TitleEnglish,
		NameJapanese: raw.TitleJapanese,
		Synonyms:     orEmpty(raw.TitleSynonyms),

		Type:     raw.Type,
		Source:   raw.Source,
		Episodes: raw.Episodes,
		Duration: raw.Duration,
		Rating:   raw.Rating,
		Status:   raw.Status,
		Airing:   raw.Airing,
		Season:   raw.Season,
		Year:     raw.Year,

		AiredFrom: airedFrom,
		AiredTo:   airedTo,

		Synopsis:   raw.Synopsis,
		Background: raw.Background,

		Stats: model.Statistics{
			Score:      raw.Score,
			ScoredBy:   raw.ScoredBy,
			Ranked:     raw.Rank,
			Popularity: raw.Popularity,
			Members:    raw.Members,
			Favorites:  raw.Favorites,
		},

		Genres:        MapGenres(raw.Genres),
		Organizations: MapOrganizations(raw.Producers, raw.Licensors, raw.Studios),
		Themes:        MapThemes(raw.Theme),
		Relations:     MapRelations(raw.Relations),
		Characters:    cast,
		Staff:         MapStaff(staff),
	}, nil
}

func MapGenres(genres []model.RawEntity) []model.Genre {
	return lo.Map(orEmpty(genres), func(g model.RawEntity, _ int) model.Genre {
		return model.Genre{ID: g.MalID, Name: g.Name}
	})
}

// MapOrganizations tags every company with its role: producers first, then licensors, then studios
func MapOrganizations(producers, licensors, studios []model.RawEntity) []model.Organization {
	tag := func(role model.OrganizationRole) func(model.RawEntity, int) model.Organization {
		return func(e model.RawEntity, _ int) model.Organization {
			return model.Organization{ID: e.MalID, Name: e.Name, Role: role}
		}
	}
	orgs := make([]model.Organization, 0, len(producers)+len(licensors)+len(studios))
	orgs = append(orgs, lo.Map(producers, tag(model.RoleProducer))...)
	orgs = append(orgs, lo.Map(licensors, tag(model.RoleLicensor))...)
	orgs = append(orgs, lo.Map(studios, tag(model.RoleStudio))...)
	return orgs
}

// MapThemes lists openings before endings
func MapThemes(theme *model.RawTheme) []model.Theme {
	themes := []model.Theme{}
	if theme == nil {
		return themes
	}
	for _, text := range theme.Openings {
		themes = append(themes, model.Theme{Kind: model.ThemeOpening, Text: text})
	}
	for _, text := range theme.Endings {
		themes = append(themes, model.Theme{Kind: model.ThemeEnding, Text: text})
	}
	return themes
}

// MapRelations keeps only the related entries that are anime themselves
func MapRelations(groups []model.RawRelationGroup) []model.Relation {
	return lo.FlatMap(orEmpty(groups), func(group model.RawRelationGroup, _ int) []model.Relation {
		sameType := lo.Filter(group.Entry, func(e model.RawEntity, _ int) bool {
			return e.Type == sameMediaType
		})
		return lo.Map(sameType, func(e model.RawEntity, _ int) model.Relation {
			return model.Relation{Relation: group.Relation, ID: e.MalID, Name: e.Name}
		})
	})
}

// MapCharacters maps the cast, rejecting any role outside of Main and Supporting
func MapCharacters(characters []model.RawCharacter) ([]model.CastMember, error) {
	cast := make([]model.CastMember, 0, len(characters))
	for _, c := range characters {
		role := model.CastRole(c.Role)
		if role != model.CastMain && role != model.CastSupporting {
			return nil, &infrastructure.MalformedResponseError{
				Reason: fmt.Sprintf("character %d has unknown role %q", c.Character.MalID, c.Role),
			}
		}
		cast = append(cast, model.CastMember{
			Character: mapPerson(c.Character),
			Role:      role,
			VoiceActors: lo.Map(orEmpty(c.VoiceActors), func(va model.RawVoiceActor, _ int) model.VoiceActor {
				return model.VoiceActor{Person: mapPerson(va.Person), Language: va.Language}
			}),
		})
	}
	return cast, nil
}

// MapStaff emits one credit per position of every staff member
func MapStaff(staff []model.RawStaff) []model.StaffCredit {
	return lo.FlatMap(orEmpty(staff), func(s model.RawStaff, _ int) []model.StaffCredit {
		person := mapPerson(s.Person)
		return lo.Map(s.Positions, func(position string, _ int) model.StaffCredit {
			return model.StaffCredit{Person: person, Role: position}
		})
	})
}

func mapPerson(p model.RawPerson) model.Person {
	return model.Person{
		ID:    p.MalID,
		Name:  p.Name,
		Image: firstImage(p.Images),
	}
}

// mainPicture prefers the large jpg variant
func mainPicture(images *model.RawImages) *string {
	if images == nil || images.JPG == nil {
		return nil
	}
	if url := images.JPG.LargeImageURL; url != nil && *url != "" {
		return url
	}
	return nonEmpty(images.JPG.ImageURL)
}

// firstImage returns the first standard image URL available, jpg then webp
func firstImage(images *model.RawImages) *string {
	if images == nil {
		return nil
	}
	for _, img := range []*model.RawImage{images.JPG, images.WebP} {
		if img == nil {
			continue
		}
		if url := nonEmpty(img.ImageURL); url != nil {
			return url
		}
	}
	return nil
}

func mapAired(aired *model.RawAired) (from, to *time.Time, err error) {
	if aired == nil {
		return nil, nil, nil
	}
	if from, err = parseInstant(aired.From); err != nil {
		return nil, nil, err
	}
	if to, err = parseInstant(aired.To); err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

func parseInstant(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *value)
	if err != nil {
		return nil, &infrastructure.MalformedResponseError{Reason: "invalid date " + *value, Err: err}
	}
	return &t, nil
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
