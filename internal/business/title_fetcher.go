package business

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/Agurato/animeta/internal/model"
)

const (
	DefaultRequestInterval = time.Second
	defaultSearchLimit     = 10
	titleResource          = "/anime/"
)

var ErrTitleNotFound = errors.New("title not found")

// TitleGateway fetches a path of the upstream API and decodes its payload into v
type TitleGateway interface {
	Get(ctx context.Context, path string, v any) error
}

// TitleFetcher paces every upstream request through one limiter shared by all its callers
type TitleFetcher struct {
	TitleGateway
	requestInterval time.Duration
	pacer           *rate.Limiter
}

type TitleFetcherOption func(*TitleFetcher)

// WithRequestInterval sets the minimum time between the start of two upstream requests.
// Zero or less disables pacing.
func WithRequestInterval(interval time.Duration) TitleFetcherOption {
	return func(tf *TitleFetcher) {
		tf.requestInterval = interval
	}
}

func NewTitleFetcher(gateway TitleGateway, opts ...TitleFetcherOption) *TitleFetcher {
	tf := &TitleFetcher{
		TitleGateway:    gateway,
		requestInterval: DefaultRequestInterval,
	}
	for _, opt := range opts {
		opt(tf)
	}
	tf.pacer = newPacer(tf.requestInterval)
	return tf
}

// newPacer returns a limiter letting the first request through and spacing the next ones
func newPacer(interval time.Duration) *rate.Limiter {
	if interval <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(interval), 1)
}

// fetch waits for the pacer then gets the path
func (tf TitleFetcher) fetch(ctx context.Context, path string, v any) error {
	if err := tf.pacer.Wait(ctx); err != nil {
		return err
	}
	return tf.TitleGateway.Get(ctx, path, v)
}

// GetFullTitleDetails fetches the metadata, characters and staff of an anime, one request after
// the other, and merges them into a validated Title
func (tf TitleFetcher) GetFullTitleDetails(ctx context.Context, id int) (*model.Title, error) {
	var (
		raw        model.RawTitle
		characters []model.RawCharacter
		staff      []model.RawStaff
		base       = titleResource + strconv.Itoa(id)
	)

	if err := tf.fetch(ctx, base+"/full", &raw); err != nil {
		return nil, fmt.Errorf("fetch title %d: %w", id, err)
	}
	if err := tf.fetch(ctx, base+"/characters", &characters); err != nil {
		return nil, fmt.Errorf("fetch characters of title %d: %w", id, err)
	}
	if err := tf.fetch(ctx, base+"/staff", &staff); err != nil {
		return nil, fmt.Errorf("fetch staff of title %d: %w", id, err)
	}

	title, err := MapTitle(raw, characters, staff)
	if err != nil {
		return nil, fmt.Errorf("map title %d: %w", id, err)
	}
	if err := ValidateTitle(title); err != nil {
		return nil, fmt.Errorf("validate title %d: %w", id, err)
	}
	log.Debug().
		Int("malID", title.ID).
		Int("characters", len(title.Characters)).
		Int("staff", len(title.Staff)).
		Msg("Fetched title details")
	return title, nil
}

// FindTitleID searches an anime by name and returns the ID of the best match
func (tf TitleFetcher) FindTitleID(ctx context.Context, name string) (int, error) {
	query := url.Values{}
	query.Set("q", name)
	query.Set("limit", strconv.Itoa(defaultSearchLimit))

	var results []model.RawSearchResult
	if err := tf.fetch(ctx, "/anime?"+query.Encode(), &results); err != nil {
		return 0, fmt.Errorf("search %q: %w", name, err)
	}
	if len(results) == 0 {
		return 0, ErrTitleNotFound
	}

	bestID := results[0].MalID
	mostPopular := -1
	for _, res := range results {
		members := 0
		if res.Members != nil {
			members = *res.Members
		}
		if members <= mostPopular {
			continue
		}
		// Levenshtein distance so that the name corresponds at least a little bit
		resName := ""
		if res.Title != nil {
			resName = *res.Title
		}
		if levenshtein.ComputeDistance(name, resName) < len(name)/3 || mostPopular < 0 {
			bestID = res.MalID
			mostPopular = members
		}
	}
	return bestID, nil
}
