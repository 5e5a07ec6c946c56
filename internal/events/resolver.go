package events

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"famgo/mogoherald/helpers"
	"famgo/mogoherald/logger"
	"famgo/mogoherald/services/cache"
)

const (
	eventPathPrefix  = "/todays-events-"
	indexPath        = "/tag/events/"
	feedPath         = "/rss/"
	cardLinkSelector = "a.gh-card-link"

	resolveCacheTTL = time.Hour
)

// Resolver locates the live event-page URL for a date. Strategies are tried
// in order (direct URL, index-page scan, RSS feed); an empty result means no
// page has been published yet, which is expected for future dates.
type Resolver struct {
	base  string
	loc   *time.Location
	cache cache.CacheService
	feed  *gofeed.Parser
	log   *logger.Logger
}

// NewResolver creates a resolver for the given site base URL. cacheSvc may be
// nil to disable memoization.
func NewResolver(base string, loc *time.Location, cacheSvc cache.CacheService) *Resolver {
	if loc == nil {
		loc = time.UTC
	}
	return &Resolver{
		base:  strings.TrimSuffix(base, "/"),
		loc:   loc,
		cache: cacheSvc,
		feed:  gofeed.NewParser(),
		log:   logger.ForComponent("resolver"),
	}
}

// Slug returns the canonical page slug for a date
func (r *Resolver) Slug(date time.Time) string {
	return DateSlug(date, r.loc)
}

// PagePrefix returns the absolute URL prefix every page for the date shares
func (r *Resolver) PagePrefix(date time.Time) string {
	return r.base + eventPathPrefix + r.Slug(date)
}

// IndexURL returns the events index page, used as the degraded fallback link
func (r *Resolver) IndexURL() string {
	return r.base + indexPath
}

// Resolve finds the event-page URL for date, or "" when none exists yet.
// The only error it returns is context cancellation; strategy failures are
// logged and treated as misses.
func (r *Resolver) Resolve(ctx context.Context, date time.Time) (string, error) {
	slug := r.Slug(date)
	prefix := r.PagePrefix(date)
	cacheKey := "resolve:" + slug

	if r.cache != nil {
		if cached, err := r.cache.Get(cacheKey); err == nil && len(cached) > 0 {
			return string(cached), nil
		}
	}

	strategies := []func(context.Context, string) string{
		r.tryDirect,
		r.tryIndex,
		r.tryFeed,
	}

	for _, strategy := range strategies {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if url := strategy(ctx, prefix); url != "" {
			if r.cache != nil {
				if err := r.cache.Set(cacheKey, []byte(url), resolveCacheTTL); err != nil {
					r.log.Debug().Err(err).Msg("resolver cache set failed")
				}
			}
			return url, nil
		}
	}

	r.log.Info().Str("slug", slug).Msg("no event page found for date")
	return "", nil
}

// tryDirect confirms the canonical URL with a plain GET; a 2xx is proof enough
func (r *Resolver) tryDirect(ctx context.Context, prefix string) string {
	url := prefix + "/"
	if _, err := helpers.FetchSimply(ctx, url); err != nil {
		r.log.Debug().Err(err).Str("url", url).Msg("direct URL miss")
		return ""
	}
	return url
}

// tryIndex scans the events index for a card link with the expected prefix.
// Listing order decides between duplicates: the first match wins.
func (r *Resolver) tryIndex(ctx context.Context, prefix string) string {
	body, err := helpers.FetchWithRandomHeaders(ctx, r.IndexURL())
	if err != nil {
		r.log.Debug().Err(err).Msg("index fetch failed")
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		r.log.Debug().Err(err).Msg("index parse failed")
		return ""
	}

	found := ""
	doc.Find(cardLinkSelector).EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href := strings.TrimSpace(a.AttrOr("href", ""))
		if href == "" {
			return true
		}
		abs := helpers.ResolveURL(href, r.base)
		if strings.HasPrefix(abs, prefix) {
			found = abs
			return false
		}
		return true
	})
	return found
}

// tryFeed scans the site RSS feed for an item link under the expected prefix
func (r *Resolver) tryFeed(ctx context.Context, prefix string) string {
	data, err := helpers.FetchSimply(ctx, r.base+feedPath)
	if err != nil {
		r.log.Debug().Err(err).Msg("feed fetch failed")
		return ""
	}

	feed, err := r.feed.Parse(bytes.NewReader(data))
	if err != nil {
		r.log.Debug().Err(err).Msg("feed parse failed")
		return ""
	}

	for _, item := range feed.Items {
		link := strings.TrimSpace(item.Link)
		if strings.HasPrefix(link, prefix+"/") {
			return link
		}
	}
	return ""
}
