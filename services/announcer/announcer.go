// Package announcer runs one announcement: resolve the day's page, fetch it,
// extract, format, and deliver. Resolution misses and fetch failures degrade
// to a plain notice instead of failing the run.
package announcer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"famgo/mogoherald/internal/events"
	"famgo/mogoherald/internal/fetch"
	"famgo/mogoherald/internal/message"
	"famgo/mogoherald/logger"
	"famgo/mogoherald/pkg/errors"
	"famgo/mogoherald/services/publisher"
)

// Poster delivers the finished payload to a chat surface
type Poster interface {
	Post(payload message.Payload) error
	PostText(content string) error
}

// Announcer wires the pipeline stages together for one run
type Announcer struct {
	Resolver  *events.Resolver
	Fetcher   fetch.Fetcher
	Extractor events.Extractor
	Formatter *events.Formatter
	Poster    Poster

	// Publisher is optional fan-out of the rendered payload
	Publisher publisher.Publisher

	// Location is the reference timezone for date labels
	Location *time.Location

	// DumpDir, when set, receives a copy of each fetched page for debugging
	DumpDir string

	log *logger.Logger
}

// New creates an announcer; publisher may be nil
func New(resolver *events.Resolver, fetcher fetch.Fetcher, extractor events.Extractor, formatter *events.Formatter, poster Poster, pub publisher.Publisher, loc *time.Location) *Announcer {
	if loc == nil {
		loc = time.UTC
	}
	return &Announcer{
		Resolver:  resolver,
		Fetcher:   fetcher,
		Extractor: extractor,
		Formatter: formatter,
		Poster:    poster,
		Publisher: pub,
		Location:  loc,
		log:       logger.ForComponent("announcer"),
	}
}

// Run executes one announcement for date. The returned error is nil for
// degraded-but-delivered outcomes; only delivery failures and cancellation
// surface.
func (a *Announcer) Run(ctx context.Context, date time.Time) error {
	slug := a.Resolver.Slug(date)
	log := a.log.WithField("slug", slug)

	url, err := a.Resolver.Resolve(ctx, date)
	if err != nil {
		return err
	}
	if url == "" {
		log.Info().Msg("no page published yet, posting degraded notice")
		notice := fmt.Sprintf("No event page published yet for %s. Keep an eye on %s",
			events.PrettyDate(date, a.Location), a.Resolver.IndexURL())
		return a.Poster.PostText(notice)
	}

	html, err := a.Fetcher.Fetch(ctx, url)
	if err != nil {
		log.Error().Err(err).Str("url", url).Msg("page fetch failed")
		notice := fmt.Sprintf("Couldn't fetch today's event page (%s): %v", url, err)
		if postErr := a.Poster.PostText(notice); postErr != nil {
			return postErr
		}
		return nil
	}
	a.dump(slug, html)

	page := a.Extractor.Extract(html)
	payload := a.Formatter.Format(page, url)

	if payload.Empty() {
		log.Warn().Str("url", url).Msg("page produced an empty payload, skipping send")
		return nil
	}

	if err := a.Poster.Post(payload); err != nil {
		return err
	}
	log.Info().Str("url", url).Int("embeds", len(payload.Embeds)).Msg("announcement posted")

	a.publish(slug, payload)
	return nil
}

// Digest builds the one-line summary used by length-limited chat surfaces.
// An empty string with nil error means no page exists yet.
func (a *Announcer) Digest(ctx context.Context, date time.Time) (string, error) {
	url, err := a.Resolver.Resolve(ctx, date)
	if err != nil || url == "" {
		return "", err
	}

	html, err := a.Fetcher.Fetch(ctx, url)
	if err != nil {
		return "", errors.NewNetwork("digest", "page fetch failed", err)
	}

	page := a.Extractor.Extract(html)
	return events.Summary(page), nil
}

// publish fans the payload out to the stream; failures are logged only
func (a *Announcer) publish(slug string, payload message.Payload) {
	if a.Publisher == nil {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		a.log.Error().Err(err).Msg("payload marshal failed")
		return
	}
	if err := a.Publisher.Publish(slug, data); err != nil {
		a.log.Error().Err(err).Msg("payload publish failed")
		return
	}
	if err := a.Publisher.TrimStreams(); err != nil {
		a.log.Error().Err(err).Msg("stream trim failed")
	}
}

// dump writes the fetched HTML for offline inspection when DumpDir is set
func (a *Announcer) dump(slug, html string) {
	if a.DumpDir == "" {
		return
	}
	path := filepath.Join(a.DumpDir, "event-"+slug+".html")
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		a.log.Warn().Err(err).Str("path", path).Msg("debug dump failed")
	}
}
