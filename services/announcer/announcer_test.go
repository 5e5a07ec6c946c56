package announcer

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"famgo/mogoherald/internal/events"
	"famgo/mogoherald/internal/message"
)

type fakeFetcher struct {
	html string
	err  error
}

func (f *fakeFetcher) Fetch(context.Context, string) (string, error) {
	return f.html, f.err
}

type fakeExtractor struct {
	page *events.EventPage
}

func (f *fakeExtractor) Extract(string) *events.EventPage {
	return f.page
}

type fakePoster struct {
	payloads []message.Payload
	texts    []string
	postErr  error
}

func (p *fakePoster) Post(payload message.Payload) error {
	if p.postErr != nil {
		return p.postErr
	}
	p.payloads = append(p.payloads, payload)
	return nil
}

func (p *fakePoster) PostText(content string) error {
	p.texts = append(p.texts, content)
	return nil
}

type fakePublisher struct {
	keys    []string
	trimmed int
}

func (p *fakePublisher) Publish(key string, _ []byte) error {
	p.keys = append(p.keys, key)
	return nil
}

func (p *fakePublisher) TrimStreams() error {
	p.trimmed++
	return nil
}

func (p *fakePublisher) Close() error { return nil }

func tournamentPage() *events.EventPage {
	page := &events.EventPage{Title: "Today's Events"}
	page.AddItem(events.SectionTournaments,
		"**Pirate Plunder** — 08/30/2026, 09:00:00 AM → 08/31/2026, 09:00:00 AM  •  Duration: 01:00:00  •  dice x500")
	return page
}

func TestRun_PostsAndPublishes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	date := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	resolver := events.NewResolver(server.URL, time.UTC, nil)
	poster := &fakePoster{}
	pub := &fakePublisher{}

	a := New(resolver, &fakeFetcher{html: "<html></html>"}, &fakeExtractor{page: tournamentPage()},
		events.NewFormatter(), poster, pub, time.UTC)

	err := a.Run(context.Background(), date)
	require.NoError(t, err)

	require.Len(t, poster.payloads, 1)
	assert.Empty(t, poster.texts)
	require.Len(t, poster.payloads[0].Embeds, 1)
	assert.Contains(t, poster.payloads[0].Embeds[0].Title, "Monopoly GO! Events")

	assert.Equal(t, []string{resolver.Slug(date)}, pub.keys)
	assert.Equal(t, 1, pub.trimmed)
}

func TestRun_NoPageYetPostsDegradedNotice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	resolver := events.NewResolver(server.URL, time.UTC, nil)
	poster := &fakePoster{}

	a := New(resolver, &fakeFetcher{}, &fakeExtractor{}, events.NewFormatter(), poster, nil, time.UTC)

	err := a.Run(context.Background(), time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Empty(t, poster.payloads)
	require.Len(t, poster.texts, 1)
	assert.Contains(t, poster.texts[0], "No event page published yet")
	assert.Contains(t, poster.texts[0], resolver.IndexURL())
}

func TestRun_FetchFailureDegradesToNotice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	resolver := events.NewResolver(server.URL, time.UTC, nil)
	poster := &fakePoster{}

	a := New(resolver, &fakeFetcher{err: errors.New("connection reset")},
		&fakeExtractor{}, events.NewFormatter(), poster, nil, time.UTC)

	err := a.Run(context.Background(), time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Empty(t, poster.payloads)
	require.Len(t, poster.texts, 1)
	assert.Contains(t, poster.texts[0], "Couldn't fetch")
}

func TestRun_CancelledContextSurfaces(t *testing.T) {
	resolver := events.NewResolver("http://127.0.0.1:0", time.UTC, nil)
	poster := &fakePoster{}

	a := New(resolver, &fakeFetcher{}, &fakeExtractor{}, events.NewFormatter(), poster, nil, time.UTC)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := a.Run(ctx, time.Now())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDigest_ReturnsSummary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	resolver := events.NewResolver(server.URL, time.UTC, nil)

	a := New(resolver, &fakeFetcher{html: "<html></html>"}, &fakeExtractor{page: tournamentPage()},
		events.NewFormatter(), &fakePoster{}, nil, time.UTC)

	digest, err := a.Digest(context.Background(), time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(digest, "Tournaments: "))
	assert.Contains(t, digest, "Pirate Plunder")
}

func TestDigest_NoPageReturnsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	resolver := events.NewResolver(server.URL, time.UTC, nil)

	a := New(resolver, &fakeFetcher{}, &fakeExtractor{}, events.NewFormatter(), &fakePoster{}, nil, time.UTC)

	digest, err := a.Digest(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Empty(t, digest)
}
