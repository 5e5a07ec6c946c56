// Package twitch runs the IRC chat bot: an ordered trigger table dispatched
// on incoming messages, with per-command cooldowns backed by the cache.
package twitch

import (
	"context"
	"fmt"
	"strings"
	"time"

	twitchirc "github.com/gempir/go-twitch-irc/v4"

	"famgo/mogoherald/internal/events"
	"famgo/mogoherald/logger"
	"famgo/mogoherald/pkg/errors"
	"famgo/mogoherald/services/announcer"
	"famgo/mogoherald/services/cache"
)

// IRC messages are capped well below Discord content limits
const maxSayLength = 450

// Trigger is one chat command: a match predicate and a handler producing the
// reply text. Triggers are evaluated in order; first match wins.
type Trigger struct {
	Name    string
	Matches func(text string) bool
	Handle  func(ctx context.Context, text string) string
}

// Bot is the Twitch IRC bot
type Bot struct {
	client   *twitchirc.Client
	channel  string
	cooldown time.Duration
	cache    cache.CacheService
	triggers []Trigger
	say      func(text string)
	log      *logger.Logger
}

// Options configures the bot connection
type Options struct {
	Username string
	OAuth    string
	Channel  string
	Cooldown time.Duration
}

// NewBot creates a bot with the default trigger table. The announcer backs
// the events digest command.
func NewBot(opts Options, cacheSvc cache.CacheService, ann *announcer.Announcer, loc *time.Location) (*Bot, error) {
	if opts.Username == "" || opts.OAuth == "" || opts.Channel == "" {
		return nil, errors.NewConfiguration("twitch username, oauth token and channel are required", nil)
	}
	if cacheSvc == nil {
		cacheSvc = cache.NewMemoryService()
	}

	b := &Bot{
		client:   twitchirc.NewClient(opts.Username, opts.OAuth),
		channel:  opts.Channel,
		cooldown: opts.Cooldown,
		cache:    cacheSvc,
		log:      logger.ForComponent("twitch"),
	}
	b.say = b.sayChat
	b.triggers = defaultTriggers(ann, loc)
	return b, nil
}

func defaultTriggers(ann *announcer.Announcer, loc *time.Location) []Trigger {
	return []Trigger{
		{
			Name:    "ping",
			Matches: func(text string) bool { return strings.EqualFold(text, "!ping") },
			Handle: func(context.Context, string) string {
				return "pong 🏓"
			},
		},
		{
			Name:    "events",
			Matches: func(text string) bool { return strings.EqualFold(text, "!events") },
			Handle: func(ctx context.Context, _ string) string {
				today := time.Now().In(loc)
				digest, err := ann.Digest(ctx, today)
				if err != nil {
					return "Couldn't reach the events wiki right now, try again later."
				}
				if digest == "" {
					return fmt.Sprintf("No event page published yet for %s.", events.PrettyDate(today, loc))
				}
				return events.StripSeconds(digest)
			},
		},
	}
}

// Run connects and dispatches messages until ctx is cancelled
func (b *Bot) Run(ctx context.Context) error {
	b.client.OnPrivateMessage(func(msg twitchirc.PrivateMessage) {
		b.dispatch(ctx, msg)
	})

	b.client.Join(b.channel)
	b.log.Info().Str("channel", b.channel).Msg("connecting to twitch chat")

	errCh := make(chan error, 1)
	go func() {
		errCh <- b.client.Connect()
	}()

	select {
	case <-ctx.Done():
		b.client.Disconnect()
		<-errCh
		return nil
	case err := <-errCh:
		if err != nil {
			return errors.NewNetwork("twitch", "chat connection failed", err)
		}
		return nil
	}
}

func (b *Bot) dispatch(ctx context.Context, msg twitchirc.PrivateMessage) {
	text := strings.TrimSpace(msg.Message)
	for _, trigger := range b.triggers {
		if !trigger.Matches(text) {
			continue
		}
		if b.onCooldown(trigger.Name) {
			b.log.Debug().Str("command", trigger.Name).Msg("command on cooldown")
			return
		}
		if reply := trigger.Handle(ctx, text); reply != "" {
			b.say(reply)
		}
		return
	}
}

// onCooldown reports and arms the cooldown for a command in one step
func (b *Bot) onCooldown(command string) bool {
	if b.cooldown <= 0 {
		return false
	}
	key := "cooldown:" + command
	if _, err := b.cache.Get(key); err == nil {
		return true
	}
	if err := b.cache.Set(key, []byte("1"), b.cooldown); err != nil {
		b.log.Debug().Err(err).Msg("cooldown set failed")
	}
	return false
}

func (b *Bot) sayChat(text string) {
	b.client.Say(b.channel, truncateReply(text))
}

func truncateReply(text string) string {
	runes := []rune(text)
	if len(runes) > maxSayLength {
		return string(runes[:maxSayLength-1]) + "…"
	}
	return text
}
