package discord

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"famgo/mogoherald/logger"
	"famgo/mogoherald/pkg/errors"
	"famgo/mogoherald/services/announcer"
	"famgo/mogoherald/services/cache"
)

// Command is one chat command evaluated against incoming messages; first
// match wins.
type Command struct {
	Name    string
	Matches func(text string) bool
	Handle  func(ctx context.Context, reply func(text string))
}

// Bot runs the long-lived Discord gateway session: scheduled announcements
// are wired elsewhere, this handles on-demand chat commands.
type Bot struct {
	session   *discordgo.Session
	channelID string
	cooldown  time.Duration
	cache     cache.CacheService
	commands  []Command
	log       *logger.Logger
}

// NewBot creates a gateway bot listening on channelID. Commands are
// registered separately so the announcer can post through this bot's session.
func NewBot(token, channelID string, cooldown time.Duration, cacheSvc cache.CacheService) (*Bot, error) {
	if token == "" || channelID == "" {
		return nil, errors.NewConfiguration("discord token and channel id are required", nil)
	}
	if cacheSvc == nil {
		cacheSvc = cache.NewMemoryService()
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, errors.NewConfiguration("discord session setup failed", err)
	}
	session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	return &Bot{
		session:   session,
		channelID: channelID,
		cooldown:  cooldown,
		cache:     cacheSvc,
		log:       logger.ForComponent("discord"),
	}, nil
}

// SetCommands replaces the bot's command table; call before Run
func (b *Bot) SetCommands(commands []Command) {
	b.commands = commands
}

// Session exposes the underlying gateway session so callers can build a
// Poster on the same connection.
func (b *Bot) Session() *discordgo.Session {
	return b.session
}

// DefaultCommands is the standard command table: ping plus the on-demand
// events announcement.
func DefaultCommands(ann *announcer.Announcer, loc *time.Location) []Command {
	return []Command{
		{
			Name:    "ping",
			Matches: func(text string) bool { return strings.EqualFold(text, "!ping") },
			Handle: func(_ context.Context, reply func(string)) {
				reply("pong 🏓")
			},
		},
		{
			Name:    "events",
			Matches: func(text string) bool { return strings.EqualFold(text, "!events") },
			Handle: func(ctx context.Context, reply func(string)) {
				if err := ann.Run(ctx, time.Now().In(loc)); err != nil {
					reply("Couldn't fetch today's events right now, try again later.")
				}
			},
		},
	}
}

// Run opens the gateway connection and serves commands until ctx is cancelled
func (b *Bot) Run(ctx context.Context) error {
	b.session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		b.handleMessage(ctx, s, m)
	})

	if err := b.session.Open(); err != nil {
		return errors.NewNetwork("discord", "gateway connection failed", err)
	}
	b.log.Info().Str("channel", b.channelID).Msg("discord gateway connected")

	<-ctx.Done()
	return b.session.Close()
}

func (b *Bot) handleMessage(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.ChannelID != b.channelID {
		return
	}
	reply := func(text string) {
		if _, err := s.ChannelMessageSend(m.ChannelID, text); err != nil {
			b.log.Error().Err(err).Msg("command reply failed")
		}
	}
	b.dispatch(ctx, strings.TrimSpace(m.Content), reply)
}

func (b *Bot) dispatch(ctx context.Context, text string, reply func(text string)) {
	for _, cmd := range b.commands {
		if !cmd.Matches(text) {
			continue
		}
		if b.onCooldown(cmd.Name) {
			b.log.Debug().Str("command", cmd.Name).Msg("command on cooldown")
			return
		}
		cmd.Handle(ctx, reply)
		return
	}
}

// onCooldown reports and arms the cooldown for a command in one step
func (b *Bot) onCooldown(command string) bool {
	if b.cooldown <= 0 {
		return false
	}
	key := "cooldown:discord:" + command
	if _, err := b.cache.Get(key); err == nil {
		return true
	}
	if err := b.cache.Set(key, []byte("1"), b.cooldown); err != nil {
		b.log.Debug().Err(err).Msg("cooldown set failed")
	}
	return false
}
