package discord

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"famgo/mogoherald/logger"
	"famgo/mogoherald/services/cache"
)

func newTestCommandBot(cooldown time.Duration, commands []Command) *Bot {
	return &Bot{
		channelID: "123",
		cooldown:  cooldown,
		cache:     cache.NewMemoryService(),
		commands:  commands,
		log:       logger.ForComponent("discord"),
	}
}

func replyCommand(name, trigger, text string) Command {
	return Command{
		Name:    name,
		Matches: func(s string) bool { return strings.EqualFold(s, trigger) },
		Handle: func(_ context.Context, reply func(string)) {
			reply(text)
		},
	}
}

func TestNewBot_RequiresTokenAndChannel(t *testing.T) {
	_, err := NewBot("", "123", 0, nil)
	assert.Error(t, err)

	_, err = NewBot("token", "", 0, nil)
	assert.Error(t, err)
}

func TestBotDispatch_MatchesCommand(t *testing.T) {
	b := newTestCommandBot(0, []Command{replyCommand("ping", "!ping", "pong 🏓")})

	var replies []string
	b.dispatch(context.Background(), "!ping", func(text string) { replies = append(replies, text) })

	assert.Equal(t, []string{"pong 🏓"}, replies)
}

func TestBotDispatch_UnknownCommandIsIgnored(t *testing.T) {
	b := newTestCommandBot(0, []Command{replyCommand("ping", "!ping", "pong 🏓")})

	var replies []string
	b.dispatch(context.Background(), "hello there", func(text string) { replies = append(replies, text) })

	assert.Empty(t, replies)
}

func TestBotDispatch_CooldownSuppressesRepeats(t *testing.T) {
	b := newTestCommandBot(time.Minute, []Command{replyCommand("ping", "!ping", "pong 🏓")})

	var replies []string
	reply := func(text string) { replies = append(replies, text) }
	b.dispatch(context.Background(), "!ping", reply)
	b.dispatch(context.Background(), "!ping", reply)

	assert.Len(t, replies, 1)
}
