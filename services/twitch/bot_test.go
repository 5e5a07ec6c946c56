package twitch

import (
	"context"
	"strings"
	"testing"
	"time"

	twitchirc "github.com/gempir/go-twitch-irc/v4"
	"github.com/stretchr/testify/assert"

	"famgo/mogoherald/logger"
	"famgo/mogoherald/services/cache"
)

func newTestBot(cooldown time.Duration, triggers []Trigger) (*Bot, *[]string) {
	var said []string
	b := &Bot{
		channel:  "testchannel",
		cooldown: cooldown,
		cache:    cache.NewMemoryService(),
		triggers: triggers,
		log:      logger.ForComponent("twitch"),
	}
	b.say = func(text string) { said = append(said, text) }
	return b, &said
}

func echoTrigger(name, command, reply string) Trigger {
	return Trigger{
		Name:    name,
		Matches: func(text string) bool { return strings.EqualFold(text, command) },
		Handle:  func(context.Context, string) string { return reply },
	}
}

func TestNewBot_RequiresCredentials(t *testing.T) {
	_, err := NewBot(Options{Username: "bot"}, nil, nil, time.UTC)
	assert.Error(t, err)
}

func TestDispatch_FirstMatchWins(t *testing.T) {
	b, said := newTestBot(0, []Trigger{
		echoTrigger("first", "!cmd", "from first"),
		echoTrigger("second", "!cmd", "from second"),
	})

	b.dispatch(context.Background(), twitchirc.PrivateMessage{Message: "!cmd"})

	assert.Equal(t, []string{"from first"}, *said)
}

func TestDispatch_IgnoresUnknownCommands(t *testing.T) {
	b, said := newTestBot(0, []Trigger{echoTrigger("ping", "!ping", "pong 🏓")})

	b.dispatch(context.Background(), twitchirc.PrivateMessage{Message: "hello chat"})

	assert.Empty(t, *said)
}

func TestDispatch_TrimsAndMatchesCaseInsensitive(t *testing.T) {
	b, said := newTestBot(0, []Trigger{echoTrigger("ping", "!ping", "pong 🏓")})

	b.dispatch(context.Background(), twitchirc.PrivateMessage{Message: "  !PING  "})

	assert.Equal(t, []string{"pong 🏓"}, *said)
}

func TestDispatch_EmptyReplyIsNotSent(t *testing.T) {
	b, said := newTestBot(0, []Trigger{echoTrigger("quiet", "!quiet", "")})

	b.dispatch(context.Background(), twitchirc.PrivateMessage{Message: "!quiet"})

	assert.Empty(t, *said)
}

func TestDispatch_CooldownSuppressesRepeats(t *testing.T) {
	b, said := newTestBot(time.Minute, []Trigger{echoTrigger("ping", "!ping", "pong 🏓")})

	msg := twitchirc.PrivateMessage{Message: "!ping"}
	b.dispatch(context.Background(), msg)
	b.dispatch(context.Background(), msg)

	assert.Len(t, *said, 1)
}

func TestDispatch_CooldownIsPerCommand(t *testing.T) {
	b, said := newTestBot(time.Minute, []Trigger{
		echoTrigger("ping", "!ping", "pong 🏓"),
		echoTrigger("other", "!other", "other reply"),
	})

	b.dispatch(context.Background(), twitchirc.PrivateMessage{Message: "!ping"})
	b.dispatch(context.Background(), twitchirc.PrivateMessage{Message: "!other"})

	assert.Equal(t, []string{"pong 🏓", "other reply"}, *said)
}

func TestTruncateReply(t *testing.T) {
	short := "pong 🏓"
	assert.Equal(t, short, truncateReply(short))

	long := strings.Repeat("가", maxSayLength+100)
	got := truncateReply(long)
	assert.Equal(t, maxSayLength, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "…"))
}
