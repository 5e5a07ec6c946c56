package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"famgo/mogoherald/internal/message"
	"famgo/mogoherald/logger"
	"famgo/mogoherald/pkg/errors"
)

// channelSender is the slice of discordgo.Session the poster needs; narrowed
// for testability
type channelSender interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Poster delivers payloads to a Discord channel, enforcing the platform's
// message limits: content chunked at 2000 runes, at most 10 embeds.
type Poster struct {
	sender         channelSender
	channelID      string
	imageChannelID string
	log            *logger.Logger
}

// NewPoster creates a poster for the given channel. imageChannelID may be
// empty to disable the featured-image forward.
func NewPoster(sender channelSender, channelID, imageChannelID string) *Poster {
	return &Poster{
		sender:         sender,
		channelID:      channelID,
		imageChannelID: imageChannelID,
		log:            logger.ForComponent("discord"),
	}
}

// Post sends a payload. The first message carries the embeds; content chunks
// beyond the first are sent content-only. An embeds-only payload is valid.
func (p *Poster) Post(payload message.Payload) error {
	if payload.Empty() {
		return errors.NewDelivery("discord", "refusing to send an empty payload", nil)
	}

	embeds := payload.Embeds
	if len(embeds) > message.MaxEmbeds {
		p.log.Warn().
			Int("given", len(embeds)).
			Int("max", message.MaxEmbeds).
			Msg("dropping embeds beyond the platform limit")
		embeds = embeds[:message.MaxEmbeds]
	}
	dgEmbeds := toMessageEmbeds(embeds)

	chunks := message.SplitContent(payload.Content, message.MaxContent)

	if len(chunks) == 0 {
		if _, err := p.sender.ChannelMessageSendComplex(p.channelID, &discordgo.MessageSend{Embeds: dgEmbeds}); err != nil {
			return errors.NewDelivery("discord", "failed to send embeds-only message", err)
		}
	} else {
		first := &discordgo.MessageSend{Content: chunks[0], Embeds: dgEmbeds}
		if _, err := p.sender.ChannelMessageSendComplex(p.channelID, first); err != nil {
			return errors.NewDelivery("discord", "failed to send first message", err)
		}
		for _, chunk := range chunks[1:] {
			if _, err := p.sender.ChannelMessageSendComplex(p.channelID, &discordgo.MessageSend{Content: chunk}); err != nil {
				return errors.NewDelivery("discord", "failed to send content chunk", err)
			}
		}
	}

	p.forwardImages(payload)
	return nil
}

// PostText sends plain text, chunked; used for degraded notices
func (p *Poster) PostText(content string) error {
	if strings.TrimSpace(content) == "" {
		return errors.NewDelivery("discord", "refusing to send empty text", nil)
	}
	for _, chunk := range message.SplitContent(content, message.MaxContent) {
		if _, err := p.sender.ChannelMessageSendComplex(p.channelID, &discordgo.MessageSend{Content: chunk}); err != nil {
			return errors.NewDelivery("discord", "failed to send text message", err)
		}
	}
	return nil
}

// forwardImages mirrors the featured image plus the image-only embeds to the
// milestones channel. Failures are logged, never fatal to the main post.
func (p *Poster) forwardImages(payload message.Payload) {
	if p.imageChannelID == "" || len(payload.Embeds) == 0 {
		return
	}

	main := payload.Embeds[0]
	if main.Image == nil {
		return
	}

	forward := message.Embed{
		Title: strings.Replace(main.Title, "Events", "Milestones", 1),
		Image: main.Image,
	}
	embeds := append([]message.Embed{forward}, payload.Embeds[1:]...)
	if len(embeds) > message.MaxEmbeds {
		embeds = embeds[:message.MaxEmbeds]
	}

	send := &discordgo.MessageSend{
		Content: payload.Content,
		Embeds:  toMessageEmbeds(embeds),
	}
	if _, err := p.sender.ChannelMessageSendComplex(p.imageChannelID, send); err != nil {
		p.log.Error().Err(err).Str("channel", p.imageChannelID).Msg("image forward failed")
	}
}

// toMessageEmbeds converts the SDK-agnostic embeds to discordgo's shape
func toMessageEmbeds(embeds []message.Embed) []*discordgo.MessageEmbed {
	out := make([]*discordgo.MessageEmbed, 0, len(embeds))
	for _, e := range embeds {
		dg := &discordgo.MessageEmbed{
			Title:       e.Title,
			URL:         e.URL,
			Description: e.Description,
		}
		for _, f := range e.Fields {
			dg.Fields = append(dg.Fields, &discordgo.MessageEmbedField{
				Name:   f.Name,
				Value:  f.Value,
				Inline: f.Inline,
			})
		}
		if e.Image != nil {
			dg.Image = &discordgo.MessageEmbedImage{URL: e.Image.URL}
		}
		if e.Footer != nil {
			dg.Footer = &discordgo.MessageEmbedFooter{Text: e.Footer.Text}
		}
		out = append(out, dg)
	}
	return out
}
