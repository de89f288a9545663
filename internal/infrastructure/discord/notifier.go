package discord

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/hackforge-dev/admin-api/internal/config"
	"github.com/hackforge-dev/admin-api/internal/domain"
)

// Accent color for announcement embeds.
const embedColor = 0x3498DB

// Notifier posts announcement embeds to the configured Discord channel.
type Notifier interface {
	SendAnnouncement(ctx context.Context, title, content string, author domain.Author) error
}

type notifier struct {
	session   *discordgo.Session
	channelID string
}

// NewNotifier builds a REST-only Discord client. The session is never opened
// as a gateway connection; posting channel messages needs only the bot token.
func NewNotifier(cfg *config.Config) (Notifier, error) {
	if cfg.DiscordToken == "" || cfg.DiscordChannelID == "" {
		return nil, errors.New("discord token and announcement channel id are required")
	}
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	return &notifier{session: session, channelID: cfg.DiscordChannelID}, nil
}

func (n *notifier) SendAnnouncement(ctx context.Context, title, content string, author domain.Author) error {
	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: content,
		Color:       embedColor,
		Author: &discordgo.MessageEmbedAuthor{
			Name:    author.Name,
			IconURL: author.AvatarURL,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	_, err := n.session.ChannelMessageSendComplex(n.channelID, &discordgo.MessageSend{
		Content: "@everyone",
		Embeds:  []*discordgo.MessageEmbed{embed},
	}, discordgo.WithContext(ctx))
	return err
}
