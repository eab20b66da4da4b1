package notify

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	cairnerr "github.com/lecrapal/Cairn-FoundryVTT/internal/errors"
)

// ChannelSender is the slice of *discordgo.Session the notifier needs
type ChannelSender interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// DiscordNotifier posts messages as embeds to one channel
type DiscordNotifier struct {
	session   ChannelSender
	channelID string
}

// DiscordConfig holds configuration for the Discord notifier
type DiscordConfig struct {
	Session   ChannelSender // Required
	ChannelID string        // Required
}

// NewDiscordNotifier creates a notifier posting to cfg.ChannelID
func NewDiscordNotifier(cfg *DiscordConfig) (*DiscordNotifier, error) {
	if cfg == nil || cfg.Session == nil {
		return nil, cairnerr.InvalidArgument("discord session is required")
	}
	if cfg.ChannelID == "" {
		return nil, cairnerr.InvalidArgument("discord channel ID is required")
	}
	return &DiscordNotifier{
		session:   cfg.Session,
		channelID: cfg.ChannelID,
	}, nil
}

// Post implements Notifier
func (n *DiscordNotifier) Post(ctx context.Context, msg *Message) error {
	if msg == nil {
		return nil
	}

	_, err := n.session.ChannelMessageSendComplex(n.channelID, &discordgo.MessageSend{
		Embed: MessageEmbed(msg),
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to post message to channel %s: %w", n.channelID, err)
	}
	return nil
}
