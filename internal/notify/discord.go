package notify

import (
	"context"
	"log"

	"github.com/bwmarrin/discordgo"
)

// MessageSender is the slice of *discordgo.Session the notifier needs
type MessageSender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// DiscordNotifier posts notices to a Discord channel
type DiscordNotifier struct {
	sender    MessageSender
	channelID string
}

// DiscordNotifierConfig holds configuration for the Discord notifier
type DiscordNotifierConfig struct {
	Sender    MessageSender // Required, usually a *discordgo.Session
	ChannelID string        // Required
}

// NewDiscordNotifier creates a notifier posting to cfg.ChannelID
func NewDiscordNotifier(cfg *DiscordNotifierConfig) *DiscordNotifier {
	if cfg == nil {
		panic("DiscordNotifierConfig cannot be nil")
	}
	if cfg.Sender == nil {
		panic("discord sender is required")
	}
	if cfg.ChannelID == "" {
		panic("discord channel ID is required")
	}

	return &DiscordNotifier{
		sender:    cfg.Sender,
		channelID: cfg.ChannelID,
	}
}

// Notify sends the notice, prefixed by an emoji for warnings and errors
func (n *DiscordNotifier) Notify(ctx context.Context, level Level, message string) {
	content := FormatDiscord(level, message)
	if _, err := n.sender.ChannelMessageSend(n.channelID, content, discordgo.WithContext(ctx)); err != nil {
		log.Printf("DiscordNotifier: failed to send %s notice to channel %s: %v", level, n.channelID, err)
	}
}

// FormatDiscord renders a notice as Discord message content
func FormatDiscord(level Level, message string) string {
	switch level {
	case LevelWarn:
		return "⚠️ " + message
	case LevelError:
		return "❌ " + message
	default:
		return message
	}
}
