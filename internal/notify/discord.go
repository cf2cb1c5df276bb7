package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/IdleHunt_Go/internal/domain"
	"github.com/osse101/IdleHunt_Go/internal/logger"
)

// DiscordNotifier posts hunt notifications as embeds to a Discord channel.
// Used for community servers that mirror in-game activity feeds.
type DiscordNotifier struct {
	session   *discordgo.Session
	channelID string
}

// NewDiscordNotifier creates a Discord-backed notifier from a bot token and
// target channel
func NewDiscordNotifier(token, channelID string) (*DiscordNotifier, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	return &DiscordNotifier{session: session, channelID: channelID}, nil
}

// HuntReady posts a rewards-waiting embed
func (n *DiscordNotifier) HuntReady(ctx context.Context, playerID int64, target domain.HuntTarget) {
	if n.channelID == "" {
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Hunt Complete!",
		Description: fmt.Sprintf("Player **%d** has idle hunt rewards waiting to be claimed.", playerID),
		Color:       0xFFD700, // Gold
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Target", Value: fmt.Sprintf("%s %d", target.Kind, target.ID), Inline: true},
		},
		Timestamp: time.Now().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Idle Hunting",
		},
	}

	if _, err := n.session.ChannelMessageSendEmbed(n.channelID, embed); err != nil {
		logger.FromContext(ctx).Error("Failed to send hunt ready notification", "error", err, "player_id", playerID)
	}
}

// RewardsClaimed posts a claim summary embed
func (n *DiscordNotifier) RewardsClaimed(ctx context.Context, playerID int64, result *domain.ClaimResult) {
	if n.channelID == "" {
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Rewards Claimed",
		Description: fmt.Sprintf("Player **%d** claimed idle hunt rewards.", playerID),
		Color:       0x57F287, // Green
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Kills", Value: fmt.Sprintf("%d", result.Rewards.Kills), Inline: true},
			{Name: "Exp", Value: fmt.Sprintf("%d", result.Rewards.Exp), Inline: true},
			{Name: "Gold", Value: fmt.Sprintf("%d", result.Rewards.Gold), Inline: true},
		},
		Timestamp: time.Now().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Idle Hunting",
		},
	}

	if len(result.ItemsGranted) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Items",
			Value:  fmt.Sprintf("%d stacks", len(result.ItemsGranted)),
			Inline: true,
		})
	}

	if _, err := n.session.ChannelMessageSendEmbed(n.channelID, embed); err != nil {
		logger.FromContext(ctx).Error("Failed to send claim notification", "error", err, "player_id", playerID)
	}
}
