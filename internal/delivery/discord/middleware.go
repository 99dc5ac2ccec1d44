package discord

import (
	"github.com/bwmarrin/discordgo"
)

func (b *Bot) isAdmin(userID string) bool {
	_, ok := b.adminIDs[userID]
	return ok
}

func interactionUserID(i *discordgo.Interaction) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func (b *Bot) channelAllowed(channelID string) bool {
	return b.allowedChannelID == "" || channelID == b.allowedChannelID
}

func (b *Bot) respondMessage(s *discordgo.Session, i *discordgo.Interaction, msg string, ephemeral bool) {
	flags := discordgo.MessageFlags(0)
	if ephemeral {
		flags = discordgo.MessageFlagsEphemeral
	}
	if err := s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: truncateMessage(msg),
			Flags:   flags,
		},
	}); err != nil {
		b.logger.Error("discord respond failed", "error", err)
	}
}

// deferResponse acknowledges a slow command; the answer follows via editResponse.
func (b *Bot) deferResponse(s *discordgo.Session, i *discordgo.Interaction) {
	if err := s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		b.logger.Error("discord defer failed", "error", err)
	}
}

func (b *Bot) editResponse(s *discordgo.Session, i *discordgo.Interaction, edit *discordgo.WebhookEdit) {
	if _, err := s.InteractionResponseEdit(i, edit); err != nil {
		b.logger.Error("discord edit failed", "error", err)
	}
}

func (b *Bot) editContent(s *discordgo.Session, i *discordgo.Interaction, msg string) {
	content := truncateMessage(msg)
	b.editResponse(s, i, &discordgo.WebhookEdit{Content: &content})
}

func (b *Bot) ensureAdmin(s *discordgo.Session, i *discordgo.Interaction, handler func(*discordgo.Session, *discordgo.Interaction)) {
	if !b.isAdmin(interactionUserID(i)) {
		b.respondMessage(s, i, msgNoRights, true)
		return
	}
	handler(s, i)
}
