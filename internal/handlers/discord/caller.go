package discord

import (
	"github.com/KirkDiggler/blackjackbot/internal/models"
	"github.com/bwmarrin/discordgo"
)

// adminPermissions lets a member stop any game in the channel
const adminPermissions = discordgo.PermissionAdministrator | discordgo.PermissionManageChannels

// caller identifies who triggered an interaction and where
type caller struct {
	UserID string
	Name   string
	ChatID string
	Role   models.CallerRole

	// Private is set for direct messages, which get singleplayer games
	Private bool
}

func callerFromInteraction(i *discordgo.InteractionCreate) caller {
	c := caller{
		ChatID: i.ChannelID,
		Role:   models.CallerRolePlayer,
	}

	if i.Member != nil && i.Member.User != nil {
		c.UserID = i.Member.User.ID
		c.Name = displayName(i.Member.User)
		if i.Member.Nick != "" {
			c.Name = i.Member.Nick
		}
		if i.Member.Permissions&adminPermissions != 0 {
			c.Role = models.CallerRoleAdministrator
		}
		return c
	}

	// Interactions in direct messages carry User instead of Member
	if i.User != nil {
		c.UserID = i.User.ID
		c.Name = displayName(i.User)
	}
	c.Private = true
	return c
}

func (c caller) gameType() models.GameType {
	if c.Private {
		return models.GameTypeSingleplayer
	}
	return models.GameTypeMultiplayer
}

func displayName(u *discordgo.User) string {
	return u.Username
}
