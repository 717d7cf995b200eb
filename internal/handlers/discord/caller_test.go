package discord

import (
	"testing"

	"github.com/KirkDiggler/blackjackbot/internal/models"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
)

type CallerTestSuite struct {
	suite.Suite
}

func interaction(channelID string, member *discordgo.Member, user *discordgo.User) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ChannelID: channelID,
			Member:    member,
			User:      user,
		},
	}
}

func (s *CallerTestSuite) TestGuildMember() {
	i := interaction("chan-1", &discordgo.Member{
		User: &discordgo.User{ID: "u1", Username: "alice"},
	}, nil)

	c := callerFromInteraction(i)

	s.Equal("u1", c.UserID)
	s.Equal("alice", c.Name)
	s.Equal("chan-1", c.ChatID)
	s.Equal(models.CallerRolePlayer, c.Role)
	s.False(c.Private)
	s.Equal(models.GameTypeMultiplayer, c.gameType())
}

func (s *CallerTestSuite) TestNickname() {
	i := interaction("chan-1", &discordgo.Member{
		User: &discordgo.User{ID: "u1", Username: "alice"},
		Nick: "Ace",
	}, nil)

	s.Equal("Ace", callerFromInteraction(i).Name)
}

func (s *CallerTestSuite) TestAdministrator() {
	for _, perms := range []int64{discordgo.PermissionAdministrator, discordgo.PermissionManageChannels} {
		i := interaction("chan-1", &discordgo.Member{
			User:        &discordgo.User{ID: "u1", Username: "alice"},
			Permissions: perms,
		}, nil)

		s.Equal(models.CallerRoleAdministrator, callerFromInteraction(i).Role)
	}
}

func (s *CallerTestSuite) TestDirectMessage() {
	i := interaction("dm-1", nil, &discordgo.User{ID: "u2", Username: "bob"})

	c := callerFromInteraction(i)

	s.Equal("u2", c.UserID)
	s.Equal("bob", c.Name)
	s.True(c.Private)
	s.Equal(models.CallerRolePlayer, c.Role)
	s.Equal(models.GameTypeSingleplayer, c.gameType())
}

func TestCallerSuite(t *testing.T) {
	suite.Run(t, new(CallerTestSuite))
}
