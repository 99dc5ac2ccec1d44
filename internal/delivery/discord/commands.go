package discord

import "github.com/bwmarrin/discordgo"

func (b *Bot) addCommands(commands ...*discordgo.ApplicationCommand) {
	b.commands = append(b.commands, commands...)
}

func playersOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        optPlayers,
		Description: "Comma separated roster (default: every player)",
		Required:    false,
	}
}

func playerOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        optPlayer,
		Description: "Player folder name",
		Required:    true,
	}
}

func (b *Bot) newRosterCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "roster",
		Description: "Overview of every selected player",
		Options:     []*discordgo.ApplicationCommandOption{playersOption()},
	}
}

func (b *Bot) newMapsCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "maps",
		Description: "Best and worst maps of the team",
		Options:     []*discordgo.ApplicationCommandOption{playersOption()},
	}
}

func (b *Bot) newSidesCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "sides",
		Description: "Attacker vs defender performance",
		Options:     []*discordgo.ApplicationCommandOption{playersOption()},
	}
}

func (b *Bot) newOperatorsCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "operators",
		Description: "Operator highlights of a player",
		Options:     []*discordgo.ApplicationCommandOption{playerOption()},
	}
}

func (b *Bot) newPlaystyleCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "playstyle",
		Description: "Playstyle breakdown of a player",
		Options:     []*discordgo.ApplicationCommandOption{playerOption()},
	}
}

func (b *Bot) newReportCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "report",
		Description: "PDF team report",
		Options: []*discordgo.ApplicationCommandOption{
			playersOption(),
			{Type: discordgo.ApplicationCommandOptionBoolean, Name: optAI, Description: "Add AI recommendations", Required: false},
		},
	}
}

func (b *Bot) newExportCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "export",
		Description: "Excel export (admins only)",
		Options:     []*discordgo.ApplicationCommandOption{playersOption()},
	}
}

func (b *Bot) newSyncSheetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "sync_sheet",
		Description: "Sync the tables to Google Sheets (admins only)",
		Options:     []*discordgo.ApplicationCommandOption{playersOption()},
	}
}

func (b *Bot) newReloadCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "reload",
		Description: "Reread the player files on the next command (admins only)",
	}
}
