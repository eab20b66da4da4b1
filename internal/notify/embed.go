package notify

import (
	"github.com/bwmarrin/discordgo"
)

// Embed colors
const (
	ColorCharacter = 0x7289da // Discord Blurple
	ColorError     = 0xff0000 // Red
	ColorInfo      = 0x0099ff // Blue
)

// embedFieldLimit is the most fields Discord renders on one embed
const embedFieldLimit = 25

// EmbedBuilder provides a fluent API for building Discord embeds
type EmbedBuilder struct {
	embed *discordgo.MessageEmbed
}

// NewEmbed creates a new embed builder
func NewEmbed() *EmbedBuilder {
	return &EmbedBuilder{
		embed: &discordgo.MessageEmbed{
			Type:   discordgo.EmbedTypeRich,
			Fields: make([]*discordgo.MessageEmbedField, 0),
		},
	}
}

// Title sets the embed title
func (b *EmbedBuilder) Title(title string) *EmbedBuilder {
	b.embed.Title = title
	return b
}

// Description sets the embed description
func (b *EmbedBuilder) Description(description string) *EmbedBuilder {
	b.embed.Description = description
	return b
}

// Color sets the embed color
func (b *EmbedBuilder) Color(color int) *EmbedBuilder {
	b.embed.Color = color
	return b
}

// Author sets the embed author
func (b *EmbedBuilder) Author(name string) *EmbedBuilder {
	if name == "" {
		return b
	}
	b.embed.Author = &discordgo.MessageEmbedAuthor{Name: name}
	return b
}

// Field adds a field to the embed, dropping any past Discord's limit
func (b *EmbedBuilder) Field(name, value string, inline bool) *EmbedBuilder {
	if len(b.embed.Fields) >= embedFieldLimit {
		return b
	}
	b.embed.Fields = append(b.embed.Fields, &discordgo.MessageEmbedField{
		Name:   name,
		Value:  value,
		Inline: inline,
	})
	return b
}

// Build returns the constructed embed
func (b *EmbedBuilder) Build() *discordgo.MessageEmbed {
	return b.embed
}

// MessageEmbed renders msg as a rich embed
func MessageEmbed(msg *Message) *discordgo.MessageEmbed {
	color := ColorInfo
	switch {
	case msg.Error:
		color = ColorError
	case msg.Speaker != "":
		color = ColorCharacter
	}

	b := NewEmbed().
		Title(msg.Title).
		Description(msg.Body()).
		Color(color).
		Author(msg.Speaker)
	for _, f := range msg.Fields {
		b.Field(f.Name, f.Value, f.Inline)
	}
	return b.Build()
}
