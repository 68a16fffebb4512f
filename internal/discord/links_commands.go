package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/pmurley/linkboard/internal/models"
	"github.com/pmurley/linkboard/internal/render"
)

// Discord rejects messages longer than this
const maxMessageLength = 2000

// handleLinks lists the links, optionally sorted by a column
func (hm *HandlerManager) handleLinks(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	state, err := parseSortArgs(args)
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Usage: `%slinks [name|url|used_for] [asc|desc]`", hm.config.CommandPrefix))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	entries, err := hm.repo.Sorted(ctx, state, "")
	if err != nil {
		hm.logger.Error("Error loading data:", err)
		s.ChannelMessageSend(m.ChannelID, render.ErrorMessage)
		return
	}

	if len(entries) == 0 {
		s.ChannelMessageSend(m.ChannelID, "No links found.")
		return
	}

	for _, msg := range formatEntries(entries) {
		s.ChannelMessageSend(m.ChannelID, msg)
	}
}

// parseSortArgs reads "[column] [order]" command arguments
func parseSortArgs(args []string) (models.SortState, error) {
	if len(args) == 0 {
		return models.SortState{}, nil
	}

	col, err := models.ParseColumn(args[0])
	if err != nil {
		return models.SortState{}, err
	}

	state := models.SortState{Column: col, Order: models.Ascending}
	if len(args) > 1 {
		state.Order = models.ParseOrder(args[1])
	}
	return state, nil
}

// formatEntries renders one line per link and splits the result into messages
func formatEntries(entries models.EntryList) []string {
	var messages []string
	var b strings.Builder

	for _, e := range entries {
		url := e.Display(models.ColumnURL)
		if e.HasURL() {
			url = "<" + e.URL + ">"
		}
		line := fmt.Sprintf("• **%s** %s (%s)\n", e.Display(models.ColumnName), url, e.Display(models.ColumnUsedFor))

		if b.Len()+len(line) > maxMessageLength && b.Len() > 0 {
			messages = append(messages, b.String())
			b.Reset()
		}
		b.WriteString(line)
	}

	if b.Len() > 0 {
		messages = append(messages, b.String())
	}
	return messages
}
