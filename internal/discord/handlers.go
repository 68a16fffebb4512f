package discord

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/pmurley/linkboard/internal/config"
	"github.com/pmurley/linkboard/internal/links"
	"github.com/pmurley/linkboard/pkg/logger"
)

const commandTimeout = 30 * time.Second

type HandlerManager struct {
	session  *discordgo.Session
	config   *config.Config
	logger   *logger.Logger
	repo     *links.Repository
	commands map[string]CommandHandler
}

type CommandHandler func(s *discordgo.Session, m *discordgo.MessageCreate, args []string)

func NewHandlerManager(
	session *discordgo.Session,
	config *config.Config,
	logger *logger.Logger,
	repo *links.Repository,
) *HandlerManager {
	hm := &HandlerManager{
		session:  session,
		config:   config,
		logger:   logger,
		repo:     repo,
		commands: make(map[string]CommandHandler),
	}

	hm.registerCommands()

	return hm
}

func (hm *HandlerManager) RegisterHandlers() {
	hm.session.AddHandler(hm.messageCreate)
}

func (hm *HandlerManager) registerCommands() {
	hm.commands["help"] = hm.handleHelp
	hm.commands["reload"] = hm.handleReload
	hm.commands["links"] = hm.handleLinks
}

// parseCommand splits a prefixed message into a command and its arguments
func parseCommand(prefix, content string) (string, []string, bool) {
	if !strings.HasPrefix(content, prefix) {
		return "", nil, false
	}

	parts := strings.Fields(strings.TrimPrefix(content, prefix))
	if len(parts) == 0 {
		return "", nil, false
	}

	return strings.ToLower(parts[0]), parts[1:], true
}

func (hm *HandlerManager) messageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || (s.State != nil && s.State.User != nil && m.Author.ID == s.State.User.ID) {
		return
	}

	command, args, ok := parseCommand(hm.config.CommandPrefix, m.Content)
	if !ok {
		return
	}

	if handler, exists := hm.commands[command]; exists {
		handler(s, m, args)
	}
}

func (hm *HandlerManager) handleHelp(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	p := hm.config.CommandPrefix
	helpMessage := "**Link Board Commands:**\n```\n" +
		fmt.Sprintf("%shelp                      - Show this help message\n", p) +
		fmt.Sprintf("%sreload                    - Force reload data from the sheet\n", p) +
		fmt.Sprintf("%slinks [column] [asc|desc] - List links, optionally sorted\n", p) +
		"  Columns: name, url, used_for\n" +
		"```"

	s.ChannelMessageSend(m.ChannelID, helpMessage)
}

func (hm *HandlerManager) handleReload(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	n, err := hm.repo.Reload(ctx)
	if err != nil {
		hm.logger.Error("Failed to reload data:", err)
		s.ChannelMessageSend(m.ChannelID, "Failed to reload data: "+err.Error())
		return
	}
	s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Data reloaded successfully! %d links loaded.", n))
}
