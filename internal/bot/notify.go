package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Notifier delivers an LFG announcement by opening a thread off an
// existing message and posting the announcement text inside it. The single
// narrow method keeps the rest of the bot away from the platform's channel
// and thread object shapes.
type Notifier interface {
	AnnounceInThread(channelID, parentMessageID, threadName, content string) error
}

type discordNotifier struct {
	session *discordgo.Session
}

func (n *discordNotifier) AnnounceInThread(channelID, parentMessageID, threadName, content string) error {
	thread, err := n.session.MessageThreadStartComplex(channelID, parentMessageID, &discordgo.ThreadStart{
		Name:                threadName,
		AutoArchiveDuration: 60,
	})
	if err != nil {
		return fmt.Errorf("failed to create thread: %w", err)
	}

	if _, err := n.session.ChannelMessageSend(thread.ID, content); err != nil {
		return fmt.Errorf("failed to post announcement in thread: %w", err)
	}
	return nil
}
