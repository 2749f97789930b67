package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"agent-marketplace/chat"
	"agent-marketplace/marketplace"
)

// ExportFormat represents the export format
type ExportFormat string

const (
	FormatJSON     ExportFormat = "json"
	FormatMarkdown ExportFormat = "markdown"
)

// TranscriptExport represents an exported chat transcript
type TranscriptExport struct {
	Agent    string            `json:"agent"`
	Category string            `json:"category"`
	Messages []MessageExport   `json:"messages"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// MessageExport represents a single exported message
type MessageExport struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ExportTranscriptJSON writes a chat transcript to path as indented JSON.
func ExportTranscriptJSON(agent marketplace.Agent, messages []chat.Message, path string) error {
	export := TranscriptExport{
		Agent:    agent.Name,
		Category: agent.Category,
		Messages: make([]MessageExport, 0, len(messages)),
		Metadata: map[string]string{
			"export_version": "1.0",
			"export_date":    time.Now().Format(time.RFC3339),
			"app_name":       "Agent Marketplace",
		},
	}

	for _, msg := range messages {
		export.Messages = append(export.Messages, MessageExport{
			ID:        msg.ID,
			Sender:    string(msg.Sender),
			Content:   msg.Content,
			Timestamp: msg.Timestamp,
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// ExportTranscriptMarkdown writes a chat transcript to path as Markdown.
func ExportTranscriptMarkdown(agent marketplace.Agent, messages []chat.Message, path string) error {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("# Chat with %s\n\n", agent.Name))
	b.WriteString(fmt.Sprintf("Category: %s\n\n", agent.Category))
	b.WriteString(fmt.Sprintf("Exported: %s\n\n---\n\n", time.Now().Format(time.RFC3339)))

	for _, msg := range messages {
		who := "You"
		if msg.Sender == chat.SenderAgent {
			who = agent.Name
		}
		b.WriteString(fmt.Sprintf("**%s** (%s):\n\n%s\n\n", who, msg.Timestamp.Format("15:04:05"), msg.Content))
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}
