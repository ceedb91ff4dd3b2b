// Package mocks provides mock implementations for testing bot handlers.
package mocks

import (
	"context"
	"sync"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// TelegramAPI defines the interface for Telegram bot operations.
// This interface is defined here to avoid import cycles between bot and mocks packages.
type TelegramAPI interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
	SendDocument(ctx context.Context, params *bot.SendDocumentParams) (*models.Message, error)
}

// SentMessage captures a message sent via MockBot.
type SentMessage struct {
	ChatID    any
	Text      string
	ParseMode models.ParseMode
}

// SentDocument captures a document sent via MockBot.
type SentDocument struct {
	ChatID    any
	Filename  string
	Caption   string
	ParseMode models.ParseMode
}

// Compile-time check that MockBot implements TelegramAPI.
var _ TelegramAPI = (*MockBot)(nil)

// MockBot simulates Telegram bot operations for testing.
type MockBot struct {
	mu sync.RWMutex

	SentMessages  []SentMessage
	SentDocuments []SentDocument

	// SendMessageError allows simulating SendMessage failures.
	SendMessageError error
	// SendDocumentError allows simulating SendDocument failures.
	SendDocumentError error

	// NextMessageID is auto-incremented for each sent message.
	NextMessageID int
}

// NewMockBot creates a new MockBot instance.
func NewMockBot() *MockBot {
	return &MockBot{
		SentMessages:  make([]SentMessage, 0),
		SentDocuments: make([]SentDocument, 0),
		NextMessageID: 1000,
	}
}

// SendMessage simulates sending a message.
func (m *MockBot) SendMessage(_ context.Context, params *bot.SendMessageParams) (*models.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SendMessageError != nil {
		return nil, m.SendMessageError
	}

	m.SentMessages = append(m.SentMessages, SentMessage{
		ChatID:    params.ChatID,
		Text:      params.Text,
		ParseMode: params.ParseMode,
	})

	msgID := m.NextMessageID
	m.NextMessageID++

	return &models.Message{
		ID: msgID,
		Chat: models.Chat{
			ID: chatIDToInt64(params.ChatID),
		},
		Text: params.Text,
	}, nil
}

// SendDocument sends a document and records it.
func (m *MockBot) SendDocument(_ context.Context, params *bot.SendDocumentParams) (*models.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SendDocumentError != nil {
		return nil, m.SendDocumentError
	}

	// Extract filename from InputFileUpload if available
	filename := ""
	if upload, ok := params.Document.(*models.InputFileUpload); ok {
		filename = upload.Filename
	}

	m.SentDocuments = append(m.SentDocuments, SentDocument{
		ChatID:    params.ChatID,
		Filename:  filename,
		Caption:   params.Caption,
		ParseMode: params.ParseMode,
	})

	msgID := m.NextMessageID
	m.NextMessageID++

	return &models.Message{
		ID:      msgID,
		Chat:    models.Chat{ID: chatIDToInt64(params.ChatID)},
		Caption: params.Caption,
		Document: &models.Document{
			FileID:   "mock_file_id",
			FileName: filename,
		},
	}, nil
}

// Reset clears all recorded interactions.
func (m *MockBot) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SentMessages = make([]SentMessage, 0)
	m.SentDocuments = make([]SentDocument, 0)
	m.SendMessageError = nil
	m.SendDocumentError = nil
}

// LastSentMessage returns the most recently sent message, or nil if none.
func (m *MockBot) LastSentMessage() *SentMessage {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.SentMessages) == 0 {
		return nil
	}
	return &m.SentMessages[len(m.SentMessages)-1]
}

// SentMessageCount returns the number of messages sent.
func (m *MockBot) SentMessageCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.SentMessages)
}

// SentDocumentCount returns the number of documents sent.
func (m *MockBot) SentDocumentCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.SentDocuments)
}

// LastSentDocument returns the most recently sent document, or nil if none.
func (m *MockBot) LastSentDocument() *SentDocument {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.SentDocuments) == 0 {
		return nil
	}
	return &m.SentDocuments[len(m.SentDocuments)-1]
}

// chatIDToInt64 converts a ChatID to int64.
func chatIDToInt64(chatID any) int64 {
	switch v := chatID.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	default:
		return 0
	}
}
