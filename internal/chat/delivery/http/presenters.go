package http

import (
	"nextstep/internal/chat"
	"nextstep/internal/model"
	"nextstep/pkg/response"
)

// --- Request DTOs ---

type messageReq struct {
	Message      string `json:"message" binding:"required"`
	PreferenceID string `json:"preferenceId"`
}

func (r messageReq) toInput() chat.MessageInput {
	return chat.MessageInput{Message: r.Message, PreferenceID: r.PreferenceID}
}

// --- Response DTOs ---

type messageResp struct {
	Reply              string            `json:"reply"`
	Timestamp          response.DateTime `json:"timestamp"`
	ProcessingTimeMs   int64             `json:"processingTimeMs"`
	PreferencesUpdated bool              `json:"preferencesUpdated"`
}

func (h *handler) newMessageResp(output chat.MessageOutput, preferencesUpdated bool) messageResp {
	return messageResp{
		Reply:              output.Reply,
		Timestamp:          response.DateTime(output.Timestamp),
		ProcessingTimeMs:   output.ProcessingTimeMs,
		PreferencesUpdated: preferencesUpdated,
	}
}

type chatMessageResp struct {
	Role    string            `json:"role"`
	Content string            `json:"content"`
	At      response.DateTime `json:"at"`
}

type historyResp struct {
	Messages []chatMessageResp `json:"messages"`
}

func (h *handler) newHistoryResp(output chat.HistoryOutput) historyResp {
	messages := make([]chatMessageResp, 0, len(output.Messages))
	for _, m := range output.Messages {
		messages = append(messages, newChatMessageResp(m))
	}
	return historyResp{Messages: messages}
}

func newChatMessageResp(m model.ChatMessage) chatMessageResp {
	return chatMessageResp{
		Role:    string(m.Role),
		Content: m.Content,
		At:      response.DateTime(m.At),
	}
}
