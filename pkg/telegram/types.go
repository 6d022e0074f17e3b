package telegram

// ParseModeMarkdown selects Telegram's legacy Markdown formatting.
const ParseModeMarkdown = "Markdown"

// maxMessageRunes is the Bot API limit on message text length.
const maxMessageRunes = 4096

// SendMessageRequest is the payload for the sendMessage method.
type SendMessageRequest struct {
	ChatID                int64  `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode,omitempty"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview,omitempty"`
}

// APIResponse is the envelope every Bot API call returns.
type APIResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code,omitempty"`
	Description string `json:"description,omitempty"`
}
