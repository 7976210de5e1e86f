// internal/model/chat.go
package model

// Update はチャットから届いた1件の入力 (メッセージかボタン押下)
type Update struct {
	UpdateID int64  `json:"update_id"`
	ChatID   int64  `json:"chat_id" validate:"required"`
	Text     string `json:"text,omitempty" validate:"required_without=Callback,max=512"`
	Callback string `json:"callback,omitempty" validate:"max=128"`
}

// Button is an inline button; Data comes back as Update.Callback.
type Button struct {
	Text string `json:"text"`
	Data string `json:"data,omitempty"`
}

// Reply はチャットへ送るメッセージ
type Reply struct {
	ChatID  int64      `json:"chat_id"`
	Text    string     `json:"text"`
	Buttons [][]Button `json:"buttons,omitempty"`
	// RemoveKeyboard は返信キーボードを閉じる
	RemoveKeyboard bool `json:"remove_keyboard,omitempty"`
}

// UpdateResponse is the webhook response body.
type UpdateResponse struct {
	Replies []Reply `json:"replies"`
}
