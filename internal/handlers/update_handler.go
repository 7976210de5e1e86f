// internal/handlers/update_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_4_word_learn/internal/middleware"
	"go_4_word_learn/internal/model"
	"go_4_word_learn/internal/webutil"
)

// UpdateHandler はチャットゲートウェイからの更新を受け取り、返信を JSON で返します。
type UpdateHandler struct {
	bot *Bot
}

func NewUpdateHandler(bot *Bot) *UpdateHandler {
	return &UpdateHandler{bot: bot}
}

// PostUpdate は POST /api/v1/updates
func (h *UpdateHandler) PostUpdate(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "PostUpdate"))

	var upd model.Update
	if err := webutil.DecodeJSONBody(r, &upd); err != nil {
		logger.Warn("Invalid update payload", slog.String("error", err.Error()))
		webutil.HandleError(w, r, err)
		return
	}

	ctx := middleware.WithLogger(r.Context(), logger)
	replies, err := h.bot.Handle(ctx, &upd)
	if err != nil {
		webutil.HandleError(w, r, err)
		return
	}
	if replies == nil {
		replies = []model.Reply{}
	}
	logger.Debug("Update handled", slog.Int64("chat_id", upd.ChatID), slog.Int("replies", len(replies)))
	webutil.RespondWithJSON(w, http.StatusOK, model.UpdateResponse{Replies: replies})
}
