// internal/handlers/keyboards.go
package handlers

import (
	"fmt"
	"strings"

	"go_4_word_learn/internal/model"

	"github.com/google/uuid"
)

// ボタンのコールバックデータ
const (
	callbackPractice = "practice"
	callbackReveal   = "reveal"
	callbackFinish   = "finish"
	callbackLearn    = "learn"
	callbackSkip     = "skip"
)

const (
	learnText = "Learn"
	skipText  = "Skip"
)

func revealKeyboard(wordID uuid.UUID) [][]model.Button {
	return [][]model.Button{
		{{Text: "Reveal", Data: fmt.Sprintf("%s %s", callbackReveal, wordID)}},
	}
}

func answerKeyboard(wordID uuid.UUID) [][]model.Button {
	finish := func(action string) string {
		return fmt.Sprintf("%s %s %s", callbackFinish, wordID, action)
	}
	return [][]model.Button{
		{
			{Text: "✅ Done", Data: finish("correct")},
			{Text: "❌ Incorrect", Data: finish("incorrect")},
		},
		{{Text: "🗑️ Delete", Data: finish("delete")}},
	}
}

// practiceKeyboard は "Practice words (12)" のようなボタン1つ
func practiceKeyboard(label string, count int64) [][]model.Button {
	return [][]model.Button{
		{{Text: fmt.Sprintf("%s (%d)", label, count), Data: callbackPractice}},
	}
}

func learnSkipKeyboard() [][]model.Button {
	return [][]model.Button{
		{
			{Text: learnText, Data: callbackLearn},
			{Text: skipText, Data: callbackSkip},
		},
	}
}

// parseCallback は "finish <id> correct" を ("finish", ["<id>", "correct"]) に分ける
func parseCallback(data string) (string, []string) {
	fields := strings.Fields(data)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}
