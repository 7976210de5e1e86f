// internal/model/dialog.go
package model

import "github.com/google/uuid"

// DialogState は単語追加ダイアログの状態
type DialogState string

const (
	DialogIdle     DialogState = "idle"
	DialogChoosing DialogState = "choosing"
)

// WordCandidate is a word offered in the add-words dialog.
type WordCandidate struct {
	WordID uuid.UUID `json:"word_id"`
	Source string    `json:"source"`
	Target string    `json:"target"`
}

// AddWordsDialog はチャットごとの「/addWords」ダイアログ
// 決定は最後にまとめて保存する
type AddWordsDialog struct {
	ChatID     int64           `json:"chat_id"`
	State      DialogState     `json:"state"`
	Candidates []WordCandidate `json:"candidates"`
	Index      int             `json:"index"`
	Learn      []uuid.UUID     `json:"learn"`
	Skip       []uuid.UUID     `json:"skip"`
}

// Current returns the candidate being offered, if any.
func (d *AddWordsDialog) Current() (WordCandidate, bool) {
	if d.State != DialogChoosing || d.Index >= len(d.Candidates) {
		return WordCandidate{}, false
	}
	return d.Candidates[d.Index], true
}

// Done reports whether every candidate has been decided.
func (d *AddWordsDialog) Done() bool {
	return d.Index >= len(d.Candidates)
}
