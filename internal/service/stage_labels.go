// internal/service/stage_labels.go
package service

import "go_4_word_learn/internal/model"

const knowByHeartLabel = "Know by heart"

var stageLabels = [...]string{
	"Unknown",
	"Just learned",
	"Learning",
	"Getting familiar",
	"Familiar",
	"Confident",
	"Well known",
}

// StageLabel は表示用のステージ名を返す。スケジューリングには使わない。
func StageLabel(stage int) string {
	if stage < 0 {
		stage = 0
	}
	if stage >= model.KnowByHeartStage {
		return knowByHeartLabel
	}
	return stageLabels[stage]
}
