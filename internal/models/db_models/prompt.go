package db_models

import "gorm.io/datatypes"

type Prompt struct {
	BaseModel
	Title        string `gorm:"not null"`
	Description  string `gorm:"type:text"`
	Category     string `gorm:"index"` // tool name, e.g. "Midjourney"
	FullPrompt   string `gorm:"type:text;not null"`
	Tags         string // comma-joined
	ImageURL     string
	PreviewImage string

	// Execution breakdown: how much of the result was AI vs manual work.
	AIPercentage           int            `gorm:"check:ai_percentage >= 0 AND ai_percentage <= 100"`
	ManualSteps            datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	AITools                datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	ManualTools            datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	ShowExecutionBreakdown bool           `gorm:"default:false"`
}
