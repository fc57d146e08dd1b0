package model

import (
	"time"
)

type EmbedStats struct {
	Setup               time.Duration `json:"setup"`
	Embedding           time.Duration `json:"embedding"`
	OutputImageEncoding time.Duration `json:"output_image_encoding"`
}

type RevealStats struct {
	Revealing           time.Duration `json:"revealing"`
	OutputImageEncoding time.Duration `json:"output_image_encoding"`
}

type FilterStats struct {
	Filtering           time.Duration `json:"filtering"`
	OutputImageEncoding time.Duration `json:"output_image_encoding"`
}
