package server

import (
	"planesteg/pkg/model"
)

type humanizedEmbedStats struct {
	model.EmbedStats
	SetupHuman               string `json:"setup_human"`
	EmbeddingHuman           string `json:"embedding_human"`
	OutputImageEncodingHuman string `json:"output_image_encoding_human"`
}

type humanizedRevealStats struct {
	model.RevealStats
	RevealingHuman           string `json:"revealing_human"`
	OutputImageEncodingHuman string `json:"output_image_encoding_human"`
}

type humanizedFilterStats struct {
	model.FilterStats
	FilteringHuman           string `json:"filtering_human"`
	OutputImageEncodingHuman string `json:"output_image_encoding_human"`
}

func toHumanizedEmbedStats(embedStats model.EmbedStats) humanizedEmbedStats {
	return humanizedEmbedStats{
		EmbedStats:               embedStats,
		SetupHuman:               embedStats.Setup.String(),
		EmbeddingHuman:           embedStats.Embedding.String(),
		OutputImageEncodingHuman: embedStats.OutputImageEncoding.String(),
	}
}

func toHumanizedRevealStats(revealStats model.RevealStats) humanizedRevealStats {
	return humanizedRevealStats{
		RevealStats:              revealStats,
		RevealingHuman:           revealStats.Revealing.String(),
		OutputImageEncodingHuman: revealStats.OutputImageEncoding.String(),
	}
}

func toHumanizedFilterStats(filterStats model.FilterStats) humanizedFilterStats {
	return humanizedFilterStats{
		FilterStats:              filterStats,
		FilteringHuman:           filterStats.Filtering.String(),
		OutputImageEncodingHuman: filterStats.OutputImageEncoding.String(),
	}
}
