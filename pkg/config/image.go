package config

import (
	"image/png"
	"runtime"
)

const (
	DefaultRowsPerChunk   = 64
	DefaultPngCompression = png.DefaultCompression
)

type CodecConfig struct {
	// Workers is the max number of goroutines sweeping the image at once, defaults to the number of CPUs
	Workers             int
	RowsPerChunk        int
	PngCompressionLevel png.CompressionLevel
}

func (c *CodecConfig) PopulateUnsetConfigVars() {
	if c.Workers < 1 {
		c.Workers = runtime.NumCPU()
	}
	if c.RowsPerChunk < 1 {
		c.RowsPerChunk = DefaultRowsPerChunk
	}
}

var (
	pngCompressionMapping = map[string]png.CompressionLevel{
		"default": png.DefaultCompression,
		"none":    png.NoCompression,
		"fast":    png.BestSpeed,
		"best":    png.BestCompression,
	}
)

// ParsePngCompression maps default, none, fast and best to a png.CompressionLevel. Unknown names map to fallback
func ParsePngCompression(name string, fallback png.CompressionLevel) png.CompressionLevel {
	mappedCompression, found := pngCompressionMapping[name]
	if !found {
		return fallback
	}
	return mappedCompression
}
