package api

import "planesteg/pkg/model"

type EmbedImageRequest struct {
	CoverImage     []byte `json:"cover_image" binding:"required"`
	HiddenImage    []byte `json:"hidden_image" binding:"required"`
	PngCompression string `json:"png_compression,omitempty" enums:"default,none,fast,best"`
}

type EmbedImageResponse struct {
	CompositeImage []byte           `json:"composite_image"`
	Stats          model.EmbedStats `json:"stats"`
}

type RevealImageRequest struct {
	Image          []byte `json:"image" binding:"required"`
	PngCompression string `json:"png_compression,omitempty" enums:"default,none,fast,best"`
}

type RevealImageResponse struct {
	RevealedImage []byte            `json:"revealed_image"`
	Stats         model.RevealStats `json:"stats"`
}

type FilterImageRequest struct {
	Image     []byte `json:"image" binding:"required"`
	Filter    string `json:"filter" binding:"required" enums:"invert,threshold,line,darken,lighten,no-red"`
	Threshold *uint8 `json:"threshold,omitempty"`
	Row       int    `json:"row,omitempty"`
	Color     *Color `json:"color,omitempty"`

	PngCompression string `json:"png_compression,omitempty" enums:"default,none,fast,best"`
}

type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

type FilterImageResponse struct {
	FilteredImage []byte            `json:"filtered_image"`
	Stats         model.FilterStats `json:"stats"`
}
