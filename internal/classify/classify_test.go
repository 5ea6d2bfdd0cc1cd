package classify

import (
	"testing"

	"github.com/shopvault/shopvault/internal/models"
)

func TestClassify_AllKinds(t *testing.T) {
	tests := []struct {
		name         string
		node         models.FileNode
		wantURL      string
		wantCategory Category
	}{
		{
			name:         "generic file",
			node:         models.FileNode{Typename: models.KindGenericFile, URL: "https://cdn/doc.pdf"},
			wantURL:      "https://cdn/doc.pdf",
			wantCategory: CategoryGeneric,
		},
		{
			name:         "media image",
			node:         models.FileNode{Typename: models.KindMediaImage, Image: &models.ImageSource{URL: "https://cdn/pic.png"}},
			wantURL:      "https://cdn/pic.png",
			wantCategory: CategoryImages,
		},
		{
			name:         "video",
			node:         models.FileNode{Typename: models.KindVideo, OriginalSource: &models.OriginalSource{URL: "https://cdn/clip.mp4"}},
			wantURL:      "https://cdn/clip.mp4",
			wantCategory: CategoryVideos,
		},
		{
			name:         "3d model",
			node:         models.FileNode{Typename: models.KindModel3d, OriginalSource: &models.OriginalSource{URL: "https://cdn/chair.glb"}},
			wantURL:      "https://cdn/chair.glb",
			wantCategory: CategoryModels,
		},
		{
			name:         "external video",
			node:         models.FileNode{Typename: models.KindExternalVideo, EmbeddedURL: "https://youtu.be/xyz.mp4"},
			wantURL:      "https://youtu.be/xyz.mp4",
			wantCategory: CategoryExternal,
		},
		{
			name:         "unrecognized kind falls back to unknown",
			node:         models.FileNode{Typename: "SomeFutureKind", URL: "https://cdn/whatever"},
			wantURL:      "",
			wantCategory: CategoryUnknown,
		},
		{
			name:         "empty kind falls back to unknown",
			node:         models.FileNode{},
			wantURL:      "",
			wantCategory: CategoryUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.node)
			if got.URL != tt.wantURL {
				t.Errorf("URL = %q, want %q", got.URL, tt.wantURL)
			}
			if got.Category != tt.wantCategory {
				t.Errorf("Category = %q, want %q", got.Category, tt.wantCategory)
			}
		})
	}
}

func TestClassify_AbsentURLFields(t *testing.T) {
	// A matched variant whose URL-bearing field is absent yields an
	// empty URL; the category stays the variant's own.
	tests := []struct {
		name         string
		node         models.FileNode
		wantCategory Category
	}{
		{"media image without image", models.FileNode{Typename: models.KindMediaImage}, CategoryImages},
		{"video without original source", models.FileNode{Typename: models.KindVideo}, CategoryVideos},
		{"model without original source", models.FileNode{Typename: models.KindModel3d}, CategoryModels},
		{"external video without embedded url", models.FileNode{Typename: models.KindExternalVideo}, CategoryExternal},
		{"generic file without url", models.FileNode{Typename: models.KindGenericFile}, CategoryGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.node)
			if got.URL != "" {
				t.Errorf("expected empty URL, got %q", got.URL)
			}
			if got.Category != tt.wantCategory {
				t.Errorf("Category = %q, want %q", got.Category, tt.wantCategory)
			}
		})
	}
}
