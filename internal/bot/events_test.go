package bot

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestFirstImageAttachment(t *testing.T) {
	tests := []struct {
		name        string
		attachments []*discordgo.MessageAttachment
		wantID      string
	}{
		{
			name:   "no attachments",
			wantID: "",
		},
		{
			name: "non-image attachment",
			attachments: []*discordgo.MessageAttachment{
				{ID: "1", ContentType: "application/pdf"},
			},
			wantID: "",
		},
		{
			name: "image attachment",
			attachments: []*discordgo.MessageAttachment{
				{ID: "1", ContentType: "image/png"},
			},
			wantID: "1",
		},
		{
			name: "uppercase content type",
			attachments: []*discordgo.MessageAttachment{
				{ID: "1", ContentType: "IMAGE/JPEG"},
			},
			wantID: "1",
		},
		{
			name: "image after non-image",
			attachments: []*discordgo.MessageAttachment{
				{ID: "1", ContentType: "text/plain"},
				{ID: "2", ContentType: "image/jpeg"},
			},
			wantID: "2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := firstImageAttachment(tt.attachments)
			if tt.wantID == "" {
				if got != nil {
					t.Fatalf("expected no attachment, got %v", got)
				}
				return
			}
			if got == nil || got.ID != tt.wantID {
				t.Fatalf("expected attachment %s, got %v", tt.wantID, got)
			}
		})
	}
}
