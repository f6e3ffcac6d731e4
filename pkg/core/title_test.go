package core

import (
	"strings"
	"testing"
)

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantKey  string
		wantRest string
	}{
		{
			name:     "Period Split",
			content:  "Buy milk. Remember eggs too",
			wantKey:  "Buy milk",
			wantRest: " Remember eggs too",
		},
		{
			name:     "Newline Split",
			content:  "Shopping list\nmilk\neggs",
			wantKey:  "Shopping list",
			wantRest: "milk\neggs",
		},
		{
			name:     "Filename Substitution",
			content:  "Standup 10:30 w/ team. notes below",
			wantKey:  "Standup 10-30 w_ team",
			wantRest: " notes below",
		},
		{
			name:     "No Separator",
			content:  "just a short reminder without an end",
			wantKey:  "",
			wantRest: "just a short reminder without an end",
		},
		{
			name:     "Run-On Content",
			content:  strings.Repeat("x", 200),
			wantKey:  "",
			wantRest: strings.Repeat("x", 200),
		},
		{
			name:     "Prefix At Limit",
			content:  strings.Repeat("a", 40) + ". rest",
			wantKey:  "",
			wantRest: strings.Repeat("a", 40) + ". rest",
		},
		{
			name:     "Prefix Below Limit",
			content:  strings.Repeat("a", 39) + ". rest",
			wantKey:  strings.Repeat("a", 39),
			wantRest: " rest",
		},
		{
			name: "Multibyte Length Counted In Runes",
			// 39 two-byte runes: over the limit in bytes, under it in runes.
			content:  strings.Repeat("é", 39) + ".x",
			wantKey:  strings.Repeat("é", 39),
			wantRest: "x",
		},
		{
			name:     "Leading Separator",
			content:  ". body only",
			wantKey:  "",
			wantRest: " body only",
		},
		{
			name:     "Empty Content",
			content:  "",
			wantKey:  "",
			wantRest: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, rest := ExtractTitle(tt.content)
			if key != tt.wantKey {
				t.Errorf("ExtractTitle() key = %q, want %q", key, tt.wantKey)
			}
			if rest != tt.wantRest {
				t.Errorf("ExtractTitle() rest = %q, want %q", rest, tt.wantRest)
			}

			// Pure function: a second call must agree with the first.
			key2, rest2 := ExtractTitle(tt.content)
			if key2 != key || rest2 != rest {
				t.Errorf("ExtractTitle() is not deterministic for %q", tt.content)
			}
		})
	}
}

func TestFilterMetadata(t *testing.T) {
	fields := map[string]any{
		"content":            "ignored",
		"created_at":         "ignored",
		"uuid":               "ignored",
		"flagged":            true,
		"created_latitude":   51.5,
		"created_longitude":  -0.1,
		"modified_latitude":  48.8,
		"modified_longitude": 2.3,
	}

	meta := FilterMetadata(fields)
	if len(meta) != 4 {
		t.Fatalf("FilterMetadata() kept %d keys, want 4: %v", len(meta), meta)
	}
	for _, k := range []string{"created_latitude", "created_longitude", "modified_latitude", "modified_longitude"} {
		if _, ok := meta[k]; !ok {
			t.Errorf("FilterMetadata() dropped allow-listed key %q", k)
		}
	}
	if _, ok := meta["uuid"]; ok {
		t.Errorf("FilterMetadata() kept unrecognized key uuid")
	}
}
