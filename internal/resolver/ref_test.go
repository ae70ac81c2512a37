package resolver

import (
	"encoding/json"
	"testing"

	"hitbox/backend/internal/models"

	"github.com/google/uuid"
)

func TestParseRef(t *testing.T) {
	localID := uuid.New()

	tests := []struct {
		name     string
		input    string
		wantErr  bool
		isLocal  bool
		external int64
	}{
		{name: "uuid is local", input: localID.String(), isLocal: true},
		{name: "number is external", input: "1020", external: 1020},
		{name: "whitespace trimmed", input: "  1020 ", external: 1020},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "not-an-id", wantErr: true},
		{name: "negative", input: "-5", wantErr: true},
		{name: "zero", input: "0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := ParseRef(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseRef(%q) error = nil, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRef(%q) error = %v", tt.input, err)
			}
			if ref.IsLocal() != tt.isLocal {
				t.Errorf("IsLocal() = %v, want %v", ref.IsLocal(), tt.isLocal)
			}
			if tt.isLocal {
				if ref.LocalID() != localID {
					t.Errorf("LocalID() = %v, want %v", ref.LocalID(), localID)
				}
				return
			}
			provider, id := ref.External()
			if provider != models.ProviderIGDB {
				t.Errorf("provider = %v, want igdb default", provider)
			}
			if id != tt.external {
				t.Errorf("external ID = %d, want %d", id, tt.external)
			}
		})
	}
}

func TestGameRefUnmarshalJSON(t *testing.T) {
	localID := uuid.New()

	var payload struct {
		GameID GameRef `json:"gameId"`
	}

	if err := json.Unmarshal([]byte(`{"gameId": 1020}`), &payload); err != nil {
		t.Fatalf("unmarshal number: %v", err)
	}
	if payload.GameID.IsLocal() {
		t.Error("number unmarshalled as local ref")
	}
	if _, id := payload.GameID.External(); id != 1020 {
		t.Errorf("external ID = %d, want 1020", id)
	}

	if err := json.Unmarshal([]byte(`{"gameId": "`+localID.String()+`"}`), &payload); err != nil {
		t.Fatalf("unmarshal uuid string: %v", err)
	}
	if !payload.GameID.IsLocal() || payload.GameID.LocalID() != localID {
		t.Errorf("uuid string ref = %+v, want local %v", payload.GameID, localID)
	}

	if err := json.Unmarshal([]byte(`{"gameId": "77"}`), &payload); err != nil {
		t.Fatalf("unmarshal numeric string: %v", err)
	}
	if _, id := payload.GameID.External(); id != 77 {
		t.Errorf("external ID = %d, want 77", id)
	}

	for _, bad := range []string{`{"gameId": true}`, `{"gameId": 3.5}`, `{"gameId": "junk"}`, `{"gameId": -1}`} {
		if err := json.Unmarshal([]byte(bad), &payload); err == nil {
			t.Errorf("unmarshal %s: error = nil, want error", bad)
		}
	}
}

func TestGameRefWithProvider(t *testing.T) {
	ref := ExternalRef(models.ProviderIGDB, 1020).WithProvider(models.ProviderRAWG)
	if provider, _ := ref.External(); provider != models.ProviderRAWG {
		t.Errorf("provider = %v, want rawg", provider)
	}

	local := LocalRef(uuid.New()).WithProvider(models.ProviderRAWG)
	if !local.IsLocal() {
		t.Error("WithProvider changed a local ref")
	}
}
