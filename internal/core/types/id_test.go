package types

import (
	"encoding/json"
	"testing"
)

func TestActorID_String(t *testing.T) {
	tests := []struct {
		name string
		id   ActorID
		want string
	}{
		{name: "nil id", id: NilActorID, want: "<nil>"},
		{name: "simple id", id: ActorID(7), want: "#7"},
		{name: "max id", id: ActorID(0xFFFFFFFF), want: "#4294967295"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.id.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActorID_Next(t *testing.T) {
	if got := ActorID(41).Next(); got != 42 {
		t.Errorf("Next() = %d, want 42", got)
	}
	if NilActorID.Next().IsNil() {
		t.Error("Next() of nil id must not be nil")
	}
}

func TestActorID_TextRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ActorID
		wantErr bool
	}{
		{name: "number", input: "105", want: ActorID(105)},
		{name: "empty is nil", input: "", want: NilActorID},
		{name: "negative", input: "-1", wantErr: true},
		{name: "overflow", input: "4294967296", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got ActorID
			err := got.UnmarshalText([]byte(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got id %d", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("UnmarshalText() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestActorID_AsJSONMapKey(t *testing.T) {
	in := map[ActorID]int{1: 10, 2: 20}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"1":10,"2":20}` {
		t.Errorf("json = %s", data)
	}

	var out map[ActorID]int
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out[2] != 20 {
		t.Errorf("out[2] = %d, want 20", out[2])
	}
}
