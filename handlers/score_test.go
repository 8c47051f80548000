package handlers

import (
	"encoding/json"
	"testing"

	"github.com/cianmurphy/kickpredict/scoring"
)

func intPtr(n int) *int { return &n }

func TestValidateScoreRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     scoreRequest
		want    scoring.Status
		wantErr bool
	}{
		{
			name: "omitted status defaults to completed",
			req:  scoreRequest{HomeScore: intPtr(2), AwayScore: intPtr(1)},
			want: scoring.StatusCompleted,
		},
		{
			name: "explicit completed",
			req:  scoreRequest{HomeScore: intPtr(0), AwayScore: intPtr(0), Status: "completed"},
			want: scoring.StatusCompleted,
		},
		{
			name: "rollback without scores",
			req:  scoreRequest{Status: "in_progress"},
			want: scoring.StatusInProgress,
		},
		{
			name:    "completed without scores",
			req:     scoreRequest{Status: "completed"},
			wantErr: true,
		},
		{
			name:    "negative home score",
			req:     scoreRequest{HomeScore: intPtr(-1), AwayScore: intPtr(1)},
			wantErr: true,
		},
		{
			name:    "negative away score",
			req:     scoreRequest{HomeScore: intPtr(1), AwayScore: intPtr(-2)},
			wantErr: true,
		},
		{
			name:    "unknown status",
			req:     scoreRequest{HomeScore: intPtr(1), AwayScore: intPtr(0), Status: "finished"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validateScoreRequest(tt.req)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got status %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScoreRequestBinding(t *testing.T) {
	// Missing score fields must decode to nil, not zero.
	var req scoreRequest
	if err := json.Unmarshal([]byte(`{"status":"cancelled"}`), &req); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if req.HomeScore != nil || req.AwayScore != nil {
		t.Errorf("expected nil scores, got %v / %v", req.HomeScore, req.AwayScore)
	}
	if req.Status != "cancelled" {
		t.Errorf("expected status cancelled, got %q", req.Status)
	}

	req = scoreRequest{}
	if err := json.Unmarshal([]byte(`{"home_score":0,"away_score":0}`), &req); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if req.HomeScore == nil || *req.HomeScore != 0 || req.AwayScore == nil || *req.AwayScore != 0 {
		t.Errorf("expected explicit 0-0, got %v / %v", req.HomeScore, req.AwayScore)
	}
}
