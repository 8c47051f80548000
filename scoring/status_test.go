package scoring

import "testing"

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{"scheduled", StatusScheduled, false},
		{"in_progress", StatusInProgress, false},
		{"completed", StatusCompleted, false},
		{"cancelled", StatusCancelled, false},
		{"postponed", StatusPostponed, false},
		{"", StatusCompleted, false}, // omitted status defaults to completed
		{"finished", "", true},
		{"COMPLETED", "", true},
	}

	for _, tt := range tests {
		got, err := ParseStatus(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseStatus(%q): expected error, got %q", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseStatus(%q): unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTransition(t *testing.T) {
	tests := []struct {
		name       string
		prev, next Status
		want       Action
	}{
		{"fresh completion", StatusScheduled, StatusCompleted, ActionRescore},
		{"completion from in progress", StatusInProgress, StatusCompleted, ActionRescore},
		{"result correction", StatusCompleted, StatusCompleted, ActionRescore},
		{"rollback to in progress", StatusCompleted, StatusInProgress, ActionUnscore},
		{"rollback to scheduled", StatusCompleted, StatusScheduled, ActionUnscore},
		{"completed match cancelled", StatusCompleted, StatusCancelled, ActionUnscore},
		{"completed match postponed", StatusCompleted, StatusPostponed, ActionUnscore},
		{"kickoff", StatusScheduled, StatusInProgress, ActionNone},
		{"postponement", StatusScheduled, StatusPostponed, ActionNone},
		{"cancellation before kickoff", StatusScheduled, StatusCancelled, ActionNone},
		{"abandoned", StatusInProgress, StatusCancelled, ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Transition(tt.prev, tt.next); got != tt.want {
				t.Errorf("Transition(%s, %s) = %v, want %v", tt.prev, tt.next, got, tt.want)
			}
		})
	}
}
