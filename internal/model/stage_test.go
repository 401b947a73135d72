package model

import (
	"errors"
	"testing"
)

func TestStatStagesValidate(t *testing.T) {
	tests := []struct {
		name    string
		stages  StatStages
		wantErr bool
	}{
		{"all zero", StatStages{}, false},
		{"at bounds", StatStages{Attack: 6, Defense: -6, Evasion: 6, Accuracy: -6}, false},
		{"attack above max", StatStages{Attack: 7}, true},
		{"evasion below min", StatStages{Evasion: -7}, true},
		{"speed above max", StatStages{Speed: 12}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.stages.Validate()
			if tt.wantErr && !errors.Is(err, ErrStageOutOfRange) {
				t.Errorf("Validate() err = %v, want ErrStageOutOfRange", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() err = %v, want nil", err)
			}
		})
	}
}

func TestStatStagesGet(t *testing.T) {
	s := StatStages{Attack: 2, SpDefense: -3, Accuracy: 1}
	if got := s.Get(StatAttack); got != 2 {
		t.Errorf("Get(Attack) = %d, want 2", got)
	}
	if got := s.Get(StatSpDefense); got != -3 {
		t.Errorf("Get(SpDefense) = %d, want -3", got)
	}
	if got := s.Get(StatAccuracy); got != 1 {
		t.Errorf("Get(Accuracy) = %d, want 1", got)
	}
	if got := s.Get(StatHP); got != 0 {
		t.Errorf("Get(HP) = %d, want 0 (HP has no stage)", got)
	}
}
