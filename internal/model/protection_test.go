package model

import "testing"

func TestProtectionBlocks(t *testing.T) {
	single := &Move{ID: "tackle", Category: CategoryPhysical}
	spread := &Move{ID: "earthquake", Category: CategoryPhysical, Spread: true}
	priority := &Move{ID: "quick-attack", Category: CategoryPhysical, Priority: 1}
	status := &Move{ID: "growl", Category: CategoryStatus}
	fixed := &Move{ID: "seismic-toss", Category: CategoryPhysical, FixedDamage: true}

	tests := []struct {
		name  string
		state ProtectionState
		move  *Move
		want  bool
	}{
		{"protect blocks single", ProtectionState{Count: 1, Active: ProtectProtect}, single, true},
		{"protect blocks spread", ProtectionState{Count: 1, Active: ProtectProtect}, spread, true},
		{"spiky shield blocks", ProtectionState{Count: 1, Active: ProtectSpikyShield}, single, true},
		{"wide guard blocks spread only", ProtectionState{Count: 1, Active: ProtectWideGuard}, spread, true},
		{"wide guard ignores single", ProtectionState{Count: 1, Active: ProtectWideGuard}, single, false},
		{"quick guard blocks priority only", ProtectionState{Count: 1, Active: ProtectQuickGuard}, priority, true},
		{"quick guard ignores normal", ProtectionState{Count: 1, Active: ProtectQuickGuard}, single, false},
		{"endure never blocks", ProtectionState{Count: 1, Active: ProtectEndure}, single, false},
		{"inactive never blocks", ProtectionState{}, single, false},
		{"status moves pass", ProtectionState{Count: 1, Active: ProtectProtect}, status, false},
		{"fixed damage is blocked", ProtectionState{Count: 1, Active: ProtectProtect}, fixed, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.Blocks(tt.move); got != tt.want {
				t.Errorf("Blocks(%s) with %s = %v, want %v", tt.move.ID, tt.state.Active, got, tt.want)
			}
		})
	}
}

func TestEnduring(t *testing.T) {
	if !(ProtectionState{Count: 1, Active: ProtectEndure}).Enduring() {
		t.Error("Enduring() = false for active Endure, want true")
	}
	if (ProtectionState{Count: 1, Active: ProtectProtect}).Enduring() {
		t.Error("Enduring() = true for active Protect, want false")
	}
}
