package policy

import "testing"

func TestValidateRecord(t *testing.T) {
	tests := []struct {
		name    string
		policy  string
		wantErr bool
	}{
		{"defaults", "", false},
		{"max mismatches", "SEED=2", false},
		{"mismatches too high", "SEED=3", true},
		{"mismatches negative", "SEED=-1", true},
		{"zero seed length", "SEED=0,0", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := Parse(tt.policy, false, false, nil)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			err = ValidateRecord(rec)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRecord() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateProfile(t *testing.T) {
	if err := ValidateProfile(Builtin()); err != nil {
		t.Errorf("builtin profile should validate, got %v", err)
	}

	bad := Builtin()
	bad.MismatchPenaltyType = "sometimes"
	if err := ValidateProfile(bad); err == nil {
		t.Error("invalid mismatch penalty type should be rejected")
	}

	bad = Builtin()
	bad.NPenaltyType = ""
	if err := ValidateProfile(bad); err == nil {
		t.Error("empty N penalty type should be rejected")
	}

	bad = Builtin()
	bad.IvalKind = "log"
	if err := ValidateProfile(bad); err == nil {
		t.Error("invalid interval kind should be rejected")
	}
}
