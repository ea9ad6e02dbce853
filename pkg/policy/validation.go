package policy

import "fmt"

// ValidateRecord applies the constraints the parser leaves to callers.
// Seed mismatches beyond 2 lose sensitivity guarantees and are rejected
// outright, as is a non-positive seed length.
func ValidateRecord(rec *Policy) error {
	if rec.SeedMismatches < 0 || rec.SeedMismatches > 2 {
		return fmt.Errorf("seed mismatches must be 0-2, got %d", rec.SeedMismatches)
	}
	if rec.SeedLength <= 0 {
		return fmt.Errorf("seed length must be positive, got %d", rec.SeedLength)
	}
	return nil
}

// ValidateProfile checks the enumerated fields of a user-supplied
// profile overlay before it is used to seed records.
func ValidateProfile(p *Profile) error {
	switch p.MismatchPenaltyType {
	case CostConstant, CostQuality, CostRoundedQuality:
	default:
		return fmt.Errorf("invalid mismatch penalty type: %s", p.MismatchPenaltyType)
	}
	switch p.NPenaltyType {
	case CostConstant, CostQuality, CostRoundedQuality:
	default:
		return fmt.Errorf("invalid N penalty type: %s", p.NPenaltyType)
	}
	switch p.IvalKind {
	case IvalLinear, IvalSqrt, IvalCbrt:
	default:
		return fmt.Errorf("invalid seed interval kind: %s", p.IvalKind)
	}
	return nil
}
