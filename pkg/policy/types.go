// Package policy compiles textual alignment-policy strings into the
// scoring and seeding parameters consumed by the alignment engine.
//
// A policy string is a ;-separated list of tag=value settings, e.g.
// "MMP=C6;MIN=-0.6,-0.6;SEED=0,22". Parse seeds a record from a default
// profile keyed on the alignment mode flags, then folds each setting over
// it in order, later settings winning.
package policy

import (
	"encoding/json"
	"math"
)

// CostModel selects how a per-position penalty (or bonus) is computed.
type CostModel string

const (
	CostConstant       CostModel = "constant"        // fixed integer cost
	CostQuality        CostModel = "quality"         // cost equals the base's quality value
	CostRoundedQuality CostModel = "rounded-quality" // quality rounded to nearest 10, capped at 30
)

// IvalKind selects the read-length function used for seed spacing.
type IvalKind string

const (
	IvalLinear IvalKind = "linear" // interval = a*len + b
	IvalSqrt   IvalKind = "sqrt"   // interval = a*sqrt(len) + b
	IvalCbrt   IvalKind = "cbrt"   // interval = a*cbrt(len) + b
)

// LinearFunc is a function of read length: Const + Linear*len.
// Minimum-score thresholds, the local-alignment score floor and the
// N ceiling are all expressed this way.
type LinearFunc struct {
	Const  float64 `yaml:"const" json:"const"`
	Linear float64 `yaml:"linear" json:"linear"`
}

// Eval returns the function value for a read of the given length.
func (f LinearFunc) Eval(readLen int) float64 {
	return f.Const + f.Linear*float64(readLen)
}

// MarshalJSON encodes infinite coefficients as "inf"/"-inf" strings.
// The global-mode score floor defaults to -Inf, which plain JSON
// numbers cannot represent.
func (f LinearFunc) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"const":  jsonFloat(f.Const),
		"linear": jsonFloat(f.Linear),
	})
}

func jsonFloat(v float64) any {
	if math.IsInf(v, -1) {
		return "-inf"
	}
	if math.IsInf(v, 1) {
		return "inf"
	}
	return v
}

// IntervalFunc computes the spacing between consecutive seeds along a
// read as A*f(len)+B, where f depends on Kind.
type IntervalFunc struct {
	Kind IvalKind `yaml:"kind" json:"kind"`
	A    float64  `yaml:"a" json:"a"`
	B    float64  `yaml:"b" json:"b"`
}

// Eval returns the seed interval for a read of the given length.
// Intervals below 1 are rounded up to 1.
func (f IntervalFunc) Eval(readLen int) int {
	n := float64(readLen)
	var x float64
	switch f.Kind {
	case IvalSqrt:
		x = math.Sqrt(n)
	case IvalCbrt:
		x = math.Cbrt(n)
	default:
		x = n
	}
	ival := int(f.A*x + f.B)
	if ival < 1 {
		ival = 1
	}
	return ival
}

// Policy is a fully compiled alignment policy. Every field is defined:
// either the default for the mode flags the record was compiled under,
// or an explicit override from the policy string. Records are not
// mutated after Parse returns.
type Policy struct {
	// Bonus contributed by each matching position. Only the constant
	// model is expressible in the policy grammar (tag MA).
	MatchBonusType CostModel `yaml:"match_bonus_type" json:"match_bonus_type"`
	MatchBonus     int       `yaml:"match_bonus" json:"match_bonus"`

	// Penalty per mismatched position (tag MMP).
	MismatchPenaltyType CostModel `yaml:"mismatch_penalty_type" json:"mismatch_penalty_type"`
	MismatchPenalty     int       `yaml:"mismatch_penalty" json:"mismatch_penalty"`

	// Penalty per nucleotide difference in a decoded colorspace
	// alignment (tag SNP).
	SNPPenalty int `yaml:"snp_penalty" json:"snp_penalty"`

	// Penalty per position with an N in read or reference (tag NP).
	NPenaltyType CostModel `yaml:"n_penalty_type" json:"n_penalty_type"`
	NPenalty     int       `yaml:"n_penalty" json:"n_penalty"`

	// Gap penalties: total cost of a gap of length L is open + extend*L.
	// Tags RDG and RFG.
	ReadGapOpen   int `yaml:"read_gap_open" json:"read_gap_open"`
	ReadGapExtend int `yaml:"read_gap_extend" json:"read_gap_extend"`
	RefGapOpen    int `yaml:"ref_gap_open" json:"ref_gap_open"`
	RefGapExtend  int `yaml:"ref_gap_extend" json:"ref_gap_extend"`

	// Minimum total score for a valid alignment, as a function of read
	// length (tag MIN).
	MinScore LinearFunc `yaml:"min_score" json:"min_score"`

	// Score floor for local alignment: DP cells scoring below the floor
	// cannot be on a valid alignment path (tag FL).
	ScoreFloor LinearFunc `yaml:"score_floor" json:"score_floor"`

	// Ceiling on N positions per alignment, as a function of read
	// length (tag NCEIL).
	NCeil LinearFunc `yaml:"n_ceil" json:"n_ceil"`

	// Whether the N ceiling applies to a paired-end read as a whole.
	// Fixed by the profile; no tag sets it.
	NCatPair bool `yaml:"n_cat_pair" json:"n_cat_pair"`

	// Seed extraction parameters (tag SEED). SeedMismatches must be in
	// [0,2]; Parse does not enforce the range, ValidateRecord does.
	// A negative SeedPeriod means the interval function governs spacing.
	SeedMismatches int `yaml:"seed_mismatches" json:"seed_mismatches"`
	SeedLength     int `yaml:"seed_length" json:"seed_length"`
	SeedPeriod     int `yaml:"seed_period" json:"seed_period"`

	// Seed spacing as a function of read length (tag IVAL).
	SeedIval IntervalFunc `yaml:"seed_ival" json:"seed_ival"`

	// Seed-search breadth controls (tags POSF and ROWM): examine at
	// least PosMin seed positions and at most PosFrac of the total, and
	// try at most RowMin + RowMult*N extensions per position.
	PosMin  float64 `yaml:"pos_min" json:"pos_min"`
	PosFrac float64 `yaml:"pos_frac" json:"pos_frac"`
	RowMin  float64 `yaml:"row_min" json:"row_min"`
	RowMult float64 `yaml:"row_mult" json:"row_mult"`
}

// RoundQuality rounds a base quality to the nearest multiple of 10,
// capping at 30. This is the value the rounded-quality cost model charges.
func RoundQuality(q int) int {
	if q < 0 {
		q = 0
	}
	r := (q + 5) / 10 * 10
	if r > 30 {
		r = 30
	}
	return r
}
