package policy

import "math"

// Builtin default constants. Mode-dependent pairs carry both variants;
// Profile.Record picks per the flags it is given.
const (
	DefaultMatchBonus      = 0
	DefaultMatchBonusLocal = 2

	DefaultMismatchPenalty = 6
	DefaultSNPPenalty      = 6
	DefaultNPenalty        = 1

	DefaultMinConst       = -0.6
	DefaultMinLinear      = -0.6
	DefaultMinConstLocal  = 0.0
	DefaultMinLinearLocal = 0.66

	DefaultFloorLinear      = 0.0
	DefaultFloorConstLocal  = 0.0
	DefaultFloorLinearLocal = 0.0

	DefaultNCeilConst  = 0.0
	DefaultNCeilLinear = 0.15

	DefaultReadGapOpen        = 5
	DefaultReadGapExtend      = 3
	DefaultReadGapOpenNoisy   = 3
	DefaultReadGapExtendNoisy = 1
	DefaultRefGapOpen         = 5
	DefaultRefGapExtend       = 3
	DefaultRefGapOpenNoisy    = 3
	DefaultRefGapExtendNoisy  = 1

	DefaultSeedMismatches = 0
	DefaultSeedLength     = 22
	DefaultSeedPeriod     = -1 // negative: spacing governed by the interval function

	DefaultIvalA = 1.0
	DefaultIvalB = 0.0

	DefaultPosMin  = 1.0
	DefaultPosFrac = 0.5
	DefaultRowMin  = 1.0
	DefaultRowMult = 1.0
)

// Profile is the default-constant table a policy string overrides. It is
// an input to Parse, so callers can substitute their own baselines; the
// yaml tags let a profile be loaded as an overlay over Builtin.
type Profile struct {
	MatchBonus      int `yaml:"match_bonus"`
	MatchBonusLocal int `yaml:"match_bonus_local"`

	MismatchPenaltyType CostModel `yaml:"mismatch_penalty_type"`
	MismatchPenalty     int       `yaml:"mismatch_penalty"`

	SNPPenalty int `yaml:"snp_penalty"`

	NPenaltyType CostModel `yaml:"n_penalty_type"`
	NPenalty     int       `yaml:"n_penalty"`

	MinConst       float64 `yaml:"min_const"`
	MinLinear      float64 `yaml:"min_linear"`
	MinConstLocal  float64 `yaml:"min_const_local"`
	MinLinearLocal float64 `yaml:"min_linear_local"`

	FloorConst       float64 `yaml:"floor_const"`
	FloorLinear      float64 `yaml:"floor_linear"`
	FloorConstLocal  float64 `yaml:"floor_const_local"`
	FloorLinearLocal float64 `yaml:"floor_linear_local"`

	NCeilConst  float64 `yaml:"n_ceil_const"`
	NCeilLinear float64 `yaml:"n_ceil_linear"`
	NCatPair    bool    `yaml:"n_cat_pair"`

	ReadGapOpen        int `yaml:"read_gap_open"`
	ReadGapExtend      int `yaml:"read_gap_extend"`
	ReadGapOpenNoisy   int `yaml:"read_gap_open_noisy"`
	ReadGapExtendNoisy int `yaml:"read_gap_extend_noisy"`
	RefGapOpen         int `yaml:"ref_gap_open"`
	RefGapExtend       int `yaml:"ref_gap_extend"`
	RefGapOpenNoisy    int `yaml:"ref_gap_open_noisy"`
	RefGapExtendNoisy  int `yaml:"ref_gap_extend_noisy"`

	SeedMismatches int `yaml:"seed_mismatches"`
	SeedLength     int `yaml:"seed_length"`
	SeedPeriod     int `yaml:"seed_period"`

	IvalKind IvalKind `yaml:"ival_kind"`
	IvalA    float64  `yaml:"ival_a"`
	IvalB    float64  `yaml:"ival_b"`

	PosMin  float64 `yaml:"pos_min"`
	PosFrac float64 `yaml:"pos_frac"`
	RowMin  float64 `yaml:"row_min"`
	RowMult float64 `yaml:"row_mult"`
}

// Builtin returns the standard default profile.
func Builtin() *Profile {
	return &Profile{
		MatchBonus:      DefaultMatchBonus,
		MatchBonusLocal: DefaultMatchBonusLocal,

		MismatchPenaltyType: CostConstant,
		MismatchPenalty:     DefaultMismatchPenalty,

		SNPPenalty: DefaultSNPPenalty,

		NPenaltyType: CostConstant,
		NPenalty:     DefaultNPenalty,

		MinConst:       DefaultMinConst,
		MinLinear:      DefaultMinLinear,
		MinConstLocal:  DefaultMinConstLocal,
		MinLinearLocal: DefaultMinLinearLocal,

		FloorConst:       math.Inf(-1),
		FloorLinear:      DefaultFloorLinear,
		FloorConstLocal:  DefaultFloorConstLocal,
		FloorLinearLocal: DefaultFloorLinearLocal,

		NCeilConst:  DefaultNCeilConst,
		NCeilLinear: DefaultNCeilLinear,
		NCatPair:    false,

		ReadGapOpen:        DefaultReadGapOpen,
		ReadGapExtend:      DefaultReadGapExtend,
		ReadGapOpenNoisy:   DefaultReadGapOpenNoisy,
		ReadGapExtendNoisy: DefaultReadGapExtendNoisy,
		RefGapOpen:         DefaultRefGapOpen,
		RefGapExtend:       DefaultRefGapExtend,
		RefGapOpenNoisy:    DefaultRefGapOpenNoisy,
		RefGapExtendNoisy:  DefaultRefGapExtendNoisy,

		SeedMismatches: DefaultSeedMismatches,
		SeedLength:     DefaultSeedLength,
		SeedPeriod:     DefaultSeedPeriod,

		IvalKind: IvalSqrt,
		IvalA:    DefaultIvalA,
		IvalB:    DefaultIvalB,

		PosMin:  DefaultPosMin,
		PosFrac: DefaultPosFrac,
		RowMin:  DefaultRowMin,
		RowMult: DefaultRowMult,
	}
}

// Record materializes the profile into a fresh, fully populated Policy
// for the given mode flags. Match bonus, minimum score and score floor
// key on local; gap penalties key on noisyHpolymer; everything else is
// mode-independent.
func (p *Profile) Record(local, noisyHpolymer bool) *Policy {
	rec := &Policy{
		MatchBonusType: CostConstant,
		MatchBonus:     p.MatchBonus,

		MismatchPenaltyType: p.MismatchPenaltyType,
		MismatchPenalty:     p.MismatchPenalty,

		SNPPenalty: p.SNPPenalty,

		NPenaltyType: p.NPenaltyType,
		NPenalty:     p.NPenalty,

		MinScore:   LinearFunc{Const: p.MinConst, Linear: p.MinLinear},
		ScoreFloor: LinearFunc{Const: p.FloorConst, Linear: p.FloorLinear},
		NCeil:      LinearFunc{Const: p.NCeilConst, Linear: p.NCeilLinear},
		NCatPair:   p.NCatPair,

		ReadGapOpen:   p.ReadGapOpen,
		ReadGapExtend: p.ReadGapExtend,
		RefGapOpen:    p.RefGapOpen,
		RefGapExtend:  p.RefGapExtend,

		SeedMismatches: p.SeedMismatches,
		SeedLength:     p.SeedLength,
		SeedPeriod:     p.SeedPeriod,

		SeedIval: IntervalFunc{Kind: p.IvalKind, A: p.IvalA, B: p.IvalB},

		PosMin:  p.PosMin,
		PosFrac: p.PosFrac,
		RowMin:  p.RowMin,
		RowMult: p.RowMult,
	}
	if local {
		rec.MatchBonus = p.MatchBonusLocal
		rec.MinScore = LinearFunc{Const: p.MinConstLocal, Linear: p.MinLinearLocal}
		rec.ScoreFloor = LinearFunc{Const: p.FloorConstLocal, Linear: p.FloorLinearLocal}
	}
	if noisyHpolymer {
		rec.ReadGapOpen = p.ReadGapOpenNoisy
		rec.ReadGapExtend = p.ReadGapExtendNoisy
		rec.RefGapOpen = p.RefGapOpenNoisy
		rec.RefGapExtend = p.RefGapExtendNoisy
	}
	return rec
}
