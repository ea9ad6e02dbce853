package policy

import (
	"strconv"
	"strings"
)

// maxTokens caps the value-token count per recognized tag. Membership in
// this table is what makes a tag recognized.
var maxTokens = map[string]int{
	"MA":    1,
	"MMP":   1,
	"NP":    1,
	"SNP":   1,
	"RDG":   2,
	"RFG":   2,
	"MIN":   2,
	"FL":    2,
	"NCEIL": 2,
	"SEED":  3,
	"IVAL":  3,
	"POSF":  2,
	"ROWM":  2,
}

// Parse compiles a policy string into a Policy record. The record starts
// from the defaults the profile defines for (local, noisyHpolymer) and
// each tag=value setting then overrides the fields its tag owns, in
// input order. An empty string is valid and yields the pure defaults.
//
// A nil defaults profile means Builtin. The first malformed setting
// aborts the parse; the returned error is a *ParseError and no record
// accompanies it. Parse reads no global state and is safe to call
// concurrently.
func Parse(s string, local, noisyHpolymer bool, defaults *Profile) (*Policy, error) {
	if defaults == nil {
		defaults = Builtin()
	}
	p := &parser{
		policy:   s,
		noisyHp:  noisyHpolymer,
		defaults: defaults,
		rec:      defaults.Record(local, noisyHpolymer),
	}
	for _, chunk := range strings.Split(s, ";") {
		p.setting++
		if chunk == "" {
			continue
		}
		if err := p.apply(chunk); err != nil {
			return nil, err
		}
	}
	return p.rec, nil
}

// parser holds the in-progress record for a single Parse call. Nothing
// escapes until the final record is returned.
type parser struct {
	policy   string
	noisyHp  bool
	defaults *Profile
	rec      *Policy
	setting  int // 1-based index of the setting being parsed
	tag      string
}

func (p *parser) fail(kind ErrorKind, msg string) *ParseError {
	return &ParseError{
		Kind:    kind,
		Setting: p.setting,
		Tag:     p.tag,
		Policy:  p.policy,
		Message: msg,
	}
}

// apply validates one tag=value clause and folds it into the record.
func (p *parser) apply(chunk string) error {
	p.tag = ""
	parts := strings.Split(chunk, "=")
	if len(parts) != 2 {
		return p.fail(KindMalformedSetting, "setting must be bisected by a single = sign")
	}
	tag, val := parts[0], parts[1]
	p.tag = tag

	limit, ok := maxTokens[tag]
	if !ok {
		return p.fail(KindUnknownTag, "unexpected alignment policy setting")
	}

	toks := strings.Split(val, ",")
	if len(toks) > limit {
		if limit == 1 {
			return p.fail(KindMalformedValue, "value must have exactly 1 token")
		}
		return p.fail(KindMalformedValue, "value must have at most "+strconv.Itoa(limit)+" tokens")
	}
	for i, tok := range toks {
		if tok == "" {
			return p.fail(KindMalformedValue, "token "+strconv.Itoa(i+1)+" of value is empty")
		}
	}

	switch tag {
	case "MA":
		v, err := p.intToken(toks[0])
		if err != nil {
			return err
		}
		p.rec.MatchBonusType = CostConstant
		p.rec.MatchBonus = v
	case "SNP":
		v, err := p.intToken(toks[0])
		if err != nil {
			return err
		}
		p.rec.SNPPenalty = v
	case "MMP":
		model, v, err := p.costModelToken(toks[0])
		if err != nil {
			return err
		}
		p.rec.MismatchPenaltyType = model
		if model == CostConstant {
			p.rec.MismatchPenalty = v
		}
	case "NP":
		model, v, err := p.costModelToken(toks[0])
		if err != nil {
			return err
		}
		p.rec.NPenaltyType = model
		if model == CostConstant {
			p.rec.NPenalty = v
		}
	case "RDG":
		return p.applyGap(toks,
			&p.rec.ReadGapOpen, &p.rec.ReadGapExtend,
			p.defaults.ReadGapExtend, p.defaults.ReadGapExtendNoisy)
	case "RFG":
		return p.applyGap(toks,
			&p.rec.RefGapOpen, &p.rec.RefGapExtend,
			p.defaults.RefGapExtend, p.defaults.RefGapExtendNoisy)
	case "MIN":
		return p.applyLinear(toks, &p.rec.MinScore)
	case "FL":
		return p.applyLinear(toks, &p.rec.ScoreFloor)
	case "NCEIL":
		// Unlike MIN and FL, an omitted linear coefficient resets to
		// the profile default rather than keeping the current value.
		if err := p.applyLinear(toks, &p.rec.NCeil); err != nil {
			return err
		}
		if len(toks) < 2 {
			p.rec.NCeil.Linear = p.defaults.NCeilLinear
		}
	case "SEED":
		v, err := p.intToken(toks[0])
		if err != nil {
			return err
		}
		p.rec.SeedMismatches = v
		p.rec.SeedLength = p.defaults.SeedLength
		p.rec.SeedPeriod = p.defaults.SeedPeriod
		if len(toks) >= 2 {
			if p.rec.SeedLength, err = p.intToken(toks[1]); err != nil {
				return err
			}
		}
		if len(toks) >= 3 {
			if p.rec.SeedPeriod, err = p.intToken(toks[2]); err != nil {
				return err
			}
		}
	case "IVAL":
		// An unrecognized leading character keeps the previous kind.
		switch toks[0][0] {
		case 'L':
			p.rec.SeedIval.Kind = IvalLinear
		case 'S':
			p.rec.SeedIval.Kind = IvalSqrt
		case 'C':
			p.rec.SeedIval.Kind = IvalCbrt
		}
		p.rec.SeedIval.A = 1.0
		p.rec.SeedIval.B = 0.0
		var err error
		if len(toks) >= 2 {
			if p.rec.SeedIval.A, err = p.floatToken(toks[1]); err != nil {
				return err
			}
		}
		if len(toks) >= 3 {
			if p.rec.SeedIval.B, err = p.floatToken(toks[2]); err != nil {
				return err
			}
		}
	case "POSF":
		v, err := p.floatToken(toks[0])
		if err != nil {
			return err
		}
		p.rec.PosMin = v
		if len(toks) >= 2 {
			if p.rec.PosFrac, err = p.floatToken(toks[1]); err != nil {
				return err
			}
		}
	case "ROWM":
		// First token is the multiplier, second the minimum.
		v, err := p.floatToken(toks[0])
		if err != nil {
			return err
		}
		p.rec.RowMult = v
		if len(toks) >= 2 {
			if p.rec.RowMin, err = p.floatToken(toks[1]); err != nil {
				return err
			}
		}
	}
	return nil
}

// applyGap handles RDG and RFG: the first token sets the open penalty
// and the second the extend penalty. An omitted extend token re-derives
// the mode-appropriate default from the profile, not from whatever is
// currently in the record.
func (p *parser) applyGap(toks []string, open, extend *int, extDef, extDefNoisy int) error {
	v, err := p.intToken(toks[0])
	if err != nil {
		return err
	}
	*open = v
	if len(toks) >= 2 {
		if *extend, err = p.intToken(toks[1]); err != nil {
			return err
		}
	} else if p.noisyHp {
		*extend = extDefNoisy
	} else {
		*extend = extDef
	}
	return nil
}

// applyLinear handles the MIN/FL-style tags: present tokens overwrite
// the coefficients, absent ones leave them untouched.
func (p *parser) applyLinear(toks []string, f *LinearFunc) error {
	v, err := p.floatToken(toks[0])
	if err != nil {
		return err
	}
	f.Const = v
	if len(toks) >= 2 {
		if f.Linear, err = p.floatToken(toks[1]); err != nil {
			return err
		}
	}
	return nil
}

// costModelToken parses the {Cxx|Q|R} form shared by MMP and NP. The
// returned value is meaningful only for the constant model.
func (p *parser) costModelToken(tok string) (CostModel, int, error) {
	switch tok[0] {
	case 'C':
		v, err := p.intToken(tok[1:])
		if err != nil {
			return "", 0, err
		}
		return CostConstant, v, nil
	case 'Q':
		return CostQuality, 0, nil
	case 'R':
		return CostRoundedQuality, 0, nil
	default:
		return "", 0, p.fail(KindInvalidPrefix, "value must start with C, Q or R")
	}
}

func (p *parser) intToken(tok string) (int, error) {
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, p.fail(KindMalformedValue, "token "+strconv.Quote(tok)+" is not an integer")
	}
	return v, nil
}

func (p *parser) floatToken(tok string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, p.fail(KindMalformedValue, "token "+strconv.Quote(tok)+" is not a number")
	}
	return v, nil
}
