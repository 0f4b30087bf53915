package checker

import "fmt"

// Kind classifies a checker-package failure. These map to spec §7's
// Integrity kind: the checker never fails to run, it only reports
// offenders in its Report.
type Kind int

const (
	KindMissingArm Kind = iota
	KindUndeclaredArm
	KindSampleInvalid
	KindTierIncomplete
)

func (k Kind) String() string {
	switch k {
	case KindMissingArm:
		return "missing_arm"
	case KindUndeclaredArm:
		return "undeclared_arm"
	case KindSampleInvalid:
		return "sample_invalid"
	case KindTierIncomplete:
		return "tier_incomplete"
	default:
		return "unknown"
	}
}

// Offense is a single self-consistency failure, named with the key and
// kind so a report can print "what" and "where" without re-deriving it.
type Offense struct {
	Kind    Kind
	Key     string
	Message string
}

func (o Offense) Error() string {
	return fmt.Sprintf("checker: [%s] %s: %s", o.Kind, o.Key, o.Message)
}

func newOffense(kind Kind, key, message string) Offense {
	return Offense{Kind: kind, Key: key, Message: message}
}
