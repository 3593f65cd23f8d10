package domain

// SessionState is the identity session lifecycle.
//
//	SignedOut -> Authenticating -> SignedIn
//	Authenticating -> SignedOut (rejected credentials)
//	SignedIn -> SignedOut (logout)
type SessionState int32

const (
	SignedOut SessionState = iota
	Authenticating
	SignedIn
)

func (s SessionState) String() string {
	switch s {
	case SignedOut:
		return "SignedOut"
	case Authenticating:
		return "Authenticating"
	case SignedIn:
		return "SignedIn"
	default:
		return "Unknown"
	}
}

// CanTransition reports whether from -> to is an allowed lifecycle step.
func CanTransition(from, to SessionState) bool {
	switch from {
	case SignedOut:
		return to == Authenticating
	case Authenticating:
		return to == SignedIn || to == SignedOut
	case SignedIn:
		return to == SignedOut
	}
	return false
}
