package cancellation

type Type string

const (
	TypeStandard   Type = "standard"
	TypeLate       Type = "late"
	TypeLastMinute Type = "last_minute"
	TypeGrace      Type = "grace"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeStandard, TypeLate, TypeLastMinute, TypeGrace:
		return true
	default:
		return false
	}
}
