package notification

// Kind names the lifecycle event that produced a notification.
type Kind string

const (
	KindUnknown         Kind = ""
	KindNewRequest      Kind = "new_request"
	KindStatusChanged   Kind = "status_changed"
	KindDriverAssigned  Kind = "driver_assigned"
	KindUserRegistered  Kind = "new_user_registered"
	KindSignupConfirmed Kind = "signup_confirmed"
)

func (k Kind) String() string {
	return string(k)
}

// IsKnown reports whether k is one of the lifecycle event kinds.
func (k Kind) IsKnown() bool {
	switch k {
	case KindNewRequest, KindStatusChanged, KindDriverAssigned, KindUserRegistered, KindSignupConfirmed:
		return true
	default:
		return false
	}
}
