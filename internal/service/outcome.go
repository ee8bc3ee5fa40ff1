package service

// RegistrationStatus identifies the result of a sign-up attempt.
type RegistrationStatus string

// Possible registration outcomes, in the priority order they are checked.
const (
	RegistrationUserNotFound      RegistrationStatus = "user_not_found"
	RegistrationActivityNotFound  RegistrationStatus = "activity_not_found"
	RegistrationAlreadyRegistered RegistrationStatus = "already_registered"
	RegistrationConfirmed         RegistrationStatus = "confirmed"
)

// RegistrationOutcome reports how a sign-up attempt ended. A duplicate
// registration is a normal, reportable outcome here, never an error:
// {not-registered} -> {registered} is the only transition, and attempting
// it twice is a no-op with its own status.
type RegistrationOutcome struct {
	Status       RegistrationStatus
	ActivityName string
}

// Registered reports whether the attempt created a new registration.
func (o RegistrationOutcome) Registered() bool {
	return o.Status == RegistrationConfirmed
}

// Message returns the user-facing text for the outcome. The strings are
// plain-text data; the presentation layer surfaces them verbatim or
// substitutes equivalent localized text.
func (o RegistrationOutcome) Message() string {
	switch o.Status {
	case RegistrationUserNotFound:
		return "用户不存在"
	case RegistrationActivityNotFound:
		return "活动不存在"
	case RegistrationAlreadyRegistered:
		return "你已报名参加此活动"
	case RegistrationConfirmed:
		return "成功报名参加活动: " + o.ActivityName
	default:
		return ""
	}
}
