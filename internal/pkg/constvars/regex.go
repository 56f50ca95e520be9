package constvars

const (
	RegexNationalID = `^\d{7,8}$`
	RegexNumeric    = `^\d+$`

	RegexDateYYYYMMDD = `^\d{4}-\d{2}-\d{2}$`

	// RegexPhoneNumberE164 matches E.164 with an optional leading plus,
	// the format the registry accepts for mobile contact points.
	RegexPhoneNumberE164 = `^\+?[1-9]\d{1,14}$`
)
