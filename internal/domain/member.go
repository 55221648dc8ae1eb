package domain

// A trip participant. Read-only input to the optimization engine;
// the surrounding application owns member lifecycle.
type Member struct {
	MemberID     string
	DisplayName  string
	CanAddPlaces bool
}
