package directory

// Specialty is a hospital department patients browse before picking a doctor.
type Specialty struct {
	ID          string `dynamodbav:"id" json:"id"`
	Name        string `dynamodbav:"name" json:"name"`
	Description string `dynamodbav:"description" json:"description"`
}

// Doctor is a bookable practitioner. DailyLimit caps how many patients the
// doctor accepts per day; period ceilings derive from it. Rating, Experience
// and Image are display metadata only.
type Doctor struct {
	ID          string  `dynamodbav:"id" json:"id"`
	Name        string  `dynamodbav:"name" json:"name"`
	SpecialtyID string  `dynamodbav:"specialtyId" json:"specialty"`
	DailyLimit  int     `dynamodbav:"dailyLimit" json:"dailyLimit"`
	Rating      float64 `dynamodbav:"rating" json:"rating"`
	Experience  string  `dynamodbav:"experience" json:"experience"`
	Image       string  `dynamodbav:"image,omitempty" json:"image,omitempty"`
}

// Validate enforces the catalog invariants before a doctor is stored.
func (d *Doctor) Validate() error {
	if d.ID == "" || d.Name == "" {
		return ErrInvalidDoctor
	}
	if d.DailyLimit <= 0 {
		return ErrInvalidDailyLimit
	}
	return nil
}
