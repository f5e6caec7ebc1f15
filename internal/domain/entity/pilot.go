package entity

// Pilot seniority levels as reported by the pilot service
const (
	SenioritySenior  = "SENIOR"
	SeniorityJunior  = "JUNIOR"
	SeniorityTrainee = "TRAINEE"
)

// PilotCandidate is a pilot record fetched from the pilot service
type PilotCandidate struct {
	ID                 int64    `json:"id" bson:"id"`
	Name               string   `json:"name" bson:"name"`
	Age                int      `json:"age" bson:"age"`
	Gender             string   `json:"gender" bson:"gender"`
	Nationality        string   `json:"nationality" bson:"nationality"`
	AllowedRangeKm     int      `json:"allowedRangeKm" bson:"allowedRangeKm"`
	AllowedVehicleType string   `json:"allowedVehicleType" bson:"allowedVehicleType"`
	SeniorityLevel     string   `json:"seniorityLevel" bson:"seniorityLevel"`
	Languages          []string `json:"languages,omitempty" bson:"languages,omitempty"`
}
