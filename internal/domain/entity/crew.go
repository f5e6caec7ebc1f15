package entity

// Cabin crew role tags as reported by the crew service
const (
	CrewTypeChief   = "CHIEF"
	CrewTypeChef    = "CHEF"
	CrewTypeRegular = "REGULAR"
)

// CrewCandidate is a cabin crew record fetched from the crew service.
// ChefRecipes is ordered; the first entry is the featured dish.
type CrewCandidate struct {
	ID              int64    `json:"id" bson:"id"`
	Name            string   `json:"name" bson:"name"`
	Age             int      `json:"age" bson:"age"`
	Gender          string   `json:"gender" bson:"gender"`
	Nationality     string   `json:"nationality" bson:"nationality"`
	Type            string   `json:"type" bson:"type"`
	Seniority       string   `json:"seniority" bson:"seniority"`
	Languages       []string `json:"languages,omitempty" bson:"languages,omitempty"`
	AllowedVehicles []string `json:"allowedVehicles,omitempty" bson:"allowedVehicles,omitempty"`
	ChefRecipes     []string `json:"chefRecipes,omitempty" bson:"chefRecipes,omitempty"`
}
