package entity

// Seat markers written by the seat allocator
const (
	SeatInfantLap = "INFANT (Lap)"
	SeatStandby   = "STANDBY"
)

// Cabin class tags
const (
	ClassBusiness = "BUSINESS"
	ClassEconomy  = "ECONOMY"
)

// PassengerRecord is a passenger fetched from the passenger service.
// Age is a pointer so a missing age can be defaulted instead of reading
// as zero and misclassifying an adult as an infant.
type PassengerRecord struct {
	ID                     int64   `json:"id" bson:"id"`
	Name                   string  `json:"name" bson:"name"`
	Age                    *int    `json:"age,omitempty" bson:"age,omitempty"`
	Gender                 string  `json:"gender" bson:"gender"`
	Nationality            string  `json:"nationality" bson:"nationality"`
	FlightID               string  `json:"flightId" bson:"flightId"`
	SeatType               string  `json:"seatType" bson:"seatType"`
	SeatNumber             string  `json:"seatNumber,omitempty" bson:"seatNumber,omitempty"`
	AutoAssigned           bool    `json:"autoAssigned,omitempty" bson:"autoAssigned,omitempty"`
	ParentID               *int64  `json:"parentId,omitempty" bson:"parentId,omitempty"`
	AffiliatedPassengerIDs []int64 `json:"affiliatedPassengerIds,omitempty" bson:"affiliatedPassengerIds,omitempty"`
}

// EffectiveAge returns the passenger's age, defaulting to adult when the
// upstream record carries none.
func (p *PassengerRecord) EffectiveAge() int {
	if p.Age == nil {
		return 18
	}
	return *p.Age
}
