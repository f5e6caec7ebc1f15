package usecase

import (
	"strings"

	"roster-service/internal/domain/entity"
)

// maxRegularCrew caps the number of REGULAR attendants on one roster
const maxRegularCrew = 4

// SelectPilots picks the flight's pilots from the candidate pool. A
// candidate is eligible when its allowed-vehicle text contains the target
// model (case-insensitive) and its certified range covers the distance.
// The first eligible SENIOR and the first eligible JUNIOR are paired, in
// pool order; if either tier is missing, no pilots are selected at all.
func SelectPilots(pool []entity.PilotCandidate, vehicleModel string, distanceKm int) []entity.PilotCandidate {
	model := strings.ToLower(vehicleModel)

	var senior, junior *entity.PilotCandidate
	for i := range pool {
		p := &pool[i]
		if !strings.Contains(strings.ToLower(p.AllowedVehicleType), model) {
			continue
		}
		if p.AllowedRangeKm < distanceKm {
			continue
		}
		switch {
		case senior == nil && strings.EqualFold(p.SeniorityLevel, entity.SenioritySenior):
			senior = p
		case junior == nil && strings.EqualFold(p.SeniorityLevel, entity.SeniorityJunior):
			junior = p
		}
	}

	if senior == nil || junior == nil {
		return []entity.PilotCandidate{}
	}
	return []entity.PilotCandidate{*senior, *junior}
}

// SelectCabinCrew picks the flight's cabin crew from the candidate pool:
// the first eligible chief, the first eligible chef, then up to four
// regular attendants, all in pool order. Roles with no eligible candidate
// are simply omitted.
func SelectCabinCrew(pool []entity.CrewCandidate, vehicleModel string) []entity.CrewCandidate {
	model := strings.ToLower(vehicleModel)

	var chief, chef *entity.CrewCandidate
	var regulars []entity.CrewCandidate
	for i := range pool {
		c := &pool[i]
		if !crewKnowsVehicle(c, model) {
			continue
		}
		switch c.Type {
		case entity.CrewTypeChief:
			if chief == nil {
				chief = c
			}
		case entity.CrewTypeChef:
			if chef == nil {
				chef = c
			}
		case entity.CrewTypeRegular:
			if len(regulars) < maxRegularCrew {
				regulars = append(regulars, *c)
			}
		}
	}

	selected := make([]entity.CrewCandidate, 0, maxRegularCrew+2)
	if chief != nil {
		selected = append(selected, *chief)
	}
	if chef != nil {
		selected = append(selected, *chef)
	}
	return append(selected, regulars...)
}

func crewKnowsVehicle(c *entity.CrewCandidate, lowerModel string) bool {
	for _, v := range c.AllowedVehicles {
		if strings.Contains(strings.ToLower(v), lowerModel) {
			return true
		}
	}
	return false
}

// BuildMenu assembles the flight menu: the vehicle's standard menu plus a
// chef's special for every selected chef that lists a recipe
func BuildMenu(vehicle *entity.VehicleProfile, crew []entity.CrewCandidate) []string {
	if vehicle == nil {
		return []string{"Standard Menu"}
	}

	menu := []string{vehicle.StandardMenuDescription}
	for i := range crew {
		if crew[i].Type == entity.CrewTypeChef && len(crew[i].ChefRecipes) > 0 {
			menu = append(menu, "Chef's Special: "+crew[i].ChefRecipes[0])
		}
	}
	return menu
}
