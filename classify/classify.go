// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package classify

import "github.com/danielhkuo/staffwatch/models"

// Staffing ratio thresholds. MinimumThreshold marks the red boundary; the
// decision rule only consults LowThreshold and HighThreshold.
const (
	MinimumThreshold = 0.2
	LowThreshold     = 0.5
	HighThreshold    = 0.8
)

// RatioStatus classifies one numerator/denominator pair. A nil side means
// the value is unknown and yields Understaffed.
//
// A ratio exactly at HighThreshold also yields Understaffed: it matches
// neither the < HighThreshold nor the > HighThreshold arm. Callers depend on
// this boundary; TestRatioStatusBoundaries pins it. Confirm intent before
// changing it.
func RatioStatus(numerator, denominator *float64) models.Status {
	if numerator == nil || denominator == nil {
		return models.StatusUnderstaffed
	}
	ratio := *numerator / *denominator
	switch {
	case ratio < LowThreshold:
		return models.StatusUnderstaffed
	case ratio < HighThreshold:
		return models.StatusHalfStaffed
	case ratio > HighThreshold:
		return models.StatusFullStaffed
	default:
		return models.StatusUnderstaffed
	}
}

// Aggregate collapses child statuses into one parent status:
//
//   - all FullStaffed             -> FullStaffed
//   - all HalfStaffed             -> HalfStaffed
//   - any Understaffed            -> Understaffed
//   - HalfStaffed/FullStaffed mix -> HalfStaffed
//   - empty or all unclassified   -> Understaffed
func Aggregate(children []models.Status) models.Status {
	if len(children) == 0 {
		return models.StatusUnderstaffed
	}
	allFull, allHalf := true, true
	anyUnder, anyHalf := false, false
	for _, c := range children {
		allFull = allFull && c == models.StatusFullStaffed
		allHalf = allHalf && c == models.StatusHalfStaffed
		anyUnder = anyUnder || c == models.StatusUnderstaffed
		anyHalf = anyHalf || c == models.StatusHalfStaffed
	}
	switch {
	case allFull:
		return models.StatusFullStaffed
	case allHalf:
		return models.StatusHalfStaffed
	case anyUnder:
		return models.StatusUnderstaffed
	case anyHalf:
		return models.StatusHalfStaffed
	default:
		return models.StatusUnderstaffed
	}
}

// Apply assigns slot, day, and poll statuses according to the poll kind.
// Polls without the relevant targets keep StatusNone at the suppressed
// levels; that is a valid configuration state, not an error.
func Apply(p *models.Poll) {
	switch p.Kind {
	case models.KindBooth:
		booth(p)
	case models.KindTask:
		task(p)
	}
}

// booth classifies every slot against the minimum staff target, then marks
// every day with the aggregate over all slots of the poll. The aggregate is
// deliberately poll-wide, not per-day: all days of a booth poll carry the
// same status.
//
// The poll-level status is an extension: the slot and day rules stop at the
// day level, and booth completes the hierarchy by aggregating the days so
// every poll carries a status the API can serve. TestApplyBooth pins it.
func booth(p *models.Poll) {
	var slotStatuses []models.Status
	for _, day := range p.Days {
		for _, slot := range day.TimeSlots {
			if p.MinimumStaffPerSlot != nil && p.TotalWorkforce != nil {
				score := slot.ParticipationScore
				slot.Status = RatioStatus(&score, p.MinimumStaffPerSlot)
			}
			slotStatuses = append(slotStatuses, slot.Status)
		}
	}

	dayStatus := Aggregate(slotStatuses)
	dayStatuses := make([]models.Status, 0, len(p.Days))
	for _, day := range p.Days {
		day.Status = dayStatus
		dayStatuses = append(dayStatuses, day.Status)
	}
	p.Status = Aggregate(dayStatuses)
}

// task classifies every day's summed participation against the per-day
// person-hours target and accumulates the total workforce. When no per-day
// target is configured the poll is classified as a whole against the total
// person-hours target instead.
func task(p *models.Poll) {
	total := 0.0
	for _, day := range p.Days {
		daily := 0.0
		for _, slot := range day.TimeSlots {
			daily += slot.ParticipationScore
		}
		if p.PersonHoursPerDay != nil {
			d := daily
			day.Status = RatioStatus(&d, p.PersonHoursPerDay)
		}
		total += daily
	}
	p.TotalWorkforce = &total

	unclassified := true
	dayStatuses := make([]models.Status, 0, len(p.Days))
	for _, day := range p.Days {
		if day.Status != models.StatusNone {
			unclassified = false
		}
		dayStatuses = append(dayStatuses, day.Status)
	}
	if unclassified {
		p.Status = RatioStatus(&total, p.PersonHoursTotal)
	} else {
		p.Status = Aggregate(dayStatuses)
	}
}
