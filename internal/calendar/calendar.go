// Package calendar renders a trip as an iCalendar document so it can be
// imported into calendar clients.
package calendar

import (
	"bytes"
	"fmt"
	"time"

	"github.com/emersion/go-ical"

	"github.com/planner-app/planner/internal/domain"
)

// ProductID is the PRODID stamped on every exported calendar.
const ProductID = "-//planner//trip itinerary//EN"

const uidDomain = "@planner"

// Trip is everything exported for one trip.
type Trip struct {
	Trip         domain.Trip
	Participants []domain.Participant
	Activities   []domain.Activity

	// Location decides which calendar days the all-day trip event covers.
	Location *time.Location
	// Stamp is written as DTSTAMP on every event.
	Stamp time.Time
}

// Build returns a calendar with one all-day event spanning the trip and one
// timed event per activity. The owner is the trip event's organizer and every
// participant is an attendee.
func Build(t Trip) *ical.Calendar {
	loc := t.Location
	if loc == nil {
		loc = time.UTC
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, ProductID)

	cal.Children = append(cal.Children, tripEvent(t, loc))
	for _, a := range t.Activities {
		cal.Children = append(cal.Children, activityEvent(t, a))
	}
	return cal
}

// Encode serialises cal to its text form.
func Encode(cal *ical.Calendar) ([]byte, error) {
	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("calendar.Encode: %w", err)
	}
	return buf.Bytes(), nil
}

func tripEvent(t Trip, loc *time.Location) *ical.Component {
	start := t.Trip.StartsAt.In(loc)
	end := t.Trip.EndsAt.In(loc)
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
	// DTEND of an all-day event is exclusive.
	endDay := time.Date(end.Year(), end.Month(), end.Day()+1, 0, 0, 0, 0, loc)

	ve := ical.NewComponent(ical.CompEvent)
	ve.Props.SetText(ical.PropUID, t.Trip.ID.String()+uidDomain)
	ve.Props.SetText(ical.PropSummary, "Trip to "+t.Trip.Destination)
	ve.Props.SetText(ical.PropLocation, t.Trip.Destination)
	ve.Props.SetDateTime(ical.PropDateTimeStamp, t.Stamp.UTC())
	ve.Props.SetDate(ical.PropDateTimeStart, startDay)
	ve.Props.SetDate(ical.PropDateTimeEnd, endDay)
	if t.Trip.IsConfirmed {
		ve.Props.SetText(ical.PropStatus, "CONFIRMED")
	} else {
		ve.Props.SetText(ical.PropStatus, "TENTATIVE")
	}

	for _, p := range t.Participants {
		if p.IsOwner {
			ve.Props.Set(calAddress(ical.PropOrganizer, p))
		}
		attendee := calAddress(ical.PropAttendee, p)
		if p.IsConfirmed {
			attendee.Params.Set(ical.ParamParticipationStatus, "ACCEPTED")
		} else {
			attendee.Params.Set(ical.ParamParticipationStatus, "NEEDS-ACTION")
		}
		ve.Props.Add(attendee)
	}
	return ve
}

func activityEvent(t Trip, a domain.Activity) *ical.Component {
	ve := ical.NewComponent(ical.CompEvent)
	ve.Props.SetText(ical.PropUID, a.ID.String()+uidDomain)
	ve.Props.SetText(ical.PropSummary, a.Title)
	ve.Props.SetText(ical.PropLocation, t.Trip.Destination)
	ve.Props.SetDateTime(ical.PropDateTimeStamp, t.Stamp.UTC())
	ve.Props.SetDateTime(ical.PropDateTimeStart, a.OccursAt.UTC())
	return ve
}

func calAddress(name string, p domain.Participant) *ical.Prop {
	prop := ical.NewProp(name)
	prop.SetText("mailto:" + p.Email)
	if p.Name != nil && *p.Name != "" {
		prop.Params.Set(ical.ParamCommonName, *p.Name)
	}
	return prop
}
