package domain

import (
	"fmt"
	"time"
)

// Template identifiers understood by the notification renderer.
const (
	TemplateTripConfirmation        = "trip_confirmation"
	TemplateParticipantConfirmation = "participant_confirmation"
)

// SubjectDateLayout formats dates embedded in notification subjects,
// e.g. "March 1, 2024".
const SubjectDateLayout = "January 2, 2006"

// Recipient identifies who a notification is addressed to.
// Name is empty for invitees who have not introduced themselves yet.
type Recipient struct {
	Name  string
	Email string
}

// NotificationData is the template data carried with every notification.
type NotificationData struct {
	Destination     string
	StartsAt        time.Time
	EndsAt          time.Time
	ConfirmationURL string
}

// Notification is a fully formed request handed to the notification
// dispatcher. Rendering and delivery happen outside the core.
type Notification struct {
	To       Recipient
	Subject  string
	Template string
	Data     NotificationData
}

// TripConfirmationNotification builds the email sent to a trip owner
// right after the trip is created.
func TripConfirmationNotification(trip Trip, owner Recipient, confirmURL string) Notification {
	return Notification{
		To:       owner,
		Subject:  fmt.Sprintf("Confirm your trip to %s on %s", trip.Destination, trip.StartsAt.Format(SubjectDateLayout)),
		Template: TemplateTripConfirmation,
		Data:     notificationData(trip, confirmURL),
	}
}

// ParticipantConfirmationNotification builds the email asking an invitee to
// confirm their attendance.
func ParticipantConfirmationNotification(trip Trip, p Participant, confirmURL string) Notification {
	to := Recipient{Email: p.Email}
	if p.Name != nil {
		to.Name = *p.Name
	}
	return Notification{
		To:       to,
		Subject:  fmt.Sprintf("Confirm your attendance on the trip to %s on %s", trip.Destination, trip.StartsAt.Format(SubjectDateLayout)),
		Template: TemplateParticipantConfirmation,
		Data:     notificationData(trip, confirmURL),
	}
}

func notificationData(trip Trip, confirmURL string) NotificationData {
	return NotificationData{
		Destination:     trip.Destination,
		StartsAt:        trip.StartsAt,
		EndsAt:          trip.EndsAt,
		ConfirmationURL: confirmURL,
	}
}
