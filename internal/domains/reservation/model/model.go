package model

import (
	"slices"

	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID              = "id"
	FieldName            = "guest_name"
	FieldPhone           = "guest_phone"
	FieldEmail           = "guest_email"
	FieldDate            = "reservation_date"
	FieldTime            = "reservation_time"
	FieldGuests          = "guests"
	FieldSpecialRequests = "special_requests"
	FieldStatus          = "status"

	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusAll       = "all"

	MinGuests     = 1
	MaxGuests     = 10
	DefaultGuests = 2
)

// Statuses lists every state a reservation can be in.
var Statuses = []string{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

// TimeSlots holds the bookable half-hour slots from 09:00 AM to 10:00 PM.
var TimeSlots = []string{
	"09:00 AM", "09:30 AM",
	"10:00 AM", "10:30 AM",
	"11:00 AM", "11:30 AM",
	"12:00 PM", "12:30 PM",
	"01:00 PM", "01:30 PM",
	"02:00 PM", "02:30 PM",
	"03:00 PM", "03:30 PM",
	"04:00 PM", "04:30 PM",
	"05:00 PM", "05:30 PM",
	"06:00 PM", "06:30 PM",
	"07:00 PM", "07:30 PM",
	"08:00 PM", "08:30 PM",
	"09:00 PM", "09:30 PM",
	"10:00 PM",
}

func IsValidTimeSlot(slot string) bool {
	return slices.Contains(TimeSlots, slot)
}

type Reservation struct {
	ID              string `db:"id"`
	Name            string `db:"guest_name"`
	Phone           string `db:"guest_phone"`
	Email           string `db:"guest_email"`
	Date            string `db:"reservation_date"`
	Time            string `db:"reservation_time"`
	Guests          int    `db:"guests"`
	SpecialRequests string `db:"special_requests"`
	Status          string `db:"status"`
	model.Metadata
}
