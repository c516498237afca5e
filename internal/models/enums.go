package models

// Conjuntos fechados; o banco também os valida via CHECK.

type PlanCategory string

const (
	CategoryBasic   PlanCategory = "basic"
	CategoryPremium PlanCategory = "premium"
	CategoryPlus    PlanCategory = "plus"
)

func (c PlanCategory) Valid() bool {
	switch c {
	case CategoryBasic, CategoryPremium, CategoryPlus:
		return true
	}
	return false
}

type Weekday string

const (
	Sunday    Weekday = "sunday"
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
)

// Weekdays em ordem, domingo primeiro.
var Weekdays = []Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// Index returns 0 for sunday .. 6 for saturday, -1 when unknown.
func (d Weekday) Index() int {
	for i, w := range Weekdays {
		if w == d {
			return i
		}
	}
	return -1
}

func (d Weekday) Valid() bool { return d.Index() >= 0 }

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}
