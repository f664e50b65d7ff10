package models

import "time"

// Booking statuses. Admins move bookings through Pending/Approved/Completed;
// Cancelled is reachable only by the owning user.
const (
	BookingStatusPending   = "Pending"
	BookingStatusApproved  = "Approved"
	BookingStatusCompleted = "Completed"
	BookingStatusCancelled = "Cancelled"
)

// Invoice payment statuses.
const (
	PaymentStatusUnpaid = "Unpaid"
	PaymentStatusPaid   = "Paid"
)

// KnownBookingStatus reports whether s is a member of the booking status enum.
func KnownBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusApproved, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// BookingInvoice is the invoice sub-record embedded in a booking.
type BookingInvoice struct {
	TotalCost     float64 `bson:"total_cost" json:"totalCost"`
	PaymentStatus string  `bson:"payment_status" json:"paymentStatus"`
}

// Booking is a scheduled instance of a service offering for a specific user
// and car. The car is an embedded value snapshot taken at booking time, not a
// live reference: later edits to the owner's car list never change it.
type Booking struct {
	ID            string         `bson:"id" json:"id"`
	UserID        string         `bson:"user_id" json:"userId"`
	ServiceID     string         `bson:"service_id" json:"serviceId"`
	ServiceName   string         `bson:"service_name" json:"serviceName"`
	Car           Car            `bson:"car" json:"car"`
	ScheduledDate time.Time      `bson:"scheduled_date" json:"scheduledDate"`
	Status        string         `bson:"status" json:"status"`
	Notes         string         `bson:"notes,omitempty" json:"notes,omitempty"`
	Invoice       BookingInvoice `bson:"invoice" json:"invoice"`
	CreatedAt     time.Time      `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time      `bson:"updated_at" json:"updatedAt"`
}

// BookingOwner is the resolved owner identity attached to admin listings.
type BookingOwner struct {
	ID    string `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
}

// AdminBooking is a booking with its owner eagerly resolved for display.
type AdminBooking struct {
	Booking `bson:",inline"`
	Owner   BookingOwner `bson:"owner" json:"owner"`
}
