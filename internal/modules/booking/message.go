// README: WhatsApp-ready booking summary formatting.
package booking

import (
	"fmt"
	"strings"
	"time"

	"dropcab/internal/types"
)

// BookerInfo identifies who is making the booking.
type BookerInfo struct {
	Name     string `json:"name"`
	Contact  string `json:"contact"`
	Contact2 string `json:"contact2,omitempty"`
	Email    string `json:"email"`
}

// FormatShareMessage renders the booking summary sent over WhatsApp. The
// fare figures come from the verified server-side quotation, never from
// client state.
func FormatShareMessage(details TripDetails, b VerifiedBooking, booker BookerInfo, bookedAt time.Time) string {
	var sb strings.Builder

	divider := "------------------------------------\n"

	sb.WriteString("*Taxi Booking Details*\n")
	sb.WriteString(divider)
	fmt.Fprintf(&sb, "*Trip Type:* %s\n", details.TripType.Label())
	fmt.Fprintf(&sb, "*Car Type:* %s\n", b.VehicleName)
	fmt.Fprintf(&sb, "*Pickup:* %s\n", locationName(details.Pickup))
	fmt.Fprintf(&sb, "*Drop:* %s\n", locationName(details.Dropoff))
	fmt.Fprintf(&sb, "*Booked At:* %s\n", bookedAt.Format("02 Jan 2006, 3:04 PM"))
	fmt.Fprintf(&sb, "*Reference:* %s\n\n", b.Reference)

	fmt.Fprintf(&sb, "Pickup Date: %s\n", orDash(details.PickupAt))
	if details.TripType == types.TripRoundTrip {
		fmt.Fprintf(&sb, "Return Date: %s\n", orDash(details.ReturnAt))
	}
	sb.WriteString("\n")

	sb.WriteString(divider)
	sb.WriteString("*FARE BREAKDOWN*\n")
	sb.WriteString(divider)
	fmt.Fprintf(&sb, "*Base Fare (%s km):* Rs.%.2f\n", fmtAmount(b.Threshold), b.BaseFare)
	if b.ExtraKm > 0 {
		fmt.Fprintf(&sb, "*Extra Km (%s km @ Rs.%s/km):* Rs.%.2f\n",
			fmtAmount(b.ExtraKm), fmtAmount(b.ExtraKmRate), b.ExtraFee)
	}
	fmt.Fprintf(&sb, "*Driver Bata:* Rs.%s\n\n", fmtAmount(b.DriverBata))
	fmt.Fprintf(&sb, "*Total Distance:* %s km\n", fmtAmount(b.ActualDistance))
	sb.WriteString(divider)
	fmt.Fprintf(&sb, "*TOTAL AMOUNT:* Rs.%.2f\n", b.Total)
	sb.WriteString(divider)
	sb.WriteString("\n")

	sb.WriteString(divider)
	sb.WriteString("*BOOKER DETAILS*\n")
	sb.WriteString(divider)
	fmt.Fprintf(&sb, "*Name:* %s\n", booker.Name)
	fmt.Fprintf(&sb, "*Primary Contact:* %s\n", booker.Contact)
	if booker.Contact2 != "" {
		fmt.Fprintf(&sb, "*Secondary Contact:* %s\n", booker.Contact2)
	}
	fmt.Fprintf(&sb, "*Email:* %s\n\n", booker.Email)
	sb.WriteString("Thank you for booking with us!")

	return sb.String()
}

func locationName(l *types.Location) string {
	if l == nil || l.DisplayName == "" {
		return "Unknown"
	}
	return l.DisplayName
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
