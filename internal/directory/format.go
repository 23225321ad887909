package directory

import (
	"strconv"
	"strings"

	"github.com/jcpao-csu/staff-directory-api/internal/models"
)

const officeExchange = "816881"

// FormatPhone renders ten-character numbers as xxx-xxx-xxxx and passes anything else through.
func FormatPhone(phone *string) string {
	if phone == nil {
		return ""
	}
	p := *phone
	if len(p) != 10 {
		return p
	}
	return p[:3] + "-" + p[3:6] + "-" + p[6:]
}

// PhoneExtension returns the four-digit desk extension for numbers on the office exchange.
func PhoneExtension(phone *string) string {
	if phone == nil || !strings.HasPrefix(*phone, officeExchange) || len(*phone) < 4 {
		return ""
	}
	p := *phone
	return p[len(p)-4:]
}

// BirthdayBadge renders "M/D" with a blank for unknown parts.
func BirthdayBadge(row models.DirectoryRow) string {
	return part(row.BirthMonth) + "/" + part(row.BirthDay)
}

// UnitBadges renders assigned units as "GCU / Drug Court".
func UnitBadges(row models.DirectoryRow) string {
	labels := make([]string, len(row.AssignedUnits))
	for i, u := range row.AssignedUnits {
		labels[i] = models.UnitBadge(u)
	}
	return strings.Join(labels, " / ")
}

func part(v *int) string {
	if v == nil {
		return " "
	}
	return strconv.Itoa(*v)
}
