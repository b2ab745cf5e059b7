package tzset

const DefaultCount = 24

// DefaultTimezones roughly covers one zone per UTC hour, west to east.
var DefaultTimezones = []string{
	"Pacific/Midway",
	"Pacific/Honolulu",
	"US/Alaska",
	"US/Pacific",
	"US/Mountain",
	"US/Central",
	"US/Eastern",
	"America/Caracas",
	"America/Argentina/Buenos_Aires",
	"America/Sao_Paulo",
	"Atlantic/South_Georgia",
	"Atlantic/Azores",
	"UTC",
	"Europe/London",
	"Europe/Paris",
	"Africa/Cairo",
	"Europe/Moscow",
	"Asia/Dubai",
	"Asia/Karachi",
	"Asia/Dhaka",
	"Asia/Bangkok",
	"Asia/Shanghai",
	"Asia/Tokyo",
	"Australia/Sydney",
	"Pacific/Noumea",
	"Pacific/Auckland",
}

var DefaultBackups = []string{
	"America/New_York",
	"America/Los_Angeles",
	"America/Chicago",
	"America/Denver",
	"Europe/Berlin",
	"Europe/Rome",
	"Asia/Kolkata",
	"Asia/Singapore",
	"Australia/Melbourne",
	"Pacific/Fiji",
}
