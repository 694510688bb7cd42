package catalog

// Icon tags a unit with a display icon. The core never renders icons; clients
// map tags to whatever icon set they ship.
type Icon string

const (
	IconSmile    Icon = "smile"
	IconUsers    Icon = "users"
	IconUtensils Icon = "utensils"
	IconHome     Icon = "home"
	IconPalette  Icon = "palette"
	IconSchool   Icon = "school"
	IconBuilding Icon = "building"
	IconCloud    Icon = "cloud"
	IconCalendar Icon = "calendar"
	IconGamepad  Icon = "gamepad"
)

// Valid reports whether i is one of the known icon tags.
func (i Icon) Valid() bool {
	switch i {
	case IconSmile, IconUsers, IconUtensils, IconHome, IconPalette,
		IconSchool, IconBuilding, IconCloud, IconCalendar, IconGamepad:
		return true
	}
	return false
}
