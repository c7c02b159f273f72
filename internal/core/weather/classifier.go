package weather

// UnknownWeatherCode stands in for a code the payload did not carry
const UnknownWeatherCode = -1

const (
	iconDir = "/assets/images/"
	iconExt = ".webp"
)

type codeGroup struct {
	codes []int
	label string
	icon  string
}

// codeGroups follow the WMO weather interpretation codes. Order matters:
// the first group containing a code wins.
var codeGroups = []codeGroup{
	{codes: []int{0}, label: "Clear sky", icon: "icon-sunny"},
	{codes: []int{1, 2}, label: "Partly cloudy", icon: "icon-partly-cloudy"},
	{codes: []int{3}, label: "Overcast", icon: "icon-overcast"},
	{codes: []int{45, 48}, label: "Foggy", icon: "icon-fog"},
	{codes: []int{51, 53, 55, 56, 57}, label: "Drizzle", icon: "icon-drizzle"},
	{codes: []int{61, 63, 65, 66, 67, 80, 81, 82}, label: "Rain showers", icon: "icon-rain"},
	{codes: []int{71, 73, 75, 77, 85, 86}, label: "Snowfall", icon: "icon-snow"},
	{codes: []int{95, 96, 99}, label: "Thunderstorm", icon: "icon-storm"},
}

var fallbackGroup = codeGroup{label: "Cloudy", icon: "icon-overcast"}

// IconPath returns the asset path of an icon name
func IconPath(name string) string {
	return iconDir + name + iconExt
}

// Classify maps any integer to a label and icon. Codes outside every group
// get the Cloudy fallback.
func Classify(code int) WeatherMeta {
	group := fallbackGroup
	for _, g := range codeGroups {
		if g.contains(code) {
			group = g
			break
		}
	}
	return WeatherMeta{
		Code:  code,
		Label: group.label,
		Icon:  IconPath(group.icon),
	}
}

func (g codeGroup) contains(code int) bool {
	for _, c := range g.codes {
		if c == code {
			return true
		}
	}
	return false
}
