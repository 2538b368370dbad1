package theme

type Key string

const (
	Sky     Key = "sky"
	Purple  Key = "purple"
	Emerald Key = "emerald"
	Sunset  Key = "sunset"
	Rose    Key = "rose"
	City    Key = "city"
	SevenK  Key = "sevenK"
	Desert  Key = "desert"

	Default = Sky
)

// Gradient describes a screen background running top to bottom, plus the
// solid color used behind the pinned dashboard header.
type Gradient struct {
	From   string
	To     string
	Header string
}

type Theme struct {
	Key      Key
	Label    string
	Gradient Gradient
}

var catalog = []Theme{
	{Key: Sky, Label: "Blue Sky", Gradient: Gradient{From: "sky-600", To: "blue-300", Header: "sky-600"}},
	{Key: Purple, Label: "The Big Apple University", Gradient: Gradient{From: "purple-700", To: "indigo-400", Header: "purple-700"}},
	{Key: Emerald, Label: "Emerald State College", Gradient: Gradient{From: "emerald-600", To: "green-300", Header: "emerald-600"}},
	{Key: Sunset, Label: "Sunset Valley Institute", Gradient: Gradient{From: "orange-600", To: "red-400", Header: "orange-600"}},
	{Key: Rose, Label: "Rosewood Academy", Gradient: Gradient{From: "pink-600", To: "rose-400", Header: "pink-600"}},
	{Key: City, Label: "The City", Gradient: Gradient{From: "red-900", To: "red-500", Header: "red-900"}},
	{Key: SevenK, Label: "7000 Feet", Gradient: Gradient{From: "blue-800", To: "blue-200", Header: "blue-800"}},
	{Key: Desert, Label: "The Desert", Gradient: Gradient{From: "red-600", To: "red-300", Header: "red-600"}},
}

var byKey = func() map[Key]Theme {
	m := make(map[Key]Theme, len(catalog))
	for _, t := range catalog {
		m[t.Key] = t
	}
	return m
}()

// Catalog lists the selectable themes in picker order.
func Catalog() []Theme {
	result := make([]Theme, len(catalog))
	copy(result, catalog)
	return result
}

func IsKnown(key string) bool {
	_, ok := byKey[Key(key)]
	return ok
}

// Resolve never fails: unknown or empty keys resolve to the default theme.
func Resolve(key string) Theme {
	if t, ok := byKey[Key(key)]; ok {
		return t
	}
	return byKey[Default]
}
