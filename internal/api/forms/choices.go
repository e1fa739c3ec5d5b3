package forms

// Genres are the genre choices offered on the venue and artist forms.
var Genres = []string{
	"Alternative",
	"Blues",
	"Classical",
	"Country",
	"Electronic",
	"Folk",
	"Funk",
	"Hip-Hop",
	"Heavy Metal",
	"Instrumental",
	"Jazz",
	"Musical Theatre",
	"Pop",
	"Punk",
	"R&B",
	"Reggae",
	"Rock n Roll",
	"Soul",
	"Swing",
	"Other",
}

// States are the US state codes offered on the venue and artist forms.
var States = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH",
	"OK", "OR", "MD", "MA", "MI", "MN", "MS", "MO", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI",
	"WY",
}

var (
	genreSet = toSet(Genres)
	stateSet = toSet(States)
)

func toSet(list []string) map[string]struct{} {
	out := make(map[string]struct{}, len(list))
	for _, s := range list {
		out[s] = struct{}{}
	}
	return out
}

// Choices is the form description returned by the GET form routes.
type Choices struct {
	Genres []string `json:"genres"`
	States []string `json:"states"`
}

func EntityChoices() Choices {
	return Choices{Genres: Genres, States: States}
}
