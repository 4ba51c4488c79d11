package league

// Conference is AFC or NFC.
type Conference string

const (
	AFC Conference = "AFC"
	NFC Conference = "NFC"
)

// Division is one of the eight four-team divisions.
type Division string

const (
	AFCEast  Division = "AFC East"
	AFCNorth Division = "AFC North"
	AFCSouth Division = "AFC South"
	AFCWest  Division = "AFC West"
	NFCEast  Division = "NFC East"
	NFCNorth Division = "NFC North"
	NFCSouth Division = "NFC South"
	NFCWest  Division = "NFC West"
)

// Conference returns the conference the division belongs to.
func (d Division) Conference() Conference {
	if len(d) >= 3 && d[:3] == "AFC" {
		return AFC
	}
	if len(d) >= 3 && d[:3] == "NFC" {
		return NFC
	}
	return ""
}

var divisions = map[string]Division{
	"BUF": AFCEast, "MIA": AFCEast, "NE": AFCEast, "NYJ": AFCEast,
	"BAL": AFCNorth, "CIN": AFCNorth, "CLE": AFCNorth, "PIT": AFCNorth,
	"HOU": AFCSouth, "IND": AFCSouth, "JAX": AFCSouth, "TEN": AFCSouth,
	"DEN": AFCWest, "KC": AFCWest, "LV": AFCWest, "LAC": AFCWest,
	"DAL": NFCEast, "NYG": NFCEast, "PHI": NFCEast, "WAS": NFCEast,
	"CHI": NFCNorth, "DET": NFCNorth, "GB": NFCNorth, "MIN": NFCNorth,
	"ATL": NFCSouth, "CAR": NFCSouth, "NO": NFCSouth, "TB": NFCSouth,
	"ARI": NFCWest, "LAR": NFCWest, "SF": NFCWest, "SEA": NFCWest,
}

// aliases are older or alternate abbreviations that still show up in data feeds.
var aliases = map[string]string{
	"LA":  "LAR",
	"OAK": "LV",
	"SD":  "LAC",
	"STL": "LAR",
	"JAC": "JAX",
	"WSH": "WAS",
	"ARZ": "ARI",
	"BLT": "BAL",
	"CLV": "CLE",
	"HST": "HOU",
}

// CanonicalAbbreviation maps alternate team codes to the current ones.
func CanonicalAbbreviation(abbr string) string {
	if a, ok := aliases[abbr]; ok {
		return a
	}
	return abbr
}

// DivisionOf returns the division of a team, if the team is known.
func DivisionOf(abbr string) (Division, bool) {
	d, ok := divisions[CanonicalAbbreviation(abbr)]
	return d, ok
}
