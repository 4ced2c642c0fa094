package catalog

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// categorySearchTerms maps browse category ids to the search phrase that
// actually surfaces matching playlists. The catalog's own category-playlist
// endpoint returns thin results for most of these, so category browsing is
// implemented as a playlist search using these phrases.
var categorySearchTerms = map[string]string{
	"pop":           "pop music",
	"rock":          "rock music",
	"hip-hop":       "hip hop rap",
	"jazz":          "jazz music",
	"classical":     "classical music",
	"electronic":    "electronic dance music",
	"country":       "country music",
	"r-b":           "r&b soul",
	"blues":         "blues music",
	"folk":          "folk music",
	"reggae":        "reggae music",
	"funk":          "funk music",
	"soul":          "soul music",
	"disco":         "disco music",
	"punk":          "punk rock",
	"indie":         "indie alternative",
	"alternative":   "alternative rock",
	"metal":         "heavy metal",
	"gospel":        "gospel music",
	"latin":         "latin music",
	"world":         "world music",
	"new-age":       "new age music",
	"ambient":       "ambient music",
	"trance":        "trance music",
	"house":         "house music",
	"techno":        "techno music",
	"dubstep":       "dubstep music",
	"drum-and-bass": "drum and bass",
	"trap":          "trap music",
	"lo-fi":         "lo-fi hip hop",
	"chill":         "chill music",
	"focus":         "focus study music",
	"workout":       "workout fitness music",
	"party":         "party music",
	"romance":       "romantic music",
	"sleep":         "sleep relaxation music",
	"travel":        "travel music",
	"kids":          "kids children music",
	"comedy":        "comedy music",
	"soundtrack":    "movie soundtrack",
	"holiday":       "holiday christmas music",
	"dinner":        "dinner music",
	"equal":         "equal music",
	"mood":          "mood music",
	"decades":       "decades music",
	"instrumental":  "instrumental music",
	"acoustic":      "acoustic music",
	"live":          "live music",
	"cover":         "cover songs",
	"remix":         "remix music",
	"telugu":        "telugu music",
	"tamil":         "tamil music",
	"hindi":         "hindi music",
	"malayalam":     "malayalam music",
	"kannada":       "kannada music",
}

// categoryIDs is the sorted key list fuzzy matching runs against.
var categoryIDs = func() []string {
	ids := make([]string, 0, len(categorySearchTerms))
	for id := range categorySearchTerms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}()

// CategorySearchTerms resolves a category id to a playlist search phrase.
// Exact ids hit the map directly; near-miss ids (typos, casing) are fuzzy
// matched against the known set; anything else falls back to the id itself
// with hyphens replaced by spaces.
func CategorySearchTerms(categoryID string) string {
	id := strings.ToLower(strings.TrimSpace(categoryID))
	if terms, ok := categorySearchTerms[id]; ok {
		return terms
	}

	if matches := fuzzy.Find(id, categoryIDs); len(matches) > 0 {
		return categorySearchTerms[matches[0].Str]
	}

	return strings.ReplaceAll(id, "-", " ")
}
