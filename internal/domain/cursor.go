package domain

// LadderCursor identifies the last-seen team of a descending ladder
// listing. The next page request starts exclusively after it.
type LadderCursor struct {
	Rating int
	ID     int64
}

// StartCursor anchors the first page so that teams rated exactly
// ratingStart are still included.
func StartCursor(ratingStart int) LadderCursor {
	return LadderCursor{Rating: ratingStart + 1, ID: 1}
}
