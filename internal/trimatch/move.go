package trimatch

// Move places a tile of Rank on Cell for Player.
type Move struct {
	Cell   Cell   `json:"cell"`
	Rank   Rank   `json:"rank"`
	Player Player `json:"player"`
}

// String renders the move in the external form, rank letter plus cell: "Mb2".
func (m Move) String() string {
	return m.Rank.Letter() + m.Cell.String()
}

// HistoryEntry records one applied move together with the cell content it
// displaced and the status the move produced, which is enough to reverse
// the move exactly.
type HistoryEntry struct {
	Move     Move   `json:"move"`
	Replaced Tile   `json:"replaced"`
	Status   Status `json:"status"`
}
