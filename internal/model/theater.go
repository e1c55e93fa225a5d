package model

// Theater represents a row in the `theaters` table. Theaters are static
// reference data: created by admins, never mutated by the booking flow.
type Theater struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	Capacity uint32 `json:"capacity"`
}
