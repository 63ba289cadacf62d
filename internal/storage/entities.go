package storage

// Task is the row shape shared by every backend. Rows are returned in
// insertion order.
type Task struct {
	ID        int64
	Text      string
	Completed bool
}
