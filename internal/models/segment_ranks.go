package models

import (
	"database/sql/driver"

	"github.com/lib/pq"
)

// SegmentRanks is the persisted seat availability encoding: the set of
// elementary-segment ranks the seat is still free for, stored as a
// PostgreSQL BIGINT[]. A NULL column (nil slice) is the sentinel for a
// permanently closed seat, distinct from an empty array (fully booked).
type SegmentRanks []int64

// Value implements the driver.Valuer interface.
func (r SegmentRanks) Value() (driver.Value, error) {
	if r == nil {
		return nil, nil
	}
	return pq.Array([]int64(r)).Value()
}

// Scan implements the sql.Scanner interface.
func (r *SegmentRanks) Scan(src interface{}) error {
	if src == nil {
		*r = nil
		return nil
	}
	slice := (*[]int64)(r)
	return pq.Array(slice).Scan(src)
}
