package models

// KVEntry is one string-keyed slot of the local scratchpad store. The
// daily progress contract uses exactly two slots per user: the date stamp
// and the serialized totals.
type KVEntry struct {
	Key   string `gorm:"primaryKey"`
	Value string
}
