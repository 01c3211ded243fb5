package model

// Default capacity and name-length bounds, matching the original TDMS C
// library's TDMS_config.h compile-time defines. Here they are per-File /
// per-Group runtime values instead, overridable with WithMaxGroups,
// WithMaxChannels, and WithNameLimit so a caller is not stuck recompiling a
// header to raise them.
const (
	DefaultMaxGroups   = 4
	DefaultMaxChannels = 8
	DefaultNameLen     = 30
)
