package nesrom

import "errors"

// ErrInvalidROM is returned (optionally wrapped with more detail via
// fmt.Errorf's %w) whenever a byte stream fails to decode as a
// well-formed iNES image: bad magic, truncated PRG/CHR data, or a
// mapper number this module doesn't support.
var ErrInvalidROM = errors.New("nesrom: invalid rom image")

// ErrUnsupportedMapper is wrapped into ErrInvalidROM when the header
// names a mapper number this emulator has no implementation for.
var ErrUnsupportedMapper = errors.New("nesrom: unsupported mapper")
